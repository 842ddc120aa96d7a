package dump

import (
	"strings"
	"testing"

	"taxdump-core/builder"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
)

func ladderPath(cfg lineage.Config, names ...string) lineage.Path {
	p, _ := lineage.Zip(names, cfg.Ladder)
	return p
}

func fungiRoot(t *testing.T, cfg lineage.Config) *taxtree.Node {
	t.Helper()
	tr := taxtree.NewSequential(0)
	tr.Insert(ladderPath(cfg, "Eukaryota", "Fungi", "Ascomycota"))
	tr.Insert(ladderPath(cfg, "Eukaryota", "Fungi", "Basidiomycota"))
	root, _ := tr.ReportedRoot()
	return root
}

func TestWriteNodes(t *testing.T) {
	cfg := lineage.DefaultConfig()
	root := fungiRoot(t, cfg)

	var nodes strings.Builder
	if err := WriteNodes(root, &nodes, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "1\t|\t1\t|\tsuperkingdom\t\n" +
		"2\t|\t1\t|\tkingdom\t\n" +
		"3\t|\t2\t|\tphylum\t\n" +
		"4\t|\t2\t|\tphylum\t\n"
	if nodes.String() != want {
		t.Fatalf("nodes dump mismatch:\n got %q\nwant %q", nodes.String(), want)
	}
}

func TestWriteNames(t *testing.T) {
	cfg := lineage.DefaultConfig()
	root := fungiRoot(t, cfg)

	var names strings.Builder
	if err := WriteNames(root, &names); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "1\t|\tEukaryota\t|\t\t|\tscientific name\t\n" +
		"2\t|\tFungi\t|\t\t|\tscientific name\t\n" +
		"3\t|\tAscomycota\t|\t\t|\tscientific name\t\n" +
		"4\t|\tBasidiomycota\t|\t\t|\tscientific name\t\n"
	if names.String() != want {
		t.Fatalf("names dump mismatch:\n got %q\nwant %q", names.String(), want)
	}
}

func TestWriteNodes_RootIsItsOwnParent(t *testing.T) {
	cfg := lineage.DefaultConfig()
	tr := taxtree.NewSequential(40)
	tr.Insert(ladderPath(cfg, "Bacteria"))

	root, _ := tr.ReportedRoot()
	var nodes strings.Builder
	if err := WriteNodes(root, &nodes, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(nodes.String(), "41\t|\t41\t|\t") {
		t.Fatalf("root line should self-parent: %q", nodes.String())
	}
}

func TestWriteNodes_NormalizesRanks(t *testing.T) {
	cfg := lineage.DefaultConfig()
	tr := taxtree.NewSequential(0)
	tr.Insert(lineage.Path{
		{Name: "Eukaryota", Rank: "domain"},
		{Name: "SAR", Rank: "major_clade"},
		{Name: "Weird", Rank: "clade_of_mystery"},
		{Name: "NoRankAtAll"},
	})

	root, _ := tr.ReportedRoot()
	var nodes strings.Builder
	if err := WriteNodes(root, &nodes, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(nodes.String(), "\n"), "\n")
	wantRanks := []string{"superkingdom", "superkingdom", "no rank", "no rank"}
	for i, want := range wantRanks {
		if !strings.HasSuffix(lines[i], "\t|\t"+want+"\t") {
			t.Fatalf("line %d rank mismatch: %q (want %s)", i, lines[i], want)
		}
	}
}

func TestMissingIDFails(t *testing.T) {
	tr := taxtree.New()
	tr.Insert(lineage.Path{{Name: "Bacteria"}})
	root, _ := tr.ReportedRoot()
	var sink strings.Builder
	if err := WriteNodes(root, &sink, lineage.DefaultConfig()); err == nil {
		t.Fatalf("expected an error for unassigned ids")
	}
	if err := WriteNames(root, &sink); err == nil {
		t.Fatalf("expected an error for unassigned ids")
	}
}

func TestWriteRecordMap(t *testing.T) {
	rm := builder.NewRecordMap()
	rm.Set("B.1.1", 4)
	rm.Set("A.1.1", 3)

	var out strings.Builder
	if err := WriteRecordMap(&out, rm); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out.String() != "B.1.1\t4\nA.1.1\t3\n" {
		t.Fatalf("record map mismatch: %q", out.String())
	}
}
