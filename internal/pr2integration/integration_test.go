// internal/pr2integration/integration_test.go
package pr2integration

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxdump/internal/pr2app"
)

const pr2Fasta = ">A.1.1|Eukaryota|Fungi|Ascomycota\nACGT\n" +
	">B.1.1|Eukaryota|Fungi|Basidiomycota\nTTTT\n"

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "pr2.fa", pr2Fasta)
	out := filepath.Join(dir, "dump")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{"--out-dir", out, "--quiet", fa}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, e.String())
	}

	wantNodes := "1\t|\t1\t|\tsuperkingdom\t\n" +
		"2\t|\t1\t|\tkingdom\t\n" +
		"3\t|\t2\t|\tphylum\t\n" +
		"4\t|\t2\t|\tphylum\t\n"
	if got := read(t, filepath.Join(out, "nodes.dmp")); got != wantNodes {
		t.Fatalf("nodes.dmp mismatch:\n got %q\nwant %q", got, wantNodes)
	}

	wantNames := "1\t|\tEukaryota\t|\t\t|\tscientific name\t\n" +
		"2\t|\tFungi\t|\t\t|\tscientific name\t\n" +
		"3\t|\tAscomycota\t|\t\t|\tscientific name\t\n" +
		"4\t|\tBasidiomycota\t|\t\t|\tscientific name\t\n"
	if got := read(t, filepath.Join(out, "names.dmp")); got != wantNames {
		t.Fatalf("names.dmp mismatch:\n got %q\nwant %q", got, wantNames)
	}

	if got := read(t, filepath.Join(out, "lastdb.tax")); got != "A.1.1\t3\nB.1.1\t4\n" {
		t.Fatalf("record map mismatch: %q", got)
	}
}

func TestFastaOutFile(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "pr2.fa", pr2Fasta)
	out := filepath.Join(dir, "dump")
	short := filepath.Join(dir, "short.fasta")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{
		"--out-dir", out, "--fasta-out", short, "--quiet", fa,
	}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, e.String())
	}

	want := ">A.1.1 Eukaryota;Fungi;Ascomycota\nACGT\n" +
		">B.1.1 Eukaryota;Fungi;Basidiomycota\nTTTT\n"
	if got := read(t, short); got != want {
		t.Fatalf("rewritten fasta mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFastaOutRemovedOnFailure(t *testing.T) {
	dir := t.TempDir()
	// Only a bare header: no taxa can be built, so the run fails.
	fa := write(t, dir, "bad.fa", ">justid\nACGT\n")
	out := filepath.Join(dir, "dump")
	short := filepath.Join(dir, "short.fasta")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{
		"--out-dir", out, "--fasta-out", short, "--quiet", fa,
	}, &o, &e)
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if _, err := os.Stat(short); !os.IsNotExist(err) {
		t.Fatalf("failed run must remove the rewritten fasta (err=%v)", err)
	}
}

func TestFastaOutStdout(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "pr2.fa", pr2Fasta)
	out := filepath.Join(dir, "dump")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{
		"--out-dir", out, "--fasta-out", "-", "--quiet", fa,
	}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, e.String())
	}
	if !strings.HasPrefix(o.String(), ">A.1.1 Eukaryota;Fungi;Ascomycota\n") {
		t.Fatalf("stdout fasta missing: %q", o.String())
	}
}

func TestIDStartShiftsAllIDs(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "pr2.fa", pr2Fasta)
	out := filepath.Join(dir, "dump")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{
		"--out-dir", out, "--id-start", "100", "--quiet", fa,
	}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, e.String())
	}
	nodes := read(t, filepath.Join(out, "nodes.dmp"))
	if !strings.HasPrefix(nodes, "101\t|\t101\t|\tsuperkingdom\t\n") {
		t.Fatalf("ids not seeded from 100: %q", nodes)
	}
	if got := read(t, filepath.Join(out, "lastdb.tax")); got != "A.1.1\t103\nB.1.1\t104\n" {
		t.Fatalf("record map mismatch: %q", got)
	}
}

func TestGzipInput(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "pr2.fa.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(pr2Fasta)); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	out := filepath.Join(dir, "dump")

	var o, e bytes.Buffer
	code := pr2app.Run([]string{"-o", out, "-q", gz}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, e.String())
	}
	if got := read(t, filepath.Join(out, "lastdb.tax")); got != "A.1.1\t3\nB.1.1\t4\n" {
		t.Fatalf("record map mismatch: %q", got)
	}
}

func TestVersionFlag(t *testing.T) {
	var o, e bytes.Buffer
	code := pr2app.Run([]string{"--version"}, &o, &e)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(o.String(), "taxdump-pr2 version ") {
		t.Fatalf("unexpected version output %q", o.String())
	}
}
