package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestSplitFlagsAndPositionals_ValueFlagsTakeNextArg(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "taxfile", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--taxfile", "tax.txt", "silva.fa", "-"})
	if len(flagArgs) != 2 || flagArgs[1] != "tax.txt" {
		t.Fatalf("value flag lost its argument: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[1] != "-" {
		t.Fatalf("positionals wrong: %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a Bacteria\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b Bacteria\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionals_NoMatchFails(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatalf("expected an error for an unmatched glob")
	}
}
