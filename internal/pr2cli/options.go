// internal/pr2cli/options.go
package pr2cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"taxdump/internal/clibase"
	"taxdump/internal/cliutil"
	"taxdump/internal/config"
)

// Options holds all CLI flags for the rank-ladder (PR2) tool.
type Options struct {
	clibase.Common

	// PR2-specific
	FastaOut string
	IDStart  int
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --out-dir dump/ pr2.fasta\n", name)
		fmt.Fprintf(out, "  %s -o dump/ --fasta-out pr2_short.fasta pr2.fasta.gz\n", name)

		fmt.Fprintln(out, "\nHeaders:")
		fmt.Fprintf(out, "  -f, --fasta-out file        Rewrite headers to short ids into FILE [%s]\n", def("fasta-out"))
		fmt.Fprintf(out, "  -i, --id-start int          Start taxid counting above this number [%s]\n", def("id-start"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for taxdump-pr2.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "taxdump-pr2", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Convert a PR2 release into NCBI-style dump files.")
		_, _ = fmt.Fprintln(w, "Header name lists are paired with a fixed rank ladder;")
		_, _ = fmt.Fprintln(w, "--fasta-out keeps a copy with short, mappable ids.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  taxdump-pr2 \\")
		_, _ = fmt.Fprintln(w, "    --out-dir pr2_dump \\")
		_, _ = fmt.Fprintln(w, "    --fasta-out pr2_short.fasta \\")
		_, _ = fmt.Fprintln(w, "    pr2_version_4.12.0.fasta.gz")
	})
}

// ParseArgs parses argv into Options, seeding flag defaults from cfg.
func ParseArgs(fs *flag.FlagSet, argv []string, cfg *config.Config) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c, cfg)

	// PR2 flags
	fs.StringVar(&o.FastaOut, "fasta-out", "", "write fasta with shortened headers to this file")
	fs.StringVar(&o.FastaOut, "f", "", "alias of --fasta-out")
	fs.IntVar(&o.IDStart, "id-start", cfg.Build.IDStart, "start taxid counting above this number")
	fs.IntVar(&o.IDStart, "i", cfg.Build.IDStart, "alias of --id-start")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	// Expand positionals, shared validation
	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	// PR2-specific validation
	if o.IDStart < 0 {
		return o, errors.New("--id-start must be ≥ 0")
	}

	// Embed shared options
	o.Common = c
	return o, nil
}
