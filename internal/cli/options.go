// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"taxdump/internal/clibase"
	"taxdump/internal/cliutil"
	"taxdump/internal/config"
)

// Options holds all CLI flags for the annotated-lineage (Silva) tool.
type Options struct {
	clibase.Common

	// Silva-specific
	TaxFile string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --taxfile tax_slv.txt --out-dir dump/ silva.fasta\n", name)
		fmt.Fprintf(out, "  %s -t tax_slv.txt.gz -o dump/ silva*.fasta.gz\n", name)

		fmt.Fprintln(out, "\nTaxonomy:")
		fmt.Fprintln(out, "  -t, --taxfile file          Rank table (lineage, taxid, rank) [required]")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for taxdump.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "taxdump", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Convert a Silva release into NCBI-style dump files.")
		_, _ = fmt.Fprintln(w, "The rank table supplies taxids; header lineages place the records.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  taxdump \\")
		_, _ = fmt.Fprintln(w, "    --taxfile tax_slv_ssu_138.txt \\")
		_, _ = fmt.Fprintln(w, "    --out-dir silva_dump \\")
		_, _ = fmt.Fprintln(w, "    SILVA_138_SSURef_tax_silva.fasta.gz")
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

	// Silva flags
	fs.StringVar(&o.TaxFile, "taxfile", "", "rank table file [required]")
	fs.StringVar(&o.TaxFile, "t", "", "alias of --taxfile")

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
	// Silva-specific validation
	if o.TaxFile == "" {
		return o, errors.New("--taxfile is required")
	}

	// Embed shared options
	o.Common = c
	return o, nil
}
