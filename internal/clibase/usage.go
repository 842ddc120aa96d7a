// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"taxdump/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, extra flag blocks).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s builds NCBI-style taxonomy dump files\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable), '-' for STDIN, .gz supported")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --out-dir dir           Directory for nodes.dmp and names.dmp [required]")
		fmt.Fprintf(out, "  -m, --output-map string     Record map file name, relative to --out-dir [%s]\n", def("output-map"))

		fmt.Fprintln(out, "\nRanks:")
		fmt.Fprintf(out, "      --rank-config file      YAML rank vocabulary override [%s]\n", def("rank-config"))

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintf(out, "      --log-level string      Log level: debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     Log format: console | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
