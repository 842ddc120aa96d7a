// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"taxdump/internal/cliutil"
	"taxdump/internal/config"
)

// Common holds CLI fields shared by taxdump and taxdump-pr2.
type Common struct {
	// Input
	SeqFiles []string

	// Output
	OutDir  string
	MapFile string

	// Ranks
	RankFile string

	// Logging
	LogLevel  string
	LogFormat string
	Quiet     bool

	// Misc
	Version bool
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires the shared flags onto fs, seeding defaults from the
// environment-derived configuration.
func Register(fs *flag.FlagSet, c *Common, cfg *config.Config) {
	// Inputs
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	// Output
	fs.StringVar(&c.OutDir, "out-dir", "", "directory to write dump files into [required]")
	fs.StringVar(&c.OutDir, "o", "", "alias of --out-dir")
	fs.StringVar(&c.MapFile, "output-map", cfg.Output.MapFile, "record map file name, relative to --out-dir")
	fs.StringVar(&c.MapFile, "m", cfg.Output.MapFile, "alias of --output-map")

	// Ranks
	fs.StringVar(&c.RankFile, "rank-config", cfg.Build.RankFile, "YAML rank vocabulary override")

	// Logging
	fs.StringVar(&c.LogLevel, "log-level", cfg.Log.Level, "log level: debug | info | warn | error")
	fs.StringVar(&c.LogFormat, "log-format", cfg.Log.Format, "log format: console | json")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")

	// Misc
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals into the sequence list, then runs shared
// validation.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.OutDir == "" {
		return errors.New("--out-dir is required")
	}
	if c.MapFile == "" {
		return errors.New("--output-map must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	return nil
}
