// internal/pr2app/app.go
package pr2app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"taxdump-core/builder"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
	"taxdump/internal/appcore"
	"taxdump/internal/clibase"
	"taxdump/internal/config"
	"taxdump/internal/logging"
	"taxdump/internal/pr2cli"
	"taxdump/internal/version"
	"taxdump/internal/writers"
)

// RunContext drives the rank-ladder (PR2) tool: self-contained header
// lineages in, dump files out, optionally a rewritten FASTA alongside.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := pr2cli.NewFlagSet("taxdump-pr2")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = pr2cli.ParseArgs(fs, []string{"-h"}, cfg)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := pr2cli.ParseArgs(fs, argv, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			pr2cli.PrintExamples(outw)
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "taxdump-pr2 version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logCfg := logging.Config{Level: opts.LogLevel, Format: opts.LogFormat}
	if opts.Quiet {
		logCfg.Level = "error"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	// The rewritten FASTA goes to a file or, with "-", to stdout. The file
	// joins a set of its own so a failed run removes it again.
	var fastaOut io.Writer
	var fastaSet *writers.FileSet
	switch opts.FastaOut {
	case "":
	case "-":
		fastaOut = outw
	default:
		set, err := writers.NewFileSet(filepath.Dir(opts.FastaOut))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		w, err := set.CreatePath(opts.FastaOut)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		fastaSet = set
		fastaOut = w
	}

	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles,
		OutDir:   opts.OutDir,
		MapFile:  opts.MapFile,
		RankFile: opts.RankFile,
	}
	build := func(ctx context.Context, rc lineage.Config, log builder.Log) (*taxtree.Node, *builder.RecordMap, error) {
		return builder.BuildPR2Tree(
			appcore.LineSource(ctx, opts.SeqFiles),
			builder.PR2Options{IDStart: opts.IDStart, FastaOut: fastaOut},
			rc, log)
	}
	code := appcore.Run(parent, stderr, logger, coreOpts, build)

	if fastaSet != nil {
		if code != 0 {
			fastaSet.Discard()
		} else if err := fastaSet.Commit(); err != nil {
			fmt.Fprintln(stderr, err)
			code = 3
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil && code == 0 {
		fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
