// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taxdump-core/builder"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
	"taxdump/internal/appcore"
	"taxdump/internal/cli"
	"taxdump/internal/clibase"
	"taxdump/internal/config"
	"taxdump/internal/logging"
	"taxdump/internal/version"
	"taxdump/internal/writers"
)

// RunContext drives the annotated-lineage (Silva) tool: rank table plus
// FASTA header lineages in, dump files out.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := cli.NewFlagSet("taxdump")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}, cfg)
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

	opts, err := cli.ParseArgs(fs, argv, cfg)
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
			cli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "taxdump version %s\n", version.Version)
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
	sugar := logger.Sugar()

	// The rank table is the tool's contract: refuse to start without it.
	rows, err := builder.LoadTable(opts.TaxFile, builder.Log{Warnf: sugar.Warnf})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles,
		OutDir:   opts.OutDir,
		MapFile:  opts.MapFile,
		RankFile: opts.RankFile,
	}
	build := func(ctx context.Context, rc lineage.Config, log builder.Log) (*taxtree.Node, *builder.RecordMap, error) {
		return builder.BuildSilvaTree(rows, appcore.HeaderSource(ctx, opts.SeqFiles), rc, log)
	}
	return appcore.Run(parent, stderr, logger, coreOpts, build)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
