// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"taxdump-core/builder"
	"taxdump-core/dump"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
	"taxdump/internal/rankcfg"
	"taxdump/internal/writers"
)

// Output file names fixed by the dump format.
const (
	NodesFile = "nodes.dmp"
	NamesFile = "names.dmp"
)

// Options carries the run settings shared by both front-ends.
type Options struct {
	SeqFiles []string

	OutDir  string
	MapFile string

	RankFile string
}

// BuildFunc turns the input streams into a finished taxonomy: the root taxon
// plus the record→taxid map.
type BuildFunc func(ctx context.Context, cfg lineage.Config, log builder.Log) (*taxtree.Node, *builder.RecordMap, error)

// Run drives the shared tail of a conversion: load the rank vocabulary,
// build the tree, write the dump files. Exit codes: 0 ok, 2 bad
// configuration, 3 runtime failure, 130 cancelled.
func Run(ctx context.Context, stderr io.Writer, logger *zap.Logger, o Options, build BuildFunc) int {
	sugar := logger.Sugar()

	rankCfg, err := rankcfg.Load(o.RankFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	blog := builder.Log{Infof: sugar.Infof, Warnf: sugar.Warnf}
	root, rm, err := build(ctx, rankCfg, blog)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return 130
		case writers.IsBrokenPipe(err):
			return 0
		}
		sugar.Errorf("build failed: %v", err)
		return 3
	}
	sugar.Infof("mapped %d records", rm.Len())

	if err := WriteOutputs(root, rm, rankCfg, o.OutDir, o.MapFile); err != nil {
		sugar.Errorf("write failed: %v", err)
		return 3
	}
	sugar.Infof("wrote %s, %s and %s to %s", NodesFile, NamesFile, o.MapFile, o.OutDir)
	return 0
}

// WriteOutputs serializes the taxonomy and record map into outDir as one
// atomic file set: on any failure nothing is left behind.
func WriteOutputs(root *taxtree.Node, rm *builder.RecordMap, cfg lineage.Config, outDir, mapFile string) error {
	set, err := writers.NewFileSet(outDir)
	if err != nil {
		return err
	}
	defer set.Discard()

	nodes, err := set.Create(NodesFile)
	if err != nil {
		return err
	}
	names, err := set.Create(NamesFile)
	if err != nil {
		return err
	}
	recmap, err := set.Create(mapFile)
	if err != nil {
		return err
	}

	if err := dump.WriteNodes(root, nodes, cfg); err != nil {
		return err
	}
	if err := dump.WriteNames(root, names); err != nil {
		return err
	}
	if err := dump.WriteRecordMap(recmap, rm); err != nil {
		return err
	}
	return set.Commit()
}
