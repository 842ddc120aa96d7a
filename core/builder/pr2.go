// core/builder/pr2.go
package builder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"taxdump-core/lineage"
	"taxdump-core/taxtree"
)

// PR2Options adjust the rank-ladder front-end.
type PR2Options struct {
	// IDStart seeds taxid numbering; the first taxon gets IDStart+1.
	IDStart int
	// FastaOut, when set, receives a copy of the input with each header
	// rewritten to "id name;name;...". Body lines pass through untouched.
	FastaOut io.Writer
}

// BuildPR2Tree builds a taxonomy from FASTA headers of the form
// "id|name|name|...", pairing each name with a fixed rank ladder. Taxids
// are handed out sequentially as taxa are first seen. Returns the root
// taxon and the record→taxid map.
func BuildPR2Tree(lines LineSource, opts PR2Options, cfg lineage.Config, log Log) (*taxtree.Node, *RecordMap, error) {
	tree := taxtree.NewSequential(opts.IDStart)
	rm := NewRecordMap()

	droppedNames, longRecords := 0, 0
	err := lines(func(line string) error {
		names := strings.Split(strings.TrimPrefix(line, ">"), "|")
		hitid := names[0]
		rest := names[1:]

		path, extra := lineage.Zip(rest, cfg.Ladder)
		if extra > 0 {
			droppedNames += extra
			longRecords++
		}
		if len(path) == 0 {
			log.warnf("record %s has no lineage, skipping", hitid)
		} else {
			node := tree.Insert(path)
			id, _ := node.ID()
			rm.Set(hitid, id)
		}

		if opts.FastaOut != nil {
			if _, err := fmt.Fprintf(opts.FastaOut, ">%s %s\n", hitid, strings.Join(rest, ";")); err != nil {
				return err
			}
		}
		return nil
	}, func(line string) error {
		if opts.FastaOut == nil {
			return nil
		}
		_, err := fmt.Fprintln(opts.FastaOut, line)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if longRecords > 0 {
		log.warnf("dropped %d names beyond the %d-step rank ladder across %d records",
			droppedNames, len(cfg.Ladder), longRecords)
	}

	root, extra := tree.ReportedRoot()
	if root == nil {
		return nil, nil, errors.New("no taxa found in input")
	}
	warnExtraRootChildren(root, extra, log)
	log.infof("root taxon is %s", root.Name)

	return root, rm, nil
}
