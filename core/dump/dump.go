// core/dump/dump.go
package dump

import (
	"fmt"
	"io"

	"taxdump-core/builder"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
)

// WriteNodes serializes the taxonomy under root as nodes.dmp rows, one per
// taxon, parents before children. The root row lists itself as its own
// parent. Ranks are normalized through cfg on the way out.
func WriteNodes(root *taxtree.Node, w io.Writer, cfg lineage.Config) error {
	return taxtree.Walk(root, func(n *taxtree.Node) error {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("taxon %q has no id", n.Name)
		}
		pid := id
		if n != root {
			pid, ok = n.Parent().ID()
			if !ok {
				return fmt.Errorf("taxon %q has no id", n.Parent().Name)
			}
		}
		_, err := fmt.Fprintf(w, "%d\t|\t%d\t|\t%s\t\n", id, pid, cfg.DumpRank(n.Rank))
		return err
	})
}

// WriteNames emits the matching names.dmp rows, every taxon under its
// scientific name, in the order WriteNodes visits them.
func WriteNames(root *taxtree.Node, w io.Writer) error {
	return taxtree.Walk(root, func(n *taxtree.Node) error {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("taxon %q has no id", n.Name)
		}
		_, err := fmt.Fprintf(w, "%d\t|\t%s\t|\t\t|\tscientific name\t\n", id, n.Name)
		return err
	})
}

// WriteRecordMap emits each record→taxid pair as a two-column tab-separated
// row, in map insertion order.
func WriteRecordMap(w io.Writer, m *builder.RecordMap) error {
	return m.Each(func(id string, taxID int) error {
		_, err := fmt.Fprintf(w, "%s\t%d\n", id, taxID)
		return err
	})
}
