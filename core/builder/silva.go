// core/builder/silva.go
package builder

import (
	"errors"
	"strconv"

	"taxdump-core/fasta"
	"taxdump-core/lineage"
	"taxdump-core/taxtree"
)

// BuildSilvaTree builds a taxonomy from an annotated lineage table plus the
// full-lineage descriptions carried in a FASTA header stream. Table ids are
// authoritative; taxa seen only in the header stream receive fallback ids
// above the table's maximum. Returns the root taxon and the record→taxid
// map.
func BuildSilvaTree(rows []Row, headers Source, cfg lineage.Config, log Log) (*taxtree.Node, *RecordMap, error) {
	tree := taxtree.New()

	for _, row := range rows {
		node := tree.Insert(lineage.Split(lineage.Trim(row.Lineage), ";"))
		node.Rank = cfg.IngestRank(row.Rank)
		id, err := strconv.Atoi(row.ID)
		if err != nil {
			log.warnf("taxid is not an integer: %s (%s)", row.ID, node.Name)
			continue
		}
		if err := tree.SetExternalID(node, id); err != nil {
			log.warnf("%v", err)
		}
	}
	log.infof("built tree of %d taxa with the largest id of %d", tree.Size(), tree.MaxID())

	type pendingRecord struct {
		id   string
		node *taxtree.Node
	}
	var pending []pendingRecord
	if headers != nil {
		err := headers(func(h fasta.Header) error {
			if h.Desc == "" {
				log.warnf("record %s has no lineage, skipping", h.ID)
				return nil
			}
			node := tree.Insert(lineage.Split(lineage.Trim(h.Desc), ";"))
			pending = append(pending, pendingRecord{id: h.ID, node: node})
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	log.infof("added taxa from sequence headers for a total of %d", tree.Size())

	root, extra := tree.ReportedRoot()
	if root == nil {
		return nil, nil, errors.New("no taxa found in input")
	}
	warnExtraRootChildren(root, extra, log)

	if fixed := tree.AssignFallbackIDs(root); fixed > 0 {
		log.infof("assigned fallback ids to %d taxa", fixed)
	}

	// Records can land on taxa outside the root's subtree when the input
	// holds more than one top-level taxon; those never get ids.
	rm := NewRecordMap()
	dropped := 0
	for _, p := range pending {
		id, ok := p.node.ID()
		if !ok {
			dropped++
			continue
		}
		rm.Set(p.id, id)
	}
	if dropped > 0 {
		log.warnf("dropped %d records mapped to taxa that never received ids", dropped)
	}
	return root, rm, nil
}
