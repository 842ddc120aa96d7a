// core/builder/builder.go
package builder

import (
	"strings"

	"taxdump-core/fasta"
	"taxdump-core/taxtree"
)

// Logf is a printf-style logging callback.
type Logf func(format string, args ...any)

// Log carries the two logging hooks builders report through. Either hook
// may be nil to discard that level.
type Log struct {
	Infof Logf
	Warnf Logf
}

func (l Log) infof(format string, args ...any) {
	if l.Infof != nil {
		l.Infof(format, args...)
	}
}

func (l Log) warnf(format string, args ...any) {
	if l.Warnf != nil {
		l.Warnf(format, args...)
	}
}

// Source streams FASTA headers into a callback, one per record.
type Source func(emit func(fasta.Header) error) error

// LineSource streams raw FASTA lines, dispatching header lines and body
// lines to separate callbacks.
type LineSource func(header, body func(line string) error) error

type recordEntry struct {
	ID    string
	TaxID int
}

// RecordMap maps record ids to taxids. Iteration order is first-insertion
// order; setting an existing id updates it in place.
type RecordMap struct {
	entries []recordEntry
	index   map[string]int
}

// NewRecordMap returns an empty map.
func NewRecordMap() *RecordMap {
	return &RecordMap{index: map[string]int{}}
}

// Set records id → taxID, keeping the position of an earlier entry for the
// same id.
func (m *RecordMap) Set(id string, taxID int) {
	if i, ok := m.index[id]; ok {
		m.entries[i].TaxID = taxID
		return
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, recordEntry{ID: id, TaxID: taxID})
}

// Get looks up the taxid recorded for id.
func (m *RecordMap) Get(id string) (int, bool) {
	i, ok := m.index[id]
	if !ok {
		return 0, false
	}
	return m.entries[i].TaxID, true
}

// Len returns the number of recorded ids.
func (m *RecordMap) Len() int { return len(m.entries) }

// Each calls fn for every entry in insertion order, stopping at the first
// error.
func (m *RecordMap) Each(fn func(id string, taxID int) error) error {
	for _, e := range m.entries {
		if err := fn(e.ID, e.TaxID); err != nil {
			return err
		}
	}
	return nil
}

// warnExtraRootChildren flags trees whose synthetic root picked up more than
// one top-level taxon. The first child still wins.
func warnExtraRootChildren(root *taxtree.Node, extra []string, log Log) {
	if len(extra) == 0 {
		return
	}
	names := append([]string{root.Name}, extra...)
	log.warnf("expected a single top-level taxon, found %d: %s", len(names), strings.Join(names, ", "))
}
