// core/lineage/lineage.go
package lineage

import "strings"

// NoRank is the placeholder rank emitted for taxa whose rank is unset or
// falls outside the recognized vocabulary.
const NoRank = "no rank"

// Element is one step of a lineage walk: a taxon name plus an optional rank.
type Element struct {
	Name string
	Rank string
}

// Path is an ordered walk from the taxon just below the root down to a
// terminal taxon.
type Path []Element

// Config is the rank vocabulary in force for one run. Values are fixed
// before building starts; callers treat a Config as read-only.
type Config struct {
	// Ladder assigns ranks positionally to bare name lists (Zip).
	Ladder []string
	// IngestRenames maps source rank labels to internal labels as taxa
	// are ingested.
	IngestRenames map[string]string
	// DumpRenames maps internal rank labels back to output labels.
	DumpRenames map[string]string
	// Recognized lists the rank labels the output format accepts as-is.
	Recognized map[string]bool
}

// DefaultConfig returns the stock vocabulary: an eight-step ladder, the
// superkingdom/major_clade rename pair, and the classic NCBI rank set.
func DefaultConfig() Config {
	recognized := map[string]bool{}
	for _, r := range []string{
		"superkingdom", "kingdom", "subkingdom",
		"superphylum", "phylum", "subphylum",
		"superclass", "class", "subclass", "infraclass",
		"superorder", "order", "suborder", "infraorder", "parvorder",
		"superfamily", "family", "subfamily",
		"tribe", "subtribe",
		"genus", "subgenus",
		"species group", "species subgroup", "species", "subspecies",
		"varietas", "forma",
	} {
		recognized[r] = true
	}
	return Config{
		Ladder: []string{
			"domain", "kingdom", "phylum", "class",
			"order", "family", "genus", "species",
		},
		// "superkingdom" is reserved for the output's domain rows, so
		// source taxa carrying it are shelved under another label.
		IngestRenames: map[string]string{
			"superkingdom": "major_clade",
		},
		DumpRenames: map[string]string{
			"domain":      "superkingdom",
			"major_clade": "superkingdom",
		},
		Recognized: recognized,
	}
}

// IngestRank normalizes a source rank label to its internal form.
func (c Config) IngestRank(rank string) string {
	if to, ok := c.IngestRenames[rank]; ok {
		return to
	}
	return rank
}

// DumpRank normalizes an internal rank label for output. Labels outside the
// recognized vocabulary collapse to NoRank.
func (c Config) DumpRank(rank string) string {
	if to, ok := c.DumpRenames[rank]; ok {
		rank = to
	}
	if rank == "" || !c.Recognized[rank] {
		return NoRank
	}
	return rank
}

// Trim strips the separator/space padding SILVA-style lineage strings carry
// at either end (trailing ";" most commonly).
func Trim(s string) string {
	return strings.Trim(s, "; ")
}

// Split breaks a delimited lineage string into rank-less path elements.
// Empty input yields an empty path; interior empty fields are kept verbatim.
func Split(s, sep string) Path {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	path := make(Path, len(parts))
	for i, p := range parts {
		path[i] = Element{Name: p}
	}
	return path
}

// Zip pairs a bare name list with ladder ranks by position. Names beyond the
// end of the ladder are dropped; the count of dropped names is returned.
func Zip(names, ladder []string) (Path, int) {
	n := len(names)
	if n > len(ladder) {
		n = len(ladder)
	}
	path := make(Path, 0, n)
	for i := 0; i < n; i++ {
		path = append(path, Element{Name: names[i], Rank: ladder[i]})
	}
	return path, len(names) - n
}
