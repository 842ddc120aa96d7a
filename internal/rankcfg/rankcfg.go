// internal/rankcfg/rankcfg.go
package rankcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taxdump-core/lineage"
)

// fileSchema is the on-disk YAML shape. Sections omitted from the file keep
// their stock values.
type fileSchema struct {
	Ladder        []string          `yaml:"ladder"`
	IngestRenames map[string]string `yaml:"ingest_renames"`
	DumpRenames   map[string]string `yaml:"dump_renames"`
	Recognized    []string          `yaml:"recognized"`
}

// Load layers a YAML rank vocabulary over the stock configuration. An empty
// path returns the stock configuration unchanged.
func Load(path string) (lineage.Config, error) {
	cfg := lineage.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if doc.Ladder != nil {
		for i, r := range doc.Ladder {
			if r == "" {
				return cfg, fmt.Errorf("%s: ladder step %d is empty", path, i+1)
			}
		}
		cfg.Ladder = doc.Ladder
	}
	if doc.IngestRenames != nil {
		cfg.IngestRenames = doc.IngestRenames
	}
	if doc.DumpRenames != nil {
		cfg.DumpRenames = doc.DumpRenames
	}
	if doc.Recognized != nil {
		rec := make(map[string]bool, len(doc.Recognized))
		for _, r := range doc.Recognized {
			rec[r] = true
		}
		cfg.Recognized = rec
	}
	return cfg, nil
}
