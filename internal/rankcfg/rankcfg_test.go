package rankcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"taxdump/internal/rankcfg"

	"github.com/stretchr/testify/assert"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranks.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsStock(t *testing.T) {
	cfg, err := rankcfg.Load("")
	assert.NoError(t, err)
	assert.Len(t, cfg.Ladder, 8)
	assert.Equal(t, "domain", cfg.Ladder[0])
	assert.Equal(t, "major_clade", cfg.IngestRenames["superkingdom"])
}

func TestLoad_OverridesSections(t *testing.T) {
	path := writeYAML(t, `
ladder: [realm, phylum, genus]
dump_renames:
  realm: superkingdom
`)
	cfg, err := rankcfg.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"realm", "phylum", "genus"}, cfg.Ladder)
	assert.Equal(t, "superkingdom", cfg.DumpRenames["realm"])
	// Untouched sections keep their stock values.
	assert.Equal(t, "major_clade", cfg.IngestRenames["superkingdom"])
	assert.True(t, cfg.Recognized["genus"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"EmptyLadderStep", "ladder: [domain, '', genus]"},
		{"BadYAML", "ladder: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rankcfg.Load(writeYAML(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := rankcfg.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
