// core/builder/table.go
package builder

import (
	"bufio"
	"strings"

	"taxdump-core/fasta"
)

// Row is one rank table entry: a full lineage path, its external taxid
// (still raw text, parsed later), and a rank label.
type Row struct {
	Lineage string
	ID      string
	Rank    string
}

// LoadTable reads a tab-separated rank table (lineage, taxid, rank; extra
// columns ignored). Blank lines and #-comments are skipped silently; rows
// with fewer than three fields are logged and skipped. The file may be
// gzipped, or "-" for stdin.
func LoadTable(path string, log Log) ([]Row, error) {
	fh, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var rows []Row
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 3 {
			log.warnf("%s:%d bad field count, skipping row", path, ln)
			continue
		}
		rows = append(rows, Row{
			Lineage: f[0],
			ID:      strings.TrimSpace(f[1]),
			Rank:    strings.TrimSpace(f[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
