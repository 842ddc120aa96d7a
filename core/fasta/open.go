// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// stackedCloser closes every wrapped closer, keeping the first error.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens a FASTA path for reading, transparently decoding gzip input.
// Gzip is detected by the 1F 8B magic bytes or a .gz suffix. "-" reads
// plain text from stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	gzipped := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if gzipped || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &stackedCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &stackedCloser{Reader: br, closers: []io.Closer{fh}}, nil
}
