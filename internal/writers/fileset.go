// internal/writers/fileset.go
package writers

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// FileSet groups the output files of one run. Files are created up front and
// written through buffered writers; nothing is final until Commit. Discard
// (or a failed Commit) removes every file the set created, so a run never
// leaves partial output behind.
type FileSet struct {
	dir   string
	paths []string
	files []*os.File
	bufs  []*bufio.Writer
	done  bool
}

// NewFileSet prepares a set rooted at dir, creating the directory if needed.
func NewFileSet(dir string) (*FileSet, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSet{dir: dir}, nil
}

// Create opens name inside the set's directory, truncating any previous
// file. The returned writer is buffered; data is durable only after Commit.
func (s *FileSet) Create(name string) (io.Writer, error) {
	return s.CreatePath(filepath.Join(s.dir, name))
}

// CreatePath is Create for files outside the set's directory.
func (s *FileSet) CreatePath(path string) (io.Writer, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s.paths = append(s.paths, path)
	s.files = append(s.files, fh)
	w := bufio.NewWriter(fh)
	s.bufs = append(s.bufs, w)
	return w, nil
}

// Commit flushes and closes every file in the set. On any error the whole
// set is removed and the first error is returned.
func (s *FileSet) Commit() error {
	if s.done {
		return nil
	}
	s.done = true
	var err error
	for i, b := range s.bufs {
		if ferr := b.Flush(); ferr != nil && err == nil {
			err = ferr
		}
		if cerr := s.files[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		s.remove()
		return err
	}
	return nil
}

// Discard closes and deletes every file the set created. It is a no-op after
// a successful Commit, so "defer set.Discard()" is safe on every path.
func (s *FileSet) Discard() {
	if s.done {
		return
	}
	s.done = true
	for _, fh := range s.files {
		_ = fh.Close()
	}
	s.remove()
}

func (s *FileSet) remove() {
	for _, p := range s.paths {
		_ = os.Remove(p)
	}
}
