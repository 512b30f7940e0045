package sink

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/tools/txtar"
)

// TxtarSink collects files into a txtar archive, one section per file.
type TxtarSink struct {
	// Comment is written at the top of the archive.
	Comment string

	mu    sync.Mutex
	files map[string][]byte
}

// NewTxtarSink returns an empty TxtarSink.
func NewTxtarSink(comment string) *TxtarSink {
	return &TxtarSink{Comment: comment, files: make(map[string][]byte)}
}

// WriteFile adds or replaces the section for path.
func (s *TxtarSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := checkWrite(ctx, path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[path] = clone(content)
	return nil
}

// Archive returns the collected files with sections sorted by path.
func (s *TxtarSink) Archive() *txtar.Archive {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &txtar.Archive{}
	if s.Comment != "" {
		a.Comment = []byte(s.Comment + "\n")
	}
	for path, content := range s.files {
		a.Files = append(a.Files, txtar.File{Name: path, Data: clone(content)})
	}
	sort.Slice(a.Files, func(i, j int) bool { return a.Files[i].Name < a.Files[j].Name })
	return a
}

// Bytes returns the formatted archive.
func (s *TxtarSink) Bytes() []byte {
	return txtar.Format(s.Archive())
}
