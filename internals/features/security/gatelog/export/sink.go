package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is one generated export, ready to be downloaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Sink receives a finished file. The HTTP layer streams it as an attachment
// and may archive a copy through DirSink.
type Sink interface {
	Save(file File) error
}

type SinkFunc func(file File) error

func (f SinkFunc) Save(file File) error { return f(file) }

// DirSink writes files into a directory (EXPORT_ARCHIVE_DIR).
type DirSink struct {
	Dir string
}

func (s DirSink) Save(file File) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(file.Name))
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// MemorySink keeps saved files in memory.
type MemorySink struct {
	mu    sync.Mutex
	files []File
}

func (s *MemorySink) Save(file File) error {
	s.mu.Lock()
	s.files = append(s.files, file)
	s.mu.Unlock()
	return nil
}

func (s *MemorySink) Files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]File, len(s.files))
	copy(out, s.files)
	return out
}
