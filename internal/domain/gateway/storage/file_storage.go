package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileStorage persists each key as one JSON file inside a base directory.
type fileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed Storage rooted at dir, creating the
// directory if needed.
func NewFileStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &fileStorage{dir: dir}, nil
}

func (s *fileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStorage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// Write replaces the file atomically via a temp file and rename, so a crash
// mid-write never leaves a torn value behind.
func (s *fileStorage) Write(key string, value []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), target)
}
