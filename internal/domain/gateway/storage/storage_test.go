package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStorageBackends(t *testing.T) {
	fileStore, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}

	backends := map[string]Storage{
		"memory": NewMemoryStorage(),
		"file":   fileStore,
	}

	for name, store := range backends {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Read("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Read of a missing key: err = %v, want ErrNotFound", err)
			}

			if err := store.Write("favorites", []byte(`[{"name":"London"}]`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			data, err := store.Read("favorites")
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if string(data) != `[{"name":"London"}]` {
				t.Errorf("Read() = %q", data)
			}

			if err := store.Write("favorites", []byte(`[]`)); err != nil {
				t.Fatalf("overwrite error = %v", err)
			}
			data, err = store.Read("favorites")
			if err != nil {
				t.Fatalf("Read() after overwrite error = %v", err)
			}
			if string(data) != `[]` {
				t.Errorf("overwrite not visible, Read() = %q", data)
			}
		})
	}
}

func TestMemoryStorageReturnsCopies(t *testing.T) {
	store := NewMemoryStorage()
	original := []byte("abc")
	if err := store.Write("key", original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	original[0] = 'z'
	first, _ := store.Read("key")
	if string(first) != "abc" {
		t.Error("mutating the written slice must not affect the stored value")
	}

	first[0] = 'z'
	second, _ := store.Read("key")
	if string(second) != "abc" {
		t.Error("mutating a read slice must not affect the stored value")
	}
}

func TestFileStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := store.Write("favorites", []byte(`[]`)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("leftover temp file %q", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target file", len(entries))
	}
}
