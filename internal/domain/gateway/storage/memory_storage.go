package storage

import "sync"

// memoryStorage keeps values in process memory. Used by tests and by targets
// that do not need persistence across restarts.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage creates an in-memory Storage.
func NewMemoryStorage() Storage {
	return &memoryStorage{values: make(map[string][]byte)}
}

func (s *memoryStorage) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *memoryStorage) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}
