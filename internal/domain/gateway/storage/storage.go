package storage

import "errors"

// ErrNotFound is returned when no value has ever been written under a key.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the persistence capability injected into stores that need to
// survive restarts. Implementations must make Write durable before returning.
type Storage interface {
	// Read returns the value stored under key, or ErrNotFound.
	Read(key string) ([]byte, error)

	// Write stores value under key, replacing any previous value.
	Write(key string, value []byte) error
}
