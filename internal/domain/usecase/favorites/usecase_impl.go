package favorites

import (
	"encoding/json"
	"errors"
	"sync"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/gateway/storage"
	"clima-api/pkg/log"
)

// StorageKey is the single well-known key the favorites list lives under.
// The value is a plain JSON array of CitySearchResult, no version field, so
// readers must tolerate absent optional fields.
const StorageKey = "weather_app_favorites"

type favoritesUseCase struct {
	mu     sync.RWMutex
	store  storage.Storage
	cities []entity.CitySearchResult
}

// NewFavoritesUseCase loads the persisted set once and keeps the in-memory
// list authoritative for the rest of the session. A missing or corrupt
// persisted value starts the session with an empty list instead of failing.
func NewFavoritesUseCase(store storage.Storage) UseCase {
	uc := &favoritesUseCase{store: store}

	data, err := store.Read(StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// First run.
	case err != nil:
		log.Warnw("failed to load favorites, starting empty", "error", err)
	default:
		if err := json.Unmarshal(data, &uc.cities); err != nil {
			log.Warnw("corrupt favorites value, starting empty", "error", err)
			uc.cities = nil
		}
	}

	return uc
}

// List returns the favorites in insertion order
func (uc *favoritesUseCase) List() []entity.CitySearchResult {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	listed := make([]entity.CitySearchResult, len(uc.cities))
	copy(listed, uc.cities)
	return listed
}

// Add appends a city unless its exact coordinates are already present.
func (uc *favoritesUseCase) Add(city entity.CitySearchResult) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.indexOfLocked(city) >= 0 {
		return
	}
	uc.cities = append(uc.cities, city)
	uc.persistLocked()
}

// Remove drops a city by exact coordinates. Removing a non-member is a no-op.
func (uc *favoritesUseCase) Remove(city entity.CitySearchResult) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOfLocked(city)
	if idx < 0 {
		return
	}
	uc.cities = append(uc.cities[:idx], uc.cities[idx+1:]...)
	uc.persistLocked()
}

// Toggle adds or removes the city and returns the resulting membership.
func (uc *favoritesUseCase) Toggle(city entity.CitySearchResult) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOfLocked(city)
	if idx >= 0 {
		uc.cities = append(uc.cities[:idx], uc.cities[idx+1:]...)
		uc.persistLocked()
		return false
	}
	uc.cities = append(uc.cities, city)
	uc.persistLocked()
	return true
}

// IsFavorite reports membership by exact coordinates.
func (uc *favoritesUseCase) IsFavorite(city entity.CitySearchResult) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.indexOfLocked(city) >= 0
}

// Health reports whether the persisted representation is reachable.
func (uc *favoritesUseCase) Health() error {
	_, err := uc.store.Read(StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (uc *favoritesUseCase) indexOfLocked(city entity.CitySearchResult) int {
	for i, favorite := range uc.cities {
		if favorite.SameLocation(city) {
			return i
		}
	}
	return -1
}

// persistLocked writes the whole resulting set synchronously. Persistence
// failures are logged and absorbed; the in-memory list stays authoritative
// for the session.
func (uc *favoritesUseCase) persistLocked() {
	data, err := json.Marshal(uc.cities)
	if err != nil {
		log.Errorw("failed to serialize favorites", "error", err)
		return
	}
	if err := uc.store.Write(StorageKey, data); err != nil {
		log.Errorw("failed to persist favorites", "error", err)
	}
}
