package favorites

import "clima-api/internal/domain/entity"

type UseCase interface {
	// List returns the favorites in insertion order
	List() []entity.CitySearchResult

	// Add appends a city. Adding an already-favorited coordinate pair is a
	// no-op and does not reorder the list.
	Add(city entity.CitySearchResult)

	// Remove drops a city by exact coordinates. Removing a non-member is a no-op.
	Remove(city entity.CitySearchResult)

	// Toggle adds or removes the city and returns the resulting membership.
	Toggle(city entity.CitySearchResult) bool

	// IsFavorite reports membership by exact coordinates.
	IsFavorite(city entity.CitySearchResult) bool

	// Health reports whether the persisted representation is reachable.
	Health() error
}
