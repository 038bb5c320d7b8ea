package health

import (
	"errors"
	"testing"
	"time"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/model"
	"clima-api/pkg/cache"
)

type stubFavorites struct {
	healthErr error
}

func (s *stubFavorites) List() []entity.CitySearchResult          { return nil }
func (s *stubFavorites) Add(city entity.CitySearchResult)         {}
func (s *stubFavorites) Remove(city entity.CitySearchResult)      {}
func (s *stubFavorites) Toggle(city entity.CitySearchResult) bool { return false }
func (s *stubFavorites) IsFavorite(city entity.CitySearchResult) bool {
	return false
}
func (s *stubFavorites) Health() error { return s.healthErr }

func TestCheckHealthUp(t *testing.T) {
	uc := NewHealthUseCase(&stubFavorites{}, cache.New(cache.NewPolicy(time.Minute, time.Hour)))

	resp := uc.CheckHealth()
	if resp.Status != model.StatusUp {
		t.Errorf("Status = %q, want UP", resp.Status)
	}
	if resp.Favorites.Status != model.StatusUp || resp.Cache.Status != model.StatusUp {
		t.Errorf("component statuses = %+v", resp)
	}
	if resp.Cache.Details["entries"] != "0" {
		t.Errorf("cache entries = %q, want 0", resp.Cache.Details["entries"])
	}
}

func TestCheckHealthDownWhenStorageUnreachable(t *testing.T) {
	uc := NewHealthUseCase(&stubFavorites{healthErr: errors.New("disk gone")},
		cache.New(cache.NewPolicy(time.Minute, time.Hour)))

	resp := uc.CheckHealth()
	if resp.Status != model.StatusDown {
		t.Errorf("Status = %q, want DOWN", resp.Status)
	}
	if resp.Favorites.Status != model.StatusDown {
		t.Errorf("favorites status = %q, want DOWN", resp.Favorites.Status)
	}
}
