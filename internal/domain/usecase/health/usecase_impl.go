package health

import (
	"strconv"

	"clima-api/internal/domain/model"
	"clima-api/internal/domain/usecase/favorites"
	"clima-api/pkg/cache"
)

type healthUseCase struct {
	favoritesUseCase favorites.UseCase
	dataCache        *cache.Cache
}

func NewHealthUseCase(favoritesUseCase favorites.UseCase, dataCache *cache.Cache) UseCase {
	return &healthUseCase{
		favoritesUseCase: favoritesUseCase,
		dataCache:        dataCache,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	favoritesHealth := model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{}}
	if err := useCase.favoritesUseCase.Health(); err != nil {
		favoritesHealth.Status = model.StatusDown
		favoritesHealth.Details["error"] = err.Error()
	}

	cacheHealth := model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"entries": strconv.Itoa(useCase.dataCache.Len())},
	}

	overallStatus := model.StatusUp
	if favoritesHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Favorites: favoritesHealth,
		Cache:     cacheHealth,
	}
}
