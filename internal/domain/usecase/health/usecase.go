package health

import "clima-api/internal/domain/model"

type UseCase interface {
	// CheckHealth returns the health of the application and its components
	CheckHealth() model.HealthResponse
}
