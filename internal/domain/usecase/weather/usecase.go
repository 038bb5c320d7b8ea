package weather

import (
	"context"

	"clima-api/internal/domain/entity"
)

type UseCase interface {
	// CurrentByCoordinates returns the normalized current conditions for a coordinate pair
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (*entity.CurrentConditions, error)

	// CurrentByCity returns the normalized current conditions resolved by city name
	CurrentByCity(ctx context.Context, city string) (*entity.CurrentConditions, error)

	// Forecast returns the daily aggregates and the hourly window for a coordinate pair
	Forecast(ctx context.Context, lat, lon float64) (*entity.Forecast, error)

	// AirQuality returns the air quality snapshot for a coordinate pair
	AirQuality(ctx context.Context, lat, lon float64) (*entity.AirQuality, error)

	// SearchCities returns up to limit city candidates. It never fails: any
	// search error degrades to an empty list.
	SearchCities(ctx context.Context, query string, limit int) []entity.CitySearchResult

	// Locate resolves the client position from its IP with a hard timeout
	Locate(ctx context.Context, clientIP string) (*entity.Coordinates, error)
}
