package api

import (
	"context"
	"errors"

	"clima-api/internal/domain/model/external"
)

// Classified gateway failures. The use case layer maps these onto the
// user-facing error taxonomy.
var (
	// ErrUnauthorized covers HTTP 401, almost always a misconfigured credential.
	ErrUnauthorized = errors.New("weather api: unauthorized")
	// ErrNotFound covers HTTP 404 on named-city lookups.
	ErrNotFound = errors.New("weather api: not found")
	// ErrNetwork covers transport-level failures with no HTTP response.
	ErrNetwork = errors.New("weather api: network failure")
	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("weather api: temporarily unavailable")
)

// WeatherGateway defines the interface for the vendor weather API calls
type WeatherGateway interface {
	// CurrentByCoordinates gets the current conditions payload for a coordinate pair
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)

	// CurrentByCity gets the current conditions payload resolved by city name
	CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// Forecast gets the 3-hour interval forecast feed for a coordinate pair
	Forecast(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error)

	// AirPollution gets the air quality payload for a coordinate pair
	AirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error)

	// SearchCities returns up to limit geocoding candidates for a query
	SearchCities(ctx context.Context, query string, limit int) ([]external.GeoCityDTO, error)
}
