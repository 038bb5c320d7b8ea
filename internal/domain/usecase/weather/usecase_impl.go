package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/gateway/api"
	"clima-api/internal/domain/gateway/geo"
	"clima-api/internal/domain/model"
	"clima-api/pkg/cache"
	"clima-api/pkg/log"
	"clima-api/pkg/msg"
	"clima-api/pkg/util/numberutils"
)

// Cache names, one per request kind. Policies are registered per name in main.
const (
	CacheCurrent    = "current"
	CacheForecast   = "forecast"
	CacheAirQuality = "air-quality"
	CacheCitySearch = "city-search"
)

const minSearchQueryLength = 2

type weatherUseCase struct {
	apiGateway      api.WeatherGateway
	locator         geo.Locator
	dataCache       *cache.Cache
	locationTimeout time.Duration
}

// NewWeatherUseCase wires the vendor gateway, the geolocation provider and
// the keyed cache into the weather read path.
func NewWeatherUseCase(apiGateway api.WeatherGateway, locator geo.Locator, dataCache *cache.Cache, locationTimeout time.Duration) UseCase {
	return &weatherUseCase{
		apiGateway:      apiGateway,
		locator:         locator,
		dataCache:       dataCache,
		locationTimeout: locationTimeout,
	}
}

// CurrentByCoordinates returns the normalized current conditions for a coordinate pair
func (uc *weatherUseCase) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*entity.CurrentConditions, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	value, err := uc.dataCache.GetOrFetch(ctx, CacheCurrent, coordKey(lat, lon), func(ctx context.Context) (any, error) {
		raw, err := uc.apiGateway.CurrentByCoordinates(ctx, lat, lon)
		if err != nil {
			return nil, mapGatewayError(err)
		}
		current, err := TransformCurrent(raw)
		if err != nil {
			return nil, genericError(err)
		}
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.CurrentConditions), nil
}

// CurrentByCity returns the normalized current conditions resolved by city name
func (uc *weatherUseCase) CurrentByCity(ctx context.Context, city string) (*entity.CurrentConditions, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, genericError(errors.New("empty city name"))
	}

	value, err := uc.dataCache.GetOrFetch(ctx, CacheCurrent, "q::"+strings.ToLower(city), func(ctx context.Context) (any, error) {
		raw, err := uc.apiGateway.CurrentByCity(ctx, city)
		if err != nil {
			return nil, mapGatewayError(err)
		}
		current, err := TransformCurrent(raw)
		if err != nil {
			return nil, genericError(err)
		}
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.CurrentConditions), nil
}

// Forecast returns the daily aggregates and the hourly window for a coordinate pair
func (uc *weatherUseCase) Forecast(ctx context.Context, lat, lon float64) (*entity.Forecast, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	value, err := uc.dataCache.GetOrFetch(ctx, CacheForecast, coordKey(lat, lon), func(ctx context.Context) (any, error) {
		raw, err := uc.apiGateway.Forecast(ctx, lat, lon)
		if err != nil {
			return nil, mapGatewayError(err)
		}
		forecast, err := TransformForecast(raw)
		if err != nil {
			return nil, genericError(err)
		}
		return forecast, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.Forecast), nil
}

// AirQuality returns the air quality snapshot for a coordinate pair
func (uc *weatherUseCase) AirQuality(ctx context.Context, lat, lon float64) (*entity.AirQuality, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	value, err := uc.dataCache.GetOrFetch(ctx, CacheAirQuality, coordKey(lat, lon), func(ctx context.Context) (any, error) {
		raw, err := uc.apiGateway.AirPollution(ctx, lat, lon)
		if err != nil {
			return nil, mapGatewayError(err)
		}
		airQuality, err := TransformAirQuality(raw)
		if err != nil {
			return nil, genericError(err)
		}
		return airQuality, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.AirQuality), nil
}

// SearchCities returns up to limit city candidates. Search is advisory: any
// failure is logged and collapses to an empty list, never an error.
func (uc *weatherUseCase) SearchCities(ctx context.Context, query string, limit int) []entity.CitySearchResult {
	query = strings.TrimSpace(query)
	if len(query) < minSearchQueryLength {
		return []entity.CitySearchResult{}
	}
	if limit <= 0 || limit > 5 {
		limit = 5
	}

	cacheKey := fmt.Sprintf("%s::%d", strings.ToLower(query), limit)
	value, err := uc.dataCache.GetOrFetch(ctx, CacheCitySearch, cacheKey, func(ctx context.Context) (any, error) {
		raw, err := uc.apiGateway.SearchCities(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		results := make([]entity.CitySearchResult, 0, len(raw))
		for _, item := range raw {
			results = append(results, entity.CitySearchResult{
				Name:    item.Name,
				Country: item.Country,
				State:   item.State,
				Lat:     item.Lat,
				Lon:     item.Lon,
			})
		}
		return results, nil
	})
	if err != nil {
		log.Warnw("city search degraded to empty result", "query", query, "error", err)
		return []entity.CitySearchResult{}
	}
	return value.([]entity.CitySearchResult)
}

// Locate resolves the client position from its IP with a hard timeout
func (uc *weatherUseCase) Locate(ctx context.Context, clientIP string) (*entity.Coordinates, error) {
	coords, err := geo.Acquire(ctx, uc.locator, clientIP, uc.locationTimeout)
	if err != nil {
		if errors.Is(err, geo.ErrTimeout) {
			return nil, model.NewWeatherError(model.ErrKindGeolocation, msg.GetMessage("error.geolocation.timeout"))
		}
		return nil, model.NewWeatherError(model.ErrKindGeolocation, msg.GetMessage("error.geolocation.unavailable"))
	}
	return coords, nil
}

// validateCoordinates rejects incomplete or out-of-range parameters before
// any network call happens.
func validateCoordinates(lat, lon float64) error {
	if !numberutils.IsFloat64InRange(lat, -90, 90) || !numberutils.IsFloat64InRange(lon, -180, 180) {
		return genericError(fmt.Errorf("invalid coordinates: %f,%f", lat, lon))
	}
	return nil
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

// mapGatewayError collapses classified gateway failures onto the user-facing
// taxonomy. Raw vendor text never leaves this function.
func mapGatewayError(err error) *model.WeatherError {
	var weatherErr *model.WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrUnavailable):
		return model.NewWeatherError(model.ErrKindServiceUnavailable, msg.GetMessage("error.service-unavailable"))
	case errors.Is(err, api.ErrNotFound):
		return model.NewWeatherError(model.ErrKindNotFound, msg.GetMessage("error.city-not-found"))
	case errors.Is(err, api.ErrNetwork):
		return model.NewWeatherError(model.ErrKindNetwork, msg.GetMessage("error.network"))
	default:
		return genericError(err)
	}
}

// genericError hides transformation and unexpected failures behind the
// generic message; the cause is only logged.
func genericError(err error) *model.WeatherError {
	log.Debugw("collapsing error to generic kind", "error", err)
	return model.NewWeatherError(model.ErrKindGeneric, msg.GetMessage("error.generic"))
}
