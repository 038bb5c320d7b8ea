package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"clima-api/internal/domain/model/external"
	"clima-api/pkg/http"
	"clima-api/pkg/log"
)

// GatewayOptions configures the vendor gateway resilience layer.
type GatewayOptions struct {
	ClientOptions http.ClientOptions
	// RequestsPerSecond throttles outbound vendor calls (free tiers are
	// rate limited). Zero disables throttling.
	RequestsPerSecond float64
	Burst             int
}

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeather-shaped vendor API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// NewWeatherGateway creates a new WeatherGateway. The static credential and
// the metric/pt_br presentation parameters ride on every request as default
// query params.
func NewWeatherGateway(baseURL, apiKey string, opts GatewayOptions) WeatherGateway {
	clientOptions := opts.ClientOptions
	if clientOptions.DefaultQueryParams == nil {
		clientOptions.DefaultQueryParams = map[string]string{}
	}
	clientOptions.DefaultQueryParams["appid"] = apiKey

	httpClient := http.NewHttpClient(baseURL, clientOptions)

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweather",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
		limiter:    limiter,
		breaker:    breaker,
	}
}

// CurrentByCoordinates gets the current conditions payload for a coordinate pair
func (w *weatherGatewayImpl) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	var resp external.CurrentWeatherResponse
	err := w.execute(ctx, &resp, func() *http.Request {
		return w.httpClient.Request().
			WithMethod(http.GET).
			WithPath("/data/2.5/weather").
			WithQueryParams(map[string]string{
				"lat":   formatCoord(lat),
				"lon":   formatCoord(lon),
				"units": "metric",
				"lang":  "pt_br",
			}).
			WithBackoff(http.NewBackoffConfig(2))
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentByCity gets the current conditions payload resolved by city name
func (w *weatherGatewayImpl) CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	var resp external.CurrentWeatherResponse
	err := w.execute(ctx, &resp, func() *http.Request {
		return w.httpClient.Request().
			WithMethod(http.GET).
			WithPath("/data/2.5/weather").
			WithQueryParams(map[string]string{
				"q":     city,
				"units": "metric",
				"lang":  "pt_br",
			}).
			WithBackoff(http.NewBackoffConfig(1))
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Forecast gets the 3-hour interval forecast feed for a coordinate pair
func (w *weatherGatewayImpl) Forecast(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error) {
	var resp external.ForecastResponse
	err := w.execute(ctx, &resp, func() *http.Request {
		return w.httpClient.Request().
			WithMethod(http.GET).
			WithPath("/data/2.5/forecast").
			WithQueryParams(map[string]string{
				"lat":   formatCoord(lat),
				"lon":   formatCoord(lon),
				"units": "metric",
				"lang":  "pt_br",
			}).
			WithBackoff(http.NewBackoffConfig(2))
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AirPollution gets the air quality payload for a coordinate pair
func (w *weatherGatewayImpl) AirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error) {
	var resp external.AirPollutionResponse
	err := w.execute(ctx, &resp, func() *http.Request {
		return w.httpClient.Request().
			WithMethod(http.GET).
			WithPath("/data/2.5/air_pollution").
			WithQueryParams(map[string]string{
				"lat": formatCoord(lat),
				"lon": formatCoord(lon),
			}).
			WithBackoff(http.NewBackoffConfig(2))
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchCities returns up to limit geocoding candidates for a query. Search
// is advisory and never retried; its callers degrade failures to an empty list.
func (w *weatherGatewayImpl) SearchCities(ctx context.Context, query string, limit int) ([]external.GeoCityDTO, error) {
	var resp []external.GeoCityDTO
	err := w.execute(ctx, &resp, func() *http.Request {
		return w.httpClient.Request().
			WithMethod(http.GET).
			WithPath("/geo/1.0/direct").
			WithQueryParams(map[string]string{
				"q":     query,
				"limit": strconv.Itoa(limit),
			})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// execute runs one vendor request through the rate limiter and circuit
// breaker, then classifies the outcome.
func (w *weatherGatewayImpl) execute(ctx context.Context, successResp any, build func() *http.Request) error {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	_, execErr := w.breaker.Execute(func() (interface{}, error) {
		_, errResp, status, err := build().
			WithContext(ctx).
			WithSuccessResp(successResp).
			WithErrorResp(&external.APIErrorResponse{}).
			Execute()

		if err == nil {
			return nil, nil
		}
		return nil, classify(status, errResp, err)
	})

	if execErr == nil {
		return nil
	}
	if errors.Is(execErr, gobreaker.ErrOpenState) || errors.Is(execErr, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return execErr
}

// classify maps a failed attempt onto the gateway error set. The vendor error
// body, when present, is logged but never surfaced.
func classify(status int, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		log.Debugw("vendor api error", "status", status, "message", apiErr.Message)
	}

	switch {
	case status == 0:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	case status == 401:
		return ErrUnauthorized
	case status == 404:
		return ErrNotFound
	default:
		return fmt.Errorf("weather api: status %d: %w", status, err)
	}
}

// formatCoord keeps coordinate cache keys and URLs stable across calls.
func formatCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
