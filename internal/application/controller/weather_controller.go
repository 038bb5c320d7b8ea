package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"clima-api/internal/domain/model"
	"clima-api/internal/domain/usecase/weather"
	"clima-api/pkg/msg"
	"clima-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrentWeather)
	controller.api.GET("/weather/forecast", controller.GetForecast)
	controller.api.GET("/weather/air-quality", controller.GetAirQuality)
	controller.api.GET("/cities/search", controller.SearchCities)
	controller.api.GET("/location", controller.Locate)
}

// GetCurrentWeather godoc
// @Summary Get current conditions
// @Description Current conditions by coordinates (lat, lon) or by city name (city)
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param city query string false "City name, used when coordinates are absent"
// @Success 200 {object} entity.CurrentConditions "Normalized current conditions"
// @Failure 400 {object} model.ErrorResponse "Missing parameters"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	if city := c.QueryParam("city"); city != "" {
		current, err := controller.useCase.CurrentByCity(c.Request().Context(), city)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, current)
	}

	lat, lon, ok := coordinatesParams(c)
	if !ok {
		return badRequest(c, "lat and lon (or city) are required")
	}

	current, err := controller.useCase.CurrentByCoordinates(c.Request().Context(), lat, lon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, current)
}

// GetForecast godoc
// @Summary Get forecast
// @Description Five daily aggregates plus the next-24h hourly window
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} entity.Forecast "Daily and hourly forecast"
// @Failure 400 {object} model.ErrorResponse "Missing parameters"
// @Router /weather/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	lat, lon, ok := coordinatesParams(c)
	if !ok {
		return badRequest(c, "lat and lon are required")
	}

	forecast, err := controller.useCase.Forecast(c.Request().Context(), lat, lon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, forecast)
}

// GetAirQuality godoc
// @Summary Get air quality
// @Description AQI level, pollutant concentrations and the dominant pollutant
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} entity.AirQuality "Air quality snapshot"
// @Failure 400 {object} model.ErrorResponse "Missing parameters"
// @Router /weather/air-quality [get]
func (controller *WeatherController) GetAirQuality(c echo.Context) error {
	lat, lon, ok := coordinatesParams(c)
	if !ok {
		return badRequest(c, "lat and lon are required")
	}

	airQuality, err := controller.useCase.AirQuality(c.Request().Context(), lat, lon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, airQuality)
}

// SearchCities godoc
// @Summary Search cities
// @Description Geocoding autocomplete. Always returns a list; failures degrade to an empty one.
// @Tags weather
// @Produce json
// @Param q query string true "City name prefix"
// @Param limit query int false "Maximum candidates" default(5)
// @Success 200 {array} entity.CitySearchResult "City candidates"
// @Router /cities/search [get]
func (controller *WeatherController) SearchCities(c echo.Context) error {
	query := c.QueryParam("q")
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 5)

	return c.JSON(http.StatusOK, controller.useCase.SearchCities(c.Request().Context(), query, limit))
}

// Locate godoc
// @Summary Locate the caller
// @Description Resolve the caller position from its IP, with a hard timeout
// @Tags weather
// @Produce json
// @Success 200 {object} entity.Coordinates "Resolved coordinates"
// @Failure 504 {object} model.ErrorResponse "Geolocation failed or timed out"
// @Router /location [get]
func (controller *WeatherController) Locate(c echo.Context) error {
	coords, err := controller.useCase.Locate(c.Request().Context(), c.RealIP())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, coords)
}

// coordinatesParams parses lat/lon query params; ok is false when either is
// absent or not numeric, so no downstream call is made at all.
func coordinatesParams(c echo.Context) (float64, float64, bool) {
	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: message, Kind: model.ErrKindGeneric})
}

// writeError maps the error taxonomy onto HTTP statuses with the fixed
// user-facing message as the body.
func writeError(c echo.Context, err error) error {
	var weatherErr *model.WeatherError
	if !errors.As(err, &weatherErr) {
		weatherErr = model.NewWeatherError(model.ErrKindGeneric, msg.GetMessage("error.generic"))
	}

	status := http.StatusInternalServerError
	switch weatherErr.Kind {
	case model.ErrKindNotFound:
		status = http.StatusNotFound
	case model.ErrKindServiceUnavailable:
		status = http.StatusServiceUnavailable
	case model.ErrKindNetwork:
		status = http.StatusBadGateway
	case model.ErrKindGeolocation:
		status = http.StatusGatewayTimeout
	}

	return c.JSON(status, model.ErrorResponse{Error: weatherErr.Message, Kind: weatherErr.Kind})
}
