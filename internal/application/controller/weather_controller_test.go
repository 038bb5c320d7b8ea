package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"clima-api/internal/application/middleware"
	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/model"
)

// fakeWeatherUseCase returns canned values; err, when set, wins.
type fakeWeatherUseCase struct {
	err     *model.WeatherError
	current *entity.CurrentConditions
	cities  []entity.CitySearchResult
}

func (f *fakeWeatherUseCase) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*entity.CurrentConditions, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.current, nil
}

func (f *fakeWeatherUseCase) CurrentByCity(ctx context.Context, city string) (*entity.CurrentConditions, error) {
	return f.CurrentByCoordinates(ctx, 0, 0)
}

func (f *fakeWeatherUseCase) Forecast(ctx context.Context, lat, lon float64) (*entity.Forecast, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Forecast{Daily: []entity.DailyForecast{}, Hourly: []entity.HourlyForecast{}}, nil
}

func (f *fakeWeatherUseCase) AirQuality(ctx context.Context, lat, lon float64) (*entity.AirQuality, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.AirQuality{AQI: entity.AQIGood, Quality: "Good", MainPollutant: "PM2.5"}, nil
}

func (f *fakeWeatherUseCase) SearchCities(ctx context.Context, query string, limit int) []entity.CitySearchResult {
	if f.cities == nil {
		return []entity.CitySearchResult{}
	}
	return f.cities
}

func (f *fakeWeatherUseCase) Locate(ctx context.Context, clientIP string) (*entity.Coordinates, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Coordinates{Latitude: -8.05, Longitude: -34.9}, nil
}

func newWeatherServer(uc *fakeWeatherUseCase) *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()
	NewWeatherController(e.Group(""), uc).InitWeatherRoutes()
	return e
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetCurrentWeatherByCoordinates(t *testing.T) {
	uc := &fakeWeatherUseCase{current: &entity.CurrentConditions{City: "Recife", Temperature: 28}}
	rec := doRequest(newWeatherServer(uc), http.MethodGet, "/weather/current?lat=-8.05&lon=-34.9")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body entity.CurrentConditions
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.City != "Recife" || body.Temperature != 28 {
		t.Errorf("body = %+v", body)
	}
}

func TestGetCurrentWeatherMissingParams(t *testing.T) {
	rec := doRequest(newWeatherServer(&fakeWeatherUseCase{}), http.MethodGet, "/weather/current")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestErrorKindStatusMapping(t *testing.T) {
	tests := map[string]struct {
		kind       model.ErrorKind
		wantStatus int
	}{
		"not found":           {kind: model.ErrKindNotFound, wantStatus: http.StatusNotFound},
		"service unavailable": {kind: model.ErrKindServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
		"network":             {kind: model.ErrKindNetwork, wantStatus: http.StatusBadGateway},
		"geolocation":         {kind: model.ErrKindGeolocation, wantStatus: http.StatusGatewayTimeout},
		"generic":             {kind: model.ErrKindGeneric, wantStatus: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uc := &fakeWeatherUseCase{err: model.NewWeatherError(tc.kind, "mensagem fixa")}
			rec := doRequest(newWeatherServer(uc), http.MethodGet, "/weather/current?city=Atlantis")

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body model.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Kind != tc.kind || body.Error != "mensagem fixa" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestSearchCitiesAlwaysReturnsAList(t *testing.T) {
	rec := doRequest(newWeatherServer(&fakeWeatherUseCase{}), http.MethodGet, "/cities/search?q=lo")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body []entity.CitySearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body %q is not a JSON array: %v", rec.Body.String(), err)
	}
	if body == nil {
		t.Error("search must encode an empty list, not null")
	}
}

func TestLocate(t *testing.T) {
	rec := doRequest(newWeatherServer(&fakeWeatherUseCase{}), http.MethodGet, "/location")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body entity.Coordinates
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Latitude != -8.05 {
		t.Errorf("body = %+v", body)
	}
}

func TestForecastRequiresCoordinates(t *testing.T) {
	rec := doRequest(newWeatherServer(&fakeWeatherUseCase{}), http.MethodGet, "/weather/forecast?lat=abc&lon=1")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a non-numeric coordinate", rec.Code)
	}
}
