package weather

import (
	"errors"
	"testing"
	"time"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/model/external"
)

func forecastSample(t *testing.T, dtTxt string, temp float64, main string) external.ForecastSampleDTO {
	t.Helper()
	instant, err := time.Parse("2006-01-02 15:04:05", dtTxt)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", dtTxt, err)
	}
	return external.ForecastSampleDTO{
		Dt:      instant.UTC().Unix(),
		DtTxt:   dtTxt,
		Main:    external.MainDTO{Temp: temp},
		Weather: []external.WeatherConditionDTO{{Main: main, Description: "céu limpo", Icon: "01d"}},
	}
}

func TestTransformCurrent(t *testing.T) {
	raw := &external.CurrentWeatherResponse{
		Name: "São Paulo",
		Sys:  external.SysDTO{Country: "BR", Sunrise: 1000, Sunset: 2000},
		Dt:   1500,
		Main: external.MainDTO{
			Temp:      18.4,
			FeelsLike: 17.9,
			TempMin:   16.5,
			TempMax:   21.49,
			Humidity:  80,
			Pressure:  1015,
		},
		Wind:       external.WindDTO{Speed: 5.5},
		Visibility: 10000,
		Timezone:   -10800,
		Weather: []external.WeatherConditionDTO{
			{Main: "Rain", Description: "chuva leve", Icon: "10d"},
		},
	}

	got, err := TransformCurrent(raw)
	if err != nil {
		t.Fatalf("TransformCurrent() error = %v", err)
	}

	if got.City != "São Paulo" || got.Country != "BR" {
		t.Errorf("city = %q/%q", got.City, got.Country)
	}
	if got.Temperature != 18 {
		t.Errorf("Temperature = %d, want 18", got.Temperature)
	}
	if got.FeelsLike != 18 {
		t.Errorf("FeelsLike = %d, want 18", got.FeelsLike)
	}
	if got.TempMin != 17 || got.TempMax != 21 {
		t.Errorf("TempMin/TempMax = %d/%d, want 17/21", got.TempMin, got.TempMax)
	}
	// 5.5 m/s is 19.8 km/h, rounded to 20.
	if got.WindSpeed != 20 {
		t.Errorf("WindSpeed = %d, want 20", got.WindSpeed)
	}
	if got.Visibility != 10.0 {
		t.Errorf("Visibility = %v, want 10.0", got.Visibility)
	}
	if got.Condition != entity.ConditionRain {
		t.Errorf("Condition = %q, want rain", got.Condition)
	}
	if !got.IsDay {
		t.Error("dt inside [sunrise, sunset) should be day")
	}
	if got.ObservedAt != 1500 || got.Timezone != -10800 {
		t.Errorf("ObservedAt/Timezone = %d/%d", got.ObservedAt, got.Timezone)
	}
	if got.Description != "Chuva Leve" {
		t.Errorf("Description = %q, want capitalized words", got.Description)
	}
	if got.Theme != entity.ThemeRainy {
		t.Errorf("Theme = %q, want %q", got.Theme, entity.ThemeRainy)
	}
	if got.IconURL != "https://openweathermap.org/img/wn/10d@4x.png" {
		t.Errorf("IconURL = %q", got.IconURL)
	}
}

func TestTransformCurrentDisplayStrings(t *testing.T) {
	raw := &external.CurrentWeatherResponse{
		Main: external.MainDTO{
			Temp:      18.4,
			FeelsLike: 17.9,
			TempMin:   16.5,
			TempMax:   21.49,
			Humidity:  80,
			Pressure:  1015,
		},
		Wind:       external.WindDTO{Speed: 5.5},
		Visibility: 10000,
		Weather:    []external.WeatherConditionDTO{{Main: "Clear", Icon: "01d"}},
	}

	got, err := TransformCurrent(raw)
	if err != nil {
		t.Fatalf("TransformCurrent() error = %v", err)
	}

	want := entity.CurrentDisplay{
		Temperature: "18°",
		FeelsLike:   "18°",
		TempRange:   "17° / 21°",
		WindSpeed:   "20 km/h",
		Humidity:    "80%",
		Visibility:  "10.0 km",
		Pressure:    "1015 hPa",
	}
	if got.Display != want {
		t.Errorf("Display = %+v, want %+v", got.Display, want)
	}
}

func TestTransformCurrentNightTheme(t *testing.T) {
	tests := map[string]struct {
		main string
		want entity.WeatherTheme
	}{
		"clear at night":  {main: "Clear", want: entity.ThemeClearNight},
		"clouds at night": {main: "Clouds", want: entity.ThemeClearNight},
		"storm at night":  {main: "Thunderstorm", want: entity.ThemeStorm},
		"snow at night":   {main: "Snow", want: entity.ThemeSnow},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			raw := &external.CurrentWeatherResponse{
				Dt:      2500,
				Sys:     external.SysDTO{Sunrise: 1000, Sunset: 2000},
				Weather: []external.WeatherConditionDTO{{Main: tc.main, Icon: "01n"}},
			}
			got, err := TransformCurrent(raw)
			if err != nil {
				t.Fatalf("TransformCurrent() error = %v", err)
			}
			if got.IsDay {
				t.Fatal("dt past sunset should be night")
			}
			if got.Theme != tc.want {
				t.Errorf("Theme = %q, want %q", got.Theme, tc.want)
			}
		})
	}
}

func TestTransformCurrentWindConversion(t *testing.T) {
	raw := &external.CurrentWeatherResponse{
		Wind:    external.WindDTO{Speed: 10},
		Weather: []external.WeatherConditionDTO{{Main: "Clear"}},
	}

	got, err := TransformCurrent(raw)
	if err != nil {
		t.Fatalf("TransformCurrent() error = %v", err)
	}
	if got.WindSpeed != 36 {
		t.Errorf("10 m/s should convert to 36 km/h, got %d", got.WindSpeed)
	}
}

func TestTransformCurrentDayBoundaries(t *testing.T) {
	tests := map[string]struct {
		dt   int64
		want bool
	}{
		"at sunrise":     {dt: 1000, want: true},
		"before sunrise": {dt: 999, want: false},
		"at sunset":      {dt: 2000, want: false},
		"midday":         {dt: 1500, want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			raw := &external.CurrentWeatherResponse{
				Dt:      tc.dt,
				Sys:     external.SysDTO{Sunrise: 1000, Sunset: 2000},
				Weather: []external.WeatherConditionDTO{{Main: "Clear"}},
			}
			got, err := TransformCurrent(raw)
			if err != nil {
				t.Fatalf("TransformCurrent() error = %v", err)
			}
			if got.IsDay != tc.want {
				t.Errorf("IsDay = %v, want %v", got.IsDay, tc.want)
			}
		})
	}
}

func TestTransformCurrentMalformed(t *testing.T) {
	if _, err := TransformCurrent(nil); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("nil payload: err = %v, want ErrMalformedPayload", err)
	}
	if _, err := TransformCurrent(&external.CurrentWeatherResponse{}); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("empty weather array: err = %v, want ErrMalformedPayload", err)
	}
}

func TestTransformForecastHourlyWindow(t *testing.T) {
	raw := &external.ForecastResponse{}
	for hour := 0; hour < 30; hour += 3 {
		day := 5 + hour/24
		raw.List = append(raw.List, forecastSample(t,
			time.Date(2026, 1, day, hour%24, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05"),
			20, "Clear"))
	}

	now := time.Date(2026, 1, 5, 1, 0, 0, 0, time.UTC)
	got, err := transformForecastAt(raw, now)
	if err != nil {
		t.Fatalf("transformForecastAt() error = %v", err)
	}

	if len(got.Hourly) != 8 {
		t.Fatalf("hourly window = %d samples, want 8", len(got.Hourly))
	}
	if got.Hourly[0].Time != "00:00" {
		t.Errorf("first sample time = %q, want 00:00", got.Hourly[0].Time)
	}
	if got.Hourly[7].Time != "21:00" {
		t.Errorf("last sample time = %q, want 21:00", got.Hourly[7].Time)
	}
	for i := 1; i < len(got.Hourly); i++ {
		if got.Hourly[i].Timestamp <= got.Hourly[i-1].Timestamp {
			t.Fatal("hourly samples must preserve feed order")
		}
	}
	if got.Hourly[0].IconURL != "https://openweathermap.org/img/wn/01d@2x.png" {
		t.Errorf("hourly IconURL = %q", got.Hourly[0].IconURL)
	}
	if got.Hourly[0].Description != "Céu Limpo" {
		t.Errorf("hourly Description = %q, want capitalized words", got.Hourly[0].Description)
	}
}

func TestTransformForecastDailySkipsTodayAndCaps(t *testing.T) {
	raw := &external.ForecastResponse{}
	// Today plus six full future days, three samples each.
	for day := 5; day <= 11; day++ {
		for _, hour := range []int{3, 12, 21} {
			raw.List = append(raw.List, forecastSample(t,
				time.Date(2026, 1, day, hour, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05"),
				float64(day), "Clouds"))
		}
	}

	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	got, err := transformForecastAt(raw, now)
	if err != nil {
		t.Fatalf("transformForecastAt() error = %v", err)
	}

	if len(got.Daily) != 5 {
		t.Fatalf("daily forecasts = %d, want 5", len(got.Daily))
	}
	for _, day := range got.Daily {
		if day.DateString == "2026-01-05" {
			t.Error("today must not appear in the daily list")
		}
	}
	for i := 1; i < len(got.Daily); i++ {
		if got.Daily[i].DateString <= got.Daily[i-1].DateString {
			t.Fatal("daily forecasts must be in ascending date order")
		}
	}
	if got.Daily[0].DateString != "2026-01-06" {
		t.Errorf("first daily entry = %q, want 2026-01-06", got.Daily[0].DateString)
	}
}

func TestTransformForecastBucketAggregation(t *testing.T) {
	raw := &external.ForecastResponse{
		List: []external.ForecastSampleDTO{
			forecastSample(t, "2026-01-06 06:00:00", 18, "Clear"),
			forecastSample(t, "2026-01-06 12:00:00", 22, "Rain"),
			forecastSample(t, "2026-01-06 18:00:00", 26, "Clouds"),
		},
	}

	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	got, err := transformForecastAt(raw, now)
	if err != nil {
		t.Fatalf("transformForecastAt() error = %v", err)
	}
	if len(got.Daily) != 1 {
		t.Fatalf("daily forecasts = %d, want 1", len(got.Daily))
	}

	day := got.Daily[0]
	if day.TempMin != 18 || day.TempMax != 26 {
		t.Errorf("TempMin/TempMax = %d/%d, want 18/26", day.TempMin, day.TempMax)
	}
	// Middle sample (12:00) supplies icon and condition.
	if day.Condition != entity.ConditionRain {
		t.Errorf("Condition = %q, want rain from the middle sample", day.Condition)
	}
	if day.ShortDate != "06/01" {
		t.Errorf("ShortDate = %q, want 06/01", day.ShortDate)
	}
	if day.DayName != "Ter" {
		t.Errorf("DayName = %q, want Ter", day.DayName)
	}
	if day.IconURL != "https://openweathermap.org/img/wn/01d@2x.png" {
		t.Errorf("IconURL = %q", day.IconURL)
	}
	if day.Description != "Céu Limpo" {
		t.Errorf("Description = %q, want capitalized words", day.Description)
	}
}

func TestTransformForecastMalformed(t *testing.T) {
	if _, err := TransformForecast(nil); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("nil payload: err = %v, want ErrMalformedPayload", err)
	}
	if _, err := TransformForecast(&external.ForecastResponse{}); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("empty list: err = %v, want ErrMalformedPayload", err)
	}

	raw := &external.ForecastResponse{
		List: []external.ForecastSampleDTO{{Dt: 100, DtTxt: "2026-01-06 06:00:00"}},
	}
	if _, err := TransformForecast(raw); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("sample without weather: err = %v, want ErrMalformedPayload", err)
	}
}

func TestTransformAirQuality(t *testing.T) {
	raw := &external.AirPollutionResponse{
		List: []external.AirPollutionSampleDTO{{
			Components: external.AirComponentsDTO{PM25: 12, PM10: 30, O3: 25, CO: 200},
		}},
	}
	raw.List[0].Main.AQI = 2

	got, err := TransformAirQuality(raw)
	if err != nil {
		t.Fatalf("TransformAirQuality() error = %v", err)
	}
	if got.AQI != entity.AQIFair {
		t.Errorf("AQI = %d, want 2", got.AQI)
	}
	if got.Quality != "Fair" {
		t.Errorf("Quality = %q, want Fair", got.Quality)
	}
	if got.MainPollutant != "CO" {
		t.Errorf("MainPollutant = %q, want CO", got.MainPollutant)
	}
	if got.Components.PM25 != 12 {
		t.Errorf("Components.PM25 = %v, want 12", got.Components.PM25)
	}
}

func TestTransformAirQualityMalformed(t *testing.T) {
	if _, err := TransformAirQuality(nil); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("nil payload: err = %v, want ErrMalformedPayload", err)
	}
	if _, err := TransformAirQuality(&external.AirPollutionResponse{}); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("empty list: err = %v, want ErrMalformedPayload", err)
	}

	raw := &external.AirPollutionResponse{List: []external.AirPollutionSampleDTO{{}}}
	raw.List[0].Main.AQI = 9
	if _, err := TransformAirQuality(raw); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("out-of-range AQI: err = %v, want ErrMalformedPayload", err)
	}
}
