package weather

import (
	"errors"
	"fmt"
	"math"
	"time"

	"clima-api/internal/domain/entity"
	"clima-api/internal/domain/model/external"
	"clima-api/pkg/msg"
	"clima-api/pkg/util/formatutils"
)

// ErrMalformedPayload is returned when a vendor payload misses required
// nested fields. Callers collapse it into the generic error kind.
var ErrMalformedPayload = errors.New("weather: malformed vendor payload")

const (
	hourlyWindowSamples = 8
	maxDailyForecasts   = 5
)

// TransformCurrent normalizes a raw current conditions payload: temperatures
// rounded to integers, wind converted from m/s to km/h, visibility from
// meters to km with one decimal, and the day flag derived from the half-open
// interval sunrise <= dt < sunset. Descriptions are capitalized and the
// theme, icon URL and display strings are rendered here so clients show the
// payload as-is.
func TransformCurrent(raw *external.CurrentWeatherResponse) (*entity.CurrentConditions, error) {
	if raw == nil || len(raw.Weather) == 0 {
		return nil, ErrMalformedPayload
	}

	primary := raw.Weather[0]
	condition := entity.MapCondition(primary.Main)
	isDay := raw.Sys.Sunrise <= raw.Dt && raw.Dt < raw.Sys.Sunset
	visibility := math.Round(float64(raw.Visibility)/100) / 10

	return &entity.CurrentConditions{
		City:        raw.Name,
		Country:     raw.Sys.Country,
		Temperature: roundInt(raw.Main.Temp),
		FeelsLike:   roundInt(raw.Main.FeelsLike),
		TempMin:     roundInt(raw.Main.TempMin),
		TempMax:     roundInt(raw.Main.TempMax),
		Humidity:    raw.Main.Humidity,
		WindSpeed:   roundInt(raw.Wind.Speed * 3.6),
		Description: formatutils.CapitalizeWords(primary.Description),
		Icon:        primary.Icon,
		IconURL:     entity.IconURL(primary.Icon, "4x"),
		Condition:   condition,
		Theme:       entity.ThemeFor(condition, isDay),
		IsDay:       isDay,
		Visibility:  visibility,
		Pressure:    raw.Main.Pressure,
		Sunrise:     raw.Sys.Sunrise,
		Sunset:      raw.Sys.Sunset,
		Timezone:    raw.Timezone,
		ObservedAt:  raw.Dt,
		Display: entity.CurrentDisplay{
			Temperature: formatutils.FormatTemperature(raw.Main.Temp),
			FeelsLike:   formatutils.FormatTemperature(raw.Main.FeelsLike),
			TempRange:   formatutils.FormatTempRange(raw.Main.TempMin, raw.Main.TempMax),
			WindSpeed:   formatutils.FormatWindSpeed(raw.Wind.Speed * 3.6),
			Humidity:    formatutils.FormatHumidity(raw.Main.Humidity),
			Visibility:  formatutils.FormatVisibility(visibility),
			Pressure:    formatutils.FormatPressure(raw.Main.Pressure),
		},
	}, nil
}

// TransformForecast builds the 24h hourly window and the 5-day daily
// aggregate from the raw 3-hour feed.
func TransformForecast(raw *external.ForecastResponse) (*entity.Forecast, error) {
	return transformForecastAt(raw, time.Now().UTC())
}

func transformForecastAt(raw *external.ForecastResponse, now time.Time) (*entity.Forecast, error) {
	if raw == nil || len(raw.List) == 0 {
		return nil, ErrMalformedPayload
	}

	hourly, err := transformHourly(raw.List)
	if err != nil {
		return nil, err
	}

	daily, err := transformDaily(raw.List, now)
	if err != nil {
		return nil, err
	}

	return &entity.Forecast{Daily: daily, Hourly: hourly}, nil
}

// transformHourly passes through the first samples of the feed (24h at 3h
// spacing) preserving order. No aggregation happens here.
func transformHourly(samples []external.ForecastSampleDTO) ([]entity.HourlyForecast, error) {
	limit := len(samples)
	if limit > hourlyWindowSamples {
		limit = hourlyWindowSamples
	}

	hourly := make([]entity.HourlyForecast, 0, limit)
	for _, sample := range samples[:limit] {
		if len(sample.Weather) == 0 {
			return nil, ErrMalformedPayload
		}
		hourly = append(hourly, entity.HourlyForecast{
			Timestamp:   sample.Dt,
			Time:        sampleTime(sample),
			Temp:        roundInt(sample.Main.Temp),
			Icon:        sample.Weather[0].Icon,
			IconURL:     entity.IconURL(sample.Weather[0].Icon, "2x"),
			Description: formatutils.CapitalizeWords(sample.Weather[0].Description),
			Condition:   entity.MapCondition(sample.Weather[0].Main),
		})
	}
	return hourly, nil
}

// dayBucket collects the samples of one calendar date.
type dayBucket struct {
	date    time.Time
	samples []external.ForecastSampleDTO
}

// transformDaily groups samples by UTC calendar date, skips today's bucket
// and aggregates the first five remaining dates. Bucketing truncates each
// instant at the UTC day boundary on purpose, ignoring the location offset;
// the dashboard has always behaved this way and the buckets must keep
// matching it.
func transformDaily(samples []external.ForecastSampleDTO, now time.Time) ([]entity.DailyForecast, error) {
	buckets := make(map[string]*dayBucket)
	order := make([]string, 0, 8)

	for _, sample := range samples {
		if len(sample.Weather) == 0 {
			return nil, ErrMalformedPayload
		}
		date := time.Unix(sample.Dt, 0).UTC()
		key := date.Format("2006-01-02")

		bucket, ok := buckets[key]
		if !ok {
			bucket = &dayBucket{date: date}
			buckets[key] = bucket
			// The feed arrives chronologically, so first-seen order is
			// chronological bucket order.
			order = append(order, key)
		}
		bucket.samples = append(bucket.samples, sample)
	}

	today := now.Format("2006-01-02")
	daily := make([]entity.DailyForecast, 0, maxDailyForecasts)

	for _, key := range order {
		if key == today || len(daily) >= maxDailyForecasts {
			continue
		}
		daily = append(daily, aggregateBucket(key, buckets[key]))
	}

	return daily, nil
}

// aggregateBucket reduces one day's samples to min/max temperatures and a
// representative middle sample. The middle index approximates midday so the
// icon is not a pre-dawn or late-night one.
func aggregateBucket(key string, bucket *dayBucket) entity.DailyForecast {
	tempMin := bucket.samples[0].Main.Temp
	tempMax := bucket.samples[0].Main.Temp
	for _, sample := range bucket.samples[1:] {
		if sample.Main.Temp < tempMin {
			tempMin = sample.Main.Temp
		}
		if sample.Main.Temp > tempMax {
			tempMax = sample.Main.Temp
		}
	}

	representative := bucket.samples[len(bucket.samples)/2]

	return entity.DailyForecast{
		Date:        bucket.date,
		DateString:  key,
		ShortDate:   formatutils.FormatShortDate(bucket.date),
		DayName:     formatutils.DayName(bucket.date),
		TempMin:     roundInt(tempMin),
		TempMax:     roundInt(tempMax),
		Icon:        representative.Weather[0].Icon,
		IconURL:     entity.IconURL(representative.Weather[0].Icon, "2x"),
		Description: formatutils.CapitalizeWords(representative.Weather[0].Description),
		Condition:   entity.MapCondition(representative.Weather[0].Main),
	}
}

// TransformAirQuality normalizes a raw air pollution payload into the AQI
// snapshot with its quality label and dominant pollutant.
func TransformAirQuality(raw *external.AirPollutionResponse) (*entity.AirQuality, error) {
	if raw == nil || len(raw.List) == 0 {
		return nil, ErrMalformedPayload
	}

	sample := raw.List[0]
	aqi := entity.AQILevel(sample.Main.AQI)
	if !aqi.Valid() {
		return nil, ErrMalformedPayload
	}

	components := entity.AirQualityComponents{
		CO:   sample.Components.CO,
		NO:   sample.Components.NO,
		NO2:  sample.Components.NO2,
		O3:   sample.Components.O3,
		SO2:  sample.Components.SO2,
		PM25: sample.Components.PM25,
		PM10: sample.Components.PM10,
		NH3:  sample.Components.NH3,
	}

	return &entity.AirQuality{
		AQI:           aqi,
		Quality:       aqi.Quality(),
		HealthMessage: msg.GetMessage(fmt.Sprintf("aqi.health.%d", aqi)),
		Components:    components,
		MainPollutant: entity.MainPollutant(components),
	}, nil
}

// sampleTime renders the local display time of a sample. The feed's dt_txt
// ("2026-01-02 15:00:00") is authoritative; the epoch is only a fallback.
func sampleTime(sample external.ForecastSampleDTO) string {
	if len(sample.DtTxt) >= 16 {
		return sample.DtTxt[11:16]
	}
	return time.Unix(sample.Dt, 0).UTC().Format("15:04")
}

// roundInt rounds half away from zero, matching the dashboard's rounding.
func roundInt(value float64) int {
	return int(math.Round(value))
}
