package entity

import "time"

// CurrentConditions is the normalized, display-ready snapshot of the current
// weather at one location. All numeric fields are already rounded and
// converted; consumers must not re-round or re-convert them.
type CurrentConditions struct {
	City        string           `json:"city"`
	Country     string           `json:"country"`
	Temperature int              `json:"temperature"`
	FeelsLike   int              `json:"feelsLike"`
	TempMin     int              `json:"tempMin"`
	TempMax     int              `json:"tempMax"`
	Humidity    int              `json:"humidity"`
	WindSpeed   int              `json:"windSpeed"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	IconURL     string           `json:"iconUrl"`
	Condition   WeatherCondition `json:"condition"`
	Theme       WeatherTheme     `json:"theme"`
	IsDay       bool             `json:"isDay"`
	Visibility  float64          `json:"visibility"`
	Pressure    int              `json:"pressure"`
	Sunrise     int64            `json:"sunrise"`
	Sunset      int64            `json:"sunset"`
	Timezone    int              `json:"timezone"`
	ObservedAt  int64            `json:"dt"`
	Display     CurrentDisplay   `json:"display"`
}

// CurrentDisplay carries the pre-rendered strings the dashboard shows
// verbatim, so clients never reformat units or locale.
type CurrentDisplay struct {
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	TempRange   string `json:"tempRange"`
	WindSpeed   string `json:"windSpeed"`
	Humidity    string `json:"humidity"`
	Visibility  string `json:"visibility"`
	Pressure    string `json:"pressure"`
}

// DailyForecast aggregates the forecast samples of one future calendar day.
type DailyForecast struct {
	Date        time.Time        `json:"date"`
	DateString  string           `json:"dateString"`
	ShortDate   string           `json:"shortDate"`
	DayName     string           `json:"dayName"`
	TempMin     int              `json:"tempMin"`
	TempMax     int              `json:"tempMax"`
	Icon        string           `json:"icon"`
	IconURL     string           `json:"iconUrl"`
	Description string           `json:"description"`
	Condition   WeatherCondition `json:"condition"`
}

// HourlyForecast is one raw 3-hour sample inside the next 24h window.
type HourlyForecast struct {
	Timestamp   int64            `json:"dt"`
	Time        string           `json:"time"`
	Temp        int              `json:"temp"`
	Icon        string           `json:"icon"`
	IconURL     string           `json:"iconUrl"`
	Description string           `json:"description"`
	Condition   WeatherCondition `json:"condition"`
}

// Forecast bundles the daily aggregates with the hourly window.
type Forecast struct {
	Daily  []DailyForecast  `json:"daily"`
	Hourly []HourlyForecast `json:"hourly"`
}
