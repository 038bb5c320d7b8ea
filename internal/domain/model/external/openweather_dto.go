package external

// WeatherConditionDTO is one element of the vendor "weather" array.
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO is the vendor temperature/pressure/humidity block.
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WindDTO is the vendor wind block. Speed is in m/s with metric units.
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// SysDTO carries country and the sunrise/sunset epochs.
type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CoordDTO is the vendor coordinate block.
type CoordDTO struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// CurrentWeatherResponse is the raw current conditions payload.
type CurrentWeatherResponse struct {
	Coord      CoordDTO              `json:"coord"`
	Weather    []WeatherConditionDTO `json:"weather"`
	Main       MainDTO               `json:"main"`
	Visibility int                   `json:"visibility"`
	Wind       WindDTO               `json:"wind"`
	Sys        SysDTO                `json:"sys"`
	Timezone   int                   `json:"timezone"`
	Name       string                `json:"name"`
	Dt         int64                 `json:"dt"`
}

// ForecastSampleDTO is one 3-hour interval sample of the forecast feed.
type ForecastSampleDTO struct {
	Dt      int64                 `json:"dt"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	DtTxt   string                `json:"dt_txt"`
}

// ForecastCityDTO is the city block attached to the forecast feed.
type ForecastCityDTO struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// ForecastResponse is the raw 5-day / 3-hour forecast payload.
type ForecastResponse struct {
	List []ForecastSampleDTO `json:"list"`
	City ForecastCityDTO     `json:"city"`
}

// AirPollutionSampleDTO is one air pollution measurement.
type AirPollutionSampleDTO struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components AirComponentsDTO `json:"components"`
	Dt         int64            `json:"dt"`
}

// AirComponentsDTO holds the eight pollutant concentrations in μg/m³.
type AirComponentsDTO struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AirPollutionResponse is the raw air pollution payload.
type AirPollutionResponse struct {
	List []AirPollutionSampleDTO `json:"list"`
}

// GeoCityDTO is one geocoding candidate.
type GeoCityDTO struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// APIErrorResponse is the vendor error body, e.g. {"cod":"404","message":"city not found"}.
type APIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
