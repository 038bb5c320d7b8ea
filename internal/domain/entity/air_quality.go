package entity

// AQILevel is the vendor air quality index, 1 (best) to 5 (worst).
type AQILevel int

const (
	AQIGood AQILevel = iota + 1
	AQIFair
	AQIModerate
	AQIPoor
	AQIVeryPoor
)

var aqiQualityLabels = map[AQILevel]string{
	AQIGood:     "Good",
	AQIFair:     "Fair",
	AQIModerate: "Moderate",
	AQIPoor:     "Poor",
	AQIVeryPoor: "Very Poor",
}

// Quality returns the display label for the level.
func (l AQILevel) Quality() string {
	return aqiQualityLabels[l]
}

// Valid reports whether the level is inside the closed 1-5 range.
func (l AQILevel) Valid() bool {
	return l >= AQIGood && l <= AQIVeryPoor
}

// AirQualityComponents holds pollutant concentrations in μg/m³. CO is also
// expressed in μg/m³ here; display layers show it in mg/m³.
type AirQualityComponents struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AirQuality is the normalized air quality snapshot for one location.
type AirQuality struct {
	AQI           AQILevel             `json:"aqi"`
	Quality       string               `json:"quality"`
	HealthMessage string               `json:"healthMessage"`
	Components    AirQualityComponents `json:"components"`
	MainPollutant string               `json:"mainPollutant"`
}

// MainPollutant returns the pollutant with the strictly greatest concentration
// among the reportable subset. PM2.5 is checked first and keeps the title on
// ties, because only a strictly greater value replaces it.
func MainPollutant(components AirQualityComponents) string {
	pollutants := []struct {
		name  string
		value float64
	}{
		{"PM2.5", components.PM25},
		{"PM10", components.PM10},
		{"O₃", components.O3},
		{"NO₂", components.NO2},
		{"SO₂", components.SO2},
		{"CO", components.CO},
	}

	main := pollutants[0]
	for _, p := range pollutants[1:] {
		if p.value > main.value {
			main = p
		}
	}
	return main.name
}
