package entity

// WeatherCondition is the closed set of conditions used for theming and icons.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "clear"
	ConditionClouds       WeatherCondition = "clouds"
	ConditionRain         WeatherCondition = "rain"
	ConditionDrizzle      WeatherCondition = "drizzle"
	ConditionSnow         WeatherCondition = "snow"
	ConditionThunderstorm WeatherCondition = "thunderstorm"
	ConditionMist         WeatherCondition = "mist"
	ConditionFog          WeatherCondition = "fog"
	ConditionHaze         WeatherCondition = "haze"
)

// conditionMap covers every condition group documented by the vendor API.
// Smoke, dust, sand and ash all render like mist; a squall renders like rain
// and a tornado like a thunderstorm.
var conditionMap = map[string]WeatherCondition{
	"Clear":        ConditionClear,
	"Clouds":       ConditionClouds,
	"Rain":         ConditionRain,
	"Drizzle":      ConditionDrizzle,
	"Snow":         ConditionSnow,
	"Thunderstorm": ConditionThunderstorm,
	"Mist":         ConditionMist,
	"Fog":          ConditionFog,
	"Haze":         ConditionHaze,
	"Smoke":        ConditionMist,
	"Dust":         ConditionMist,
	"Sand":         ConditionMist,
	"Ash":          ConditionMist,
	"Squall":       ConditionRain,
	"Tornado":      ConditionThunderstorm,
}

// MapCondition maps a vendor condition group to the closed WeatherCondition
// set. Unknown values fall back to clouds, so the function never fails.
func MapCondition(vendorMain string) WeatherCondition {
	if condition, ok := conditionMap[vendorMain]; ok {
		return condition
	}
	return ConditionClouds
}
