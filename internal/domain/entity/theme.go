package entity

import "fmt"

// WeatherTheme names the background gradient used by the dashboard.
type WeatherTheme string

const (
	ThemeClearDay   WeatherTheme = "gradient-clear-day"
	ThemeClearNight WeatherTheme = "gradient-clear-night"
	ThemeCloudy     WeatherTheme = "gradient-cloudy"
	ThemeRainy      WeatherTheme = "gradient-rainy"
	ThemeSnow       WeatherTheme = "gradient-snow"
	ThemeStorm      WeatherTheme = "gradient-storm"
	ThemeMist       WeatherTheme = "gradient-mist"
)

// ThemeFor selects the gradient theme for a condition and day/night flag.
// At night only storm and snow keep a dedicated theme.
func ThemeFor(condition WeatherCondition, isDay bool) WeatherTheme {
	if !isDay {
		switch condition {
		case ConditionThunderstorm:
			return ThemeStorm
		case ConditionSnow:
			return ThemeSnow
		default:
			return ThemeClearNight
		}
	}

	switch condition {
	case ConditionClear:
		return ThemeClearDay
	case ConditionClouds:
		return ThemeCloudy
	case ConditionRain, ConditionDrizzle:
		return ThemeRainy
	case ConditionSnow:
		return ThemeSnow
	case ConditionThunderstorm:
		return ThemeStorm
	case ConditionMist, ConditionFog, ConditionHaze:
		return ThemeMist
	default:
		return ThemeClearDay
	}
}

// IconURL builds the vendor CDN URL for a weather icon. Size is "2x" or "4x".
func IconURL(icon string, size string) string {
	if size == "" {
		size = "4x"
	}
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@%s.png", icon, size)
}
