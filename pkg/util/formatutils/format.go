package formatutils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// shortDayNames are the pt-BR short weekday names, indexed by time.Weekday.
var shortDayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// FormatTemperature formats a temperature with the degree symbol.
func FormatTemperature(temp float64) string {
	return fmt.Sprintf("%d°", int(math.Round(temp)))
}

// FormatTempRange formats a min/max temperature pair.
func FormatTempRange(min, max float64) string {
	return FormatTemperature(min) + " / " + FormatTemperature(max)
}

// FormatWindSpeed formats a wind speed in km/h.
func FormatWindSpeed(speed float64) string {
	return fmt.Sprintf("%d km/h", int(math.Round(speed)))
}

// FormatHumidity formats a relative humidity percentage.
func FormatHumidity(humidity int) string {
	return fmt.Sprintf("%d%%", humidity)
}

// FormatVisibility formats a visibility distance in km with one decimal.
func FormatVisibility(visibility float64) string {
	return fmt.Sprintf("%.1f km", visibility)
}

// FormatPressure formats an atmospheric pressure in hPa.
func FormatPressure(pressure int) string {
	return fmt.Sprintf("%d hPa", pressure)
}

// CapitalizeWords upper-cases the first letter of each space-separated word.
func CapitalizeWords(str string) string {
	words := strings.Split(str, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// DayName returns the pt-BR short weekday name for a date.
func DayName(date time.Time) string {
	return shortDayNames[date.Weekday()]
}

// FormatShortDate formats a date as dd/mm.
func FormatShortDate(date time.Time) string {
	return date.Format("02/01")
}
