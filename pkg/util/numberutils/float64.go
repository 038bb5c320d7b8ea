package numberutils

import "strconv"

// ToFloat64WithError converts the given string to a float64 and returns any error that occurred during conversion.
// It returns the float value if successful, or an error if the string cannot be converted.
func ToFloat64WithError(str string) (float64, error) {
	return strconv.ParseFloat(str, 64)
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}
