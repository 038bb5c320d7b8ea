package model

// ErrorKind classifies every failure the API surfaces. The mapping from kind
// to user-facing message is total; raw vendor error text is never exposed.
type ErrorKind string

const (
	ErrKindGeolocation        ErrorKind = "geolocation"
	ErrKindServiceUnavailable ErrorKind = "api-service-unavailable"
	ErrKindNotFound           ErrorKind = "api-not-found"
	ErrKindNetwork            ErrorKind = "api-network"
	ErrKindGeneric            ErrorKind = "api-generic"
)

// WeatherError is a classified failure with its fixed user-facing message.
type WeatherError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *WeatherError) Error() string {
	return e.Message
}

// NewWeatherError builds a classified error.
func NewWeatherError(kind ErrorKind, message string) *WeatherError {
	return &WeatherError{Kind: kind, Message: message}
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind"`
}
