package entity

// CitySearchResult is one candidate returned by the geocoding search. Two
// towns can share a name, so identity for favorites and dedup purposes is the
// exact (Lat, Lon) pair, never the name.
type CitySearchResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// SameLocation reports whether both results point at the same coordinates.
func (c CitySearchResult) SameLocation(other CitySearchResult) bool {
	return c.Lat == other.Lat && c.Lon == other.Lon
}

// Coordinates is a geographic position resolved by geolocation or search.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
