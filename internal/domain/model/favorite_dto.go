package model

// FavoriteCityDTO is the request body for adding or toggling a favorite city.
type FavoriteCityDTO struct {
	Name    string  `json:"name" validate:"required"`
	Country string  `json:"country" validate:"required"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
}
