package geo

import (
	"context"
	"fmt"

	"clima-api/internal/domain/entity"
	"clima-api/pkg/http"
)

// ipLookupResponse is the payload of the IP geolocation service.
type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ipLocator resolves a position from the client IP through a public IP
// geolocation service.
type ipLocator struct {
	httpClient *http.Client
}

// NewIPLocator creates a Locator backed by an IP lookup endpoint.
func NewIPLocator(baseURL string, opts http.ClientOptions) Locator {
	return &ipLocator{httpClient: http.NewHttpClient(baseURL, opts)}
}

func (l *ipLocator) Locate(ctx context.Context, clientIP string) (*entity.Coordinates, error) {
	if clientIP == "" {
		return nil, ErrUnavailable
	}

	var resp ipLookupResponse
	_, _, _, err := l.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json/" + clientIP).
		WithSuccessResp(&resp).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.Status != "success" {
		return nil, ErrUnavailable
	}

	return &entity.Coordinates{Latitude: resp.Lat, Longitude: resp.Lon}, nil
}
