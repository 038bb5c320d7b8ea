package geo

import (
	"context"
	"errors"
	"time"

	"clima-api/internal/domain/entity"
)

// ErrUnavailable means the position could not be determined.
var ErrUnavailable = errors.New("geolocation: position unavailable")

// ErrTimeout means acquisition did not finish inside the allowed window.
var ErrTimeout = errors.New("geolocation: acquisition timed out")

// Locator resolves the approximate position of a client.
type Locator interface {
	Locate(ctx context.Context, clientIP string) (*entity.Coordinates, error)
}

// Acquire resolves the client position with a hard timeout. Acquisition that
// exceeds the window fails with ErrTimeout instead of hanging the caller.
func Acquire(ctx context.Context, locator Locator, clientIP string, timeout time.Duration) (*entity.Coordinates, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		coords *entity.Coordinates
		err    error
	}

	done := make(chan result, 1)
	go func() {
		coords, err := locator.Locate(ctx, clientIP)
		done <- result{coords, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		return r.coords, nil
	case <-ctx.Done():
		return nil, ErrTimeout
	}
}
