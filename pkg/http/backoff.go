package http

import "time"

// BackoffConfig controls the retry behaviour of a request. MaxRetries counts
// retries beyond the first attempt; zero disables retrying.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// NewBackoffConfig creates a backoff configuration with default intervals.
func NewBackoffConfig(maxRetries int) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      maxRetries,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
	}
}

// WithInitialInterval sets the wait before the first retry.
func (b *BackoffConfig) WithInitialInterval(interval time.Duration) *BackoffConfig {
	b.InitialInterval = interval
	return b
}

// WithMaxInterval caps the wait between retries.
func (b *BackoffConfig) WithMaxInterval(interval time.Duration) *BackoffConfig {
	b.MaxInterval = interval
	return b
}

// WithMultiplier sets the exponential growth factor.
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	b.Multiplier = multiplier
	return b
}

func (b *BackoffConfig) initialInterval() time.Duration {
	if b.InitialInterval > 0 {
		return b.InitialInterval
	}
	return 200 * time.Millisecond
}

func (b *BackoffConfig) nextInterval(current time.Duration) time.Duration {
	multiplier := b.Multiplier
	if multiplier <= 1 {
		multiplier = 2.0
	}
	next := time.Duration(float64(current) * multiplier)
	if b.MaxInterval > 0 && next > b.MaxInterval {
		return b.MaxInterval
	}
	return next
}
