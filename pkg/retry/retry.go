package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Config contains backoff configuration
type Config struct {
	// MaxRetries is the number of retries after the first attempt
	MaxRetries int
	// InitialInterval is the wait before the first retry
	InitialInterval time.Duration
	// MaxInterval caps the wait between attempts
	MaxInterval time.Duration
	// Multiplier grows the interval after each retry
	Multiplier float64
	// JitterFactor adds +/- this fraction of the interval at random
	JitterFactor float64
}

// DefaultConfig returns default backoff: 1s, 2s, 4s, capped at 30s
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      3,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// Backoff doubles from interval up to 8x interval over maxRetries retries
func Backoff(maxRetries int, interval time.Duration) *Config {
	return &Config{
		MaxRetries:      maxRetries,
		InitialInterval: interval,
		MaxInterval:     8 * interval,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// Operation is the function to be retried
type Operation func(ctx context.Context) error

// PermanentError stops the retry loop immediately
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent marks an error as not retryable
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// RetryCallback is called before each wait
type RetryCallback func(attempt int, err error, next time.Duration)

// Do runs op until it succeeds, returns a permanent error, the retries are
// exhausted or ctx is done. The returned error wraps the last failure.
func Do(ctx context.Context, cfg *Config, op Operation) error {
	return DoWithCallback(ctx, cfg, op, nil)
}

// DoWithCallback is Do with a hook invoked before each wait
func DoWithCallback(ctx context.Context, cfg *Config, op Operation, callback RetryCallback) error {
	cfg = withDefaults(cfg)

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return cancelled(err, lastErr)
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		var permErr *PermanentError
		if errors.As(lastErr, &permErr) {
			return permErr.Err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		wait := interval(cfg, attempt)
		if callback != nil {
			callback(attempt+1, lastErr, wait)
		}

		select {
		case <-ctx.Done():
			return cancelled(ctx.Err(), lastErr)
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

func cancelled(ctxErr, lastErr error) error {
	if lastErr == nil {
		return ctxErr
	}
	return fmt.Errorf("%w (last error: %v)", ctxErr, lastErr)
}

func withDefaults(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	c := *cfg
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = time.Second
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 30 * time.Second
	}
	if c.MaxInterval < c.InitialInterval {
		c.MaxInterval = c.InitialInterval
	}
	if c.Multiplier < 1 {
		c.Multiplier = 2.0
	}
	c.JitterFactor = math.Max(0, math.Min(1, c.JitterFactor))
	return &c
}

// interval computes initial * multiplier^attempt with jitter, capped at MaxInterval
func interval(cfg *Config, attempt int) time.Duration {
	d := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt))

	if cfg.JitterFactor > 0 {
		jitter := d * cfg.JitterFactor
		d += (rand.Float64()*2 - 1) * jitter
	}

	if d > float64(cfg.MaxInterval) {
		d = float64(cfg.MaxInterval)
	}
	if d <= 0 {
		d = float64(cfg.InitialInterval)
	}
	return time.Duration(d)
}
