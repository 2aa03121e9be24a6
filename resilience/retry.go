package resilience

import (
	"context"
	"errors"
	"time"
)

// ErrMaxRetriesExceeded is returned when the attempt budget is exhausted
// and no underlying error is available to surface instead.
var ErrMaxRetriesExceeded = errors.New("max retries exceeded")

// BackoffHint is implemented by errors that know how long to wait before
// the next attempt (e.g. a 429 carrying a retry-after value). A positive
// hint overrides the configured backoff schedule.
type BackoffHint interface {
	RetryAfter() time.Duration
}

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	// A call makes at most MaxRetries+1 attempts.
	MaxRetries int
	// Backoff returns the delay before retrying after the given attempt
	// (0-based). Defaults to LinearBackoff(5 * time.Second).
	Backoff func(attempt int) time.Duration
	// RetryIf determines whether an error should be retried.
	RetryIf func(error) bool
	// OnRetry is called before each retry sleep.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

// DefaultRetryConfig returns the SDK defaults: 3 retries with the
// platform's linear backoff schedule.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		Backoff:    LinearBackoff(5 * time.Second),
		RetryIf:    DefaultRetryIf,
	}
}

// DefaultRetryIf retries all errors except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// LinearBackoff returns the platform's published schedule: attempt+1
// seconds, capped at max.
func LinearBackoff(max time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := time.Duration(attempt+1) * time.Second
		if d > max {
			return max
		}
		return d
	}
}

// ExponentialBackoff returns an initial*factor^attempt schedule capped at max.
func ExponentialBackoff(initial, max time.Duration, factor float64) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := float64(initial)
		for i := 0; i < attempt; i++ {
			d *= factor
			if d >= float64(max) {
				return max
			}
		}
		if d > float64(max) {
			return max
		}
		return time.Duration(d)
	}
}

// Retry executes fn until it succeeds, returns a non-retryable error, or
// the attempt budget is exhausted. The last result and error are returned
// so callers can still inspect a failed response.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	if cfg.Backoff == nil {
		cfg.Backoff = LinearBackoff(5 * time.Second)
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = DefaultRetryIf
	}

	var last T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}

		last, lastErr = fn()
		if lastErr == nil {
			return last, nil
		}
		if !cfg.RetryIf(lastErr) {
			return last, lastErr
		}
		if attempt == cfg.MaxRetries {
			break
		}

		backoff := cfg.Backoff(attempt)
		var hint BackoffHint
		if errors.As(lastErr, &hint) {
			if d := hint.RetryAfter(); d > 0 {
				backoff = d
			}
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = ErrMaxRetriesExceeded
	}
	return last, lastErr
}

// RetryFunc executes a function that returns only an error.
func RetryFunc(ctx context.Context, cfg RetryConfig, fn func() error) error {
	_, err := Retry(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
