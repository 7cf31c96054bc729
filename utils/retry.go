package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrPermanent marks a failure that must not be retried, such as an
// unexpected HTTP status from the detail endpoint.
var ErrPermanent = errors.New("permanent failure")

// Permanent wraps err so that RetryConfig.Do gives up immediately.
func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// RetryConfig holds the parameters for the retry strategy.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
	Logger      *Logger
}

// Do executes fn with fixed-backoff retry logic. Errors wrapped with
// Permanent abort without consuming further attempts.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if errors.Is(lastErr, ErrPermanent) {
			return lastErr
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v — retrying in %v",
				operationName, attempt, r.MaxAttempts, lastErr, r.Backoff)
			time.Sleep(r.Backoff)
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}
