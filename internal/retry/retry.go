// Package retry runs an operation a bounded number of times with a wait
// between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMaxAttemptsExceeded is returned when max retry attempts are exceeded
	ErrMaxAttemptsExceeded = errors.New("max retry attempts exceeded")
	// ErrContextCancelled is returned when the context is cancelled during retry
	ErrContextCancelled = errors.New("context cancelled during retry")
)

// Config configures retry behavior
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first)
	MaxAttempts int
	// Delay is the wait between attempts
	Delay time.Duration
	// OnRetry is called after a failed attempt that will be retried
	OnRetry func(attempt int, err error)
}

// Fixed returns a configuration with a constant delay between attempts.
func Fixed(attempts int, delay time.Duration) Config {
	return Config{
		MaxAttempts: attempts,
		Delay:       delay,
	}
}

// Do executes fn until it succeeds or the attempts are used up. No wait
// follows the final attempt.
func Do(ctx context.Context, config Config, fn func(ctx context.Context) error) error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrContextCancelled, ctx.Err())
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == config.MaxAttempts {
			break
		}
		if config.OnRetry != nil {
			config.OnRetry(attempt, err)
		}

		if config.Delay <= 0 {
			continue
		}

		timer := time.NewTimer(config.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrContextCancelled, ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrMaxAttemptsExceeded, config.MaxAttempts, lastErr)
}
