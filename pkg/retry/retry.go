// Package retry provides a bounded retry policy with fixed delay on classified-retryable errors.
// It is shared by the social client for mutating calls.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// ErrExhausted is returned when all attempts failed with retryable errors
var ErrExhausted = errors.New("retry attempts exhausted")

// errStop marks a non-retryable error for repeater
var errStop = errors.New("stop retry")

// Policy retries a call up to Attempts times with a fixed Delay between attempts.
// Only errors accepted by Retryable are retried, any other error is returned immediately.
type Policy struct {
	Attempts  int
	Delay     time.Duration
	Retryable func(err error) bool
}

// stopError carries a non-retryable error through repeater
type stopError struct {
	err error
}

func (e *stopError) Error() string { return e.err.Error() }

func (e *stopError) Unwrap() error { return e.err }

func (e *stopError) Is(target error) bool { return target == errStop }

// Do calls fn until it succeeds, returns a non-retryable error, or the attempt budget is spent.
// On exhaustion the last error is returned wrapped with ErrExhausted. Context cancellation stops waiting.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = func(error) bool { return true }
	}

	var lastErr error
	calls := 0
	err := repeater.NewFixed(attempts, p.Delay).Do(ctx, func() error {
		calls++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) {
			return &stopError{err: err}
		}
		if calls >= attempts {
			return &stopError{err: fmt.Errorf("%w after %d attempts: %w", ErrExhausted, calls, err)}
		}
		return err
	}, errStop)

	if err == nil {
		return nil
	}

	var se *stopError
	if errors.As(err, &se) {
		return se.err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		if lastErr == nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ctxErr, lastErr)
	}
	if lastErr == nil {
		lastErr = err
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, calls, lastErr)
}
