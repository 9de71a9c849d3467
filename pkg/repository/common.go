package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errCritical is the stop marker passed to repeater, criticalError matches it
var errCritical = errors.New("critical")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes criticalError match errCritical stop marker
func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isConnError checks if an error means the database server can't be reached
func isConnError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "bad connection")
}

// isTransient reports errors worth another attempt
func isTransient(err error) bool {
	return isLockError(err) || isConnError(err)
}

// storeRetryDelay is the initial backoff delay for transient store errors, var for tests
var storeRetryDelay = 2 * time.Second

// withRetry runs fn with capped backoff on transient errors, everything else fails immediately
func withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(3, storeRetryDelay, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil || isTransient(err) {
			return err
		}
		return &criticalError{err: err}
	}, errCritical)

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}
