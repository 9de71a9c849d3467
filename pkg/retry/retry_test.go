package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func TestPolicy_Do(t *testing.T) {
	p := Policy{Attempts: 10, Delay: time.Millisecond, Retryable: func(err error) bool { return errors.Is(err, errTransient) }}

	t.Run("success first try", func(t *testing.T) {
		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("success after retries", func(t *testing.T) {
		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 4 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("always failing stops at the attempt ceiling", func(t *testing.T) {
		calls := 0
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return errTransient
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExhausted)
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 10, calls)
	})

	t.Run("non-retryable error returns immediately", func(t *testing.T) {
		calls := 0
		permanent := errors.New("rejected")
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return permanent
		})
		require.Error(t, err)
		assert.Equal(t, permanent, err)
		assert.NotErrorIs(t, err, ErrExhausted)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops retries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		slow := Policy{Attempts: 10, Delay: time.Hour}
		calls := 0
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		err := slow.Do(ctx, func(context.Context) error {
			calls++
			return errTransient
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestPolicy_ZeroAttempts(t *testing.T) {
	calls := 0
	err := Policy{}.Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
