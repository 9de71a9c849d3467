// Package gate implements the heat based post limiter.
// A counter in the protection table grows by one per successful post, a ceiling in the settings table caps it.
package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/repository"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the subset of the key-value store used by the gate
type Store interface {
	GetInt(ctx context.Context, table domain.Table, key string) (int64, error)
	SetInt(ctx context.Context, table domain.Table, key string, value int64) error
}

// Limit is a heat ceiling, Set is false when no limit is configured
type Limit struct {
	Set   bool
	Value int64
}

// Allows reports whether a counter value is within the limit
func (l Limit) Allows(counter int64) bool {
	if !l.Set {
		return true
	}
	if l.Value == 0 {
		return false // explicit zero blocks everything
	}
	return counter <= l.Value
}

// Gate decides whether a post is allowed and tracks the heat counter
type Gate struct {
	store      Store
	counterKey string
	limitKey   string
}

// New makes a gate over the given counter (protection table) and limit (settings table) keys
func New(store Store, counterKey, limitKey string) *Gate {
	return &Gate{store: store, counterKey: counterKey, limitKey: limitKey}
}

// NewPostGate makes a gate for regular posts
func NewPostGate(store Store) *Gate {
	return New(store, domain.KeyPostHeat, domain.KeyPostHeatLimit)
}

// NewChatGate makes a gate for chat replies
func NewChatGate(store Store) *Gate {
	return New(store, domain.KeyChatHeat, domain.KeyChatHeatLimit)
}

// Name returns the counter key the gate tracks
func (g *Gate) Name() string {
	return g.counterKey
}

// CanPost returns true if no limit is configured or the counter is within the limit
func (g *Gate) CanPost(ctx context.Context) (bool, error) {
	heat, err := g.Heat(ctx)
	if err != nil {
		return false, err
	}
	limit, err := g.Limit(ctx)
	if err != nil {
		return false, err
	}
	allowed := limit.Allows(heat)
	if !allowed {
		lgr.Printf("[DEBUG] %s %d is over the limit %d", g.counterKey, heat, limit.Value)
	}
	return allowed, nil
}

// RecordPost increments the counter by one. Read-modify-write, concurrent callers may race.
func (g *Gate) RecordPost(ctx context.Context) error {
	heat, err := g.Heat(ctx)
	if err != nil {
		return err
	}
	if err := g.store.SetInt(ctx, domain.TableProtection, g.counterKey, heat+1); err != nil {
		return fmt.Errorf("record %s: %w", g.counterKey, err)
	}
	return nil
}

// Reset sets the counter to zero
func (g *Gate) Reset(ctx context.Context) error {
	if err := g.store.SetInt(ctx, domain.TableProtection, g.counterKey, 0); err != nil {
		return fmt.Errorf("reset %s: %w", g.counterKey, err)
	}
	return nil
}

// Heat returns the current counter, zero if it was never recorded
func (g *Gate) Heat(ctx context.Context) (int64, error) {
	heat, err := g.store.GetInt(ctx, domain.TableProtection, g.counterKey)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", g.counterKey, err)
	}
	return heat, nil
}

// Limit returns the configured ceiling, Limit.Set is false when the row is missing
func (g *Gate) Limit(ctx context.Context) (Limit, error) {
	v, err := g.store.GetInt(ctx, domain.TableSettings, g.limitKey)
	if errors.Is(err, repository.ErrNotFound) {
		return Limit{}, nil
	}
	if err != nil {
		return Limit{}, fmt.Errorf("get %s: %w", g.limitKey, err)
	}
	return Limit{Set: true, Value: v}, nil
}
