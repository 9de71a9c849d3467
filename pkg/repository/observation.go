package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/astrolabe/pkg/domain"
)

// ObservationRepository stores passively observed global timeline notes
type ObservationRepository struct {
	db *sqlx.DB
}

// NewObservationRepository creates a new observation repository
func NewObservationRepository(db *sqlx.DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

// Add appends an observation, ObservedAt defaults to now
func (r *ObservationRepository) Add(ctx context.Context, obs domain.Observation) error {
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = time.Now()
	}
	query := r.db.Rebind(`INSERT INTO glt_observation (user_name, instance_name, post_text, observed_at)
		VALUES (?, ?, ?, ?)`)
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, obs.UserName, obs.InstanceName, obs.Text, obs.ObservedAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("add observation: %w", err)
	}
	return nil
}

// Count returns the number of stored observations
func (r *ObservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM glt_observation"); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return count, nil
}

// Clear removes all observations, returns number of deleted rows
func (r *ObservationRepository) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM glt_observation")
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("clear observations: %w", err)
	}
	return deleted, nil
}
