package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/astrolabe/pkg/domain"
)

// AuditRepository handles the append-only audit log
type AuditRepository struct {
	db *sqlx.DB
}

// auditSQL represents an audit entry for SQL operations
type auditSQL struct {
	ID        int64       `db:"id"`
	Level     string      `db:"level"`
	Source    string      `db:"source"`
	Message   string      `db:"message"`
	UserID    string      `db:"user_id"`
	Metadata  metadataSQL `db:"metadata"`
	CreatedAt time.Time   `db:"created_at"`
}

// metadataSQL is a JSON object for SQL operations
type metadataSQL map[string]any

// Value implements driver.Valuer for database storage
func (m metadataSQL) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "", nil
	}
	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *metadataSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, (*map[string]any)(m))
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Write appends an entry, CreatedAt defaults to now
func (r *AuditRepository) Write(ctx context.Context, entry domain.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Level == "" {
		entry.Level = domain.AuditInfo
	}

	query := r.db.Rebind(`INSERT INTO logs (level, source, message, user_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, string(entry.Level), entry.Source, entry.Message, entry.UserID,
			metadataSQL(entry.Metadata), entry.CreatedAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first
func (r *AuditRepository) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := r.db.Rebind(`SELECT id, level, source, message, user_id, metadata, created_at
		FROM logs ORDER BY created_at DESC, id DESC LIMIT ?`)
	var rows []auditSQL
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	res := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		res[i] = domain.AuditEntry{
			ID:        row.ID,
			Level:     domain.AuditLevel(row.Level),
			Source:    row.Source,
			Message:   row.Message,
			UserID:    row.UserID,
			Metadata:  row.Metadata,
			CreatedAt: row.CreatedAt,
		}
	}
	return res, nil
}

// DeleteOlderThan removes entries created before the cutoff, returns number of deleted rows
func (r *AuditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind("DELETE FROM logs WHERE created_at < ?")
	var deleted int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, cutoff.UTC())
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete old audit entries: %w", err)
	}
	return deleted, nil
}
