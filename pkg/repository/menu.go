package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/astrolabe/pkg/domain"
)

// MenuRepository handles the dinner menu
type MenuRepository struct {
	db *sqlx.DB
}

// menuSQL represents a menu item for SQL operations
type menuSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ImportResult summarizes a menu import
type ImportResult struct {
	Added      int
	Duplicates int
	Skipped    int // empty names
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *sqlx.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// Random returns a random menu item, ErrNotFound if the menu is empty
func (r *MenuRepository) Random(ctx context.Context) (domain.MenuItem, error) {
	var row menuSQL
	err := r.db.GetContext(ctx, &row, "SELECT id, name, created_at FROM note_menu ORDER BY RANDOM() LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, fmt.Errorf("menu is empty: %w", ErrNotFound)
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("get random menu item: %w", err)
	}
	return domain.MenuItem{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// Count returns the number of menu items
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM note_menu"); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return count, nil
}

// Import adds names in a single transaction, existing names are counted as duplicates
func (r *MenuRepository) Import(ctx context.Context, names []string) (ImportResult, error) {
	var res ImportResult
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind("INSERT INTO note_menu (name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING")
	now := time.Now().UTC()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			res.Skipped++
			continue
		}
		result, err := tx.ExecContext(ctx, query, name, now)
		if err != nil {
			return ImportResult{}, fmt.Errorf("insert menu item %q: %w", name, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return ImportResult{}, fmt.Errorf("get affected rows: %w", err)
		}
		if affected == 0 {
			res.Duplicates++
			continue
		}
		res.Added++
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}
