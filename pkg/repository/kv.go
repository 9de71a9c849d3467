package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/astrolabe/pkg/domain"
)

// ErrTableNotAllowed is returned for any table outside of the allow-list
var ErrTableNotAllowed = errors.New("table not allowed")

// ErrNotFound is returned when a key is absent
var ErrNotFound = errors.New("not found")

// allowedTables is the only set of tables dynamic queries may reference
var allowedTables = map[domain.Table]bool{
	domain.TableProtection: true,
	domain.TableSettings:   true,
	domain.TableMemorandum: true,
	domain.TableNoteText:   true,
}

// KVRepository handles (table, key) -> value access over the whitelisted tables
type KVRepository struct {
	db *sqlx.DB
}

// kvSQL is the database representation of a key-value row
type kvSQL struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	Kind      string    `db:"kind"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *sqlx.DB) *KVRepository {
	return &KVRepository{db: db}
}

func checkTable(table domain.Table) error {
	if !allowedTables[table] {
		return fmt.Errorf("%w: %q", ErrTableNotAllowed, table)
	}
	return nil
}

// Get returns the entry for table and key, ErrNotFound if absent
func (r *KVRepository) Get(ctx context.Context, table domain.Table, key string) (domain.KVEntry, error) {
	if err := checkTable(table); err != nil {
		return domain.KVEntry{}, err
	}

	query := r.db.Rebind(fmt.Sprintf("SELECT key, value, kind, updated_at FROM %s WHERE key = ?", table))
	var row kvSQL
	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &row, query, key)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.KVEntry{}, fmt.Errorf("%s/%s: %w", table, key, ErrNotFound)
	}
	if err != nil {
		return domain.KVEntry{}, fmt.Errorf("get %s/%s: %w", table, key, err)
	}

	return domain.KVEntry{Table: table, Key: row.Key, Value: row.Value, Kind: domain.ValueKind(row.Kind),
		UpdatedAt: row.UpdatedAt}, nil
}

// Set upserts a value with its kind tag
func (r *KVRepository) Set(ctx context.Context, table domain.Table, key, value string, kind domain.ValueKind) error {
	if err := checkTable(table); err != nil {
		return err
	}

	query := r.db.Rebind(fmt.Sprintf(`
		INSERT INTO %s (key, value, kind, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, kind = excluded.kind, updated_at = excluded.updated_at
	`, table))
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, key, value, string(kind), time.Now().UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", table, key, err)
	}
	return nil
}

// GetString returns the raw value, ErrNotFound if absent
func (r *KVRepository) GetString(ctx context.Context, table domain.Table, key string) (string, error) {
	entry, err := r.Get(ctx, table, key)
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// SetString stores a plain string value
func (r *KVRepository) SetString(ctx context.Context, table domain.Table, key, value string) error {
	return r.Set(ctx, table, key, value, domain.KindString)
}

// GetInt returns the value parsed as integer, ErrNotFound if absent
func (r *KVRepository) GetInt(ctx context.Context, table domain.Table, key string) (int64, error) {
	entry, err := r.Get(ctx, table, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(entry.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s/%s as int: %w", table, key, err)
	}
	return v, nil
}

// SetInt stores an integer value
func (r *KVRepository) SetInt(ctx context.Context, table domain.Table, key string, value int64) error {
	return r.Set(ctx, table, key, strconv.FormatInt(value, 10), domain.KindInt)
}

// GetStrings returns a JSON array value as a slice, ErrNotFound if absent
func (r *KVRepository) GetStrings(ctx context.Context, table domain.Table, key string) ([]string, error) {
	entry, err := r.Get(ctx, table, key)
	if err != nil {
		return nil, err
	}
	if entry.Kind != domain.KindJSON {
		return nil, fmt.Errorf("%s/%s is %s, not json", table, key, entry.Kind)
	}
	var res []string
	if err := json.Unmarshal([]byte(entry.Value), &res); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", table, key, err)
	}
	return res, nil
}

// SetJSON stores any value marshaled to JSON
func (r *KVRepository) SetJSON(ctx context.Context, table domain.Table, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", table, key, err)
	}
	return r.Set(ctx, table, key, string(data), domain.KindJSON)
}

// migrateLegacyValues tags list values written by older versions as json.
// Older rows stored lists either as JSON arrays or as brace-delimited "{a,b,c}" strings with kind unset.
func (r *KVRepository) migrateLegacyValues(ctx context.Context) error {
	for _, table := range []domain.Table{domain.TableMemorandum, domain.TableNoteText} {
		query := r.db.Rebind(fmt.Sprintf("SELECT key, value, kind, updated_at FROM %s WHERE kind = ?", table))
		var rows []kvSQL
		if err := r.db.SelectContext(ctx, &rows, query, string(domain.KindString)); err != nil {
			return fmt.Errorf("select legacy rows from %s: %w", table, err)
		}

		for _, row := range rows {
			list, ok := parseLegacyList(row.Value)
			if !ok {
				continue
			}
			if err := r.SetJSON(ctx, table, row.Key, list); err != nil {
				return err
			}
			lgr.Printf("[INFO] converted legacy list %s/%s to json, %d items", table, row.Key, len(list))
		}
	}
	return nil
}

// parseLegacyList recognizes JSON string arrays and brace-delimited lists
func parseLegacyList(value string) ([]string, bool) {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]"):
		var res []string
		if err := json.Unmarshal([]byte(v), &res); err != nil {
			return nil, false
		}
		return res, true
	case strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}"):
		inner := strings.TrimSpace(v[1 : len(v)-1])
		if strings.Contains(inner, ":") { // a JSON object, not a list
			return nil, false
		}
		res := []string{}
		if inner == "" {
			return res, true
		}
		for _, part := range strings.Split(inner, ",") {
			res = append(res, strings.Trim(strings.TrimSpace(part), `"`))
		}
		return res, true
	}
	return nil, false
}
