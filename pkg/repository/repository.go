package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/astrolabe/pkg/domain"
)

//go:embed schema.sql schema_postgres.sql migrations.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	KV          *KVRepository
	Audit       *AuditRepository
	Observation *ObservationRepository
	Menu        *MenuRepository
	DB          *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection pool.
// DSN starting with postgres:// or postgresql:// selects the postgres driver, anything else is sqlite.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:astrolabe.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	driver := driverName(cfg.DSN)
	db, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if driver == "sqlite" {
		pragmas := []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA temp_store = MEMORY",
			"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
		}
		for _, pragma := range pragmas {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("execute %s: %w", pragma, err)
			}
		}
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	kv := NewKVRepository(db)
	if err := kv.migrateLegacyValues(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate legacy values: %w", err)
	}

	return &Repositories{
		KV:          kv,
		Audit:       NewAuditRepository(db),
		Observation: NewObservationRepository(db),
		Menu:        NewMenuRepository(db),
		DB:          db,
	}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// ListAudit returns the most recent audit entries
func (r *Repositories) ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return r.Audit.List(ctx, limit)
}

func driverName(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	name := "schema.sql"
	if db.DriverName() == "pgx" {
		name = "schema_postgres.sql"
	}
	schema, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	for _, stmt := range splitStatements(string(schema)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema: %w", err)
		}
	}
	return nil
}

// runMigrations brings tables created by older versions up to date.
// Statements are idempotent in effect, "already exists" style errors are skipped.
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	migrations, err := schemaFS.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, stmt := range splitStatements(string(migrations)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			errStr := strings.ToLower(err.Error())
			if strings.Contains(errStr, "already exists") || strings.Contains(errStr, "duplicate") {
				continue
			}
			return fmt.Errorf("execute migration statement: %w", err)
		}
	}
	return nil
}

// splitStatements splits SQL text into statements by trailing semicolons, skipping comment-only lines
func splitStatements(text string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if current.Len() == 0 && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
