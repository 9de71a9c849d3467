package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/domain"
)

func TestRunMigrations_AddKindColumn(t *testing.T) {
	// create test database with old schema (without kind column)
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()

	oldSchema := `
		CREATE TABLE protection (key TEXT PRIMARY KEY, value TEXT NOT NULL DEFAULT '', updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);
		CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL DEFAULT '', updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);
		CREATE TABLE memorandum (key TEXT PRIMARY KEY, value TEXT NOT NULL DEFAULT '', updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);
		CREATE TABLE note_text (key TEXT PRIMARY KEY, value TEXT NOT NULL DEFAULT '', updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);
	`
	_, err = db.ExecContext(ctx, oldSchema)
	require.NoError(t, err)

	// legacy values
	_, err = db.ExecContext(ctx, `INSERT INTO memorandum (key, value) VALUES
		('emoji_list', '{blobcat,blobfox,"party parrot"}'),
		('https://example.com/rss', 'https://example.com/post/1'),
		('dinner', 'curry')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO note_text (key, value) VALUES ('forbidden', '["foo","bar"]')`)
	require.NoError(t, err)

	var count int
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pragma_table_info('memorandum') WHERE name = 'kind'`)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "kind column should not exist before migration")

	require.NoError(t, initSchema(ctx, db))
	require.NoError(t, runMigrations(ctx, db))

	for _, table := range []string{"protection", "settings", "memorandum", "note_text"} {
		err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pragma_table_info('`+table+`') WHERE name = 'kind'`)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "kind column should exist in %s after migration", table)
	}

	kv := NewKVRepository(db)
	require.NoError(t, kv.migrateLegacyValues(ctx))

	emojis, err := kv.GetStrings(ctx, domain.TableMemorandum, domain.KeyEmojiList)
	require.NoError(t, err)
	assert.Equal(t, []string{"blobcat", "blobfox", "party parrot"}, emojis)

	forbidden, err := kv.GetStrings(ctx, domain.TableNoteText, domain.KeyForbidden)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, forbidden)

	// plain strings stay untouched
	entry, err := kv.Get(ctx, domain.TableMemorandum, "https://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, domain.KindString, entry.Kind)
	assert.Equal(t, "https://example.com/post/1", entry.Value)

	entry, err = kv.Get(ctx, domain.TableMemorandum, domain.KeyDinner)
	require.NoError(t, err)
	assert.Equal(t, domain.KindString, entry.Kind)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, initSchema(ctx, db))

	// run migrations twice - should be idempotent
	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db), "migrations should be idempotent")

	var indexCount int
	err = db.GetContext(ctx, &indexCount,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_logs_created_at'`)
	require.NoError(t, err)
	assert.Equal(t, 1, indexCount)
}

func TestParseLegacyList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
		ok    bool
	}{
		{name: "json array", value: `["a","b"]`, want: []string{"a", "b"}, ok: true},
		{name: "braces", value: `{a,b,c}`, want: []string{"a", "b", "c"}, ok: true},
		{name: "quoted braces", value: `{"a b",c}`, want: []string{"a b", "c"}, ok: true},
		{name: "empty braces", value: `{}`, want: []string{}, ok: true},
		{name: "json object", value: `{"a":1}`, ok: false},
		{name: "plain string", value: `curry`, ok: false},
		{name: "broken json", value: `[a,b]`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLegacyList(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
