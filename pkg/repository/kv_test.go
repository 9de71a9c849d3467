package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/domain"
)

func TestKVRepository_AllowList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	tables := []domain.Table{"users", "logs", "protection; DROP TABLE settings", ""}
	for _, table := range tables {
		_, err := repos.KV.Get(ctx, table, "key")
		require.ErrorIs(t, err, ErrTableNotAllowed, "get from %q", table)

		err = repos.KV.Set(ctx, table, "key", "value", domain.KindString)
		require.ErrorIs(t, err, ErrTableNotAllowed, "set to %q", table)
	}

	// settings table must survive the injection attempt
	require.NoError(t, repos.KV.SetInt(ctx, domain.TableSettings, domain.KeyPostHeatLimit, 10))
}

func TestKVRepository_GetMissing(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	_, err := repos.KV.Get(ctx, domain.TableMemorandum, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repos.KV.GetInt(ctx, domain.TableProtection, domain.KeyPostHeat)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repos.KV.GetStrings(ctx, domain.TableNoteText, domain.KeyForbidden)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepository_TypedValues(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("string", func(t *testing.T) {
		require.NoError(t, repos.KV.SetString(ctx, domain.TableMemorandum, "https://example.com/rss", "https://example.com/1"))
		v, err := repos.KV.GetString(ctx, domain.TableMemorandum, "https://example.com/rss")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/1", v)
	})

	t.Run("int from string value", func(t *testing.T) {
		require.NoError(t, repos.KV.SetString(ctx, domain.TableSettings, domain.KeyChatHeatLimit, " 42 "))
		v, err := repos.KV.GetInt(ctx, domain.TableSettings, domain.KeyChatHeatLimit)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("int parse error", func(t *testing.T) {
		require.NoError(t, repos.KV.SetString(ctx, domain.TableSettings, "broken", "abc"))
		_, err := repos.KV.GetInt(ctx, domain.TableSettings, "broken")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("json list", func(t *testing.T) {
		require.NoError(t, repos.KV.SetJSON(ctx, domain.TableNoteText, domain.KeyForbidden, []string{"foo", "バカ"}))
		v, err := repos.KV.GetStrings(ctx, domain.TableNoteText, domain.KeyForbidden)
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "バカ"}, v)
	})

	t.Run("list from non-json kind", func(t *testing.T) {
		require.NoError(t, repos.KV.SetString(ctx, domain.TableNoteText, "plain", `["a"]`))
		_, err := repos.KV.GetStrings(ctx, domain.TableNoteText, "plain")
		require.Error(t, err)
	})
}
