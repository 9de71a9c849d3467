package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("empty menu", func(t *testing.T) {
		_, err := repos.Menu.Random(ctx)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("import", func(t *testing.T) {
		res, err := repos.Menu.Import(ctx, []string{"curry", "ramen", " ", "curry", "sushi"})
		require.NoError(t, err)
		assert.Equal(t, ImportResult{Added: 3, Duplicates: 1, Skipped: 1}, res)

		res, err = repos.Menu.Import(ctx, []string{"ramen", "udon"})
		require.NoError(t, err)
		assert.Equal(t, ImportResult{Added: 1, Duplicates: 1}, res)

		count, err := repos.Menu.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("random", func(t *testing.T) {
		item, err := repos.Menu.Random(ctx)
		require.NoError(t, err)
		assert.Contains(t, []string{"curry", "ramen", "sushi", "udon"}, item.Name)
		assert.NotZero(t, item.ID)
	})
}
