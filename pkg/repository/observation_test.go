package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/domain"
)

func TestObservationRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		err := repos.Observation.Add(ctx, domain.Observation{UserName: name, InstanceName: "misskey.io", Text: "hello"})
		require.NoError(t, err)
	}

	count, err := repos.Observation.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	deleted, err := repos.Observation.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	count, err = repos.Observation.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
