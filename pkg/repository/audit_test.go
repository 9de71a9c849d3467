package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/domain"
)

func TestAuditRepository_WriteList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	err := repos.Audit.Write(ctx, domain.AuditEntry{
		Level:    domain.AuditError,
		Source:   "reconcile",
		Message:  "follow failed",
		UserID:   "9abc",
		Metadata: map[string]any{"status": float64(500)},
	})
	require.NoError(t, err)
	require.NoError(t, repos.Audit.Write(ctx, domain.AuditEntry{Source: "mention", Message: "test"}))

	entries, err := repos.Audit.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "mention", entries[0].Source)
	assert.Equal(t, domain.AuditInfo, entries[0].Level)
	assert.Nil(t, entries[0].Metadata)

	assert.Equal(t, domain.AuditError, entries[1].Level)
	assert.Equal(t, "9abc", entries[1].UserID)
	assert.Equal(t, map[string]any{"status": float64(500)}, entries[1].Metadata)
}

func TestAuditRepository_DeleteOlderThan(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repos.Audit.Write(ctx, domain.AuditEntry{Source: "a", Message: "old", CreatedAt: now.Add(-10 * 24 * time.Hour)}))
	require.NoError(t, repos.Audit.Write(ctx, domain.AuditEntry{Source: "a", Message: "older", CreatedAt: now.Add(-8 * 24 * time.Hour)}))
	require.NoError(t, repos.Audit.Write(ctx, domain.AuditEntry{Source: "a", Message: "fresh", CreatedAt: now.Add(-time.Hour)}))

	deleted, err := repos.Audit.DeleteOlderThan(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	entries, err := repos.Audit.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].Message)
}

func TestMetadataSQL(t *testing.T) {
	var m metadataSQL
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	require.NoError(t, m.Scan([]byte(`{"a":"b"}`)))
	assert.Equal(t, metadataSQL{"a": "b"}, m)

	require.Error(t, m.Scan("not json"))
}
