package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/repository"
)

func TestReadNames(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		column int
		header bool
		want   []string
	}{
		{name: "single column", input: "curry\nramen\n", want: []string{"curry", "ramen"}},
		{name: "header skipped", input: "name,kcal\ncurry,800\nsoba,400\n", header: true, want: []string{"curry", "soba"}},
		{name: "second column", input: "1,curry\n2,\"udon, hot\"\n3\n", column: 1, want: []string{"curry", "udon, hot"}},
		{name: "bom removed", input: "\ufeffcurry\n", want: []string{"curry"}},
		{name: "empty", input: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readNames(strings.NewReader(tt.input), tt.column, tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := readNames(strings.NewReader("a"), -1, false)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "menu.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte("name\ncurry\nramen\ncurry\n \n"), 0o600))
	dsn := "file:" + filepath.Join(dir, "test.db") + "?cache=shared&mode=rwc"

	ctx := context.Background()
	require.NoError(t, run(ctx, Opts{DB: dsn, File: csvFile, Header: true}))

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: dsn})
	require.NoError(t, err)
	defer repos.Close()
	count, err := repos.Menu.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	err = run(ctx, Opts{DB: dsn, File: filepath.Join(dir, "missing.csv")})
	require.Error(t, err)
}
