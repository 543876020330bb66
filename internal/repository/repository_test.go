package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")

	repos, cleanup, err := Open(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "sqlite", repos.Backend)

	categories, err := repos.Categories.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestOpen_PostgresUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Open(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	assert.Error(t, err)
}
