package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	sqliteStore := store.(*SQLite)
	version, dirty, err := sqliteStore.GetMigrationVersion()
	assert.Error(t, err, "migrations table does not exist yet")

	require.NoError(t, store.RunMigrations(ctx))

	version, dirty, err = sqliteStore.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	files, err := store.ListMovieFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMigration_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(ctx))
	require.NoError(t, store.RunMigrations(ctx))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.RunMigrations(ctx))

	version, dirty, err := reopened.(*SQLite).GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}
