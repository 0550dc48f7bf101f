package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunMigrations_EmptyDirectoryFails(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db, t.TempDir(), zap.NewNop())
	assert.ErrorContains(t, err, "failed to load migrations")
}

func TestGetMigrationStatus_EmptyDirectoryFails(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = GetMigrationStatus(context.Background(), db, t.TempDir())
	assert.Error(t, err)
}

func TestMigrationProvider_LoadsRepositoryMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	provider, err := newMigrationProvider(db, migrationsDir)
	require.NoError(t, err)

	sources := provider.ListSources()
	require.Len(t, sources, len(expectedTables))
	for i, source := range sources {
		assert.Equal(t, int64(i+1), source.Version)
	}
}
