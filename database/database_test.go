package database

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	assert.Equal(t, "file:app.db?"+dsnOptions, buildDSN("app.db"))
	assert.Equal(t, "file:app.db?mode=rwc&"+dsnOptions, buildDSN("file:app.db?mode=rwc"))
}

func TestInitializeDatabase_AppliesEmbeddedMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	states, err := Status(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, states)
	for _, s := range states {
		assert.True(t, s.Applied, s.Version)
	}

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notification_outbox").Scan(&n))
	assert.Zero(t, n)

	// Opening again is a no-op
	ran, err := Migrate(ctx, db, migrationsFS)
	require.NoError(t, err)
	assert.Empty(t, ran)
}

func TestMigrate_OrderAndFailure(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(filepath.Join(t.TempDir(), "order.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"migrations/002_second.sql": {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;")},
		"migrations/001_first.sql":  {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
	}
	ran, err := Migrate(ctx, db, fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first", "002_second"}, ran)

	fsys["migrations/003_broken.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE things (id INTEGER);")}
	_, err = Migrate(ctx, db, fsys)
	assert.ErrorContains(t, err, "003_broken")

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations WHERE version = '003_broken'").Scan(&n))
	assert.Zero(t, n, "a failed migration is not recorded")
}
