package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDatabase_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campuslink.db")

	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "user", []byte("v")))

	v, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestOpenDatabase_Reentrant(t *testing.T) {
	// Running migrations twice against the same file must be a no-op.
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campuslink.db")

	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
