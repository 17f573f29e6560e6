package duckdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugout-labs/rotodash/internal/fault"
)

func TestOpenInMemory(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.ExecContext(ctx, "CREATE TABLE t (id INTEGER, name TEXT)"))
	require.NoError(t, db.ExecContext(ctx, "INSERT INTO t VALUES (1, 'a'), (2, 'b')"))

	rows, err := db.QueryContext(ctx, "SELECT COUNT(*) FROM t")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var count int
	require.NoError(t, rows.Scan(&count))
	require.NoError(t, rows.Err())
	assert.Equal(t, 2, count)
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := OpenReadOnly(context.Background(), filepath.Join(t.TempDir(), "absent.duckdb"))
	require.Error(t, err)
	assert.True(t, fault.IsNotFound(err), "missing file should be a NotFoundError, got %v", err)
}

func TestOpenReadOnlySeesWriterData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fantasy.duckdb")

	w, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, w.ExecContext(ctx, "CREATE TABLE hitters (player TEXT, hr INTEGER)"))
	require.NoError(t, w.ExecContext(ctx, "INSERT INTO hitters VALUES ('Test Player', 10)"))
	require.NoError(t, w.Close())

	r, err := OpenReadOnly(ctx, path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	exists, err := r.TableExists(ctx, "hitters")
	require.NoError(t, err)
	assert.True(t, exists)

	// Writes must be rejected on a read-only handle.
	err = r.ExecContext(ctx, "INSERT INTO hitters VALUES ('x', 1)")
	assert.Error(t, err)
}

func TestTableExistsFalseForUnknownTable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	exists, err := db.TableExists(ctx, "pitchers")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTableMetadata(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.ExecContext(ctx, "CREATE TABLE hitters (player TEXT, hr INTEGER, avg DOUBLE)"))
	require.NoError(t, db.ExecContext(ctx, "INSERT INTO hitters VALUES ('a', 1, 0.3)"))

	cols, rowCount, err := db.TableMetadata(ctx, "hitters")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, "player", cols[0].Name)
	assert.Equal(t, int64(1), rowCount)
}

func TestTableMetadataUnknownTableIsNotFound(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, _, err = db.TableMetadata(ctx, "nope")
	require.Error(t, err)
	assert.True(t, fault.IsNotFound(err))
}
