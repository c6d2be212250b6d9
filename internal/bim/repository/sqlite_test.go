package repository

import (
	"context"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "bim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init("../../../migrations/001_init_generations.sql"))
	return repo
}

func TestRepository_InsertAndGet(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	rec := GenerationRecord{
		ID:           "gen-1",
		FileName:     "bim_abc.ifc",
		FileURL:      "/tmp/bim_abc.ifc",
		ElementCount: 2,
		Created:      "WALL:MyWall; DOOR:Door",
		Warnings:     "Element #2 (WINDOW): not implemented",
	}
	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.GetByID(ctx, "gen-1")
	require.NoError(t, err)
	assert.Equal(t, rec.FileName, got.FileName)
	assert.Equal(t, rec.ElementCount, got.ElementCount)
	assert.Equal(t, rec.Created, got.Created)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Insert(ctx, GenerationRecord{
			ID:       id,
			FileName: "bim_" + id + ".ifc",
			FileURL:  "/tmp/bim_" + id + ".ifc",
		}))
	}

	records, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJoinList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "a; b", JoinList([]string{"a", "b"}))
}
