package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

func TestScanStore_SaveAndGet(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()

	rec := domain.ScanRecord{
		ID:        "scan-1",
		Link:      "https://github.com/acme/demo",
		Owner:     "acme",
		Repo:      "demo",
		Ref:       "main",
		URLs:      []string{"u1", "u2"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "scan-1")
	require.NoError(t, err)
	assert.Equal(t, rec.Link, got.Link)
	assert.Equal(t, []string{"u1", "u2"}, got.URLs)

	got.URLs[0] = "mutated"
	again, _ := store.Get(ctx, "scan-1")
	assert.Equal(t, "u1", again.URLs[0], "stored record is isolated from callers")
}

func TestScanStore_GetNotFound(t *testing.T) {
	store := NewScanStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScanStore_ListNewestFirst(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, domain.ScanRecord{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestScanStore_Delete(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()
	_ = store.Save(ctx, domain.ScanRecord{ID: "x"})

	require.NoError(t, store.Delete(ctx, "x"))
	require.NoError(t, store.Delete(ctx, "x"))

	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
