package override_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/platform/kvstore"
)

func newRepo(t *testing.T) *override.KVRepository {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return override.NewKVRepository(store, slog.Default())
}

/*
TestKVRepository_EmptyOnFirstLoad verifies an unwritten store loads as an empty map.
*/
func TestKVRepository_EmptyOnFirstLoad(t *testing.T) {
	repo := newRepo(t)

	overrides, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, overrides)
	assert.Empty(t, overrides)
}

/*
TestKVRepository_RoundTrip verifies a saved map loads back structurally equal.
*/
func TestKVRepository_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	in := map[string]override.Override{
		"r1": {Year: "1503", Region: "Jiangnan", Categories: []string{"Symbolism"}},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

/*
TestKVRepository_MalformedStateResets verifies corrupt stored JSON is treated
as an empty map instead of an error.
*/
func TestKVRepository_MalformedStateResets(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "artStudy.overrides.v3", []byte("{not json")))

	repo := override.NewKVRepository(store, slog.Default())
	overrides, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

/*
TestOverride_StorageShape verifies the JSON field names stay compatible with
the v3 browser layout, including the legacy unified background field.
*/
func TestOverride_StorageShape(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	legacy := []byte(`{"r1":{"historicalBackground":"旧字段","productionPlace":"景德镇"}}`)
	require.NoError(t, store.Set(ctx, "artStudy.overrides.v3", legacy))

	repo := override.NewKVRepository(store, slog.Default())
	overrides, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Contains(t, overrides, "r1")
	assert.Equal(t, "旧字段", overrides["r1"].HistoricalBackground)
	assert.Equal(t, "景德镇", overrides["r1"].ProductionPlace)
}
