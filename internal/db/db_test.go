package db

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radio-mediaplan/internal/adapter/postgres"
	"radio-mediaplan/internal/adapter/static"
	"radio-mediaplan/internal/config/configs"
)

// TestCatalogRoundTrip needs a disposable database in PSQL_TEST_ADDRESS.
func TestCatalogRoundTrip(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, Migrate(addr))
	require.NoError(t, Migrate(addr), "second run must be a no-op")

	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, configs.Postgres{Addr: *u, MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	want := static.DefaultCatalog()
	require.NoError(t, Seed(ctx, pool, want))
	require.NoError(t, Seed(ctx, pool, want))

	got, err := postgres.NewCatalogRepository(pool).LoadCatalog(ctx)
	require.NoError(t, err)
	require.NoError(t, got.Validate())

	assert.Equal(t, want.Stations, got.Stations)
	require.Len(t, got.Slots, len(want.Slots))
	for i := range want.Slots {
		assert.Equal(t, want.Slots[i].Label, got.Slots[i].Label)
		assert.True(t, want.Slots[i].Weight.Equal(got.Slots[i].Weight))
	}
	require.Len(t, got.Tiers, len(want.Tiers))
	for i, tier := range want.Tiers.Sorted() {
		assert.Equal(t, tier.Stations, got.Tiers[i].Stations)
		assert.True(t, tier.PricePerSecond.Equal(got.Tiers[i].PricePerSecond))
	}
}
