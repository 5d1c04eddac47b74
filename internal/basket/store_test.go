package basket_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/basket"
)

func newTestStore(t *testing.T) (*basket.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return basket.NewStore(client, ""), mr
}

func TestStoreLoadMissingRecordYieldsEmptyBasket(t *testing.T) {
	store, _ := newTestStore(t)
	b, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "barbora", "barbora-3")
	b = basket.ToggleChecked(b, "lidl", "lidl-0")

	require.NoError(t, store.Save(ctx, b))
	restored, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, b, restored)
}

func TestStoreUsesFixedKey(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), basket.Add(basket.New(), "lidl", "lidl-0")))
	require.True(t, mr.Exists(basket.DefaultKey))
}

func TestStoreLoadCorruptRecordReportsErrCorrupt(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set(basket.DefaultKey, "{not json"))

	b, err := store.Load(context.Background())
	require.ErrorIs(t, err, basket.ErrCorrupt)
	require.Empty(t, b)
}

func TestStorePing(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, store.Ping(context.Background(), time.Second))
	mr.Close()
	require.Error(t, store.Ping(context.Background(), time.Second))
}
