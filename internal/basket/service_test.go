package basket_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/basket"
	"github.com/Martynas09/shop-browser/internal/events"
)

type recordingNotifier struct {
	topics []string
}

func (r *recordingNotifier) Notify(_ context.Context, event events.Event) error {
	r.topics = append(r.topics, event.Topic)
	return nil
}

func newTestService(t *testing.T) (*basket.Service, *recordingNotifier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	notifier := &recordingNotifier{}
	bus := &events.Bus{}
	bus.Subscribe(notifier)

	svc, err := basket.NewService(basket.ServiceConfig{
		Store:  basket.NewStore(client, ""),
		Bus:    bus,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Load(context.Background()))
	return svc, notifier, mr
}

func TestServiceAddPersistsAndNotifies(t *testing.T) {
	svc, notifier, mr := newTestService(t)
	ctx := context.Background()

	b, err := svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)
	require.Equal(t, 1, b.LineCount())
	require.Equal(t, []string{events.TopicLineAdded}, notifier.topics)
	require.True(t, mr.Exists(basket.DefaultKey))
}

func TestServiceMutationsSurviveRestart(t *testing.T) {
	svc, _, mr := newTestService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)

	// A fresh service against the same store sees the saved state.
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	fresh, err := basket.NewService(basket.ServiceConfig{
		Store:  basket.NewStore(client, ""),
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	require.NoError(t, fresh.Load(ctx))

	line, ok := fresh.Snapshot().Find("lidl", "lidl-0")
	require.True(t, ok)
	require.Equal(t, 2, line.Qty)
}

func TestServiceLoadDiscardsCorruptState(t *testing.T) {
	svc, _, mr := newTestService(t)
	require.NoError(t, mr.Set(basket.DefaultKey, "][ garbage"))
	require.NoError(t, svc.Load(context.Background()))
	require.Empty(t, svc.Snapshot())
}

func TestServiceRemoveUnknownLine(t *testing.T) {
	svc, notifier, _ := newTestService(t)
	_, err := svc.Remove(context.Background(), "lidl", "lidl-99")
	require.ErrorIs(t, err, basket.ErrNotFound)
	require.Empty(t, notifier.topics)
}

func TestServiceSetQuantityRejectsBelowOne(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)

	_, err = svc.SetQuantity(ctx, "lidl", "lidl-0", 0)
	require.ErrorIs(t, err, basket.ErrInvalidQuantity)

	line, _ := svc.Snapshot().Find("lidl", "lidl-0")
	require.Equal(t, 1, line.Qty)
}

func TestServiceToggleAndClearChecked(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "lidl", "lidl-1")
	require.NoError(t, err)

	_, err = svc.ToggleChecked(ctx, "lidl", "lidl-0")
	require.NoError(t, err)

	b, err := svc.ClearChecked(ctx, "lidl")
	require.NoError(t, err)
	lines := b.Lines("lidl")
	require.Len(t, lines, 1)
	require.Equal(t, "lidl-1", lines[0].ID)
}

func TestServiceSnapshotIsACopy(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "lidl", "lidl-0")
	require.NoError(t, err)

	snap := svc.Snapshot()
	snap["lidl"][0].Qty = 99

	line, _ := svc.Snapshot().Find("lidl", "lidl-0")
	require.Equal(t, 1, line.Qty)
}
