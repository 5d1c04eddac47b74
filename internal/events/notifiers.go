package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Martynas09/shop-browser/internal/obs"
)

// LogNotifier writes a structured log line for every emitted event.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, event Event) error {
	n.Logger.Info().
		Str("event_id", event.ID.String()).
		Str("topic", event.Topic).
		Str("shop", event.Shop).
		RawJSON("payload", event.Payload).
		Time("occurred_at", event.OccurredAt).
		Msg("domain_event")
	return nil
}

// MetricsNotifier counts emitted events per topic.
type MetricsNotifier struct{}

// Notify implements Notifier.
func (MetricsNotifier) Notify(_ context.Context, event Event) error {
	if obs.EventsEmittedTotal != nil {
		obs.EventsEmittedTotal.WithLabelValues(event.Topic).Inc()
	}
	return nil
}
