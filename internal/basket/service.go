package basket

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Martynas09/shop-browser/internal/events"
	"github.com/Martynas09/shop-browser/internal/obs"
)

// ErrNotFound indicates the requested basket line could not be located.
var ErrNotFound = errors.New("basket: line not found")

// ErrInvalidQuantity is returned when a quantity below 1 is requested.
var ErrInvalidQuantity = errors.New("basket: quantity must be at least 1")

// Service owns the live Basket value. Every mutation runs under one lock:
// apply a pure transformation, persist, then notify subscribers. The save
// happens inside the critical section, so a save can never overlap a later
// mutation.
type Service struct {
	mu      sync.Mutex
	store   *Store
	bus     *events.Bus
	logger  zerolog.Logger
	current Basket
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store  *Store
	Bus    *events.Bus
	Logger zerolog.Logger
}

// NewService constructs a Service with an empty in-memory basket.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("basket: store is required")
	}
	return &Service{
		store:   cfg.Store,
		bus:     cfg.Bus,
		logger:  cfg.Logger,
		current: New(),
	}, nil
}

// Load restores the persisted basket. Called once at startup. Corrupt
// state is discarded with a warning and an empty basket takes its place.
func (s *Service) Load(ctx context.Context) error {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			s.logger.Warn().Err(err).Msg("discarding corrupt persisted basket")
			loaded = New()
		} else {
			return err
		}
	}
	s.mu.Lock()
	s.current = loaded
	s.updateGauges()
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current basket.
func (s *Service) Snapshot() Basket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Add creates a line for the product or increments an existing one.
func (s *Service) Add(ctx context.Context, shop, id string) (Basket, error) {
	return s.apply(ctx, "add", events.TopicLineAdded, shop, map[string]any{"productId": id},
		func(b Basket) (Basket, error) {
			return Add(b, shop, id), nil
		})
}

// Remove deletes the matching line.
func (s *Service) Remove(ctx context.Context, shop, id string) (Basket, error) {
	return s.apply(ctx, "remove", events.TopicLineRemoved, shop, map[string]any{"productId": id},
		func(b Basket) (Basket, error) {
			if _, ok := b.Find(shop, id); !ok {
				return b, ErrNotFound
			}
			return Remove(b, shop, id), nil
		})
}

// ToggleChecked flips the purchased flag of the matching line.
func (s *Service) ToggleChecked(ctx context.Context, shop, id string) (Basket, error) {
	return s.apply(ctx, "toggle_checked", events.TopicLineChecked, shop, map[string]any{"productId": id},
		func(b Basket) (Basket, error) {
			if _, ok := b.Find(shop, id); !ok {
				return b, ErrNotFound
			}
			return ToggleChecked(b, shop, id), nil
		})
}

// SetQuantity replaces the line's quantity. Quantities below 1 are rejected
// as a no-op and the basket stays unchanged.
func (s *Service) SetQuantity(ctx context.Context, shop, id string, qty int) (Basket, error) {
	return s.apply(ctx, "set_quantity", events.TopicQuantityChanged, shop, map[string]any{"productId": id, "qty": qty},
		func(b Basket) (Basket, error) {
			if qty < 1 {
				return b, ErrInvalidQuantity
			}
			if _, ok := b.Find(shop, id); !ok {
				return b, ErrNotFound
			}
			return SetQuantity(b, shop, id, qty), nil
		})
}

// ClearChecked removes all purchased lines for the shop.
func (s *Service) ClearChecked(ctx context.Context, shop string) (Basket, error) {
	return s.apply(ctx, "clear_checked", events.TopicCheckedCleared, shop, nil,
		func(b Basket) (Basket, error) {
			return ClearChecked(b, shop), nil
		})
}

func (s *Service) apply(ctx context.Context, op, topic, shop string, payload any, fn func(Basket) (Basket, error)) (Basket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current)
	if err != nil {
		s.countOp(op, "rejected")
		return s.current.Clone(), err
	}
	if err := s.store.Save(ctx, next); err != nil {
		// The in-memory value only advances once the save landed.
		s.countOp(op, "error")
		return s.current.Clone(), err
	}
	s.current = next
	s.countOp(op, "ok")
	s.updateGauges()
	if s.bus != nil {
		if _, err := s.bus.Emit(ctx, topic, shop, payload); err != nil {
			s.logger.Error().Err(err).Str("topic", topic).Msg("notify basket subscribers")
		}
	}
	return next.Clone(), nil
}

func (s *Service) countOp(op, result string) {
	if obs.BasketOpsTotal != nil {
		obs.BasketOpsTotal.WithLabelValues(op, result).Inc()
	}
}

func (s *Service) updateGauges() {
	if obs.BasketLines == nil {
		return
	}
	obs.BasketLines.Reset()
	for shop, lines := range s.current {
		obs.BasketLines.WithLabelValues(shop).Set(float64(len(lines)))
	}
}
