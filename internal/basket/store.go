package basket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the fixed record name under which the basket persists.
const DefaultKey = "basket"

// ErrCorrupt reports that the persisted record could not be decoded.
var ErrCorrupt = errors.New("basket: persisted state is corrupt")

// Store persists the whole basket as a single JSON record in a key-value
// store. The record has no expiry; the basket survives across sessions.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore constructs a store bound to the given record key.
func NewStore(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Load fetches the persisted basket. A missing record yields an empty
// basket. Malformed data yields an empty basket together with ErrCorrupt
// so the caller can decide to discard it.
func (s *Store) Load(ctx context.Context) (Basket, error) {
	if s == nil || s.client == nil {
		return New(), errors.New("basket: store not configured")
	}
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(), nil
		}
		return New(), fmt.Errorf("basket: load %q: %w", s.key, err)
	}
	var b Basket
	if err := json.Unmarshal(data, &b); err != nil {
		return New(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if b == nil {
		b = New()
	}
	return b, nil
}

// Save writes the basket back under the fixed key.
func (s *Store) Save(ctx context.Context, b Basket) error {
	if s == nil || s.client == nil {
		return errors.New("basket: store not configured")
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("basket: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("basket: save %q: %w", s.key, err)
	}
	return nil
}

// Ping probes the underlying store for readiness.
func (s *Store) Ping(ctx context.Context, timeout time.Duration) error {
	if s == nil || s.client == nil {
		return errors.New("basket: store not configured")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.client.Ping(ctx).Err()
}
