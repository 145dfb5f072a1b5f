package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the record is stored under when none is
// configured.
const DefaultRedisKey = "entitlement:subscription"

// RedisStore persists the record as a JSON blob under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store. An empty key falls back to
// DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrInvalidConfig
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load fetches and decodes the record. A missing key or an unparsable blob
// degrades to defaults; only backend unavailability is reported, and even
// then a usable default record is returned alongside the error.
func (s *RedisStore) Load(ctx context.Context) (*Subscription, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultSubscription(), nil
		}
		return DefaultSubscription(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return DefaultSubscription(), nil
	}
	return &sub, nil
}

// Save overwrites the blob. No TTL: the record lives as long as the
// installation.
func (s *RedisStore) Save(ctx context.Context, sub *Subscription) error {
	if sub == nil {
		return ErrInvalidConfig
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
