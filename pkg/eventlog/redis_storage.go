package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list key used when none is configured.
const DefaultRedisKey = "entitlement:events"

// RedisStorage keeps the log in a Redis list, newest entries at the head.
// LPUSH followed by LTRIM gives the FIFO eviction bound natively.
type RedisStorage struct {
	client   *redis.Client
	key      string
	capacity int
}

// NewRedisStorage creates a Redis-backed log. An empty key falls back to
// DefaultRedisKey; a capacity of zero or less falls back to
// DefaultCapacity.
func NewRedisStorage(client *redis.Client, key string, capacity int) (*RedisStorage, error) {
	if client == nil {
		return nil, ErrStorageUnavailable
	}
	if key == "" {
		key = DefaultRedisKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RedisStorage{client: client, key: key, capacity: capacity}, nil
}

// Append pushes the event and trims the list back to capacity in one
// pipeline round trip.
func (s *RedisStorage) Append(ctx context.Context, event Event) error {
	if event.Name == "" {
		return ErrInvalidEvent
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, data)
	pipe.LTrim(ctx, s.key, 0, int64(s.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}

// List returns the log oldest-first. Entries that fail to decode are
// skipped rather than failing the whole read.
func (s *RedisStorage) List(ctx context.Context) ([]Event, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrStorageUnavailable, err)
	}

	events := make([]Event, 0, len(raw))
	for _, item := range raw {
		var event Event
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	slices.Reverse(events) // list head is newest
	return events, nil
}
