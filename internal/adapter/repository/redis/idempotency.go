package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// pendingMarker reserves a key while the first request is still in flight.
const pendingMarker = "pending"

// IdempotencyStore implements usecase.IdempotencyStore using Redis. Keys are
// reserved with SETNX so two concurrent requests carrying the same key race
// on a single atomic write.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "transfer:idempotency:",
	}
}

// CheckAndSet atomically reserves key if unseen.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	value := response
	if value == nil {
		value = []byte(pendingMarker)
	}

	set, err := s.client.SetNX(ctx, fullKey, value, ttl).Result()
	if err != nil {
		return false, nil, err
	}

	if set {
		return false, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			// Reservation expired between SETNX and GET.
			return false, nil, nil
		}

		return false, nil, err
	}

	if string(existing) == pendingMarker {
		return true, nil, nil
	}

	return true, existing, nil
}

// Update records the final response for key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	fullKey := s.prefix + key

	return s.client.Set(ctx, fullKey, response, ttl).Err()
}

// Delete releases a reserved key so the request may be retried.
func (s *IdempotencyStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
