package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellandashawn/fignite/internal/domain"
)

const (
	keyPrefix = "fignite:draft:"

	// Abandoned drafts expire on their own; a completed checkout clears
	// the slot long before this.
	defaultTTL = 24 * time.Hour
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *RedisStore) Save(ctx context.Context, key string, d domain.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = s.client.Set(ctx, keyPrefix+key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set -> %w", err)
	}

	return nil
}

func (s *RedisStore) Read(ctx context.Context, key string) (domain.Draft, error) {
	payload, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Draft{}, ErrNotFound
		}

		return domain.Draft{}, fmt.Errorf("redis.Get -> %w", err)
	}

	var d domain.Draft
	if err = json.Unmarshal(payload, &d); err != nil {
		return domain.Draft{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return d, nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis.Del -> %w", err)
	}

	return nil
}
