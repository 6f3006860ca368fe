package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fastlp/internal/chainhub"
	"fastlp/internal/platform/config"
	"fastlp/pkg/platform/sentinel"
)

const keyPrefix = "chainhub:prefix:"

// RedisStore shares prefix registrations between instances. Entries carry a
// TTL and are re-seeded on startup, so a chain removed by operations ages out
// everywhere within config.ChainCacheTTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, entry chainhub.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal chain entry: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+entry.Prefix, payload, config.ChainCacheTTL).Err(); err != nil {
		return fmt.Errorf("store chain entry: %w", err)
	}
	return nil
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) (chainhub.Entry, error) {
	payload, err := s.client.Get(ctx, keyPrefix+prefix).Bytes()
	if errors.Is(err, redis.Nil) {
		return chainhub.Entry{}, sentinel.ErrNotFound
	}
	if err != nil {
		return chainhub.Entry{}, fmt.Errorf("load chain entry: %w", err)
	}

	var entry chainhub.Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return chainhub.Entry{}, fmt.Errorf("unmarshal chain entry: %w", err)
	}
	return entry, nil
}
