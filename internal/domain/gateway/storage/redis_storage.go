package storage

import (
	"context"
	"errors"
	"time"

	"clima-api/pkg/redis"
)

// redisStorage persists each key as one Redis string value without TTL.
type redisStorage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisStorage creates a redis-backed Storage. Keys are namespaced with
// the given prefix.
func NewRedisStorage(client *redis.Client, prefix string) Storage {
	return &redisStorage{
		client:  client,
		prefix:  prefix,
		timeout: 3 * time.Second,
	}
}

func (s *redisStorage) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "::" + key
}

func (s *redisStorage) Read(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.GetBytes(ctx, s.fullKey(key))
	if errors.Is(err, redis.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *redisStorage) Write(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.client.Set(ctx, s.fullKey(key), value, 0)
}
