// Package redisstore persists gateway records as Redis string values.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"budgetly/internal/storage"
)

// DefaultPrefix namespaces the gateway keys, e.g. "budgetly:budget".
const DefaultPrefix = "budgetly:"

// Store is a Redis-backed storage.Gateway. Keys are namespaced with prefix.
type Store struct {
	client *redis.Client
	prefix string
}

// Connect opens a client and verifies the connection with PING.
func Connect(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// New creates a Store on an existing client.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

var _ storage.Gateway = (*Store)(nil)

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Save writes the encoded value without expiry.
func (s *Store) Save(key string, value any) error {
	data, err := storage.Encode(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Load reads the value under key into dest.
func (s *Store) Load(key string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := storage.Decode(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
