package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// RedisStore keeps values as plain redis strings under a key prefix
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures a RedisStore
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore connects to redis and verifies the connection
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to connect to redis").
			WithDetail("addr", opts.Addr)
	}

	return NewRedisStoreWithClient(client, opts.Prefix), nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + key
}

// Get retrieves the value for key
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := rs.client.Get(ctx, rs.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get redis key %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores the value for key without expiry
func (rs *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := rs.client.Set(ctx, rs.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete redis key %s: %w", key, err)
	}
	return nil
}

// Close closes the redis client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
