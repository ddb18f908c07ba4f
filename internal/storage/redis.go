package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/adventure-engine/pkg/save"
)

const (
	saveKeyPrefix = "save:"
	saveIndexKey  = "saves"
)

// RedisStore keeps save documents in Redis. Each save lives under
// "save:<filename>" and a sorted set scored by write time indexes them.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStore implements save.Store
var _ save.Store = (*RedisStore)(nil)

// NewRedisStore connects using a redis:// URL. A zero ttl keeps saves
// forever.
func NewRedisStore(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return NewRedisStoreWithClient(redis.NewClient(opt), ttl, logger), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{client: client, logger: logger, ttl: ttl}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStore) Write(ctx context.Context, name string, data []byte) error {
	now := time.Now()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, saveKeyPrefix+name, data, r.ttl)
		pipe.ZAdd(ctx, saveIndexKey, redis.Z{Score: float64(now.UnixMilli()), Member: name})
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to write save", "file", name, "error", err)
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func (r *RedisStore) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := r.client.Get(ctx, saveKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", save.ErrNotFound, name)
		}
		r.logger.Error("Failed to read save", "file", name, "error", err)
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Exists(ctx context.Context, name string) (bool, error) {
	n, err := r.client.Exists(ctx, saveKeyPrefix+name).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check save: %w", err)
	}
	return n > 0, nil
}

// List returns indexed saves. Index entries whose document has expired are
// dropped from the index as they are found.
func (r *RedisStore) List(ctx context.Context) ([]save.Entry, error) {
	members, err := r.client.ZRangeWithScores(ctx, saveIndexKey, 0, -1).Result()
	if err != nil {
		r.logger.Error("Failed to list saves", "error", err)
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	entries := make([]save.Entry, 0, len(members))
	var stale []any
	for _, z := range members {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}
		exists, err := r.Exists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !exists {
			stale = append(stale, name)
			continue
		}
		entries = append(entries, save.Entry{Name: name, ModTime: time.UnixMilli(int64(z.Score))})
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, saveIndexKey, stale...).Err(); err != nil {
			r.logger.Warn("Failed to prune save index", "error", err)
		} else {
			r.logger.Debug("Pruned expired saves from index", "count", len(stale))
		}
	}
	return entries, nil
}

func (r *RedisStore) Delete(ctx context.Context, name string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, saveKeyPrefix+name)
		pipe.ZRem(ctx, saveIndexKey, name)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to delete save", "file", name, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", save.ErrNotFound, name)
	}
	return nil
}
