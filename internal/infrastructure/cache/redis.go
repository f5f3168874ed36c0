package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamebuddy-user/internal/domain/user"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisUserCache caches user views as JSON under user:view:<id>. It backs
// only the directory read path; all consistency-critical reads bypass it.
type RedisUserCache struct {
	client *redis.Client
}

func NewRedisUserCache(addr, password string, db int) *RedisUserCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisUserCache{
		client: rdb,
	}
}

func key(id uuid.UUID) string {
	return fmt.Sprintf("user:view:%s", id.String())
}

func (r *RedisUserCache) GetView(ctx context.Context, id uuid.UUID) (*user.View, error) {
	val, err := r.client.Get(ctx, key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user view from cache: %w", err)
	}

	var view user.View
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, fmt.Errorf("invalid user view in cache: %w", err)
	}

	return &view, nil
}

func (r *RedisUserCache) SetView(ctx context.Context, view *user.View, ttl time.Duration) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal user view: %w", err)
	}

	if err := r.client.Set(ctx, key(view.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set user view in cache: %w", err)
	}

	return nil
}

func (r *RedisUserCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user view %s: %w", id, err)
	}

	return nil
}

func (r *RedisUserCache) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisUserCache) Close() error {
	return r.client.Close()
}

var _ user.Cache = (*RedisUserCache)(nil)
