package dataset

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// KV минимальный интерфейс key-value хранилища
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisKV реализация KV поверх go-redis
type RedisKV struct {
	c *redis.Client
}

// NewRedisKV создает KV поверх готового клиента
func NewRedisKV(c *redis.Client) *RedisKV { return &RedisKV{c: c} }

// NewRedisClient создает клиента Redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.c.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.c.Del(ctx, key).Err()
}
