package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"galeria/backend/internal/logger"
)

const defaultRedisPrefix = "galeria:tr:"

// RedisCache shares translations between instances. Writes use SETNX so the
// first translation stored for a key wins.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// NewRedisCache connects to url and verifies the connection.
func NewRedisCache(ctx context.Context, url, keyPrefix string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisCacheFromClient(client, keyPrefix, ttl), nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = defaultRedisPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Get treats any Redis error as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		logger.Warn("translation cache read failed", "module", "service", "action", "fetch", "resource", "cache", "result", "failed", "backend", "redis", "error", err)
		return "", false
	}
	return val, true
}

func (c *RedisCache) Add(ctx context.Context, key, value string) bool {
	stored, err := c.client.SetNX(ctx, c.keyPrefix+key, value, c.ttl).Result()
	if err != nil {
		logger.Warn("translation cache write failed", "module", "service", "action", "save", "resource", "cache", "result", "failed", "backend", "redis", "error", err)
		return false
	}
	return stored
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
