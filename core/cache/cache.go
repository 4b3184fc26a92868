package cache

import (
	"context"
	"fmt"
	"rezzy-api/core/constants"
	"rezzy-api/core/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client used for token blacklisting and the
// active-request cache.
type Cache struct {
	client *redis.Client
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
}

func InitCache(config CacheConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping redis", err)
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", config.Addr, "db", config.DB)
	return &Cache{client: client}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// ========================================
// Token blacklist
// ========================================

// AddToTokenBlacklist invalidates a JWT until its natural expiry.
func (c *Cache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ========================================
// Active reservation request cache
// ========================================

// SetRezzy caches the serialized active request for a user.
func (c *Cache) SetRezzy(ctx context.Context, email string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyRezzy+email, payload, ttl).Err()
}

// GetRezzy returns the cached request, or redis.Nil error when absent.
func (c *Cache) GetRezzy(ctx context.Context, email string) ([]byte, error) {
	return c.client.Get(ctx, constants.RedisKeyRezzy+email).Bytes()
}

// DeleteRezzy drops the cached request. Safe to call when absent.
func (c *Cache) DeleteRezzy(ctx context.Context, email string) error {
	return c.client.Del(ctx, constants.RedisKeyRezzy+email).Err()
}

// IsCacheMiss reports whether err just means "key not found".
func IsCacheMiss(err error) bool {
	return err == redis.Nil
}
