package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// GenerationCache keeps per-user token-generation counters in redis so the
// auth middleware does not hit the users collection on every request. The
// TTL bounds how long a stale counter can linger if an invalidation is lost.
type GenerationCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewGenerationCache(client *redisv9.Client, ttl time.Duration) *GenerationCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &GenerationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *GenerationCache) Get(ctx context.Context, userID string) (int, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redisv9.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get generation failed: %w", err)
	}

	generation, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached generation failed: %w", err)
	}
	return generation, true, nil
}

func (c *GenerationCache) Set(ctx context.Context, userID string, generation int) error {
	if err := c.client.Set(ctx, c.key(userID), strconv.Itoa(generation), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set generation failed: %w", err)
	}
	return nil
}

func (c *GenerationCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete generation failed: %w", err)
	}
	return nil
}

func (c *GenerationCache) key(userID string) string {
	return "user:generation:" + userID
}
