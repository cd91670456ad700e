package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"istitlaa/internal/scoring"
)

// ResultCache handles Redis operations for computed poll scores. Scores are
// recomputed on demand; the cache only shortcuts the dashboard listing.
type ResultCache interface {
	Get(ctx context.Context, pollID string) (*scoring.ScoreResult, error)
	Set(ctx context.Context, result *scoring.ScoreResult) error
	Invalidate(ctx context.Context, pollID string) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new score result cache
func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(pollID string) string {
	return fmt.Sprintf("poll:%s:score", pollID)
}

func (c *resultCache) Get(ctx context.Context, pollID string) (*scoring.ScoreResult, error) {
	data, err := c.client.Get(ctx, c.key(pollID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result scoring.ScoreResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *resultCache) Set(ctx context.Context, result *scoring.ScoreResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(result.PollID), data, c.ttl).Err()
}

func (c *resultCache) Invalidate(ctx context.Context, pollID string) error {
	return c.client.Del(ctx, c.key(pollID)).Err()
}
