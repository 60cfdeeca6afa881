package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shopsight/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

type AnalyticsCache struct {
	client *redis.Client
}

func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{
		client: client,
	}
}

func summaryKey(storeID string) string {
	return fmt.Sprintf("analytics:summary:%s", storeID)
}

// Get returns the cached summary, or (nil, nil) on a miss.
func (c *AnalyticsCache) Get(ctx context.Context, storeID string) (*domain.AnalyticsSummary, error) {
	val, err := c.client.Get(ctx, summaryKey(storeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary from Redis: %w", err)
	}

	var summary domain.AnalyticsSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached summary: %w", err)
	}

	return &summary, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, storeID string, summary *domain.AnalyticsSummary, ttl time.Duration) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKey(storeID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store summary in Redis: %w", err)
	}

	return nil
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, storeID string) error {
	if err := c.client.Del(ctx, summaryKey(storeID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}

	return nil
}
