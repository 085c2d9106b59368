// Package cache provides redis-backed caching for hot read paths.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetlens/backend/internal/application/usecase/report"
)

// statsKeyPrefix namespaces dashboard stats keys.
const statsKeyPrefix = "dashboard:stats:"

// StatsCache caches dashboard stats in redis with a short TTL. Stale entries
// simply expire; nothing invalidates them on write.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new StatsCache instance.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

// GetStats returns the cached stats for a user, or nil on a miss.
func (c *StatsCache) GetStats(ctx context.Context, userID uuid.UUID) (*report.GetDashboardStatsOutput, error) {
	data, err := c.client.Get(ctx, statsKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var stats report.GetDashboardStatsOutput
	if err := json.Unmarshal(data, &stats); err != nil {
		// A corrupt entry is treated as a miss and left to expire.
		slog.Warn("Discarding corrupt stats cache entry", "user_id", userID, "error", err)
		return nil, nil
	}
	return &stats, nil
}

// SetStats stores the stats for a user under the configured TTL.
func (c *StatsCache) SetStats(ctx context.Context, userID uuid.UUID, stats *report.GetDashboardStatsOutput) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if err := c.client.Set(ctx, statsKeyPrefix+userID.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}
