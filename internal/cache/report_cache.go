package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/models"
)

// ReportCacheStats tracks cache performance counters.
type ReportCacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	mu     sync.RWMutex
}

// RedisReportCache stores generated horoscope reports in Redis keyed by
// report ID. A nil client degrades to a pass-through: every Get misses
// and every Set is dropped, so the service runs without Redis.
type RedisReportCache struct {
	redis  *redis.Client
	ttl    time.Duration
	stats  *ReportCacheStats
	prefix string
	logger *logrus.Logger
}

// NewRedisReportCache creates the report cache. client may be nil.
func NewRedisReportCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisReportCache {
	return &RedisReportCache{
		redis:  client,
		ttl:    ttl,
		stats:  &ReportCacheStats{},
		prefix: "horoscope_report:",
		logger: logger,
	}
}

// Get retrieves a report by its ID.
func (c *RedisReportCache) Get(ctx context.Context, id string) (*models.HoroscopeReport, bool) {
	if c.redis == nil {
		c.miss()
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.prefix+id).Result()
	if err == redis.Nil {
		c.miss()
		return nil, false
	}
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("report_id", id).Warn("Redis error fetching report")
		}
		c.miss()
		return nil, false
	}

	var report models.HoroscopeReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("report_id", id).Warn("Cannot deserialize cached report")
		}
		c.miss()
		return nil, false
	}

	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	return &report, true
}

// Set stores a report under its ID with the configured TTL. Failures
// are logged and swallowed; caching is best effort.
func (c *RedisReportCache) Set(ctx context.Context, report *models.HoroscopeReport) {
	if c.redis == nil || report == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("report_id", report.ID).Warn("Cannot serialize report")
		}
		return
	}
	if err := c.redis.Set(ctx, c.prefix+report.ID, data, c.ttl).Err(); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("report_id", report.ID).Warn("Redis error storing report")
		}
		return
	}

	c.stats.mu.Lock()
	c.stats.Sets++
	c.stats.mu.Unlock()
}

// Clear removes every cached report using SCAN to avoid blocking Redis.
func (c *RedisReportCache) Clear(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}

	var keys []string
	iter := c.redis.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.redis.Del(ctx, keys...).Err()
}

// Stats returns a snapshot of the counters.
func (c *RedisReportCache) Stats() ReportCacheStats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()
	return ReportCacheStats{
		Hits:   c.stats.Hits,
		Misses: c.stats.Misses,
		Sets:   c.stats.Sets,
	}
}

func (c *RedisReportCache) miss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}
