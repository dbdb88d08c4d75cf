package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/models"
)

func newTestCache(t *testing.T) (*RedisReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisReportCache(client, time.Hour, nil), mr
}

func sampleReport(id string) *models.HoroscopeReport {
	return &models.HoroscopeReport{
		ID:    id,
		Birth: models.BirthData{Date: "1990-05-15", Time: "14:30:00", Timezone: "+05:30"},
		Sections: map[string]models.ReportSection{
			"yogas": {Status: models.SectionOK},
		},
	}
}

func TestReportCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleReport("r-1"))

	got, ok := c.Get(ctx, "r-1")
	require.True(t, ok)
	assert.Equal(t, "r-1", got.ID)
	assert.Equal(t, "1990-05-15", got.Birth.Date)
	assert.Equal(t, models.SectionOK, got.Sections["yogas"].Status)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
}

func TestReportCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.Get(context.Background(), "absent")
	assert.False(t, ok)
	assert.Equal(t, int64(1), c.Stats().Misses)
}

func TestReportCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleReport("r-ttl"))
	mr.FastForward(2 * time.Hour)

	_, ok := c.Get(ctx, "r-ttl")
	assert.False(t, ok)
}

func TestReportCacheClear(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleReport("r-1"))
	c.Set(ctx, sampleReport("r-2"))
	mr.Set("unrelated", "kept")

	require.NoError(t, c.Clear(ctx))

	_, ok := c.Get(ctx, "r-1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "r-2")
	assert.False(t, ok)
	assert.True(t, mr.Exists("unrelated"))
}

func TestReportCacheNilClientDegrades(t *testing.T) {
	c := NewRedisReportCache(nil, time.Hour, nil)
	ctx := context.Background()

	c.Set(ctx, sampleReport("r-1"))
	_, ok := c.Get(ctx, "r-1")
	assert.False(t, ok)
	require.NoError(t, c.Clear(ctx))

	stats := c.Stats()
	assert.Equal(t, int64(0), stats.Sets)
	assert.Equal(t, int64(1), stats.Misses)
}
