package ephemeris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// countingAdapter tracks how often each backing call runs.
type countingAdapter struct {
	inner     Adapter
	positions int
	angles    int
	events    int
}

func (c *countingAdapter) Positions(t time.Time) (map[astro.Planet]BodyState, error) {
	c.positions++
	return c.inner.Positions(t)
}

func (c *countingAdapter) ChartAngles(t time.Time, lat, lon float64) (Angles, error) {
	c.angles++
	return c.inner.ChartAngles(t, lat, lon)
}

func (c *countingAdapter) SunriseSunset(date time.Time, lat, lon float64) (time.Time, time.Time, error) {
	c.events++
	return c.inner.SunriseSunset(date, lat, lon)
}

func (c *countingAdapter) AyanamsaDegrees(t time.Time, name string) float64 {
	return c.inner.AyanamsaDegrees(t, name)
}

func TestCachedPositionsMemoized(t *testing.T) {
	counter := &countingAdapter{inner: NewAnalytic()}
	cached := NewCached(counter, 16)
	instant := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)

	first, err := cached.Positions(instant)
	require.NoError(t, err)
	second, err := cached.Positions(instant)
	require.NoError(t, err)

	assert.Equal(t, 1, counter.positions)
	assert.Equal(t, first[astro.Moon], second[astro.Moon])

	_, err = cached.Positions(instant.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, counter.positions)
}

func TestCachedAnglesKeyedByLocation(t *testing.T) {
	counter := &countingAdapter{inner: NewAnalytic()}
	cached := NewCached(counter, 16)
	instant := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)

	_, err := cached.ChartAngles(instant, 28.6139, 77.2090)
	require.NoError(t, err)
	_, err = cached.ChartAngles(instant, 28.6139, 77.2090)
	require.NoError(t, err)
	_, err = cached.ChartAngles(instant, 19.0760, 72.8777)
	require.NoError(t, err)

	assert.Equal(t, 2, counter.angles)
}

func TestCachedErrorsNotStored(t *testing.T) {
	counter := &countingAdapter{inner: NewAnalytic()}
	cached := NewCached(counter, 16)
	tooEarly := time.Date(500, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := cached.Positions(tooEarly)
	require.Error(t, err)
	_, err = cached.Positions(tooEarly)
	require.Error(t, err)

	assert.Equal(t, 2, counter.positions)
}

func TestCachedFlushAtBound(t *testing.T) {
	counter := &countingAdapter{inner: NewAnalytic()}
	cached := NewCached(counter, 2)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := cached.Positions(base.Add(time.Duration(i) * time.Hour))
		require.NoError(t, err)
	}

	// The first entry was flushed when the table filled.
	_, err := cached.Positions(base)
	require.NoError(t, err)
	assert.Equal(t, 4, counter.positions)
}

func TestCachedSunrise(t *testing.T) {
	counter := &countingAdapter{inner: NewAnalytic()}
	cached := NewCached(counter, 16)
	date := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	rise1, set1, err := cached.SunriseSunset(date, 28.6139, 77.2090)
	require.NoError(t, err)
	rise2, set2, err := cached.SunriseSunset(date, 28.6139, 77.2090)
	require.NoError(t, err)

	assert.Equal(t, 1, counter.events)
	assert.Equal(t, rise1, rise2)
	assert.Equal(t, set1, set2)
}
