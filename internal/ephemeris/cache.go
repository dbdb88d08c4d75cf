package ephemeris

import (
	"sync"
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// DefaultCacheSize bounds each memo table of the caching decorator.
const DefaultCacheSize = 4096

type positionsKey struct {
	unix int64
}

type anglesKey struct {
	unix     int64
	lat, lon float64
}

type eventKey struct {
	year     int
	yday     int
	lat, lon float64
}

type eventEntry struct {
	rise, set time.Time
}

// Cached memoizes a backing Adapter. Astrological requests cluster on
// the same birth instants, so repeat lookups dominate. Tables are
// flushed wholesale when they reach the bound; entries never go stale
// because ephemeris results are immutable.
type Cached struct {
	inner Adapter
	max   int

	mu        sync.RWMutex
	positions map[positionsKey]map[astro.Planet]BodyState
	angles    map[anglesKey]Angles
	events    map[eventKey]eventEntry
}

// NewCached wraps inner with memo tables of at most max entries each.
// Non-positive max uses DefaultCacheSize.
func NewCached(inner Adapter, max int) *Cached {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cached{
		inner:     inner,
		max:       max,
		positions: make(map[positionsKey]map[astro.Planet]BodyState),
		angles:    make(map[anglesKey]Angles),
		events:    make(map[eventKey]eventEntry),
	}
}

// Positions implements Adapter.
func (c *Cached) Positions(t time.Time) (map[astro.Planet]BodyState, error) {
	key := positionsKey{unix: t.UTC().UnixNano()}

	c.mu.RLock()
	hit, ok := c.positions[key]
	c.mu.RUnlock()
	if ok {
		return hit, nil
	}

	out, err := c.inner.Positions(t)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.positions) >= c.max {
		c.positions = make(map[positionsKey]map[astro.Planet]BodyState)
	}
	c.positions[key] = out
	c.mu.Unlock()
	return out, nil
}

// ChartAngles implements Adapter.
func (c *Cached) ChartAngles(t time.Time, lat, lon float64) (Angles, error) {
	key := anglesKey{unix: t.UTC().UnixNano(), lat: lat, lon: lon}

	c.mu.RLock()
	hit, ok := c.angles[key]
	c.mu.RUnlock()
	if ok {
		return hit, nil
	}

	out, err := c.inner.ChartAngles(t, lat, lon)
	if err != nil {
		return Angles{}, err
	}

	c.mu.Lock()
	if len(c.angles) >= c.max {
		c.angles = make(map[anglesKey]Angles)
	}
	c.angles[key] = out
	c.mu.Unlock()
	return out, nil
}

// SunriseSunset implements Adapter.
func (c *Cached) SunriseSunset(date time.Time, lat, lon float64) (time.Time, time.Time, error) {
	key := eventKey{year: date.Year(), yday: date.YearDay(), lat: lat, lon: lon}

	c.mu.RLock()
	hit, ok := c.events[key]
	c.mu.RUnlock()
	if ok {
		return hit.rise, hit.set, nil
	}

	rise, set, err := c.inner.SunriseSunset(date, lat, lon)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	c.mu.Lock()
	if len(c.events) >= c.max {
		c.events = make(map[eventKey]eventEntry)
	}
	c.events[key] = eventEntry{rise: rise, set: set}
	c.mu.Unlock()
	return rise, set, nil
}

// AyanamsaDegrees implements Adapter. The computation is a single
// multiply, cheaper than a cache lookup.
func (c *Cached) AyanamsaDegrees(t time.Time, name string) float64 {
	return c.inner.AyanamsaDegrees(t, name)
}
