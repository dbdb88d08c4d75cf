package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

func TestDashaPeriodContains(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(10, 0, 0)
	p := DashaPeriod{Lord: astro.Moon, Start: start, End: end}

	assert.True(t, p.Contains(start))
	assert.True(t, p.Contains(start.AddDate(5, 0, 0)))
	assert.False(t, p.Contains(end))
	assert.False(t, p.Contains(start.Add(-time.Second)))
}

func TestCurrentChain(t *testing.T) {
	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.AddDate(10, 0, 0)
	t2 := t1.AddDate(7, 0, 0)

	tl := &DashaTimeline{
		Periods: []DashaPeriod{
			{
				Lord: astro.Moon, Level: Mahadasha, Start: t0, End: t1,
				Children: []DashaPeriod{
					{Lord: astro.Moon, Level: Antardasha, Start: t0, End: t0.AddDate(0, 10, 0)},
					{Lord: astro.Mars, Level: Antardasha, Start: t0.AddDate(0, 10, 0), End: t0.AddDate(1, 5, 0)},
				},
			},
			{Lord: astro.Mars, Level: Mahadasha, Start: t1, End: t2},
		},
	}

	chain := tl.CurrentChain(t0.AddDate(1, 0, 0))
	require.Len(t, chain, 2)
	assert.Equal(t, astro.Moon, chain[0].Lord)
	assert.Equal(t, astro.Mars, chain[1].Lord)
	assert.Equal(t, Antardasha, chain[1].Level)

	chain = tl.CurrentChain(t1.AddDate(1, 0, 0))
	require.Len(t, chain, 1)
	assert.Equal(t, astro.Mars, chain[0].Lord)

	assert.Empty(t, tl.CurrentChain(t2.AddDate(1, 0, 0)))
	assert.Empty(t, tl.CurrentChain(t0.Add(-time.Hour)))
}
