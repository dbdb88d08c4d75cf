package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

func TestSubLordChain(t *testing.T) {
	// Moon at 283.95: Shravana, star lord Moon. The sub divisions run
	// Moon 280-281.11, Mars to 281.89, Rahu to 283.89, Jupiter to 285.67.
	chain := SubLordChain(283.95, 3)

	assert.Equal(t, "Capricorn", chain.Sign)
	assert.Equal(t, astro.Saturn, chain.SignLord)
	assert.Equal(t, "Shravana", chain.Nakshatra)
	assert.Equal(t, astro.Moon, chain.StarLord)
	require.Len(t, chain.SubLords, 3)
	assert.Equal(t, astro.Jupiter, chain.SubLords[0])
	assert.Equal(t, astro.Jupiter, chain.SubLords[1])
}

func TestSubLordChainLeadsWithStarLord(t *testing.T) {
	// At a nakshatra start every sub level begins with the star lord.
	chain := SubLordChain(0, 2)
	assert.Equal(t, astro.Ketu, chain.StarLord)
	require.Len(t, chain.SubLords, 2)
	assert.Equal(t, astro.Ketu, chain.SubLords[0])
	assert.Equal(t, astro.Ketu, chain.SubLords[1])
}

func TestKPCalculate(t *testing.T) {
	svc := NewKPService(nil)
	chart := goldenChart()

	kp, err := svc.Calculate(chart, 0) // defaults to sub depth 2
	require.NoError(t, err)

	// Chart moment is a Tuesday.
	assert.Equal(t, astro.Mars, kp.DayLord)

	require.Len(t, kp.Cusps, 12)
	for i, cusp := range kp.Cusps {
		assert.Equal(t, i+1, cusp.House)
		assert.Len(t, cusp.SubLords, 2)
	}

	require.Len(t, kp.Planets, len(chart.Positions))
	moon := kp.Planets[astro.Moon]
	assert.Equal(t, astro.Moon, moon.StarLord)
	assert.Equal(t, astro.Jupiter, moon.SubLords[0])

	require.Len(t, kp.Houses, 12)
	for i, h := range kp.Houses {
		assert.Equal(t, i+1, h.House)
		assert.NotEmpty(t, h.Matters)
	}
	// Moon sits in Capricorn, the fifth whole-sign house from Virgo.
	assert.Contains(t, kp.Houses[4].PlanetsInHouse, astro.Moon)
	assert.Contains(t, kp.Houses[4].StarLordsInHouse, astro.Moon)
}

func TestKPRulingLords(t *testing.T) {
	svc := NewKPService(nil)

	kp, err := svc.Calculate(goldenChart(), 1)
	require.NoError(t, err)

	// Day lord Mars, ascendant star Sun and sub Jupiter, Moon star Moon;
	// the Moon's sub repeats Jupiter and drops out.
	assert.Equal(t, []astro.Planet{astro.Mars, astro.Sun, astro.Jupiter, astro.Moon}, kp.RulingLords)
}

func TestKPCalculateDepthValidation(t *testing.T) {
	svc := NewKPService(nil)

	_, err := svc.Calculate(goldenChart(), MaxKPSubDepth+1)
	require.Error(t, err)
	assert.True(t, utils.IsInputError(err))

	_, err = svc.Calculate(goldenChart(), -1)
	require.Error(t, err)
	assert.True(t, utils.IsInputError(err))
}
