package ephemeris

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected float64
	}{
		{
			name:     "J2000 epoch",
			instant:  time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
		},
		{
			name:     "unix epoch",
			instant:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, JulianDay(tt.instant), 1e-6)
		})
	}
}

func TestSunLongitudeAtEquinox(t *testing.T) {
	// March equinox 2024: the tropical Sun crosses 0 Aries.
	equinox := time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)
	provider := NewAnalytic()

	positions, err := provider.Positions(equinox)
	require.NoError(t, err)

	sun := positions[astro.Sun]
	assert.Less(t, astro.AngularDistance(sun.Longitude, 0), 0.5)
	assert.InDelta(t, 0.9856, sun.SpeedPerDay, 0.05)
}

func TestMoonState(t *testing.T) {
	provider := NewAnalytic()
	positions, err := provider.Positions(time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	moon := positions[astro.Moon]
	assert.GreaterOrEqual(t, moon.Longitude, 0.0)
	assert.Less(t, moon.Longitude, 360.0)
	assert.Greater(t, moon.SpeedPerDay, 11.0)
	assert.Less(t, moon.SpeedPerDay, 15.5)
	assert.Less(t, math.Abs(moon.Latitude), 5.5)
}

func TestNodesOpposeAndRegress(t *testing.T) {
	provider := NewAnalytic()
	positions, err := provider.Positions(time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rahu := positions[astro.Rahu]
	ketu := positions[astro.Ketu]
	assert.InDelta(t, 180.0, astro.AngularDistance(rahu.Longitude, astro.Normalize(ketu.Longitude)), 1e-9)
	assert.Negative(t, rahu.SpeedPerDay)
	assert.Negative(t, ketu.SpeedPerDay)
	assert.InDelta(t, -0.0529, rahu.SpeedPerDay, 0.002)
}

func TestAllBodiesPresent(t *testing.T) {
	provider := NewAnalytic()
	positions, err := provider.Positions(time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, positions, len(astro.Planets))

	for _, p := range astro.Planets {
		state, ok := positions[p]
		require.True(t, ok, "missing %s", p)
		assert.GreaterOrEqual(t, state.Longitude, 0.0, "%s longitude", p)
		assert.Less(t, state.Longitude, 360.0, "%s longitude", p)
	}
}

func TestPositionsOutsideRange(t *testing.T) {
	provider := NewAnalytic()
	_, err := provider.Positions(time.Date(500, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMoment))
}

func TestChartAngles(t *testing.T) {
	provider := NewAnalytic()
	angles, err := provider.ChartAngles(
		time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC), 28.6139, 77.2090)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, angles.Ascendant, 0.0)
	assert.Less(t, angles.Ascendant, 360.0)
	assert.GreaterOrEqual(t, angles.Midheaven, 0.0)
	assert.Less(t, angles.Midheaven, 360.0)
	assert.InDelta(t, 23.44, angles.Obliquity, 0.05)

	// Midheaven sits roughly a quadrant behind the ascendant.
	gap := astro.Normalize(angles.Ascendant - angles.Midheaven)
	assert.Greater(t, gap, 30.0)
	assert.Less(t, gap, 150.0)
}

func TestChartAnglesPolarLatitude(t *testing.T) {
	provider := NewAnalytic()
	_, err := provider.ChartAngles(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 89.95, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLocation))
}

func TestAyanamsaDegrees(t *testing.T) {
	provider := NewAnalytic()
	instant := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	lahiri := provider.AyanamsaDegrees(instant, AyanamsaLahiri)
	raman := provider.AyanamsaDegrees(instant, AyanamsaRaman)
	kp := provider.AyanamsaDegrees(instant, AyanamsaKP)

	assert.InDelta(t, 23.85, lahiri, 0.1)
	assert.Less(t, raman, kp)
	assert.Less(t, kp, lahiri)

	// Precession accumulates about 50.3 arc-seconds per year.
	later := provider.AyanamsaDegrees(instant.AddDate(10, 0, 0), AyanamsaLahiri)
	assert.InDelta(t, 10*50.29/3600, later-lahiri, 0.01)
}

func TestSunriseSunsetDelhi(t *testing.T) {
	provider := NewAnalytic()
	ist := time.FixedZone("+05:30", 5*3600+1800)
	date := time.Date(2024, 5, 15, 0, 0, 0, 0, ist)

	rise, set, err := provider.SunriseSunset(date, 28.6139, 77.2090)
	require.NoError(t, err)

	require.True(t, rise.Before(set))
	daylight := set.Sub(rise)
	assert.Greater(t, daylight, 13*time.Hour)
	assert.Less(t, daylight, 14*time.Hour+30*time.Minute)

	// Mid-May Delhi sunrise falls near 05:30 local.
	localRise := rise.In(ist)
	assert.Equal(t, 5, localRise.Hour())
}

func TestSunrisePolarDay(t *testing.T) {
	provider := NewAnalytic()
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	_, _, err := provider.SunriseSunset(date, 80.0, 15.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEvent))
}
