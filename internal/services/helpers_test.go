package services

import (
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/models"
)

// stubAdapter pins every ephemeris quantity so service tests are exact.
type stubAdapter struct {
	states    map[astro.Planet]ephemeris.BodyState
	angles    ephemeris.Angles
	rise, set time.Time
	ayan      float64

	posErr    error
	anglesErr error
	riseErr   error
}

func (s *stubAdapter) Positions(time.Time) (map[astro.Planet]ephemeris.BodyState, error) {
	if s.posErr != nil {
		return nil, s.posErr
	}
	return s.states, nil
}

func (s *stubAdapter) ChartAngles(time.Time, float64, float64) (ephemeris.Angles, error) {
	if s.anglesErr != nil {
		return ephemeris.Angles{}, s.anglesErr
	}
	return s.angles, nil
}

func (s *stubAdapter) SunriseSunset(time.Time, float64, float64) (time.Time, time.Time, error) {
	if s.riseErr != nil {
		return time.Time{}, time.Time{}, s.riseErr
	}
	return s.rise, s.set, nil
}

func (s *stubAdapter) AyanamsaDegrees(time.Time, string) float64 {
	return s.ayan
}

// defaultStates spreads the nine bodies over the zodiac with plausible
// speeds. Longitudes are tropical; tests usually pin ayan to zero so
// they read as sidereal directly.
func defaultStates() map[astro.Planet]ephemeris.BodyState {
	return map[astro.Planet]ephemeris.BodyState{
		astro.Sun:     {Longitude: 10, SpeedPerDay: 0.98},
		astro.Moon:    {Longitude: 283.95, Latitude: 2.1, SpeedPerDay: 13.2},
		astro.Mars:    {Longitude: 320, SpeedPerDay: 0.6},
		astro.Mercury: {Longitude: 12, SpeedPerDay: -0.1},
		astro.Jupiter: {Longitude: 95, SpeedPerDay: 0.2},
		astro.Venus:   {Longitude: 355, SpeedPerDay: 1.1},
		astro.Saturn:  {Longitude: 275, SpeedPerDay: 0.08},
		astro.Rahu:    {Longitude: 300, SpeedPerDay: -0.053},
		astro.Ketu:    {Longitude: 120, SpeedPerDay: -0.053},
	}
}

func newStubAdapter() *stubAdapter {
	return &stubAdapter{
		states: defaultStates(),
		angles: ephemeris.Angles{Ascendant: 152.5, Midheaven: 62.5, ARMC: 60, Obliquity: 23.44},
		rise:   time.Date(1990, 5, 15, 0, 3, 0, 0, time.UTC),
		set:    time.Date(1990, 5, 15, 13, 38, 0, 0, time.UTC),
	}
}

var testMoment = time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC) // a Tuesday

// buildTestChart assembles a whole-sign chart directly from sidereal
// longitudes, bypassing the ephemeris.
func buildTestChart(asc float64, lons map[astro.Planet]float64) *models.Chart {
	cusps := wholeSignCusps(asc)
	chart := &models.Chart{
		Moment:        testMoment,
		HouseSystem:   models.WholeSign,
		Ayanamsa:      models.Lahiri,
		Ascendant:     astro.Normalize(asc),
		AscendantSign: astro.SignOf(asc).String(),
		Cusps:         cusps,
		Positions:     make(map[astro.Planet]models.PlanetaryPosition, len(lons)),
		PlanetHouses:  make(map[astro.Planet]int, len(lons)),
		Strengths:     make(map[astro.Planet]models.PlanetStrength, len(astro.SevenPlanets)),
	}

	sunLon, hasSun := lons[astro.Sun]
	for p, lon := range lons {
		lon = astro.Normalize(lon)
		nakIdx, pada := astro.NakshatraOf(lon)
		sign := astro.SignOf(lon)
		chart.Positions[p] = models.PlanetaryPosition{
			Planet:       p,
			Longitude:    lon,
			Sign:         sign.String(),
			SignNum:      int(sign),
			SignDegree:   astro.SignDegree(lon),
			Nakshatra:    astro.NakshatraNames[nakIdx],
			NakshatraNum: nakIdx + 1,
			Pada:         pada,
			Dignity:      dignityOf(p, sign),
			Combust:      hasSun && p != astro.Sun && isCombust(p, lon, sunLon),
			Avastha:      avasthaOf(sign, astro.SignDegree(lon)),
		}
		chart.PlanetHouses[p] = houseOf(cusps, lon)
	}
	for _, p := range astro.SevenPlanets {
		if _, ok := chart.Positions[p]; ok {
			chart.Strengths[p] = planetStrength(chart, p)
		}
	}
	return chart
}

// goldenChart is the shared whole-sign scenario: Virgo ascendant, Moon
// in Shravana (Capricorn), Sun in Taurus.
func goldenChart() *models.Chart {
	return buildTestChart(152.5, map[astro.Planet]float64{
		astro.Sun:     30.93,
		astro.Moon:    283.95,
		astro.Mars:    320.1,
		astro.Mercury: 38.2,
		astro.Jupiter: 95.4,
		astro.Venus:   12.7,
		astro.Saturn:  275.8,
		astro.Rahu:    300.2,
		astro.Ketu:    120.2,
	})
}
