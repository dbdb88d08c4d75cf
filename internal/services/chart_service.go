package services

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// ChartService computes sidereal natal charts: planetary placements,
// house cusps, dignities and the simplified six-fold strengths.
type ChartService struct {
	eph    ephemeris.Adapter
	logger *logrus.Logger
}

// NewChartService creates a chart service backed by the given ephemeris.
func NewChartService(eph ephemeris.Adapter, logger *logrus.Logger) *ChartService {
	return &ChartService{eph: eph, logger: logger}
}

// Calculate builds the complete natal chart. Empty house system or
// ayanamsa selectors fall back to Placidus and Lahiri.
func (s *ChartService) Calculate(birth models.BirthData, hs models.HouseSystem, ay models.Ayanamsa) (*models.Chart, error) {
	if hs == "" {
		hs = models.Placidus
	}
	if ay == "" {
		ay = models.Lahiri
	}
	if !models.ValidHouseSystem(hs) {
		return nil, utils.NewInputErrorf("unknown house system %q", hs)
	}
	if !models.ValidAyanamsa(ay) {
		return nil, utils.NewInputErrorf("unknown ayanamsa %q", ay)
	}

	moment, err := birth.MomentUTC()
	if err != nil {
		return nil, err
	}

	states, err := s.eph.Positions(moment)
	if err != nil {
		return nil, utils.NewEphemerisError("planetary positions", err)
	}
	angles, err := s.eph.ChartAngles(moment, birth.Latitude, birth.Longitude)
	if err != nil {
		return nil, utils.NewEphemerisError("chart angles", err)
	}
	ayanDeg := s.eph.AyanamsaDegrees(moment, string(ay))

	asc := astro.Normalize(angles.Ascendant - ayanDeg)
	mc := astro.Normalize(angles.Midheaven - ayanDeg)

	cusps, err := houseCusps(hs, asc, mc, angles, ayanDeg, birth.Latitude)
	if err != nil {
		return nil, err
	}

	chart := &models.Chart{
		Moment:        moment,
		Latitude:      birth.Latitude,
		Longitude:     birth.Longitude,
		HouseSystem:   hs,
		Ayanamsa:      ay,
		AyanamsaDeg:   ayanDeg,
		Ascendant:     asc,
		AscendantSign: astro.SignOf(asc).String(),
		Midheaven:     mc,
		Cusps:         cusps,
		Positions:     make(map[astro.Planet]models.PlanetaryPosition, len(states)),
		PlanetHouses:  make(map[astro.Planet]int, len(states)),
		Strengths:     make(map[astro.Planet]models.PlanetStrength, len(astro.SevenPlanets)),
	}

	sunLon := astro.Normalize(states[astro.Sun].Longitude - ayanDeg)
	for planet, state := range states {
		lon := astro.Normalize(state.Longitude - ayanDeg)
		nakIdx, pada := astro.NakshatraOf(lon)
		sign := astro.SignOf(lon)

		pos := models.PlanetaryPosition{
			Planet:       planet,
			Longitude:    lon,
			Latitude:     state.Latitude,
			SpeedPerDay:  state.SpeedPerDay,
			Retrograde:   state.SpeedPerDay < 0,
			Sign:         sign.String(),
			SignNum:      int(sign),
			SignDegree:   astro.SignDegree(lon),
			Nakshatra:    astro.NakshatraNames[nakIdx],
			NakshatraNum: nakIdx + 1,
			Pada:         pada,
			Dignity:      dignityOf(planet, sign),
			Combust:      isCombust(planet, lon, sunLon),
			Avastha:      avasthaOf(sign, astro.SignDegree(lon)),
		}
		chart.Positions[planet] = pos
		chart.PlanetHouses[planet] = houseOf(cusps, lon)
	}

	for _, p := range astro.SevenPlanets {
		chart.Strengths[p] = planetStrength(chart, p)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"moment":       moment,
			"house_system": hs,
			"ayanamsa":     ay,
			"ascendant":    chart.AscendantSign,
		}).Debug("Chart calculated")
	}
	return chart, nil
}

func isCombust(p astro.Planet, lon, sunLon float64) bool {
	orb, ok := astro.CombustionOrb[p]
	if !ok {
		return false
	}
	return astro.AngularDistance(lon, sunLon) < orb
}

func dignityOf(p astro.Planet, sign astro.Sign) models.Dignity {
	if astro.ExaltationSign[p] == sign {
		return models.Exalted
	}
	if astro.DebilitationSign[p] == sign {
		return models.Debilitated
	}
	for _, own := range astro.OwnSigns[p] {
		if own == sign {
			return models.OwnSign
		}
	}
	return models.Neutral
}

var avasthaNames = [5]string{"Bala", "Kumara", "Yuva", "Vriddha", "Mrita"}

// avasthaOf returns the baladi avastha from the degree within the sign.
// The five 6-degree stages run forward in odd signs and reversed in
// even signs.
func avasthaOf(sign astro.Sign, signDegree float64) string {
	stage := int(signDegree / 6)
	if stage > 4 {
		stage = 4
	}
	if !sign.Odd() {
		stage = 4 - stage
	}
	return avasthaNames[stage]
}

// houseOf locates the 1-based house whose cusp arc contains lon.
func houseOf(cusps [12]float64, lon float64) int {
	for i := 0; i < 12; i++ {
		start := cusps[i]
		end := cusps[(i+1)%12]
		span := astro.Normalize(end - start)
		if span == 0 {
			span = 360
		}
		if astro.Normalize(lon-start) < span {
			return i + 1
		}
	}
	return 12
}

func houseCusps(hs models.HouseSystem, asc, mc float64, angles ephemeris.Angles, ayanDeg, lat float64) ([12]float64, error) {
	switch hs {
	case models.WholeSign:
		return wholeSignCusps(asc), nil
	case models.Equal:
		return equalCusps(asc), nil
	case models.Koch:
		return kochCusps(angles, ayanDeg, lat)
	default:
		return placidusCusps(angles, ayanDeg, lat)
	}
}

func wholeSignCusps(asc float64) [12]float64 {
	var cusps [12]float64
	base := float64(astro.SignOf(asc)) * astro.SignSpan
	for i := 0; i < 12; i++ {
		cusps[i] = astro.Normalize(base + float64(i)*astro.SignSpan)
	}
	return cusps
}

func equalCusps(asc float64) [12]float64 {
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		cusps[i] = astro.Normalize(asc + float64(i)*astro.SignSpan)
	}
	return cusps
}

const degRad = math.Pi / 180.0

func sinDeg(d float64) float64 { return math.Sin(d * degRad) }
func cosDeg(d float64) float64 { return math.Cos(d * degRad) }
func tanDeg(d float64) float64 { return math.Tan(d * degRad) }

// lonOfRA converts a right ascension on the ecliptic to ecliptic
// longitude.
func lonOfRA(ra, eps float64) float64 {
	return astro.Normalize(math.Atan2(sinDeg(ra), cosDeg(ra)*cosDeg(eps)) / degRad)
}

// ascFromARMC is the tropical ascendant for an arbitrary sidereal time.
func ascFromARMC(armc, eps, lat float64) float64 {
	return astro.Normalize(math.Atan2(
		cosDeg(armc),
		-(sinDeg(armc)*cosDeg(eps) + tanDeg(lat)*sinDeg(eps)),
	) / degRad)
}

// placidusCusps computes the quadrant cusps by iterating on the
// ascensional difference: each intermediate cusp is the ecliptic point
// that has completed the matching fraction of its semi-arc.
func placidusCusps(angles ephemeris.Angles, ayanDeg, lat float64) ([12]float64, error) {
	var cusps [12]float64
	armc, eps := angles.ARMC, angles.Obliquity

	intermediate := []struct {
		house    int
		offset   float64
		fraction float64
	}{
		{11, 30, 1.0 / 3.0},
		{12, 60, 2.0 / 3.0},
		{2, 120, 2.0 / 3.0},
		{3, 150, 1.0 / 3.0},
	}

	cusps[0] = astro.Normalize(angles.Ascendant - ayanDeg)
	cusps[9] = astro.Normalize(angles.Midheaven - ayanDeg)
	for _, ic := range intermediate {
		lon, err := placidusIterate(armc, eps, lat, ic.offset, ic.fraction)
		if err != nil {
			return cusps, err
		}
		cusps[ic.house-1] = astro.Normalize(lon - ayanDeg)
	}

	cusps[3] = astro.Normalize(cusps[9] + 180)
	cusps[4] = astro.Normalize(cusps[10] + 180)
	cusps[5] = astro.Normalize(cusps[11] + 180)
	cusps[6] = astro.Normalize(cusps[0] + 180)
	cusps[7] = astro.Normalize(cusps[1] + 180)
	cusps[8] = astro.Normalize(cusps[2] + 180)
	return cusps, nil
}

func placidusIterate(armc, eps, lat, offset, fraction float64) (float64, error) {
	ra := armc + offset
	for i := 0; i < 50; i++ {
		lon := lonOfRA(ra, eps)
		decl := math.Asin(sinDeg(eps)*sinDeg(lon)) / degRad
		x := tanDeg(lat) * tanDeg(decl)
		if math.Abs(x) > 1 {
			return 0, utils.NewInputErrorf(
				"placidus houses undefined at latitude %.2f (circumpolar cusp)", lat)
		}
		ad := math.Asin(x) / degRad
		next := armc + offset + fraction*ad
		if math.Abs(next-ra) < 1e-7 {
			ra = next
			break
		}
		ra = next
	}
	return lonOfRA(ra, eps), nil
}

// kochCusps shifts the sidereal time by fractions of the MC's
// ascensional difference and takes the horizon point at each shift.
func kochCusps(angles ephemeris.Angles, ayanDeg, lat float64) ([12]float64, error) {
	var cusps [12]float64
	armc, eps := angles.ARMC, angles.Obliquity

	declMC := math.Atan(sinDeg(armc)*tanDeg(eps)) / degRad
	x := tanDeg(lat) * tanDeg(declMC)
	if math.Abs(x) > 1 {
		return cusps, utils.NewInputErrorf(
			"koch houses undefined at latitude %.2f (circumpolar midheaven)", lat)
	}
	ad := math.Asin(x) / degRad

	cusps[0] = astro.Normalize(angles.Ascendant - ayanDeg)
	cusps[9] = astro.Normalize(angles.Midheaven - ayanDeg)
	cusps[10] = astro.Normalize(ascFromARMC(armc+30-2*ad/3, eps, lat) - ayanDeg)
	cusps[11] = astro.Normalize(ascFromARMC(armc+60-ad/3, eps, lat) - ayanDeg)
	cusps[1] = astro.Normalize(ascFromARMC(armc+120+ad/3, eps, lat) - ayanDeg)
	cusps[2] = astro.Normalize(ascFromARMC(armc+150+2*ad/3, eps, lat) - ayanDeg)

	cusps[3] = astro.Normalize(cusps[9] + 180)
	cusps[4] = astro.Normalize(cusps[10] + 180)
	cusps[5] = astro.Normalize(cusps[11] + 180)
	cusps[6] = astro.Normalize(cusps[0] + 180)
	cusps[7] = astro.Normalize(cusps[1] + 180)
	cusps[8] = astro.Normalize(cusps[2] + 180)
	return cusps, nil
}

// digbalaHouse maps each planet to the house where it gains full
// directional strength.
var digbalaHouse = map[astro.Planet]int{
	astro.Jupiter: 1, astro.Mercury: 1,
	astro.Moon: 4, astro.Venus: 4,
	astro.Saturn: 7,
	astro.Sun:    10, astro.Mars: 10,
}

// naisargikaBala is the fixed natural strength scale, Sun strongest to
// Saturn weakest.
var naisargikaBala = map[astro.Planet]float64{
	astro.Sun: 60, astro.Moon: 51.4, astro.Venus: 42.9, astro.Jupiter: 34.3,
	astro.Mercury: 25.7, astro.Mars: 17.1, astro.Saturn: 8.6,
}

var dayStrong = map[astro.Planet]bool{astro.Sun: true, astro.Jupiter: true, astro.Venus: true}
var nightStrong = map[astro.Planet]bool{astro.Moon: true, astro.Mars: true, astro.Saturn: true}

// planetStrength computes the simplified six-fold strength summary. The
// components follow the classical scheme in shape but use linear
// approximations, which is enough for the weak/strong banding remedies
// rely on.
func planetStrength(chart *models.Chart, p astro.Planet) models.PlanetStrength {
	pos := chart.Positions[p]
	sign := astro.Sign(pos.SignNum)

	var st models.PlanetStrength

	switch pos.Dignity {
	case models.Exalted:
		st.Positional = 60
	case models.OwnSign:
		st.Positional = 45
	case models.Debilitated:
		st.Positional = 0
	default:
		st.Positional = relationStrength(p, astro.SignLords[sign])
	}

	idealCusp := chart.Cusps[digbalaHouse[p]-1]
	st.Directional = 60 * (1 - astro.AngularDistance(pos.Longitude, idealCusp)/180)

	dayBirth := chart.PlanetHouses[astro.Sun] >= 7
	switch {
	case p == astro.Mercury:
		st.Temporal = 60
	case dayBirth && dayStrong[p], !dayBirth && nightStrong[p]:
		st.Temporal = 60
	default:
		st.Temporal = 30
	}

	switch {
	case pos.Retrograde:
		st.Motional = 60
	case p == astro.Sun || p == astro.Moon:
		st.Motional = 30
	default:
		st.Motional = 15 + 30*math.Min(1, math.Abs(pos.SpeedPerDay))
	}

	st.Natural = naisargikaBala[p]
	st.Aspectual = aspectualStrength(chart, p)

	st.Total = st.Positional + st.Directional + st.Temporal + st.Motional + st.Natural + st.Aspectual
	st.Percentage = st.Total / 360 * 100
	return st
}

func relationStrength(p, lord astro.Planet) float64 {
	for _, f := range astro.NaturalFriends[p] {
		if f == lord {
			return 30
		}
	}
	for _, e := range astro.NaturalEnemies[p] {
		if e == lord {
			return 15
		}
	}
	return 22.5
}

// specialAspects lists full-aspect house offsets beyond the universal
// 7th.
var specialAspects = map[astro.Planet][]int{
	astro.Mars:    {4, 8},
	astro.Jupiter: {5, 9},
	astro.Saturn:  {3, 10},
}

var naturalBenefic = map[astro.Planet]bool{
	astro.Jupiter: true, astro.Venus: true, astro.Mercury: true, astro.Moon: true,
}

// aspectualStrength sums benefic and malefic full aspects landing on
// the planet's house, floored at zero.
func aspectualStrength(chart *models.Chart, p astro.Planet) float64 {
	target := chart.PlanetHouses[p]
	score := 0.0
	for _, other := range astro.Planets {
		if other == p {
			continue
		}
		from := chart.PlanetHouses[other]
		dist := astro.HouseDistance(from, target)
		aspects := dist == 7
		for _, d := range specialAspects[other] {
			if dist == d {
				aspects = true
			}
		}
		if !aspects {
			continue
		}
		if naturalBenefic[other] {
			score += 10
		} else {
			score -= 10
		}
	}
	if score < 0 {
		return 0
	}
	return score
}
