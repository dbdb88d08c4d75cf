package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// Analytic is a self-contained ephemeris built on mean-element series:
// the Sun from its equation of center, the Moon from a truncated ELP
// series, the five classical planets from Keplerian mean elements and
// Rahu from the mean lunar node. Accuracy is a few arc-minutes for the
// luminaries and better than half a degree for the planets, which holds
// sign, nakshatra and sub-lord assignments over the supported range.
type Analytic struct{}

// NewAnalytic returns the built-in provider.
func NewAnalytic() *Analytic {
	return &Analytic{}
}

const (
	j2000   = 2451545.0
	degRad  = math.Pi / 180.0
	minYear = 1000
	maxYear = 3000

	// speedStep is the half-window, in days, of the central difference
	// used for daily motion.
	speedStep = 0.5
)

// JulianDay converts a UTC instant to a Julian day number.
func JulianDay(t time.Time) float64 {
	return float64(t.UTC().UnixNano())/1e9/86400.0 + 2440587.5
}

func centuries(jd float64) float64 {
	return (jd - j2000) / 36525.0
}

func sinDeg(d float64) float64 { return math.Sin(d * degRad) }
func cosDeg(d float64) float64 { return math.Cos(d * degRad) }
func tanDeg(d float64) float64 { return math.Tan(d * degRad) }

func atan2Deg(y, x float64) float64 {
	return astro.Normalize(math.Atan2(y, x) / degRad)
}

// Positions implements Adapter.
func (a *Analytic) Positions(t time.Time) (map[astro.Planet]BodyState, error) {
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return nil, fmt.Errorf("year %d: %w", y, ErrInvalidMoment)
	}

	jd := JulianDay(t)
	out := make(map[astro.Planet]BodyState, len(astro.Planets))
	for _, p := range astro.Planets {
		lon, lat := bodyAt(p, jd)
		before, _ := bodyAt(p, jd-speedStep)
		after, _ := bodyAt(p, jd+speedStep)
		speed := signedDelta(after, before) / (2 * speedStep)
		out[p] = BodyState{
			Longitude:   lon,
			Latitude:    lat,
			SpeedPerDay: speed,
		}
	}
	return out, nil
}

// signedDelta is the shortest signed arc from b to a, in (-180, 180].
func signedDelta(a, b float64) float64 {
	return math.Mod(a-b+540, 360) - 180
}

func bodyAt(p astro.Planet, jd float64) (lon, lat float64) {
	switch p {
	case astro.Sun:
		return sunLongitude(jd), 0
	case astro.Moon:
		return moonPosition(jd)
	case astro.Rahu:
		return meanNode(jd), 0
	case astro.Ketu:
		return astro.Normalize(meanNode(jd) + 180), 0
	default:
		return planetPosition(p, jd)
	}
}

// sunLongitude is the geometric tropical longitude of the Sun from the
// mean longitude plus the equation of center.
func sunLongitude(jd float64) float64 {
	T := centuries(jd)
	l0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	m := 357.52911 + 35999.05029*T - 0.0001537*T*T
	c := (1.914602-0.004817*T-0.000014*T*T)*sinDeg(m) +
		(0.019993-0.000101*T)*sinDeg(2*m) +
		0.000289*sinDeg(3*m)
	return astro.Normalize(l0 + c)
}

// moonPosition evaluates the dominant periodic terms of the lunar
// theory. The truncation keeps every term above 0.03 degrees, enough to
// pin the Moon's nakshatra and pada.
func moonPosition(jd float64) (lon, lat float64) {
	T := centuries(jd)
	lp := 218.3164477 + 481267.88123421*T - 0.0015786*T*T
	d := 297.8501921 + 445267.1114034*T - 0.0018819*T*T
	m := 357.5291092 + 35999.0502909*T
	mp := 134.9633964 + 477198.8675055*T + 0.0087414*T*T
	f := 93.2720950 + 483202.0175233*T - 0.0036539*T*T

	dl := 6.288774*sinDeg(mp) +
		1.274027*sinDeg(2*d-mp) +
		0.658314*sinDeg(2*d) +
		0.213618*sinDeg(2*mp) -
		0.185116*sinDeg(m) -
		0.114332*sinDeg(2*f) +
		0.058793*sinDeg(2*d-2*mp) +
		0.057066*sinDeg(2*d-m-mp) +
		0.053322*sinDeg(2*d+mp) +
		0.045758*sinDeg(2*d-m) -
		0.040923*sinDeg(m-mp) -
		0.034720*sinDeg(d) -
		0.030383*sinDeg(m+mp)

	b := 5.128122*sinDeg(f) +
		0.280602*sinDeg(mp+f) +
		0.277693*sinDeg(mp-f) +
		0.173237*sinDeg(2*d-f) +
		0.055413*sinDeg(2*d+f-mp) +
		0.046271*sinDeg(2*d-f-mp) +
		0.032573*sinDeg(2*d+f) +
		0.017198*sinDeg(2*mp+f)

	return astro.Normalize(lp + dl), b
}

// meanNode is the mean ascending lunar node, which regresses through
// the zodiac in about 18.6 years.
func meanNode(jd float64) float64 {
	T := centuries(jd)
	return astro.Normalize(125.0445479 - 1934.1362891*T + 0.0020754*T*T)
}

// orbital elements at J2000 with per-century rates: semi-major axis
// (AU), eccentricity, inclination, mean longitude, longitude of
// perihelion, longitude of ascending node (degrees).
type elements struct {
	a, aDot         float64
	e, eDot         float64
	i, iDot         float64
	l, lDot         float64
	peri, periDot   float64
	node, nodeDot   float64
}

var planetElements = map[astro.Planet]elements{
	astro.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	astro.Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	astro.Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	astro.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	astro.Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

var earthElements = elements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

// heliocentric returns the ecliptic rectangular position, in AU, of the
// body described by el at Julian day jd.
func heliocentric(el elements, jd float64) (x, y, z float64) {
	T := centuries(jd)
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := el.i + el.iDot*T
	l := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	m := astro.Normalize(l - peri)
	omega := peri - node
	ecc := solveKepler(m, e)

	xp := a * (cosDeg(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * sinDeg(ecc)

	cw, sw := cosDeg(omega), sinDeg(omega)
	cn, sn := cosDeg(node), sinDeg(node)
	ci, si := cosDeg(inc), sinDeg(inc)

	x = (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp
	y = (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// solveKepler finds the eccentric anomaly, in degrees, by Newton
// iteration on Kepler's equation.
func solveKepler(m, e float64) float64 {
	eStar := e / degRad
	ecc := m + eStar*sinDeg(m)
	for i := 0; i < 20; i++ {
		d := (m - (ecc - eStar*sinDeg(ecc))) / (1 - e*cosDeg(ecc))
		ecc += d
		if math.Abs(d) < 1e-8 {
			break
		}
	}
	return ecc
}

// planetPosition is the geocentric tropical longitude and latitude of
// one of the five classical planets.
func planetPosition(p astro.Planet, jd float64) (lon, lat float64) {
	el, ok := planetElements[p]
	if !ok {
		return 0, 0
	}
	px, py, pz := heliocentric(el, jd)
	ex, ey, ez := heliocentric(earthElements, jd)

	gx, gy, gz := px-ex, py-ey, pz-ez
	lon = atan2Deg(gy, gx)
	lat = math.Atan2(gz, math.Hypot(gx, gy)) / degRad
	return lon, lat
}

// obliquity is the mean obliquity of the ecliptic, degrees.
func obliquity(jd float64) float64 {
	T := centuries(jd)
	return 23.43929111 - 0.0130042*T - 1.64e-7*T*T
}

// siderealDegrees is Greenwich mean sidereal time expressed in degrees.
func siderealDegrees(jd float64) float64 {
	T := centuries(jd)
	return astro.Normalize(280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*T*T)
}

// ChartAngles implements Adapter. Ascendant and midheaven are tropical;
// the chart layer subtracts the ayanamsa.
func (a *Analytic) ChartAngles(t time.Time, lat, lon float64) (Angles, error) {
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return Angles{}, fmt.Errorf("year %d: %w", y, ErrInvalidMoment)
	}
	if math.Abs(lat) > 89.9 {
		return Angles{}, fmt.Errorf("latitude %.2f: %w", lat, ErrInvalidLocation)
	}

	jd := JulianDay(t)
	eps := obliquity(jd)
	armc := astro.Normalize(siderealDegrees(jd) + lon)

	mc := atan2Deg(sinDeg(armc), cosDeg(armc)*cosDeg(eps))
	asc := atan2Deg(cosDeg(armc), -(sinDeg(armc)*cosDeg(eps) + tanDeg(lat)*sinDeg(eps)))

	return Angles{
		Ascendant: asc,
		Midheaven: mc,
		ARMC:      armc,
		Obliquity: eps,
	}, nil
}

// Ayanamsa names accepted by AyanamsaDegrees.
const (
	AyanamsaLahiri = "LAHIRI"
	AyanamsaRaman  = "RAMAN"
	AyanamsaKP     = "KP"
)

const (
	lahiriJ2000     = 23.85236
	precessionRate  = 50.28796 / 3600.0 // degrees per year
	ramanOffset     = -1.39652
	kpOffset        = -0.10627
)

// AyanamsaDegrees implements Adapter. Unknown names fall back to
// Lahiri, the service default.
func (a *Analytic) AyanamsaDegrees(t time.Time, name string) float64 {
	years := (JulianDay(t) - j2000) / 365.25
	ayan := lahiriJ2000 + precessionRate*years
	switch name {
	case AyanamsaRaman:
		ayan += ramanOffset
	case AyanamsaKP:
		ayan += kpOffset
	}
	return ayan
}
