package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// zenithOfficial is the solar zenith at rise/set including refraction
// and the solar radius.
const zenithOfficial = 90.833

// SunriseSunset implements Adapter using the NOAA solar calculator
// formulation. The event times are for the calendar day of date in
// date's own location, returned as UTC instants.
func (a *Analytic) SunriseSunset(date time.Time, lat, lon float64) (rise, set time.Time, err error) {
	if y := date.Year(); y < minYear || y > maxYear {
		return time.Time{}, time.Time{}, fmt.Errorf("year %d: %w", y, ErrInvalidMoment)
	}
	if math.Abs(lat) > 89.9 {
		return time.Time{}, time.Time{}, fmt.Errorf("latitude %.2f: %w", lat, ErrInvalidLocation)
	}

	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	jd0 := JulianDay(midnight)

	riseMin, err := eventMinutes(jd0, lat, lon, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	setMin, err := eventMinutes(jd0, lat, lon, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	rise = midnight.Add(time.Duration(riseMin * float64(time.Minute)))
	set = midnight.Add(time.Duration(setMin * float64(time.Minute)))
	if !set.After(rise) {
		set = set.Add(24 * time.Hour)
	}
	return rise, set, nil
}

// eventMinutes returns minutes after 0h UT of the rise or set event,
// refined once so the solar coordinates match the event time.
func eventMinutes(jd0, lat, lon float64, rising bool) (float64, error) {
	minutes := 720.0 - 4.0*lon
	for i := 0; i < 2; i++ {
		T := centuries(jd0 + minutes/1440.0)
		decl := solarDeclination(T)
		eq := equationOfTime(T)

		cosH := (cosDeg(zenithOfficial) - sinDeg(lat)*sinDeg(decl)) /
			(cosDeg(lat) * cosDeg(decl))
		if cosH > 1 || cosH < -1 {
			return 0, fmt.Errorf("latitude %.2f declination %.2f: %w", lat, decl, ErrNoEvent)
		}
		ha := math.Acos(cosH) / degRad
		if rising {
			minutes = 720.0 - 4.0*(lon+ha) - eq
		} else {
			minutes = 720.0 - 4.0*(lon-ha) - eq
		}
	}
	return minutes, nil
}

// solarDeclination is the Sun's declination, degrees, at T Julian
// centuries from J2000.
func solarDeclination(T float64) float64 {
	jd := j2000 + T*36525.0
	trueLon := sunLongitude(jd)
	eps := obliquity(jd)
	return math.Asin(sinDeg(eps)*sinDeg(trueLon)) / degRad
}

// equationOfTime is apparent minus mean solar time, in minutes.
func equationOfTime(T float64) float64 {
	jd := j2000 + T*36525.0
	eps := obliquity(jd)
	l0 := astro.Normalize(280.46646 + 36000.76983*T + 0.0003032*T*T)
	m := astro.Normalize(357.52911 + 35999.05029*T - 0.0001537*T*T)
	e := 0.016708634 - 0.000042037*T

	y := tanDeg(eps/2) * tanDeg(eps/2)
	et := y*sinDeg(2*l0) -
		2*e*sinDeg(m) +
		4*e*y*sinDeg(m)*cosDeg(2*l0) -
		0.5*y*y*sinDeg(4*l0) -
		1.25*e*e*sinDeg(2*m)
	return 4 * et / degRad
}
