package ephemeris

import (
	"errors"
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// Sentinel errors for provider failures. Services wrap these into
// EphemerisErrors at the boundary.
var (
	ErrUnavailable     = errors.New("ephemeris data unavailable")
	ErrInvalidMoment   = errors.New("instant outside supported ephemeris range")
	ErrInvalidLocation = errors.New("location not supported by ephemeris")
	ErrNoEvent         = errors.New("sun does not rise or set at this latitude")
)

// BodyState is one body's raw tropical ecliptic state. The ayanamsa is
// applied by the chart layer, not here.
type BodyState struct {
	Longitude   float64 // tropical ecliptic longitude, degrees [0,360)
	Latitude    float64 // ecliptic latitude, degrees
	SpeedPerDay float64 // degrees per day, negative when retrograde
}

// Angles holds the chart angles and the intermediate quantities house
// systems need.
type Angles struct {
	Ascendant float64 // tropical, degrees
	Midheaven float64 // tropical, degrees
	ARMC      float64 // right ascension of the MC, degrees
	Obliquity float64 // true obliquity of the ecliptic, degrees
}

// Adapter is the single seam between the calculation engines and
// astronomical data. Implementations must be safe for concurrent use.
type Adapter interface {
	// Positions returns the state of all nine bodies at the UTC instant.
	Positions(t time.Time) (map[astro.Planet]BodyState, error)

	// ChartAngles returns ascendant and midheaven for the instant and
	// geographic location.
	ChartAngles(t time.Time, lat, lon float64) (Angles, error)

	// SunriseSunset returns the UTC instants of sunrise and sunset for
	// the calendar day of date (in date's own location). ErrNoEvent is
	// returned during polar day or night.
	SunriseSunset(date time.Time, lat, lon float64) (rise, set time.Time, err error)

	// AyanamsaDegrees returns the sidereal offset for the tradition at
	// the instant.
	AyanamsaDegrees(t time.Time, name string) float64
}
