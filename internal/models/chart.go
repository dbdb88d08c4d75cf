package models

import (
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// HouseSystem selects the geometric rule used to compute house cusps.
type HouseSystem string

const (
	Placidus  HouseSystem = "PLACIDUS"
	Koch      HouseSystem = "KOCH"
	Equal     HouseSystem = "EQUAL"
	WholeSign HouseSystem = "WHOLE_SIGN"
)

// ValidHouseSystem reports whether s names a supported house system.
func ValidHouseSystem(s HouseSystem) bool {
	switch s {
	case Placidus, Koch, Equal, WholeSign:
		return true
	}
	return false
}

// Ayanamsa selects the sidereal offset tradition.
type Ayanamsa string

const (
	Lahiri       Ayanamsa = "LAHIRI"
	Raman        Ayanamsa = "RAMAN"
	Krishnamurti Ayanamsa = "KP"
)

// ValidAyanamsa reports whether a names a supported ayanamsa.
func ValidAyanamsa(a Ayanamsa) bool {
	switch a {
	case Lahiri, Raman, Krishnamurti:
		return true
	}
	return false
}

// Dignity describes a planet's essential standing in its sign.
type Dignity string

const (
	Exalted     Dignity = "exalted"
	Debilitated Dignity = "debilitated"
	OwnSign     Dignity = "own_sign"
	Neutral     Dignity = "neutral"
)

// PlanetaryPosition is one body's sidereal state at the chart instant.
// Produced once by the ephemeris adapter and never mutated.
type PlanetaryPosition struct {
	Planet     astro.Planet `json:"planet"`
	Longitude  float64      `json:"longitude"` // sidereal, degrees [0,360)
	Latitude   float64      `json:"latitude"`  // ecliptic latitude, degrees
	SpeedPerDay float64     `json:"speed_per_day"`
	Retrograde bool         `json:"retrograde"`

	Sign       string  `json:"sign"`
	SignNum    int     `json:"sign_num"` // 0-based
	SignDegree float64 `json:"sign_degree"`
	Nakshatra  string  `json:"nakshatra"`
	NakshatraNum int   `json:"nakshatra_num"` // 1-based
	Pada       int     `json:"pada"`
	Dignity    Dignity `json:"dignity"`
	Combust    bool    `json:"combust"`
	Avastha    string  `json:"avastha,omitempty"`
}

// PlanetStrength is the simplified six-fold (shadbala-style) strength
// summary used for remedy triggering and report text.
type PlanetStrength struct {
	Positional  float64 `json:"positional"`
	Directional float64 `json:"directional"`
	Temporal    float64 `json:"temporal"`
	Motional    float64 `json:"motional"`
	Natural     float64 `json:"natural"`
	Aspectual   float64 `json:"aspectual"`
	Total       float64 `json:"total"`
	Percentage  float64 `json:"percentage"`
}

// Chart is a complete natal chart: ascendant, cusps and placements.
// Derived data only; safe to share read-only across goroutines.
type Chart struct {
	Moment      time.Time   `json:"moment_utc"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	HouseSystem HouseSystem `json:"house_system"`
	Ayanamsa    Ayanamsa    `json:"ayanamsa"`
	AyanamsaDeg float64     `json:"ayanamsa_deg"`

	Ascendant     float64 `json:"ascendant"` // sidereal longitude, degrees
	AscendantSign string  `json:"ascendant_sign"`
	Midheaven     float64 `json:"midheaven"`

	// Cusps are the 12 house cusp longitudes in house order, strictly
	// increasing around the circle.
	Cusps [12]float64 `json:"cusps"`

	Positions    map[astro.Planet]PlanetaryPosition `json:"positions"`
	PlanetHouses map[astro.Planet]int               `json:"planet_houses"` // 1-based
	Strengths    map[astro.Planet]PlanetStrength    `json:"strengths"`
}

// MoonPosition is a convenience accessor; the Moon always exists in a
// well-formed chart.
func (c *Chart) MoonPosition() PlanetaryPosition {
	return c.Positions[astro.Moon]
}

// HouseOf returns the 1-based house occupied by the planet, or 0 when
// the planet is absent.
func (c *Chart) HouseOf(p astro.Planet) int {
	return c.PlanetHouses[p]
}

// PlanetsInHouse lists occupants of the 1-based house in stable
// traditional order.
func (c *Chart) PlanetsInHouse(house int) []astro.Planet {
	var out []astro.Planet
	for _, p := range astro.Planets {
		if c.PlanetHouses[p] == house {
			out = append(out, p)
		}
	}
	return out
}

// Placement names one chart placement contributing to a matched rule,
// kept for explainability.
type Placement struct {
	Planet astro.Planet `json:"planet"`
	Sign   string       `json:"sign"`
	House  int          `json:"house"`
}
