package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/vedanga/astro-engine-go/internal/utils"
)

// BirthData carries the raw inputs of every calculation: a local birth
// instant and the geographic location it happened at.
type BirthData struct {
	Name      string  `json:"name,omitempty"`
	Date      string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string  `json:"time" binding:"required"` // HH:MM:SS
	Timezone  string  `json:"timezone"`                // IANA name or fixed offset like +05:30
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var offsetPattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

// Validate checks the birth data for well-formedness without touching
// the ephemeris. All failures are InputErrors.
func (b BirthData) Validate() error {
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return utils.NewInputErrorf("invalid date %q: expected YYYY-MM-DD", b.Date)
	}
	if _, err := time.Parse("15:04:05", b.Time); err != nil {
		return utils.NewInputErrorf("invalid time %q: expected HH:MM:SS", b.Time)
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return utils.NewInputErrorf("latitude %.4f out of range [-90, 90]", b.Latitude)
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return utils.NewInputErrorf("longitude %.4f out of range [-180, 180]", b.Longitude)
	}
	if b.Timezone != "" && !offsetPattern.MatchString(b.Timezone) {
		if _, err := time.LoadLocation(b.Timezone); err != nil {
			return utils.NewInputErrorf("unknown timezone %q", b.Timezone)
		}
	}
	return nil
}

// MomentUTC resolves the local birth date and time to a UTC instant.
// The timezone may be a fixed offset ("+05:30") or an IANA zone name;
// an empty timezone means UTC.
func (b BirthData) MomentUTC() (time.Time, error) {
	if err := b.Validate(); err != nil {
		return time.Time{}, err
	}

	loc := time.UTC
	switch {
	case b.Timezone == "":
	case offsetPattern.MatchString(b.Timezone):
		var sign rune
		var hh, mm int
		if _, err := fmt.Sscanf(b.Timezone, "%c%02d:%02d", &sign, &hh, &mm); err != nil {
			return time.Time{}, utils.NewInputErrorf("invalid UTC offset %q", b.Timezone)
		}
		secs := hh*3600 + mm*60
		if sign == '-' {
			secs = -secs
		}
		loc = time.FixedZone(b.Timezone, secs)
	default:
		var err error
		loc, err = time.LoadLocation(b.Timezone)
		if err != nil {
			return time.Time{}, utils.NewInputErrorf("unknown timezone %q", b.Timezone)
		}
	}

	local, err := time.ParseInLocation("2006-01-02 15:04:05", b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, utils.NewInputErrorf("cannot parse birth instant: %v", err)
	}
	return local.UTC(), nil
}
