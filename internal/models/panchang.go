package models

import "time"

// Tithi is one of the 30 lunar days, derived from the sun-moon
// elongation in 12° steps.
type Tithi struct {
	Number   int     `json:"number"` // 1-30
	Name     string  `json:"name"`
	Paksha   string  `json:"paksha"` // Shukla (waxing) or Krishna (waning)
	Progress float64 `json:"progress_percent"`
}

// NakshatraInfo is the moon's lunar mansion with its quarter and lord.
type NakshatraInfo struct {
	Number   int     `json:"number"` // 1-27
	Name     string  `json:"name"`
	Pada     int     `json:"pada"` // 1-4
	Lord     string  `json:"lord"`
	Progress float64 `json:"progress_percent"`
}

// YogaInfo is the luni-solar yoga (sum of longitudes in 13°20' steps).
type YogaInfo struct {
	Number   int     `json:"number"` // 1-27
	Name     string  `json:"name"`
	Progress float64 `json:"progress_percent"`
}

// KaranaInfo is the half-tithi. Number is the 1-based half-tithi count
// (1-60); Index is the 1-based karana type (1-11).
type KaranaInfo struct {
	Number   int     `json:"number"`
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress_percent"`
}

// TimeWindow is an inauspicious span of the local day.
type TimeWindow struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PanchangDay bundles the five limbs of the Vedic calendar for one
// moment and location, plus the day's inauspicious windows.
type PanchangDay struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Sunrise  time.Time `json:"sunrise"`
	Sunset   time.Time `json:"sunset"`

	Tithi     Tithi         `json:"tithi"`
	Nakshatra NakshatraInfo `json:"nakshatra"`
	Yoga      YogaInfo      `json:"yoga"`
	Karana    KaranaInfo    `json:"karana"`

	InauspiciousWindows []TimeWindow `json:"inauspicious_windows"`

	SunLongitude  float64 `json:"sun_longitude"`
	MoonLongitude float64 `json:"moon_longitude"`
}
