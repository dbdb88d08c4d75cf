package models

import "github.com/vedanga/astro-engine-go/internal/astro"

// DivisionalPosition is one body's place in a harmonic chart.
type DivisionalPosition struct {
	OriginalLongitude float64 `json:"original_longitude"`
	Longitude         float64 `json:"longitude"`
	Sign              string  `json:"sign"`
	SignNum           int     `json:"sign_num"` // 0-based
	Degree            float64 `json:"degree"`
}

// DivisionalChart is one varga (D1-D60) derived from a natal chart.
type DivisionalChart struct {
	Division  string                                `json:"division"` // "D9"
	Harmonic  int                                   `json:"harmonic"`
	Name      string                                `json:"name"`
	Matters   string                                `json:"matters"`
	Ascendant DivisionalPosition                    `json:"ascendant"`
	Planets   map[astro.Planet]DivisionalPosition   `json:"planets"`
}
