package models

import "github.com/vedanga/astro-engine-go/internal/astro"

// BindhuTable is one planet's prastarashtakavarga: benefic point count
// per sign, Aries first.
type BindhuTable struct {
	Planet astro.Planet `json:"planet"`
	Bindus [12]int      `json:"bindus"`
	Total  int          `json:"total"`
}

// AshtakavargaTable is the complete tally: seven individual tables and
// their sarvashtakavarga sum. GrandTotal is a constant of the
// contribution tables, independent of the chart.
type AshtakavargaTable struct {
	Individual map[astro.Planet]BindhuTable `json:"individual"`
	Sarva      [12]int                      `json:"sarva"`
	GrandTotal int                          `json:"grand_total"`

	// StrengthBands buckets signs by sarva bindu count for report text.
	StrengthBands map[string][]string `json:"strength_bands"`

	// Transit grades each sign for transits from its sarva count.
	Transit map[string]string `json:"transit"`
}
