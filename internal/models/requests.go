package models

// Request DTOs for the HTTP boundary. Selectors default in the handlers
// from configured values when omitted.

// ChartRequest asks for a natal chart.
type ChartRequest struct {
	BirthData   BirthData   `json:"birth_data" binding:"required"`
	HouseSystem HouseSystem `json:"house_system,omitempty"`
	Ayanamsa    Ayanamsa    `json:"ayanamsa,omitempty"`
}

// DivisionalRequest asks for one harmonic chart or the full catalog.
type DivisionalRequest struct {
	ChartRequest
	// Divisions holds harmonic numbers (1, 9, 10, ...). Empty means the
	// complete D1-D60 catalog.
	Divisions []int `json:"divisions,omitempty"`
}

// PanchangRequest asks for calendrical data at a moment and place.
type PanchangRequest struct {
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time,omitempty"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DashaRequest asks for the Vimshottari timeline to a given depth.
type DashaRequest struct {
	ChartRequest
	// Depth counts levels below mahadasha: 1 adds antardashas, 2
	// pratyantardashas, and so on. An explicit zero means mahadashas
	// only; omitting the field falls back to the configured default.
	Depth *int `json:"depth,omitempty"`
}

// KPRequest asks for cuspal and planetary sub-lord chains.
type KPRequest struct {
	ChartRequest
	// SubDepth counts levels below the star lord, typically 2-3.
	SubDepth int `json:"sub_depth,omitempty"`
}

// MatchingRequest asks for an Ashtakoot comparison of two births.
type MatchingRequest struct {
	Groom BirthData `json:"groom" binding:"required"`
	Bride BirthData `json:"bride" binding:"required"`
}

// HoroscopeRequest asks for the full orchestrated report.
type HoroscopeRequest struct {
	ChartRequest
	DashaDepth int `json:"dasha_depth,omitempty"`
}
