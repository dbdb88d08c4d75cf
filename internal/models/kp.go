package models

import "github.com/vedanga/astro-engine-go/internal/astro"

// KPSubLordChain is the ordered lord ladder for one longitude: sign
// lord, then star lord, then sub lord, sub-sub lord and so on to the
// requested depth.
type KPSubLordChain struct {
	Longitude float64        `json:"longitude"`
	Sign      string         `json:"sign"`
	Degree    float64        `json:"degree"`
	Nakshatra string         `json:"nakshatra"`
	SignLord  astro.Planet   `json:"sign_lord"`
	StarLord  astro.Planet   `json:"star_lord"`
	SubLords  []astro.Planet `json:"sub_lords"` // sub, sub-sub, ... in order
}

// KPCusp is one house cusp with its lord chain.
type KPCusp struct {
	House int `json:"house"` // 1-based
	KPSubLordChain
}

// KPHouseAnalysis summarizes significators for one house.
type KPHouseAnalysis struct {
	House                 int            `json:"house"`
	CuspSubLord           astro.Planet   `json:"cusp_sub_lord"`
	PlanetsInHouse        []astro.Planet `json:"planets_in_house"`
	StarLordsInHouse      []astro.Planet `json:"star_lords_in_house"`
	PlanetsInSubLordsStar []astro.Planet `json:"planets_in_sub_lords_star"`
	Matters               string         `json:"matters"`
}

// KPChart is the full Krishnamurti analysis of one natal chart.
type KPChart struct {
	Cusps       []KPCusp                        `json:"cusps"`
	Planets     map[astro.Planet]KPSubLordChain `json:"planets"`
	Houses      []KPHouseAnalysis               `json:"houses"`
	DayLord     astro.Planet                    `json:"day_lord"`
	RulingLords []astro.Planet                  `json:"ruling_lords"`
}
