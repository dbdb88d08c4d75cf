package models

import "github.com/vedanga/astro-engine-go/internal/astro"

// AfflictionKind names why a planet needs pacifying.
type AfflictionKind string

const (
	AfflictionDosha       AfflictionKind = "dosha"
	AfflictionDebilitated AfflictionKind = "debilitated"
	AfflictionCombust     AfflictionKind = "combust"
	AfflictionWeak        AfflictionKind = "weak"
)

// Affliction ties a planet to the condition that triggered remedies.
type Affliction struct {
	Planet astro.Planet   `json:"planet"`
	Kind   AfflictionKind `json:"kind"`
	Source string         `json:"source"` // rule or measurement that raised it
}

// RemedyCategory classifies a remedy record.
type RemedyCategory string

const (
	Gemstone RemedyCategory = "gemstone"
	Mantra   RemedyCategory = "mantra"
	Charity  RemedyCategory = "charity"
	Fasting  RemedyCategory = "fasting"
)

// Remedy is one catalog record matched to a detected affliction.
// Catalog order is preserved; there is no ranking.
type Remedy struct {
	Category    RemedyCategory `json:"category"`
	Planet      astro.Planet   `json:"planet"`
	Affliction  Affliction     `json:"affliction"`
	Description string         `json:"description"`
	Day         string         `json:"day,omitempty"`
	Items       []string       `json:"items,omitempty"`
}

// RemedyReport bundles the detected afflictions with the matched
// remedies and the standing general advice.
type RemedyReport struct {
	Afflictions []Affliction `json:"afflictions"`
	Remedies    []Remedy     `json:"remedies"`
	General     []string     `json:"general"`
}
