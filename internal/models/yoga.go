package models

// YogaResult is the outcome of evaluating one catalog rule against a
// chart. Placements name the contributing bodies for explainability.
type YogaResult struct {
	Rule        string      `json:"rule"`
	Kind        string      `json:"kind"` // raj, dhana, mahapurusha, lunar, solar, dosha
	Matched     bool        `json:"matched"`
	Description string      `json:"description"`
	Placements  []Placement `json:"placements,omitempty"`
}

// SadesatiStatus reports whether transit Saturn sits in the 12th, 1st
// or 2nd sign from the natal Moon.
type SadesatiStatus struct {
	Active     bool   `json:"active"`
	Phase      string `json:"phase,omitempty"` // Rising, Peak, Setting
	MoonSign   string `json:"moon_sign"`
	SaturnSign string `json:"saturn_sign"`
}
