package models

// KootaScore is one of the eight compatibility factors.
type KootaScore struct {
	Name        string  `json:"name"`
	Groom       string  `json:"groom"`  // groom-side category (varna, gana, yoni, ...)
	Bride       string  `json:"bride"`  // bride-side category
	Points      float64 `json:"points"`
	MaxPoints   float64 `json:"max_points"`
	Description string  `json:"description"`
}

// MatchDosha flags a disqualifying combination, reported independently
// of the numeric total.
type MatchDosha struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AshtakootScore is the complete 8-koota compatibility result. Total is
// always the exact sum of the koota points and lies in [0, 36].
type AshtakootScore struct {
	Kootas        []KootaScore `json:"kootas"`
	Total         float64      `json:"total"`
	MaxTotal      float64      `json:"max_total"`
	Percentage    float64      `json:"percentage"`
	Compatibility string       `json:"compatibility"`
	Doshas        []MatchDosha `json:"doshas"`
}

// DashakootScore extends the eight kootas with Mahendra and Stree
// Deergha for a 10-koota result out of 38. AshtakootTotal keeps the
// plain 8-koota score for side-by-side reporting.
type DashakootScore struct {
	Kootas         []KootaScore `json:"kootas"`
	Total          float64      `json:"total"`
	MaxTotal       float64      `json:"max_total"`
	Percentage     float64      `json:"percentage"`
	Compatibility  string       `json:"compatibility"`
	Recommendation string       `json:"recommendation"`
	Doshas         []MatchDosha `json:"doshas"`
	AshtakootTotal float64      `json:"ashtakoot_total"`
}
