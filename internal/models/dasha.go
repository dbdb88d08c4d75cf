package models

import (
	"time"

	"github.com/vedanga/astro-engine-go/internal/astro"
)

// DashaLevel names the nesting depth of a period.
type DashaLevel string

const (
	Mahadasha       DashaLevel = "mahadasha"
	Antardasha      DashaLevel = "antardasha"
	Pratyantardasha DashaLevel = "pratyantardasha"
	Sookshmadasha   DashaLevel = "sookshmadasha"
	Pranadasha      DashaLevel = "pranadasha"
)

// DashaLevels lists the supported depths in order.
var DashaLevels = []DashaLevel{Mahadasha, Antardasha, Pratyantardasha, Sookshmadasha, Pranadasha}

// DashaPeriod is one node of the Vimshottari timeline. Sibling periods
// are contiguous and children tile the parent exactly.
type DashaPeriod struct {
	Lord     astro.Planet  `json:"lord"`
	Level    DashaLevel    `json:"level"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Years    float64       `json:"years"`
	Children []DashaPeriod `json:"children,omitempty"`
}

// Contains reports whether t falls inside the period (start inclusive,
// end exclusive).
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// DashaTimeline is the full 120-year cycle anchored at birth.
type DashaTimeline struct {
	BirthNakshatra     string        `json:"birth_nakshatra"`
	BirthNakshatraLord astro.Planet  `json:"birth_nakshatra_lord"`
	BalanceYears       float64       `json:"balance_years"` // remainder of the first mahadasha at birth
	Periods            []DashaPeriod `json:"periods"`

	// Descriptions carries the interpretive text for each mahadasha lord.
	Descriptions map[astro.Planet]string `json:"descriptions,omitempty"`
}

// CurrentChain walks the timeline and returns the active period at each
// level for instant t, outermost first. Empty when t precedes the cycle
// or falls after its end.
func (tl *DashaTimeline) CurrentChain(t time.Time) []DashaPeriod {
	var chain []DashaPeriod
	periods := tl.Periods
	for len(periods) > 0 {
		var hit *DashaPeriod
		for i := range periods {
			if periods[i].Contains(t) {
				hit = &periods[i]
				break
			}
		}
		if hit == nil {
			break
		}
		chain = append(chain, *hit)
		periods = hit.Children
	}
	return chain
}
