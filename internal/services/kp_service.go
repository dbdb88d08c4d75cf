package services

import (
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// MaxKPSubDepth caps the sub-lord ladder below the star lord.
const MaxKPSubDepth = 4

// KPService computes Krishnamurti Paddhati significators: the sub-lord
// ladder for every cusp and planet, house-level significator analysis
// and the ruling planets of the chart moment.
type KPService struct {
	logger *logrus.Logger
}

// NewKPService creates the KP calculator.
func NewKPService(logger *logrus.Logger) *KPService {
	return &KPService{logger: logger}
}

var weekdayLords = [7]astro.Planet{
	astro.Sun, astro.Moon, astro.Mars, astro.Mercury,
	astro.Jupiter, astro.Venus, astro.Saturn,
}

var houseMatters = [13]string{
	"",
	"Self, personality, health, appearance",
	"Wealth, family, speech, food",
	"Siblings, courage, short travels, communication",
	"Mother, home, property, vehicles, happiness",
	"Children, education, speculation, romance",
	"Enemies, diseases, debts, service",
	"Marriage, partnership, spouse, business",
	"Longevity, inheritance, sudden events, occult",
	"Father, fortune, higher education, spirituality",
	"Career, profession, status, authority",
	"Gains, income, friends, desires",
	"Losses, expenses, foreign lands, moksha",
}

// SubLordChain builds the lord ladder for one longitude. subDepth
// counts levels below the star lord: 1 yields the sub lord, 2 adds the
// sub-sub lord and so on. The sub divisions split the nakshatra
// proportionally to the Vimshottari periods, leading with the star
// lord.
func SubLordChain(longitude float64, subDepth int) models.KPSubLordChain {
	lon := astro.Normalize(longitude)
	nakIdx, _ := astro.NakshatraOf(lon)
	starLord := astro.NakshatraLord(nakIdx)
	nakStart := float64(nakIdx) * astro.NakshatraSpan

	chain := models.KPSubLordChain{
		Longitude: lon,
		Sign:      astro.SignOf(lon).String(),
		Degree:    astro.SignDegree(lon),
		Nakshatra: astro.NakshatraNames[nakIdx],
		SignLord:  astro.SignLords[astro.SignOf(lon)],
		StarLord:  starLord,
	}
	for _, iv := range astro.DrillDown(lon, nakStart, astro.NakshatraSpan, starLord, subDepth) {
		chain.SubLords = append(chain.SubLords, iv.Lord)
	}
	return chain
}

// Calculate builds the full KP analysis from a natal chart. The chart
// should be cast with the Krishnamurti ayanamsa.
func (s *KPService) Calculate(chart *models.Chart, subDepth int) (*models.KPChart, error) {
	if subDepth == 0 {
		subDepth = 2
	}
	if subDepth < 1 || subDepth > MaxKPSubDepth {
		return nil, utils.NewInputErrorf("kp sub depth %d out of range [1, %d]", subDepth, MaxKPSubDepth)
	}

	kp := &models.KPChart{
		Planets: make(map[astro.Planet]models.KPSubLordChain, len(chart.Positions)),
		DayLord: weekdayLords[chart.Moment.Weekday()],
	}

	for i, cuspLon := range chart.Cusps {
		kp.Cusps = append(kp.Cusps, models.KPCusp{
			House:          i + 1,
			KPSubLordChain: SubLordChain(cuspLon, subDepth),
		})
	}
	for planet, pos := range chart.Positions {
		kp.Planets[planet] = SubLordChain(pos.Longitude, subDepth)
	}

	for house := 1; house <= 12; house++ {
		kp.Houses = append(kp.Houses, s.analyzeHouse(chart, kp, house))
	}

	kp.RulingLords = rulingLords(kp, chart)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"day_lord":     kp.DayLord,
			"ruling_lords": kp.RulingLords,
		}).Debug("KP chart calculated")
	}
	return kp, nil
}

// analyzeHouse collects the house's significators: its cusp sub lord,
// occupants, their star lords and every planet sitting in a star of the
// cusp sub lord.
func (s *KPService) analyzeHouse(chart *models.Chart, kp *models.KPChart, house int) models.KPHouseAnalysis {
	cuspSub := kp.Cusps[house-1].StarLord
	if len(kp.Cusps[house-1].SubLords) > 0 {
		cuspSub = kp.Cusps[house-1].SubLords[0]
	}

	analysis := models.KPHouseAnalysis{
		House:       house,
		CuspSubLord: cuspSub,
		Matters:     houseMatters[house],
	}

	seen := map[astro.Planet]bool{}
	for _, p := range astro.Planets {
		if chart.PlanetHouses[p] != house {
			continue
		}
		analysis.PlanetsInHouse = append(analysis.PlanetsInHouse, p)
		star := kp.Planets[p].StarLord
		if !seen[star] {
			seen[star] = true
			analysis.StarLordsInHouse = append(analysis.StarLordsInHouse, star)
		}
	}
	for _, p := range astro.Planets {
		if kp.Planets[p].StarLord == cuspSub {
			analysis.PlanetsInSubLordsStar = append(analysis.PlanetsInSubLordsStar, p)
		}
	}
	return analysis
}

// rulingLords gathers the KP ruling planets: day lord, then the star
// and sub lords of the ascendant and the Moon, deduplicated in that
// order.
func rulingLords(kp *models.KPChart, chart *models.Chart) []astro.Planet {
	ascChain := SubLordChain(chart.Ascendant, 1)
	moonChain := kp.Planets[astro.Moon]

	candidates := []astro.Planet{kp.DayLord, ascChain.StarLord}
	if len(ascChain.SubLords) > 0 {
		candidates = append(candidates, ascChain.SubLords[0])
	}
	candidates = append(candidates, moonChain.StarLord)
	if len(moonChain.SubLords) > 0 {
		candidates = append(candidates, moonChain.SubLords[0])
	}

	var out []astro.Planet
	seen := map[astro.Planet]bool{}
	for _, p := range candidates {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
