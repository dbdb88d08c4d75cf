package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// daysPerYear converts Vimshottari years to calendar days.
const daysPerYear = 365.25

// MaxDashaDepth is the deepest supported nesting below mahadashas
// (pranadasha).
const MaxDashaDepth = 4

// DashaService builds Vimshottari timelines from the Moon's natal
// nakshatra. The first mahadasha starts before birth by the fraction of
// the period already elapsed, so the nine mahadashas always tile an
// exact 120-year cycle.
type DashaService struct {
	logger *logrus.Logger
}

// NewDashaService creates the dasha calculator.
func NewDashaService(logger *logrus.Logger) *DashaService {
	return &DashaService{logger: logger}
}

// Timeline computes the full cycle for the chart. Depth counts levels
// below mahadasha: 0 stops at mahadashas, 1 adds antardashas, up to
// MaxDashaDepth for pranadashas.
func (s *DashaService) Timeline(chart *models.Chart, depth int) (*models.DashaTimeline, error) {
	if depth < 0 || depth > MaxDashaDepth {
		return nil, utils.NewInputErrorf("dasha depth %d out of range [0, %d]", depth, MaxDashaDepth)
	}

	moonLon := chart.MoonPosition().Longitude
	nakIdx, _ := astro.NakshatraOf(moonLon)
	lord := astro.NakshatraLord(nakIdx)

	traversed := mod30(astro.Normalize(moonLon), astro.NakshatraSpan) / astro.NakshatraSpan
	lordYears := astro.VimshottariYears[lord]
	elapsedYears := lordYears * traversed

	cycleStart := chart.Moment.Add(-durationOfDays(elapsedYears * daysPerYear))

	timeline := &models.DashaTimeline{
		BirthNakshatra:     astro.NakshatraNames[nakIdx],
		BirthNakshatraLord: lord,
		BalanceYears:       lordYears - elapsedYears,
		Descriptions:       make(map[astro.Planet]string, 9),
	}

	intervals := astro.Subdivide(0, astro.VimshottariTotalYears*daysPerYear, lord)
	for _, iv := range intervals {
		timeline.Periods = append(timeline.Periods, s.buildPeriod(cycleStart, iv, 0, depth))
		timeline.Descriptions[iv.Lord] = MahadashaDescription(iv.Lord)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"birth_nakshatra": timeline.BirthNakshatra,
			"first_lord":      lord,
			"balance_years":   timeline.BalanceYears,
		}).Debug("Dasha timeline calculated")
	}
	return timeline, nil
}

// buildPeriod converts a day-metric interval into a dated period and
// recurses for child levels.
func (s *DashaService) buildPeriod(cycleStart time.Time, iv astro.Interval, level, depth int) models.DashaPeriod {
	period := models.DashaPeriod{
		Lord:  iv.Lord,
		Level: models.DashaLevels[level],
		Start: cycleStart.Add(durationOfDays(iv.Start)),
		End:   cycleStart.Add(durationOfDays(iv.End)),
		Years: iv.Span() / daysPerYear,
	}
	if level < depth {
		children := astro.Subdivide(iv.Start, iv.Span(), iv.Lord)
		period.Children = make([]models.DashaPeriod, 0, len(children))
		for _, child := range children {
			period.Children = append(period.Children, s.buildPeriod(cycleStart, child, level+1, depth))
		}
	}
	return period
}

func durationOfDays(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}

var mahadashaDescriptions = map[astro.Planet]string{
	astro.Ketu: "Ketu Mahadasha often brings detachment, spiritual growth, sudden " +
		"separations and strong inner experiences. It can disconnect a person from " +
		"material attachments so that focus shifts more toward inner peace, intuition " +
		"and past-life karmas.",
	astro.Venus: "Venus Mahadasha is a period of relationships, comforts, luxuries, " +
		"beauty and creativity. It can enhance love life, partnerships and artistic " +
		"talents, but may also increase indulgence or attachment to pleasure if Venus is weak.",
	astro.Sun: "Sun Mahadasha highlights authority, self-expression, ego, father " +
		"figures and career recognition. It can bring leadership opportunities and " +
		"visibility, but also ego clashes or health strain if the Sun is afflicted.",
	astro.Moon: "Moon Mahadasha is strongly emotional and mental. It influences peace " +
		"of mind, mother, home, fluids and public popularity. This period can make a " +
		"person more sensitive and intuitive, but also prone to mood swings if the Moon is weak.",
	astro.Mars: "Mars Mahadasha activates courage, energy, ambition, competition and " +
		"aggression. It can support bold actions, sports and technical pursuits, yet " +
		"may also bring conflicts, injuries or impulsive decisions when not handled wisely.",
	astro.Rahu: "Rahu Mahadasha often brings sudden events, foreign connections, " +
		"unconventional paths and strong material desires. It can give rapid rise and " +
		"worldly gains, but also confusion, obsessions or scandals if not guided properly.",
	astro.Jupiter: "Jupiter Mahadasha is usually considered benefic, supporting wisdom, " +
		"education, wealth, children, dharma and protection. It can open doors for " +
		"growth and blessings, depending on Jupiter's strength and house placement.",
	astro.Saturn: "Saturn Mahadasha emphasizes discipline, responsibilities, hard work, " +
		"delays and karmic lessons. It can be demanding but ultimately stabilising, " +
		"rewarding consistent effort and maturity over time.",
	astro.Mercury: "Mercury Mahadasha focuses on intellect, communication, business, " +
		"networking and analytical ability. It supports studies, trade, writing and " +
		"negotiations, but may bring restlessness or overthinking if Mercury is weak.",
}

// MahadashaDescription returns the interpretive text for a mahadasha
// lord.
func MahadashaDescription(lord astro.Planet) string {
	if d, ok := mahadashaDescriptions[lord]; ok {
		return d
	}
	return "This Mahadasha period brings results according to the planet's strength, " +
		"sign and house placement in the birth chart."
}
