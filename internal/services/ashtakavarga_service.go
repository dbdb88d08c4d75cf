package services

import (
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// ascendantRef marks the ascendant row of a contribution table.
const ascendantRef = astro.Planet("Ascendant")

// AshtakavargaGrandTotal is the fixed sum of all contribution tables.
// It depends only on the tables, never on the chart.
const AshtakavargaGrandTotal = 341

// AshtakavargaService tallies benefic points (bindus): each of the
// seven planets plus the ascendant contributes points to fixed house
// offsets counted from its own sign.
type AshtakavargaService struct {
	logger *logrus.Logger
}

// NewAshtakavargaService creates the ashtakavarga calculator.
func NewAshtakavargaService(logger *logrus.Logger) *AshtakavargaService {
	return &AshtakavargaService{logger: logger}
}

// beneficOffsets holds, per target planet, the 1-based house offsets at
// which every contributor (including the ascendant) deposits a bindu.
var beneficOffsets = map[astro.Planet]map[astro.Planet][]int{
	astro.Sun: {
		astro.Sun:     {1, 2, 4, 7, 8, 9, 10, 11},
		astro.Moon:    {3, 6, 10, 11},
		astro.Mars:    {1, 2, 4, 7, 8, 9, 10, 11},
		astro.Mercury: {3, 5, 6, 9, 10, 11, 12},
		astro.Jupiter: {5, 6, 9, 11},
		astro.Venus:   {6, 7, 12},
		astro.Saturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		ascendantRef:  {3, 4, 6, 10, 11, 12},
	},
	astro.Moon: {
		astro.Sun:     {3, 6, 7, 8, 10, 11},
		astro.Moon:    {1, 3, 6, 7, 10, 11},
		astro.Mars:    {2, 3, 5, 6, 9, 10, 11},
		astro.Mercury: {1, 3, 4, 5, 7, 8, 10, 11},
		astro.Jupiter: {1, 4, 7, 8, 10, 11, 12},
		astro.Venus:   {3, 4, 5, 7, 9, 10, 11},
		astro.Saturn:  {3, 5, 6, 11},
		ascendantRef:  {3, 6, 7, 8, 10, 11},
	},
	astro.Mars: {
		astro.Sun:     {3, 5, 6, 10, 11},
		astro.Moon:    {3, 6, 11},
		astro.Mars:    {1, 2, 4, 7, 8, 10, 11},
		astro.Mercury: {3, 5, 6, 11},
		astro.Jupiter: {6, 10, 11, 12},
		astro.Venus:   {6, 8, 11, 12},
		astro.Saturn:  {1, 4, 7, 8, 9, 10, 11},
		ascendantRef:  {1, 3, 6, 10, 11},
	},
	astro.Mercury: {
		astro.Sun:     {5, 6, 9, 11, 12},
		astro.Moon:    {2, 4, 6, 8, 10, 11},
		astro.Mars:    {1, 2, 4, 7, 8, 9, 10, 11},
		astro.Mercury: {1, 3, 5, 6, 9, 10, 11, 12},
		astro.Jupiter: {6, 8, 11, 12},
		astro.Venus:   {1, 2, 3, 4, 5, 8, 9, 11},
		astro.Saturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		ascendantRef:  {1, 2, 4, 6, 8, 10, 11},
	},
	astro.Jupiter: {
		astro.Sun:     {1, 2, 3, 4, 7, 8, 9, 10, 11},
		astro.Moon:    {2, 5, 7, 9, 11},
		astro.Mars:    {1, 2, 4, 7, 8, 10, 11},
		astro.Mercury: {1, 2, 4, 5, 6, 9, 10, 11},
		astro.Jupiter: {1, 2, 3, 4, 7, 8, 10, 11},
		astro.Venus:   {2, 5, 6, 9, 10, 11},
		astro.Saturn:  {3, 5, 6, 12},
		ascendantRef:  {1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	astro.Venus: {
		astro.Sun:     {8, 11, 12},
		astro.Moon:    {1, 2, 3, 4, 5, 8, 9, 11, 12},
		astro.Mars:    {3, 4, 6, 9, 11, 12},
		astro.Mercury: {3, 5, 6, 9, 11},
		astro.Jupiter: {5, 8, 9, 10, 11},
		astro.Venus:   {1, 2, 3, 4, 5, 8, 9, 10, 11},
		astro.Saturn:  {3, 4, 5, 8, 9, 10, 11},
		ascendantRef:  {1, 2, 3, 4, 5, 8, 9, 11, 12},
	},
	astro.Saturn: {
		astro.Sun:     {1, 2, 4, 7, 8, 10, 11},
		astro.Moon:    {3, 6, 11},
		astro.Mars:    {3, 5, 6, 10, 11, 12},
		astro.Mercury: {6, 8, 9, 10, 11, 12},
		astro.Jupiter: {5, 6, 11, 12},
		astro.Venus:   {6, 11, 12},
		astro.Saturn:  {3, 5, 6, 11},
		ascendantRef:  {1, 3, 4, 6, 10, 11, 12},
	},
}

// PlanetTable tallies one planet's bindus across the twelve signs.
func (s *AshtakavargaService) PlanetTable(chart *models.Chart, planet astro.Planet) (models.BindhuTable, error) {
	offsets, ok := beneficOffsets[planet]
	if !ok {
		return models.BindhuTable{}, utils.NewInputErrorf("no ashtakavarga table for %s", planet)
	}

	ascSign := int(astro.SignOf(chart.Ascendant))
	table := models.BindhuTable{Planet: planet}
	for contributor, positions := range offsets {
		refSign := ascSign
		if contributor != ascendantRef {
			refSign = chart.Positions[contributor].SignNum
		}
		for _, offset := range positions {
			target := (refSign + offset - 1) % 12
			table.Bindus[target]++
		}
	}
	for _, b := range table.Bindus {
		table.Total += b
	}
	return table, nil
}

// Calculate builds the seven individual tables, the sarvashtakavarga
// sum and the strength banding of the signs.
func (s *AshtakavargaService) Calculate(chart *models.Chart) (*models.AshtakavargaTable, error) {
	out := &models.AshtakavargaTable{
		Individual:    make(map[astro.Planet]models.BindhuTable, len(astro.SevenPlanets)),
		StrengthBands: make(map[string][]string, 5),
		Transit:       make(map[string]string, 12),
	}

	for _, planet := range astro.SevenPlanets {
		table, err := s.PlanetTable(chart, planet)
		if err != nil {
			return nil, err
		}
		out.Individual[planet] = table
		for i, b := range table.Bindus {
			out.Sarva[i] += b
		}
		out.GrandTotal += table.Total
	}

	if out.GrandTotal != AshtakavargaGrandTotal {
		return nil, utils.NewComputationErrorf(
			"sarvashtakavarga grand total %d, want %d", out.GrandTotal, AshtakavargaGrandTotal)
	}

	for sign := 0; sign < 12; sign++ {
		name := astro.Sign(sign).String()
		band := strengthBand(out.Sarva[sign])
		out.StrengthBands[band] = append(out.StrengthBands[band], name)
		out.Transit[name] = TransitFavorability(out.Sarva[sign])
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"grand_total": out.GrandTotal,
		}).Debug("Ashtakavarga calculated")
	}
	return out, nil
}

func strengthBand(points int) string {
	switch {
	case points >= 35:
		return "very_strong"
	case points >= 30:
		return "strong"
	case points >= 25:
		return "average"
	case points >= 20:
		return "weak"
	default:
		return "very_weak"
	}
}

// TransitFavorability grades a sign's suitability for transits from
// its sarva bindu count.
func TransitFavorability(points int) string {
	switch {
	case points >= 30:
		return "Highly Favorable"
	case points >= 25:
		return "Favorable"
	case points >= 20:
		return "Neutral"
	default:
		return "Unfavorable"
	}
}
