package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// DivisionalService derives the sixteen classical varga charts from a
// natal chart. Every body keeps its harmonic sign and the degree it
// holds within the harmonic division.
type DivisionalService struct {
	logger *logrus.Logger
}

// NewDivisionalService creates the varga calculator.
func NewDivisionalService(logger *logrus.Logger) *DivisionalService {
	return &DivisionalService{logger: logger}
}

type divisionScheme struct {
	name    string
	matters string
}

var divisionSchemes = map[int]divisionScheme{
	1:  {"Rashi", "Body, overall life"},
	2:  {"Hora", "Wealth"},
	3:  {"Drekkana", "Siblings, courage"},
	4:  {"Chaturthamsa", "Fortune, property"},
	7:  {"Saptamsa", "Children, creativity"},
	9:  {"Navamsa", "Marriage, dharma"},
	10: {"Dasamsa", "Career, profession"},
	12: {"Dwadasamsa", "Parents"},
	16: {"Shodasamsa", "Vehicles, luxuries"},
	20: {"Vimsamsa", "Spiritual progress"},
	24: {"Chaturvimsamsa", "Learning, education"},
	27: {"Saptavimsamsa", "Strengths, weaknesses"},
	30: {"Trimsamsa", "Evils, misfortunes"},
	40: {"Khavedamsa", "Maternal heritage"},
	45: {"Akshavedamsa", "Paternal heritage"},
	60: {"Shashtiamsa", "Past life, karma"},
}

// SupportedDivisions lists the harmonics of the full catalog in
// traditional order.
var SupportedDivisions = []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 40, 45, 60}

// trimsamsa bands: unequal degree ranges mapping straight to fixed
// target signs, keyed by sign parity.
type trimsamsaBand struct {
	width  float64
	target astro.Sign
}

var trimsamsaEven = []trimsamsaBand{{5, 4}, {5, 10}, {8, 7}, {7, 5}, {5, 6}}
var trimsamsaOdd = []trimsamsaBand{{5, 4}, {7, 5}, {8, 7}, {6, 5}, {10, 5}}

// Position maps a single D1 longitude into the harmonic chart.
func (s *DivisionalService) Position(longitude float64, division int) (models.DivisionalPosition, error) {
	if _, ok := divisionSchemes[division]; !ok {
		return models.DivisionalPosition{}, utils.NewInputErrorf("unknown division D%d", division)
	}

	longitude = astro.Normalize(longitude)
	sign := int(astro.SignOf(longitude))
	degree := astro.SignDegree(longitude)

	divSize := astro.SignSpan / float64(division)
	divNum := int(degree / divSize)
	if divNum >= division {
		divNum = division - 1
	}

	var newSign int
	newDegree := mod30(degree, divSize) * float64(division)

	switch division {
	case 1:
		newSign = sign
		newDegree = degree

	case 2:
		if sign%2 == 0 {
			newSign = sign
			if divNum == 0 {
				newSign = (sign + 3) % 12
			}
		} else {
			newSign = sign
			if divNum != 0 {
				newSign = (sign + 4) % 12
			}
		}
		newDegree = mod30(degree, 15) * 2

	case 3:
		newSign = (sign + divNum*4) % 12

	case 4:
		newSign = (sign + divNum*3) % 12

	case 7:
		if sign%2 == 0 {
			newSign = (sign + divNum) % 12
		} else {
			newSign = (sign + 6 + divNum) % 12
		}

	case 9:
		newSign = (sign + divNum) % 12
		if sign%2 == 0 {
			newSign = (newSign + 8) % 12
		}

	case 10:
		if sign%2 == 0 {
			newSign = (sign + divNum) % 12
		} else {
			newSign = (sign + 8 + divNum) % 12
		}

	case 12, 40, 45, 60:
		newSign = (sign + divNum) % 12

	case 16:
		switch astro.Sign(sign).Mode() {
		case astro.Movable:
			newSign = (sign + divNum) % 12
		case astro.Fixed:
			newSign = (sign + 4 + divNum) % 12
		default:
			newSign = (sign + 8 + divNum) % 12
		}

	case 20:
		if sign%2 == 0 {
			newSign = (sign + divNum) % 12
		} else {
			newSign = (sign + 8 + divNum) % 12
		}

	case 24:
		if sign%2 == 0 {
			newSign = (sign + 3 + divNum) % 12
		} else {
			newSign = (sign + divNum) % 12
		}

	case 27:
		newSign = (sign*4 + divNum) % 12

	case 30:
		bands := trimsamsaOdd
		if sign%2 == 0 {
			bands = trimsamsaEven
		}
		cumulative := 0.0
		newSign = sign
		newDegree = 0
		for _, band := range bands {
			if degree < cumulative+band.width {
				newSign = int(band.target)
				newDegree = (degree - cumulative) / band.width * astro.SignSpan
				break
			}
			cumulative += band.width
		}

	default:
		newSign = (sign + divNum) % 12
	}

	newDegree = mod30(newDegree, astro.SignSpan)
	return models.DivisionalPosition{
		OriginalLongitude: longitude,
		Longitude:         float64(newSign)*astro.SignSpan + newDegree,
		Sign:              astro.Sign(newSign).String(),
		SignNum:           newSign,
		Degree:            newDegree,
	}, nil
}

func mod30(v, m float64) float64 {
	r := v - float64(int(v/m))*m
	if r < 0 {
		r += m
	}
	return r
}

// Chart derives one harmonic chart for every body plus the ascendant.
func (s *DivisionalService) Chart(chart *models.Chart, division int) (*models.DivisionalChart, error) {
	scheme, ok := divisionSchemes[division]
	if !ok {
		return nil, utils.NewInputErrorf("unknown division D%d", division)
	}

	ascPos, err := s.Position(chart.Ascendant, division)
	if err != nil {
		return nil, err
	}

	out := &models.DivisionalChart{
		Division:  fmt.Sprintf("D%d", division),
		Harmonic:  division,
		Name:      scheme.name,
		Matters:   scheme.matters,
		Ascendant: ascPos,
		Planets:   make(map[astro.Planet]models.DivisionalPosition, len(chart.Positions)),
	}
	for planet, pos := range chart.Positions {
		dp, err := s.Position(pos.Longitude, division)
		if err != nil {
			return nil, err
		}
		out.Planets[planet] = dp
	}
	return out, nil
}

// AllCharts derives the complete D1-D60 catalog.
func (s *DivisionalService) AllCharts(chart *models.Chart) (map[string]*models.DivisionalChart, error) {
	out := make(map[string]*models.DivisionalChart, len(SupportedDivisions))
	for _, division := range SupportedDivisions {
		dc, err := s.Chart(chart, division)
		if err != nil {
			return nil, err
		}
		out[dc.Division] = dc
	}
	return out, nil
}
