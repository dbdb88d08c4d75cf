package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
)

// YogaRule is one declarative catalog entry. Match reports whether the
// combination is present and names the contributing placements.
type YogaRule struct {
	Name        string
	Kind        string
	Description string
	Match       func(c *models.Chart) (bool, []models.Placement)
}

// YogaService evaluates the yoga and dosha catalog against a chart.
type YogaService struct {
	logger *logrus.Logger
	rules  []YogaRule
}

// NewYogaService creates the yoga detector with the built-in catalog.
func NewYogaService(logger *logrus.Logger) *YogaService {
	return &YogaService{logger: logger, rules: buildYogaCatalog()}
}

// Evaluate runs every rule and returns all results, matched or not.
func (s *YogaService) Evaluate(chart *models.Chart) []models.YogaResult {
	out := make([]models.YogaResult, 0, len(s.rules))
	matched := 0
	for _, rule := range s.rules {
		ok, placements := rule.Match(chart)
		if ok {
			matched++
		}
		out = append(out, models.YogaResult{
			Rule:        rule.Name,
			Kind:        rule.Kind,
			Matched:     ok,
			Description: rule.Description,
			Placements:  placements,
		})
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"rules":   len(s.rules),
			"matched": matched,
		}).Debug("Yoga catalog evaluated")
	}
	return out
}

// Doshas returns only the matched affliction rules.
func (s *YogaService) Doshas(chart *models.Chart) []models.YogaResult {
	var out []models.YogaResult
	for _, r := range s.Evaluate(chart) {
		if r.Kind == "dosha" && r.Matched {
			out = append(out, r)
		}
	}
	return out
}

// Sadesati reports Saturn's seven-and-a-half-year transit over the
// natal Moon: active while transit Saturn occupies the 12th, 1st or
// 2nd sign from the Moon sign.
func (s *YogaService) Sadesati(natalMoonSign, transitSaturnSign astro.Sign) models.SadesatiStatus {
	status := models.SadesatiStatus{
		MoonSign:   natalMoonSign.String(),
		SaturnSign: transitSaturnSign.String(),
	}
	switch signDistance(natalMoonSign, transitSaturnSign) {
	case 12:
		status.Active, status.Phase = true, "Rising"
	case 1:
		status.Active, status.Phase = true, "Peak"
	case 2:
		status.Active, status.Phase = true, "Setting"
	}
	return status
}

// signDistance counts signs from a to b inclusively, 1-based cyclic.
func signDistance(from, to astro.Sign) int {
	return ((int(to)-int(from))%12+12)%12 + 1
}

func placementOf(c *models.Chart, p astro.Planet) models.Placement {
	pos := c.Positions[p]
	return models.Placement{Planet: p, Sign: pos.Sign, House: c.PlanetHouses[p]}
}

func placementsOf(c *models.Chart, planets ...astro.Planet) []models.Placement {
	out := make([]models.Placement, 0, len(planets))
	for _, p := range planets {
		out = append(out, placementOf(c, p))
	}
	return out
}

func contains(houses []int, h int) bool {
	for _, v := range houses {
		if v == h {
			return true
		}
	}
	return false
}

var kendraHouses = []int{1, 4, 7, 10}
var trikonaHouses = []int{1, 5, 9}
var wealthHouses = []int{2, 5, 9, 11}
var mangalHouses = []int{1, 2, 4, 7, 8, 12}

// houseRule matches the planet occupying any of the listed houses.
func houseRule(p astro.Planet, houses []int) func(*models.Chart) (bool, []models.Placement) {
	return func(c *models.Chart) (bool, []models.Placement) {
		if contains(houses, c.PlanetHouses[p]) {
			return true, placementsOf(c, p)
		}
		return false, nil
	}
}

// conjunctionRule matches the two planets sharing a house.
func conjunctionRule(a, b astro.Planet) func(*models.Chart) (bool, []models.Placement) {
	return func(c *models.Chart) (bool, []models.Placement) {
		if c.PlanetHouses[a] == c.PlanetHouses[b] {
			return true, placementsOf(c, a, b)
		}
		return false, nil
	}
}

// signOffsetRule matches any planet other than the excluded ones
// occupying one of the sign offsets counted from the anchor planet's
// sign.
func signOffsetRule(anchor astro.Planet, offsets []int, exclude ...astro.Planet) func(*models.Chart) (bool, []models.Placement) {
	excluded := map[astro.Planet]bool{anchor: true, astro.Rahu: true, astro.Ketu: true}
	for _, e := range exclude {
		excluded[e] = true
	}
	return func(c *models.Chart) (bool, []models.Placement) {
		anchorSign := astro.Sign(c.Positions[anchor].SignNum)
		var hits []models.Placement
		for _, p := range astro.Planets {
			if excluded[p] {
				continue
			}
			d := signDistance(anchorSign, astro.Sign(c.Positions[p].SignNum))
			if contains(offsets, d) {
				hits = append(hits, placementOf(c, p))
			}
		}
		return len(hits) > 0, hits
	}
}

// mahapurushaRule matches the planet in a kendra in own or exaltation
// sign.
func mahapurushaRule(p astro.Planet) func(*models.Chart) (bool, []models.Placement) {
	return func(c *models.Chart) (bool, []models.Placement) {
		if !contains(kendraHouses, c.PlanetHouses[p]) {
			return false, nil
		}
		d := c.Positions[p].Dignity
		if d == models.OwnSign || d == models.Exalted {
			return true, placementsOf(c, p)
		}
		return false, nil
	}
}

func buildYogaCatalog() []YogaRule {
	var rules []YogaRule

	for _, p := range []astro.Planet{astro.Jupiter, astro.Venus, astro.Mercury} {
		p := p
		rules = append(rules,
			YogaRule{
				Name:        fmt.Sprintf("%s in Kendra", p),
				Kind:        "raj",
				Description: fmt.Sprintf("%s in an angular house gives strength and stability", p),
				Match:       houseRule(p, kendraHouses),
			},
			YogaRule{
				Name:        fmt.Sprintf("%s in Trikona", p),
				Kind:        "raj",
				Description: fmt.Sprintf("%s in a trinal house gives fortune and dharma", p),
				Match:       houseRule(p, trikonaHouses),
			},
			YogaRule{
				Name:        fmt.Sprintf("%s in wealth house", p),
				Kind:        "dhana",
				Description: fmt.Sprintf("%s in a wealth house indicates financial gains", p),
				Match:       houseRule(p, wealthHouses),
			},
		)
	}

	rules = append(rules,
		YogaRule{
			Name:        "Gaja Kesari Yoga",
			Kind:        "raj",
			Description: "Jupiter in a kendra from the Moon gives wisdom, wealth and fame",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				d := astro.HouseDistance(c.PlanetHouses[astro.Moon], c.PlanetHouses[astro.Jupiter])
				if d == 1 || d == 4 || d == 7 || d == 10 {
					return true, placementsOf(c, astro.Jupiter, astro.Moon)
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Multiple planets in 11th house",
			Kind:        "dhana",
			Description: "Two or more planets in the house of gains indicate wealth accumulation",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				occupants := c.PlanetsInHouse(11)
				if len(occupants) >= 2 {
					return true, placementsOf(c, occupants...)
				}
				return false, nil
			},
		},
	)

	mahapurusha := []struct {
		planet  astro.Planet
		name    string
		quality string
	}{
		{astro.Mars, "Ruchaka Yoga", "courage and leadership"},
		{astro.Mercury, "Bhadra Yoga", "intelligence and communication"},
		{astro.Jupiter, "Hamsa Yoga", "wisdom and spirituality"},
		{astro.Venus, "Malavya Yoga", "beauty and luxury"},
		{astro.Saturn, "Sasha Yoga", "discipline and longevity"},
	}
	for _, m := range mahapurusha {
		rules = append(rules, YogaRule{
			Name:        m.name,
			Kind:        "mahapurusha",
			Description: fmt.Sprintf("%s in a kendra in own or exaltation sign brings %s", m.planet, m.quality),
			Match:       mahapurushaRule(m.planet),
		})
	}

	rules = append(rules,
		YogaRule{
			Name:        "Sunapha Yoga",
			Kind:        "lunar",
			Description: "A planet other than the Sun in the 2nd from the Moon brings self-earned wealth",
			Match:       signOffsetRule(astro.Moon, []int{2}, astro.Sun),
		},
		YogaRule{
			Name:        "Anapha Yoga",
			Kind:        "lunar",
			Description: "A planet other than the Sun in the 12th from the Moon gives health and renown",
			Match:       signOffsetRule(astro.Moon, []int{12}, astro.Sun),
		},
		YogaRule{
			Name:        "Durudhara Yoga",
			Kind:        "lunar",
			Description: "Planets on both sides of the Moon give comfort and generosity",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				ok2, p2 := signOffsetRule(astro.Moon, []int{2}, astro.Sun)(c)
				ok12, p12 := signOffsetRule(astro.Moon, []int{12}, astro.Sun)(c)
				if ok2 && ok12 {
					return true, append(p2, p12...)
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Kemadruma Dosha",
			Kind:        "dosha",
			Description: "No planet beside the Moon, in the 2nd or in the 12th from it brings struggle and isolation",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				ok, _ := signOffsetRule(astro.Moon, []int{1, 2, 12}, astro.Sun)(c)
				if !ok {
					return true, placementsOf(c, astro.Moon)
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Vesi Yoga",
			Kind:        "solar",
			Description: "A planet other than the Moon in the 2nd from the Sun gives balanced judgement",
			Match:       signOffsetRule(astro.Sun, []int{2}, astro.Moon),
		},
		YogaRule{
			Name:        "Vosi Yoga",
			Kind:        "solar",
			Description: "A planet other than the Moon in the 12th from the Sun gives skill and learning",
			Match:       signOffsetRule(astro.Sun, []int{12}, astro.Moon),
		},
		YogaRule{
			Name:        "Ubhayachari Yoga",
			Kind:        "solar",
			Description: "Planets on both sides of the Sun give eloquence and status",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				ok2, p2 := signOffsetRule(astro.Sun, []int{2}, astro.Moon)(c)
				ok12, p12 := signOffsetRule(astro.Sun, []int{12}, astro.Moon)(c)
				if ok2 && ok12 {
					return true, append(p2, p12...)
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Budha-Aditya Yoga",
			Kind:        "solar",
			Description: "Sun and Mercury together sharpen intellect and administrative skill",
			Match:       conjunctionRule(astro.Sun, astro.Mercury),
		},
		YogaRule{
			Name:        "Chandra-Mangala Yoga",
			Kind:        "dhana",
			Description: "Moon and Mars together drive earning ability and enterprise",
			Match:       conjunctionRule(astro.Moon, astro.Mars),
		},
		YogaRule{
			Name:        "Amala Yoga",
			Kind:        "raj",
			Description: "A natural benefic in the 10th from the Moon gives a spotless reputation",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				moonSign := astro.Sign(c.Positions[astro.Moon].SignNum)
				var hits []models.Placement
				for _, p := range []astro.Planet{astro.Jupiter, astro.Venus, astro.Mercury} {
					if signDistance(moonSign, astro.Sign(c.Positions[p].SignNum)) == 10 {
						hits = append(hits, placementOf(c, p))
					}
				}
				return len(hits) > 0, hits
			},
		},
		YogaRule{
			Name:        "Adhi Yoga",
			Kind:        "raj",
			Description: "Benefics in the 6th, 7th and 8th from the Moon give leadership and prosperity",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				moonSign := astro.Sign(c.Positions[astro.Moon].SignNum)
				occupied := map[int]bool{}
				var hits []models.Placement
				for _, p := range []astro.Planet{astro.Jupiter, astro.Venus, astro.Mercury} {
					d := signDistance(moonSign, astro.Sign(c.Positions[p].SignNum))
					if d == 6 || d == 7 || d == 8 {
						occupied[d] = true
						hits = append(hits, placementOf(c, p))
					}
				}
				return len(occupied) == 3, hits
			},
		},
		YogaRule{
			Name:        "Shakata Dosha",
			Kind:        "dosha",
			Description: "Moon in the 6th, 8th or 12th from Jupiter brings swings of fortune",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				d := signDistance(astro.Sign(c.Positions[astro.Jupiter].SignNum), astro.Sign(c.Positions[astro.Moon].SignNum))
				if d == 6 || d == 8 || d == 12 {
					return true, placementsOf(c, astro.Moon, astro.Jupiter)
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Kaal Sarp Dosha",
			Kind:        "dosha",
			Description: "All planets hemmed between Rahu and Ketu bring obstacles, delays and anxiety",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				rahu := c.Positions[astro.Rahu].Longitude
				arc := astro.Normalize(c.Positions[astro.Ketu].Longitude - rahu)
				for _, p := range astro.SevenPlanets {
					if astro.Normalize(c.Positions[p].Longitude-rahu) > arc {
						return false, nil
					}
				}
				return true, placementsOf(c, astro.Rahu, astro.Ketu)
			},
		},
		YogaRule{
			Name:        "Mangal Dosha",
			Kind:        "dosha",
			Description: "Mars in the 1st, 2nd, 4th, 7th, 8th or 12th house strains marriage and partnership",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				if !contains(mangalHouses, c.PlanetHouses[astro.Mars]) {
					return false, nil
				}
				d := c.Positions[astro.Mars].Dignity
				if d == models.OwnSign || d == models.Exalted {
					return false, nil
				}
				return true, placementsOf(c, astro.Mars)
			},
		},
		YogaRule{
			Name:        "Pitra Dosha",
			Kind:        "dosha",
			Description: "Sun joined by a node, or a node in the 9th house, signals ancestral affliction",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				sunHouse := c.PlanetHouses[astro.Sun]
				var hits []models.Placement
				for _, node := range []astro.Planet{astro.Rahu, astro.Ketu} {
					if c.PlanetHouses[node] == sunHouse {
						hits = append(hits, placementOf(c, astro.Sun), placementOf(c, node))
					}
					if c.PlanetHouses[node] == 9 {
						hits = append(hits, placementOf(c, node))
					}
				}
				return len(hits) > 0, hits
			},
		},
		YogaRule{
			Name:        "Guru-Chandala Dosha",
			Kind:        "dosha",
			Description: "Jupiter joined by Rahu corrupts judgement and teachers' blessings",
			Match:       conjunctionRule(astro.Jupiter, astro.Rahu),
		},
		YogaRule{
			Name:        "Grahan Dosha",
			Kind:        "dosha",
			Description: "Moon joined by Rahu or Ketu clouds the mind like an eclipse",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				moonHouse := c.PlanetHouses[astro.Moon]
				for _, node := range []astro.Planet{astro.Rahu, astro.Ketu} {
					if c.PlanetHouses[node] == moonHouse {
						return true, placementsOf(c, astro.Moon, node)
					}
				}
				return false, nil
			},
		},
		YogaRule{
			Name:        "Angarak Dosha",
			Kind:        "dosha",
			Description: "Mars joined by Rahu or Ketu inflames temper and accidents",
			Match: func(c *models.Chart) (bool, []models.Placement) {
				marsHouse := c.PlanetHouses[astro.Mars]
				for _, node := range []astro.Planet{astro.Rahu, astro.Ketu} {
					if c.PlanetHouses[node] == marsHouse {
						return true, placementsOf(c, astro.Mars, node)
					}
				}
				return false, nil
			},
		},
	)

	return rules
}
