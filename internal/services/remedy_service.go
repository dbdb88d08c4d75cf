package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
)

// WeakStrengthThreshold is the shadbala percentage below which a planet
// is treated as weak.
const WeakStrengthThreshold = 50.0

// RemedyService matches a static per-planet catalog of gemstone,
// mantra, charity and fasting prescriptions against the afflictions
// detected in a chart. The catalog is fixed; there is no ranking.
type RemedyService struct {
	logger *logrus.Logger
}

// NewRemedyService creates the remedy engine.
func NewRemedyService(logger *logrus.Logger) *RemedyService {
	return &RemedyService{logger: logger}
}

type gemstoneEntry struct {
	primary     string
	substitutes []string
	weight      string
	finger      string
	day         string
	wearTime    string
}

type mantraEntry struct {
	text  string
	count int
	deity string
}

type charityEntry struct {
	items []string
	day   string
	color string
}

var gemstoneCatalog = map[astro.Planet]gemstoneEntry{
	astro.Sun:     {"Ruby", []string{"Red Garnet", "Red Spinel"}, "3-6 carats", "Ring finger", "Sunday", "Sunrise"},
	astro.Moon:    {"Pearl", []string{"Moonstone"}, "5-7 carats", "Little finger", "Monday", "Evening"},
	astro.Mars:    {"Red Coral", []string{"Carnelian"}, "5-8 carats", "Ring finger", "Tuesday", "Morning"},
	astro.Mercury: {"Emerald", []string{"Green Tourmaline", "Peridot"}, "3-6 carats", "Little finger", "Wednesday", "Morning"},
	astro.Jupiter: {"Yellow Sapphire", []string{"Yellow Topaz", "Citrine"}, "3-6 carats", "Index finger", "Thursday", "Morning"},
	astro.Venus:   {"Diamond", []string{"White Sapphire", "Zircon"}, "1-2 carats", "Little finger", "Friday", "Morning"},
	astro.Saturn:  {"Blue Sapphire", []string{"Amethyst", "Blue Tourmaline"}, "4-7 carats", "Middle finger", "Saturday", "Evening"},
	astro.Rahu:    {"Hessonite (Gomed)", nil, "5-8 carats", "Middle finger", "Saturday", "Evening"},
	astro.Ketu:    {"Cat's Eye (Lehsunia)", nil, "5-7 carats", "Middle finger", "Tuesday", "Evening"},
}

var mantraCatalog = map[astro.Planet]mantraEntry{
	astro.Sun:     {"Om Hraam Hreem Hraum Sah Suryaya Namah", 7000, "Lord Surya"},
	astro.Moon:    {"Om Shraam Shreem Shraum Sah Chandraya Namah", 11000, "Lord Chandra"},
	astro.Mars:    {"Om Kraam Kreem Kraum Sah Bhaumaya Namah", 10000, "Lord Mangal"},
	astro.Mercury: {"Om Braam Breem Braum Sah Budhaya Namah", 9000, "Lord Budha"},
	astro.Jupiter: {"Om Graam Greem Graum Sah Gurave Namah", 19000, "Lord Brihaspati"},
	astro.Venus:   {"Om Draam Dreem Draum Sah Shukraya Namah", 16000, "Lord Shukra"},
	astro.Saturn:  {"Om Praam Preem Praum Sah Shanaye Namah", 23000, "Lord Shani"},
	astro.Rahu:    {"Om Bhraam Bhreem Bhraum Sah Rahave Namah", 18000, "Lord Rahu"},
	astro.Ketu:    {"Om Sraam Sreem Sraum Sah Ketave Namah", 17000, "Lord Ketu"},
}

var charityCatalog = map[astro.Planet]charityEntry{
	astro.Sun:     {[]string{"Wheat", "Jaggery", "Ruby", "Copper"}, "Sunday", "Red/Orange"},
	astro.Moon:    {[]string{"Rice", "Sugar", "White clothes", "Pearl"}, "Monday", "White"},
	astro.Mars:    {[]string{"Red lentils", "Jaggery", "Red clothes", "Copper"}, "Tuesday", "Red"},
	astro.Mercury: {[]string{"Green vegetables", "Green clothes", "Emerald"}, "Wednesday", "Green"},
	astro.Jupiter: {[]string{"Yellow clothes", "Turmeric", "Gold", "Gram dal"}, "Thursday", "Yellow"},
	astro.Venus:   {[]string{"White rice", "Sugar", "White clothes", "Silver"}, "Friday", "White/Pink"},
	astro.Saturn:  {[]string{"Black sesame", "Iron", "Black clothes", "Mustard oil"}, "Saturday", "Black/Blue"},
	astro.Rahu:    {[]string{"Black gram", "Blue clothes", "Iron"}, "Saturday", "Dark colors"},
	astro.Ketu:    {[]string{"Sesame", "Blankets", "Black gram"}, "Tuesday", "Brown/Grey"},
}

var fastingCatalog = map[astro.Planet]string{
	astro.Sun: "Sunday", astro.Moon: "Monday", astro.Mars: "Tuesday",
	astro.Mercury: "Wednesday", astro.Jupiter: "Thursday", astro.Venus: "Friday",
	astro.Saturn: "Saturday", astro.Rahu: "Saturday", astro.Ketu: "Tuesday",
}

// doshaPlanets names the bodies each dosha rule afflicts.
var doshaPlanets = map[string][]astro.Planet{
	"Kemadruma Dosha":     {astro.Moon},
	"Shakata Dosha":       {astro.Moon, astro.Jupiter},
	"Kaal Sarp Dosha":     {astro.Rahu, astro.Ketu},
	"Mangal Dosha":        {astro.Mars},
	"Pitra Dosha":         {astro.Sun},
	"Guru-Chandala Dosha": {astro.Jupiter, astro.Rahu},
	"Grahan Dosha":        {astro.Sun, astro.Moon},
	"Angarak Dosha":       {astro.Mars, astro.Rahu},
}

var generalRemedies = []string{
	"Perform daily meditation and yoga",
	"Recite Gayatri Mantra daily",
	"Visit temples regularly",
	"Help the needy and poor",
	"Respect elders and teachers",
}

// Detect gathers afflictions from the chart itself (debilitation,
// combustion, strength below threshold) and from matched dosha rules,
// in traditional planet order followed by dosha order.
func (s *RemedyService) Detect(chart *models.Chart, doshas []models.YogaResult) []models.Affliction {
	var out []models.Affliction

	for _, planet := range astro.Planets {
		pos, ok := chart.Positions[planet]
		if !ok {
			continue
		}
		if pos.Dignity == models.Debilitated {
			out = append(out, models.Affliction{
				Planet: planet,
				Kind:   models.AfflictionDebilitated,
				Source: fmt.Sprintf("debilitated in %s", pos.Sign),
			})
		}
		if pos.Combust {
			out = append(out, models.Affliction{
				Planet: planet,
				Kind:   models.AfflictionCombust,
				Source: "within combustion orb of the Sun",
			})
		}
		if strength, ok := chart.Strengths[planet]; ok && strength.Percentage < WeakStrengthThreshold {
			out = append(out, models.Affliction{
				Planet: planet,
				Kind:   models.AfflictionWeak,
				Source: fmt.Sprintf("strength %.1f%% below %.0f%%", strength.Percentage, WeakStrengthThreshold),
			})
		}
	}

	for _, dosha := range doshas {
		if !dosha.Matched {
			continue
		}
		for _, planet := range doshaPlanets[dosha.Rule] {
			out = append(out, models.Affliction{
				Planet: planet,
				Kind:   models.AfflictionDosha,
				Source: dosha.Rule,
			})
		}
	}
	return out
}

// Recommend emits the catalog records for each afflicted planet. A
// planet afflicted more than once is remedied once, attributed to its
// first affliction.
func (s *RemedyService) Recommend(afflictions []models.Affliction) []models.Remedy {
	seen := map[astro.Planet]bool{}
	var remedies []models.Remedy

	for _, aff := range afflictions {
		if seen[aff.Planet] {
			continue
		}
		seen[aff.Planet] = true
		remedies = append(remedies, planetRemedies(aff)...)
	}
	return remedies
}

// Calculate is the full remedy pipeline: detect then recommend.
func (s *RemedyService) Calculate(chart *models.Chart, doshas []models.YogaResult) (*models.RemedyReport, error) {
	afflictions := s.Detect(chart, doshas)
	report := &models.RemedyReport{
		Afflictions: afflictions,
		Remedies:    s.Recommend(afflictions),
		General:     generalRemedies,
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"afflictions": len(report.Afflictions),
			"remedies":    len(report.Remedies),
		}).Debug("Remedies calculated")
	}
	return report, nil
}

func planetRemedies(aff models.Affliction) []models.Remedy {
	var out []models.Remedy

	if gem, ok := gemstoneCatalog[aff.Planet]; ok {
		metal := "Silver"
		switch aff.Planet {
		case astro.Sun, astro.Jupiter, astro.Mars:
			metal = "Gold"
		}
		desc := fmt.Sprintf("%s (%s) worn on the %s in %s at %s",
			gem.primary, gem.weight, gem.finger, metal, gem.wearTime)
		out = append(out, models.Remedy{
			Category:    models.Gemstone,
			Planet:      aff.Planet,
			Affliction:  aff,
			Description: desc,
			Day:         gem.day,
			Items:       gem.substitutes,
		})
	}
	if mantra, ok := mantraCatalog[aff.Planet]; ok {
		out = append(out, models.Remedy{
			Category:    models.Mantra,
			Planet:      aff.Planet,
			Affliction:  aff,
			Description: fmt.Sprintf("%s, %d recitations to %s", mantra.text, mantra.count, mantra.deity),
		})
	}
	if charity, ok := charityCatalog[aff.Planet]; ok {
		out = append(out, models.Remedy{
			Category:    models.Charity,
			Planet:      aff.Planet,
			Affliction:  aff,
			Description: fmt.Sprintf("Donate %s items to the needy on %s", charity.color, charity.day),
			Day:         charity.day,
			Items:       charity.items,
		})
	}
	if day, ok := fastingCatalog[aff.Planet]; ok {
		out = append(out, models.Remedy{
			Category:    models.Fasting,
			Planet:      aff.Planet,
			Affliction:  aff,
			Description: fmt.Sprintf("Fast on %s or take a single meal", day),
			Day:         day,
		})
	}
	return out
}
