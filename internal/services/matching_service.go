package services

import (
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
)

// MatchingService scores Ashtakoot (8-koota) and Dashakoot (10-koota)
// compatibility between two natal charts, driven entirely by each
// partner's Moon sign and nakshatra. Tara and Vashya are scored
// symmetrically, so matching a chart against itself always yields 28 of
// 36 with only the Nadi dosha flagged.
type MatchingService struct {
	logger *logrus.Logger
}

// NewMatchingService creates the compatibility calculator.
func NewMatchingService(logger *logrus.Logger) *MatchingService {
	return &MatchingService{logger: logger}
}

var varnaOf = [12]string{
	"Kshatriya", "Vaishya", "Shudra", "Brahmin", "Kshatriya", "Vaishya",
	"Shudra", "Brahmin", "Kshatriya", "Vaishya", "Shudra", "Brahmin",
}

var varnaRank = map[string]int{"Brahmin": 0, "Kshatriya": 1, "Vaishya": 2, "Shudra": 3}

// vashyaOf lists the signs each sign holds sway over.
var vashyaOf = [12][]astro.Sign{
	{4, 8, 0},  // Aries: Leo, Sagittarius, Aries
	{3, 6},     // Taurus: Cancer, Libra
	{5, 10},    // Gemini: Virgo, Aquarius
	{7, 8},     // Cancer: Scorpio, Sagittarius
	{0, 8, 4},  // Leo: Aries, Sagittarius, Leo
	{2, 11},    // Virgo: Gemini, Pisces
	{9, 5},     // Libra: Capricorn, Virgo
	{3, 11},    // Scorpio: Cancer, Pisces
	{0, 4, 11}, // Sagittarius: Aries, Leo, Pisces
	{10, 0},    // Capricorn: Aquarius, Aries
	{2, 10},    // Aquarius: Gemini, Aquarius
	{9, 7},     // Pisces: Capricorn, Scorpio
}

// ganaOf classifies the 27 nakshatras as Deva, Manushya or Rakshasa.
var ganaOf = [27]string{
	"Deva", "Manushya", "Rakshasa", "Manushya", "Deva", "Manushya",
	"Deva", "Deva", "Rakshasa", "Rakshasa", "Manushya", "Manushya",
	"Deva", "Rakshasa", "Deva", "Rakshasa", "Deva", "Rakshasa",
	"Rakshasa", "Manushya", "Manushya", "Deva", "Rakshasa", "Rakshasa",
	"Manushya", "Manushya", "Deva",
}

// yoniOf maps each nakshatra to its animal symbol.
var yoniOf = [27]string{
	"Horse", "Elephant", "Sheep", "Serpent", "Serpent", "Dog",
	"Cat", "Sheep", "Cat", "Rat", "Rat", "Cow",
	"Buffalo", "Tiger", "Buffalo", "Tiger", "Deer", "Deer",
	"Dog", "Monkey", "Mongoose", "Monkey", "Lion", "Horse",
	"Lion", "Cow", "Elephant",
}

// yoniScore holds the non-default entries of the yoni compatibility
// matrix; any pair not listed scores 2.
var yoniScore = map[[2]string]float64{
	{"Horse", "Horse"}: 4, {"Horse", "Serpent"}: 3, {"Horse", "Cow"}: 1,
	{"Horse", "Buffalo"}: 3, {"Horse", "Tiger"}: 1, {"Horse", "Monkey"}: 3, {"Horse", "Lion"}: 1,
	{"Elephant", "Elephant"}: 4, {"Elephant", "Sheep"}: 3, {"Elephant", "Serpent"}: 3,
	{"Elephant", "Cat"}: 3, {"Elephant", "Buffalo"}: 3, {"Elephant", "Monkey"}: 3, {"Elephant", "Lion"}: 0,
	{"Sheep", "Sheep"}: 4, {"Sheep", "Monkey"}: 0, {"Sheep", "Elephant"}: 3, {"Sheep", "Rat"}: 3,
	{"Serpent", "Serpent"}: 4, {"Serpent", "Mongoose"}: 0, {"Serpent", "Horse"}: 3, {"Serpent", "Elephant"}: 3,
	{"Dog", "Dog"}: 4, {"Dog", "Deer"}: 0,
	{"Cat", "Cat"}: 4, {"Cat", "Rat"}: 0, {"Cat", "Elephant"}: 3,
	{"Rat", "Rat"}: 4, {"Rat", "Cat"}: 0, {"Rat", "Sheep"}: 3, {"Rat", "Monkey"}: 3,
	{"Cow", "Cow"}: 4, {"Cow", "Tiger"}: 0, {"Cow", "Horse"}: 1, {"Cow", "Buffalo"}: 3,
	{"Buffalo", "Buffalo"}: 4, {"Buffalo", "Lion"}: 0, {"Buffalo", "Horse"}: 3,
	{"Buffalo", "Elephant"}: 3, {"Buffalo", "Cow"}: 3,
	{"Tiger", "Tiger"}: 4, {"Tiger", "Cow"}: 0, {"Tiger", "Horse"}: 1, {"Tiger", "Deer"}: 3,
	{"Deer", "Deer"}: 4, {"Deer", "Dog"}: 0, {"Deer", "Tiger"}: 3,
	{"Monkey", "Monkey"}: 4, {"Monkey", "Sheep"}: 0, {"Monkey", "Horse"}: 3,
	{"Monkey", "Elephant"}: 3, {"Monkey", "Rat"}: 3,
	{"Mongoose", "Mongoose"}: 4, {"Mongoose", "Serpent"}: 0,
	{"Lion", "Lion"}: 4, {"Lion", "Buffalo"}: 0, {"Lion", "Horse"}: 1, {"Lion", "Elephant"}: 0,
}

// nadiOf cycles Aadi, Madhya, Antya through the 27 nakshatras.
func nadiOf(nakIdx int) string {
	return [3]string{"Aadi", "Madhya", "Antya"}[nakIdx%3]
}

type moonProfile struct {
	sign    astro.Sign
	nakIdx  int // 0-based
	nakName string
}

func profileOf(chart *models.Chart) moonProfile {
	moon := chart.MoonPosition()
	return moonProfile{
		sign:    astro.Sign(moon.SignNum),
		nakIdx:  moon.NakshatraNum - 1,
		nakName: moon.Nakshatra,
	}
}

// Match scores the eight kootas for a groom and bride chart.
func (s *MatchingService) Match(groom, bride *models.Chart) (*models.AshtakootScore, error) {
	g := profileOf(groom)
	b := profileOf(bride)

	score := &models.AshtakootScore{MaxTotal: 36}
	score.Kootas = []models.KootaScore{
		varnaKoota(g, b),
		vashyaKoota(g, b),
		taraKoota(g, b),
		yoniKoota(g, b),
		grahaMaitriKoota(g, b),
		ganaKoota(g, b),
		bhakootKoota(g, b),
		nadiKoota(g, b),
	}

	for _, k := range score.Kootas {
		score.Total += k.Points
	}
	score.Percentage = score.Total / score.MaxTotal * 100
	score.Compatibility = compatibilityBand(score.Total)
	score.Doshas = matchDoshas(score.Kootas)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"total":         score.Total,
			"compatibility": score.Compatibility,
			"doshas":        len(score.Doshas),
		}).Debug("Ashtakoot match calculated")
	}
	return score, nil
}

// MatchDashakoot extends Match with the Mahendra and Stree Deergha
// kutas for the South-Indian 10-koota scheme out of 38.
func (s *MatchingService) MatchDashakoot(groom, bride *models.Chart) (*models.DashakootScore, error) {
	base, err := s.Match(groom, bride)
	if err != nil {
		return nil, err
	}
	g := profileOf(groom)
	b := profileOf(bride)

	score := &models.DashakootScore{
		MaxTotal:       38,
		AshtakootTotal: base.Total,
		Doshas:         base.Doshas,
	}
	score.Kootas = append(append([]models.KootaScore{}, base.Kootas...),
		mahendraKoota(g, b),
		streeDeerghaKoota(g, b),
	)
	for _, k := range score.Kootas[len(base.Kootas):] {
		if k.Points == 0 {
			score.Doshas = append(score.Doshas, models.MatchDosha{
				Name:        k.Name + " Unfavorable",
				Description: k.Description + " is not supported by this pairing",
			})
		}
	}

	score.Total = base.Total
	for _, k := range score.Kootas[len(base.Kootas):] {
		score.Total += k.Points
	}
	score.Percentage = score.Total / score.MaxTotal * 100
	score.Compatibility, score.Recommendation = dashakootBand(score.Total)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"total":         score.Total,
			"compatibility": score.Compatibility,
			"doshas":        len(score.Doshas),
		}).Debug("Dashakoot match calculated")
	}
	return score, nil
}

// nakshatraCount is the inclusive 1-27 count from one star to another.
func nakshatraCount(from, to int) int {
	return (to-from+27)%27 + 1
}

var mahendraPositions = map[int]bool{
	4: true, 7: true, 10: true, 13: true, 16: true, 19: true, 22: true, 25: true,
}

// mahendraKoota counts from the groom's star to the bride's; landing on
// the 4th, 7th, 10th, ... position promises wellbeing and progeny.
func mahendraKoota(g, b moonProfile) models.KootaScore {
	count := nakshatraCount(g.nakIdx, b.nakIdx)
	points := 0.0
	if mahendraPositions[count] {
		points = 1
	}
	return models.KootaScore{
		Name: "Mahendra", Groom: g.nakName, Bride: b.nakName,
		Points: points, MaxPoints: 1,
		Description: "Wellbeing and progeny",
	}
}

// streeDeerghaKoota counts from the bride's star to the groom's; more
// than 13 stars apart grants the point.
func streeDeerghaKoota(g, b moonProfile) models.KootaScore {
	count := nakshatraCount(b.nakIdx, g.nakIdx)
	points := 0.0
	if count > 13 {
		points = 1
	}
	return models.KootaScore{
		Name: "Stree Deergha", Groom: g.nakName, Bride: b.nakName,
		Points: points, MaxPoints: 1,
		Description: "Longevity and prosperity of the bride",
	}
}

func dashakootBand(total float64) (string, string) {
	switch {
	case total >= 30:
		return "Excellent", "Highly compatible match"
	case total >= 25:
		return "Very Good", "Very compatible match"
	case total >= 20:
		return "Good", "Compatible match"
	case total >= 15:
		return "Average", "Acceptable match, remedies advised for weak kutas"
	default:
		return "Poor", "Not recommended without remedies"
	}
}

// varnaKoota scores 1 when the groom's varna is equal or higher in the
// traditional order.
func varnaKoota(g, b moonProfile) models.KootaScore {
	gv, bv := varnaOf[g.sign], varnaOf[b.sign]
	points := 0.0
	if varnaRank[gv] <= varnaRank[bv] {
		points = 1
	}
	return models.KootaScore{
		Name: "Varna", Groom: gv, Bride: bv,
		Points: points, MaxPoints: 1,
		Description: "Spiritual compatibility and ego",
	}
}

// vashyaKoota scores mutual sway between the Moon signs. Identical
// signs count as full mutual attraction.
func vashyaKoota(g, b moonProfile) models.KootaScore {
	var points float64
	switch {
	case g.sign == b.sign:
		points = 2
	default:
		gAttracts := signIn(vashyaOf[g.sign], b.sign)
		bAttracts := signIn(vashyaOf[b.sign], g.sign)
		switch {
		case gAttracts && bAttracts:
			points = 2
		case gAttracts || bAttracts:
			points = 1
		}
	}
	return models.KootaScore{
		Name: "Vashya", Groom: g.sign.String(), Bride: b.sign.String(),
		Points: points, MaxPoints: 2,
		Description: "Mutual attraction and control",
	}
}

func signIn(list []astro.Sign, s astro.Sign) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// taraKoota scores star compatibility in both directions: 1.5 per
// direction unless the count lands on an inauspicious tara (Vipat,
// Pratyari or Naidhana).
func taraKoota(g, b moonProfile) models.KootaScore {
	points := taraDirection(g.nakIdx, b.nakIdx) + taraDirection(b.nakIdx, g.nakIdx)
	return models.KootaScore{
		Name:  "Tara",
		Groom: g.nakName, Bride: b.nakName,
		Points: points, MaxPoints: 3,
		Description: "Birth star compatibility and health",
	}
}

func taraDirection(from, to int) float64 {
	count := (to-from+27)%27 + 1
	tara := (count-1)%9 + 1
	if tara == 3 || tara == 5 || tara == 7 {
		return 0
	}
	return 1.5
}

// yoniKoota looks up the animal pair in the compatibility matrix.
func yoniKoota(g, b moonProfile) models.KootaScore {
	gy, by := yoniOf[g.nakIdx], yoniOf[b.nakIdx]
	points, ok := yoniScore[[2]string{gy, by}]
	if !ok {
		points = 2
	}
	return models.KootaScore{
		Name: "Yoni", Groom: gy, Bride: by,
		Points: points, MaxPoints: 4,
		Description: "Physical and sexual compatibility",
	}
}

// grahaMaitriKoota scores friendship between the Moon sign lords.
func grahaMaitriKoota(g, b moonProfile) models.KootaScore {
	gl, bl := astro.SignLords[g.sign], astro.SignLords[b.sign]

	var points float64
	gFriend := planetIn(astro.NaturalFriends[gl], bl)
	bFriend := planetIn(astro.NaturalFriends[bl], gl)
	gEnemy := planetIn(astro.NaturalEnemies[gl], bl)
	bEnemy := planetIn(astro.NaturalEnemies[bl], gl)
	switch {
	case gl == bl:
		points = 5
	case gFriend && bFriend:
		points = 4
	case gFriend || bFriend:
		points = 3
	case !gEnemy && !bEnemy:
		points = 1
	}
	return models.KootaScore{
		Name: "Graha Maitri", Groom: string(gl), Bride: string(bl),
		Points: points, MaxPoints: 5,
		Description: "Mental compatibility and friendship",
	}
}

func planetIn(list []astro.Planet, p astro.Planet) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

// ganaKoota scores temperament groups: same gana 6, Deva with Manushya
// 5, any pairing with Rakshasa 0.
func ganaKoota(g, b moonProfile) models.KootaScore {
	gg, bg := ganaOf[g.nakIdx], ganaOf[b.nakIdx]
	var points float64
	switch {
	case gg == bg:
		points = 6
	case (gg == "Deva" && bg == "Manushya") || (gg == "Manushya" && bg == "Deva"):
		points = 5
	}
	return models.KootaScore{
		Name: "Gana", Groom: gg, Bride: bg,
		Points: points, MaxPoints: 6,
		Description: "Temperament and behavior compatibility",
	}
}

// bhakootKoota zeroes on the 2/12, 5/9 and 6/8 sign pairs.
func bhakootKoota(g, b moonProfile) models.KootaScore {
	diff := int(g.sign) - int(b.sign)
	if diff < 0 {
		diff = -diff
	}
	points := 7.0
	switch diff {
	case 1, 5, 6, 7, 11:
		points = 0
	}
	return models.KootaScore{
		Name: "Bhakoot", Groom: g.sign.String(), Bride: b.sign.String(),
		Points: points, MaxPoints: 7,
		Description: "Love and prosperity in relationship",
	}
}

// nadiKoota zeroes on identical nadi, the heaviest single factor.
func nadiKoota(g, b moonProfile) models.KootaScore {
	gn, bn := nadiOf(g.nakIdx), nadiOf(b.nakIdx)
	points := 8.0
	if gn == bn {
		points = 0
	}
	return models.KootaScore{
		Name: "Nadi", Groom: gn, Bride: bn,
		Points: points, MaxPoints: 8,
		Description: "Health and progeny",
	}
}

func compatibilityBand(total float64) string {
	switch {
	case total >= 28:
		return "Excellent"
	case total >= 24:
		return "Very Good"
	case total >= 18:
		return "Good"
	case total >= 12:
		return "Average"
	default:
		return "Poor"
	}
}

func matchDoshas(kootas []models.KootaScore) []models.MatchDosha {
	var out []models.MatchDosha
	for _, k := range kootas {
		if k.Points != 0 {
			continue
		}
		switch k.Name {
		case "Nadi":
			out = append(out, models.MatchDosha{
				Name:        "Nadi Dosha",
				Description: "Same nadi raises health and progeny concerns",
			})
		case "Bhakoot":
			out = append(out, models.MatchDosha{
				Name:        "Bhakoot Dosha",
				Description: "Inauspicious Moon sign distance strains finances and stability",
			})
		case "Gana":
			out = append(out, models.MatchDosha{
				Name:        "Gana Dosha",
				Description: "Clashing temperament groups cause behavioral conflicts",
			})
		}
	}
	return out
}
