package astro

import "math"

// Planet identifies one of the nine classical bodies (grahas) used in
// Vedic calculations. Rahu and Ketu are the lunar nodes.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// Planets lists all nine bodies in traditional order.
var Planets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// SevenPlanets lists the bodies that participate in Ashtakavarga and
// Shadbala (the nodes are excluded).
var SevenPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// Sign is a zodiac sign index, 0 = Aries through 11 = Pisces.
type Sign int

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	return signNames[((int(s)%12)+12)%12]
}

// Modality groups signs by their mode of action.
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// Mode returns the sign's modality: Aries/Cancer/Libra/Capricorn are
// movable, Taurus/Leo/Scorpio/Aquarius fixed, the rest dual.
func (s Sign) Mode() Modality {
	return Modality(int(s) % 3)
}

// Odd reports whether the sign is odd (male): Aries, Gemini, Leo, ...
// Note Aries (index 0) is the 1st, odd, sign.
func (s Sign) Odd() bool {
	return int(s)%2 == 0
}

// NakshatraNames lists the 27 lunar mansions in order from Ashwini.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha",
	"Anuradha", "Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha",
	"Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

const (
	// NakshatraSpan is the angular width of one nakshatra: 13°20'.
	NakshatraSpan = 360.0 / 27.0
	// PadaSpan is one quarter of a nakshatra: 3°20'.
	PadaSpan = NakshatraSpan / 4.0
	// SignSpan is the angular width of one zodiac sign.
	SignSpan = 30.0
)

// VimshottariSequence is the fixed Vimshottari dasha lord order, starting
// with the lord of Ashwini. The same sequence rules nakshatra lordship:
// lord of nakshatra i is VimshottariSequence[i%9].
var VimshottariSequence = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariYears holds the canonical mahadasha lengths. They sum to
// exactly 120 years.
var VimshottariYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// VimshottariTotalYears is the full cycle length.
const VimshottariTotalYears = 120.0

// SignLords maps each sign to its ruling planet.
var SignLords = [12]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// ExaltationSign gives the sign in which a planet is exalted.
var ExaltationSign = map[Planet]Sign{
	Sun: 0, Moon: 1, Mars: 9, Mercury: 5, Jupiter: 3, Venus: 11, Saturn: 6,
	Rahu: 1, Ketu: 7,
}

// DebilitationSign gives the sign in which a planet is debilitated,
// always the 7th sign from exaltation.
var DebilitationSign = map[Planet]Sign{
	Sun: 6, Moon: 7, Mars: 3, Mercury: 11, Jupiter: 9, Venus: 5, Saturn: 0,
	Rahu: 7, Ketu: 1,
}

// OwnSigns maps each planet to the signs it rules.
var OwnSigns = map[Planet][]Sign{
	Sun: {4}, Moon: {3}, Mars: {0, 7}, Mercury: {2, 5},
	Jupiter: {8, 11}, Venus: {1, 6}, Saturn: {9, 10},
}

// CombustionOrb is the maximum angular distance from the Sun (degrees)
// within which a planet is considered combust.
var CombustionOrb = map[Planet]float64{
	Moon: 12, Mars: 17, Mercury: 14, Jupiter: 11, Venus: 10, Saturn: 15,
}

// NaturalFriends and NaturalEnemies encode the classical planetary
// friendship scheme used by Graha Maitri scoring.
var NaturalFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
}

var NaturalEnemies = map[Planet][]Planet{
	Sun:     {Venus, Saturn},
	Moon:    {},
	Mars:    {Mercury},
	Mercury: {Moon},
	Jupiter: {Mercury, Venus},
	Venus:   {Sun, Moon},
	Saturn:  {Sun, Moon, Mars},
}

// Normalize wraps a longitude into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignOf returns the sign containing the longitude.
func SignOf(longitude float64) Sign {
	return Sign(int(Normalize(longitude) / SignSpan))
}

// SignDegree returns the position within the sign, [0, 30).
func SignDegree(longitude float64) float64 {
	return math.Mod(Normalize(longitude), SignSpan)
}

// NakshatraOf returns the 0-based nakshatra index and the 1-based pada
// for a longitude.
func NakshatraOf(longitude float64) (index int, pada int) {
	l := Normalize(longitude)
	index = int(l / NakshatraSpan)
	if index > 26 {
		index = 26
	}
	pada = int(math.Mod(l, NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return index, pada
}

// NakshatraLord returns the Vimshottari lord of the 0-based nakshatra.
func NakshatraLord(index int) Planet {
	return VimshottariSequence[((index%9)+9)%9]
}

// AngularDistance returns the minimum separation between two longitudes,
// in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HouseDistance counts houses from one house to another inclusively,
// 1-based cyclic: HouseDistance(h, h) == 1.
func HouseDistance(from, to int) int {
	return ((to-from)%12+12)%12 + 1
}

// SequenceIndex returns the position of the planet in the Vimshottari
// sequence, or -1 for a planet outside it.
func SequenceIndex(p Planet) int {
	for i, q := range VimshottariSequence {
		if q == p {
			return i
		}
	}
	return -1
}
