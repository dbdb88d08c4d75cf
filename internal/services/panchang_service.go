package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// PanchangService computes the five limbs of the Vedic calendar plus
// the day's inauspicious windows.
type PanchangService struct {
	eph    ephemeris.Adapter
	logger *logrus.Logger
}

// NewPanchangService creates the panchang calculator.
func NewPanchangService(eph ephemeris.Adapter, logger *logrus.Logger) *PanchangService {
	return &PanchangService{eph: eph, logger: logger}
}

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima/Amavasya",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarman", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// karanaNames is indexed by 1-based karana type: the seven movable
// karanas then the four fixed ones.
var karanaNames = [12]string{
	"", "Bava", "Balava", "Kaulava", "Taitila", "Garaja",
	"Vanija", "Vishti", "Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

// Segment index of each inauspicious window among the eight equal
// divisions of daylight, keyed by time.Weekday (Sunday = 0).
var (
	rahuKaalSegment   = [7]int{1, 7, 6, 4, 5, 3, 0}
	gulikaKaalSegment = [7]int{0, 6, 5, 4, 3, 2, 1}
	yamagandaSegment  = [7]int{4, 3, 2, 1, 0, 6, 5}
)

// TithiOf derives the lunar day from sidereal Sun and Moon longitudes.
func TithiOf(sunLon, moonLon float64) models.Tithi {
	elongation := astro.Normalize(moonLon - sunLon)
	num := int(elongation / 12)
	if num > 29 {
		num = 29
	}

	paksha := "Shukla"
	inPaksha := num
	if num >= 15 {
		paksha = "Krishna"
		inPaksha = num - 15
	}
	name := tithiNames[inPaksha]
	if inPaksha == 14 {
		name = "Purnima"
		if paksha == "Krishna" {
			name = "Amavasya"
		}
	}

	return models.Tithi{
		Number:   num + 1,
		Name:     name,
		Paksha:   paksha,
		Progress: mod30(elongation, 12) / 12 * 100,
	}
}

// NakshatraInfoOf derives the Moon's mansion, pada and Vimshottari lord.
func NakshatraInfoOf(moonLon float64) models.NakshatraInfo {
	idx, pada := astro.NakshatraOf(moonLon)
	return models.NakshatraInfo{
		Number:   idx + 1,
		Name:     astro.NakshatraNames[idx],
		Pada:     pada,
		Lord:     string(astro.NakshatraLord(idx)),
		Progress: mod30(astro.Normalize(moonLon), astro.NakshatraSpan) / astro.NakshatraSpan * 100,
	}
}

// YogaInfoOf derives the luni-solar yoga from the sum of longitudes.
func YogaInfoOf(sunLon, moonLon float64) models.YogaInfo {
	sum := astro.Normalize(sunLon + moonLon)
	num := int(sum / astro.NakshatraSpan)
	if num > 26 {
		num = 26
	}
	return models.YogaInfo{
		Number:   num + 1,
		Name:     yogaNames[num],
		Progress: mod30(sum, astro.NakshatraSpan) / astro.NakshatraSpan * 100,
	}
}

// KaranaOf derives the half-tithi. The fixed karanas sit at both ends
// of the lunation: Kimstughna takes the first half-tithi and
// Shakuni, Chatushpada and Naga the last three; the seven movable
// karanas cycle through the 56 in between.
func KaranaOf(sunLon, moonLon float64) models.KaranaInfo {
	elongation := astro.Normalize(moonLon - sunLon)
	num := int(elongation / 6)
	if num > 59 {
		num = 59
	}

	var index int
	switch {
	case num == 0:
		index = 11
	case num >= 57:
		index = 8 + (num - 57)
	default:
		index = (num-1)%7 + 1
	}

	return models.KaranaInfo{
		Number:   num + 1,
		Index:    index,
		Name:     karanaNames[index],
		Progress: mod30(elongation, 6) / 6 * 100,
	}
}

// Calculate builds the complete panchang for a calendar date and
// location. An empty timeStr anchors the limbs at sunrise, the
// traditional reference instant.
func (s *PanchangService) Calculate(dateStr, timeStr, tz string, lat, lon float64) (*models.PanchangDay, error) {
	probe := models.BirthData{
		Date:      dateStr,
		Time:      "12:00:00",
		Timezone:  tz,
		Latitude:  lat,
		Longitude: lon,
	}
	if timeStr != "" {
		probe.Time = timeStr
	}
	noonUTC, err := probe.MomentUTC()
	if err != nil {
		return nil, err
	}

	localDay := localMoment(noonUTC, probe.Timezone)
	rise, set, err := s.eph.SunriseSunset(localDay, lat, lon)
	if err != nil {
		return nil, utils.NewEphemerisError("sunrise and sunset", err)
	}

	moment := rise
	if timeStr != "" {
		moment = noonUTC
	}

	states, err := s.eph.Positions(moment)
	if err != nil {
		return nil, utils.NewEphemerisError("sun and moon positions", err)
	}
	ayan := s.eph.AyanamsaDegrees(moment, ephemeris.AyanamsaLahiri)
	sunLon := astro.Normalize(states[astro.Sun].Longitude - ayan)
	moonLon := astro.Normalize(states[astro.Moon].Longitude - ayan)

	day := &models.PanchangDay{
		Date:          dateStr,
		Weekday:       localDay.Weekday().String(),
		Sunrise:       rise,
		Sunset:        set,
		Tithi:         TithiOf(sunLon, moonLon),
		Nakshatra:     NakshatraInfoOf(moonLon),
		Yoga:          YogaInfoOf(sunLon, moonLon),
		Karana:        KaranaOf(sunLon, moonLon),
		SunLongitude:  sunLon,
		MoonLongitude: moonLon,
	}
	day.InauspiciousWindows = inauspiciousWindows(localDay.Weekday(), rise, set)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"date":   dateStr,
			"tithi":  day.Tithi.Name,
			"paksha": day.Tithi.Paksha,
		}).Debug("Panchang calculated")
	}
	return day, nil
}

// localMoment rebuilds the instant in its civil zone so weekday and
// calendar day come out in local terms.
func localMoment(utc time.Time, tz string) time.Time {
	if tz == "" {
		return utc
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return utc.In(loc)
	}
	var sign rune
	var hh, mm int
	if _, err := fmt.Sscanf(tz, "%c%02d:%02d", &sign, &hh, &mm); err == nil {
		secs := hh*3600 + mm*60
		if sign == '-' {
			secs = -secs
		}
		return utc.In(time.FixedZone(tz, secs))
	}
	return utc
}

// inauspiciousWindows splits daylight into eight equal segments and
// picks the weekday's Rahu Kaal, Gulika Kaal and Yamaganda slots.
func inauspiciousWindows(weekday time.Weekday, rise, set time.Time) []models.TimeWindow {
	segment := set.Sub(rise) / 8
	window := func(name string, idx int) models.TimeWindow {
		start := rise.Add(time.Duration(idx) * segment)
		return models.TimeWindow{Name: name, Start: start, End: start.Add(segment)}
	}
	return []models.TimeWindow{
		window("Rahu Kaal", rahuKaalSegment[weekday]),
		window("Gulika Kaal", gulikaKaalSegment[weekday]),
		window("Yamaganda", yamagandaSegment[weekday]),
	}
}
