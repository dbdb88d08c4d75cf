package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/models"
)

// HoroscopeService orchestrates every engine into one report. The natal
// chart is mandatory; each downstream section fails independently and
// is reported with a per-section status instead of failing the report.
type HoroscopeService struct {
	eph          ephemeris.Adapter
	charts       *ChartService
	divisional   *DivisionalService
	panchang     *PanchangService
	dasha        *DashaService
	kp           *KPService
	ashtakavarga *AshtakavargaService
	yogas        *YogaService
	remedies     *RemedyService
	logger       *logrus.Logger

	now func() time.Time
}

// NewHoroscopeService wires the orchestrator from its sub-engines.
func NewHoroscopeService(eph ephemeris.Adapter, logger *logrus.Logger) *HoroscopeService {
	return &HoroscopeService{
		eph:          eph,
		charts:       NewChartService(eph, logger),
		divisional:   NewDivisionalService(logger),
		panchang:     NewPanchangService(eph, logger),
		dasha:        NewDashaService(logger),
		kp:           NewKPService(logger),
		ashtakavarga: NewAshtakavargaService(logger),
		yogas:        NewYogaService(logger),
		remedies:     NewRemedyService(logger),
		logger:       logger,
		now:          time.Now,
	}
}

// Generate builds the full report. Only a chart failure aborts; any
// other engine failure marks its section failed and sets Partial.
func (s *HoroscopeService) Generate(req models.HoroscopeRequest) (*models.HoroscopeReport, error) {
	chart, err := s.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		return nil, err
	}

	report := &models.HoroscopeReport{
		ID:       uuid.NewString(),
		Birth:    req.BirthData,
		Chart:    chart,
		Sections: make(map[string]models.ReportSection, 8),
	}

	yogaResults := s.yogas.Evaluate(chart)
	report.Sections["yogas"] = models.ReportSection{Status: models.SectionOK, Data: yogaResults}

	var doshas []models.YogaResult
	for _, r := range yogaResults {
		if r.Matched && r.Kind == "dosha" {
			doshas = append(doshas, r)
		}
	}

	s.addSection(report, "divisional", func() (interface{}, error) {
		return s.divisional.AllCharts(chart)
	})
	s.addSection(report, "panchang", func() (interface{}, error) {
		b := req.BirthData
		return s.panchang.Calculate(b.Date, b.Time, b.Timezone, b.Latitude, b.Longitude)
	})
	s.addSection(report, "dasha", func() (interface{}, error) {
		return s.dasha.Timeline(chart, req.DashaDepth)
	})
	s.addSection(report, "kp", func() (interface{}, error) {
		kpChart, err := s.charts.Calculate(req.BirthData, req.HouseSystem, models.Krishnamurti)
		if err != nil {
			return nil, err
		}
		return s.kp.Calculate(kpChart, 0)
	})
	s.addSection(report, "ashtakavarga", func() (interface{}, error) {
		return s.ashtakavarga.Calculate(chart)
	})
	s.addSection(report, "sadesati", func() (interface{}, error) {
		return s.currentSadesati(chart)
	})
	s.addSection(report, "remedies", func() (interface{}, error) {
		return s.remedies.Calculate(chart, doshas)
	})

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"report_id": report.ID,
			"partial":   report.Partial,
		}).Info("Horoscope report generated")
	}
	return report, nil
}

func (s *HoroscopeService) addSection(report *models.HoroscopeReport, name string, build func() (interface{}, error)) {
	data, err := build()
	if err != nil {
		report.Partial = true
		report.Sections[name] = models.ReportSection{
			Status: models.SectionFailed,
			Error:  err.Error(),
		}
		if s.logger != nil {
			s.logger.WithError(err).WithField("section", name).Warn("Report section failed")
		}
		return
	}
	report.Sections[name] = models.ReportSection{Status: models.SectionOK, Data: data}
}

// currentSadesati locates transit Saturn for the present moment and
// compares it against the natal Moon sign.
func (s *HoroscopeService) currentSadesati(chart *models.Chart) (models.SadesatiStatus, error) {
	now := s.now().UTC()
	positions, err := s.eph.Positions(now)
	if err != nil {
		return models.SadesatiStatus{}, err
	}
	ayan := s.eph.AyanamsaDegrees(now, string(chart.Ayanamsa))
	saturnSign := astro.SignOf(positions[astro.Saturn].Longitude - ayan)
	moonSign := astro.Sign(chart.MoonPosition().SignNum)
	return s.yogas.Sadesati(moonSign, saturnSign), nil
}
