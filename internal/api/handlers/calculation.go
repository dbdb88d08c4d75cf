package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vedanga/astro-engine-go/internal/cache"
	"github.com/vedanga/astro-engine-go/internal/config"
	"github.com/vedanga/astro-engine-go/internal/models"
	"github.com/vedanga/astro-engine-go/internal/services"
	"github.com/vedanga/astro-engine-go/internal/utils"
)

// CalculationHandler exposes every calculation engine over HTTP. It
// owns no state beyond the wired services and configured defaults.
type CalculationHandler struct {
	charts       *services.ChartService
	divisional   *services.DivisionalService
	panchang     *services.PanchangService
	dasha        *services.DashaService
	kp           *services.KPService
	ashtakavarga *services.AshtakavargaService
	yogas        *services.YogaService
	matching     *services.MatchingService
	remedies     *services.RemedyService
	horoscope    *services.HoroscopeService
	reports      *cache.RedisReportCache
	defaults     config.CalculationConfig
	logger       *logrus.Logger
}

// NewCalculationHandler wires the handler from its dependencies.
// reports may be nil when Redis is disabled.
func NewCalculationHandler(
	horoscope *services.HoroscopeService,
	charts *services.ChartService,
	divisional *services.DivisionalService,
	panchang *services.PanchangService,
	dasha *services.DashaService,
	kp *services.KPService,
	ashtakavarga *services.AshtakavargaService,
	yogas *services.YogaService,
	matching *services.MatchingService,
	remedies *services.RemedyService,
	reports *cache.RedisReportCache,
	defaults config.CalculationConfig,
	logger *logrus.Logger,
) *CalculationHandler {
	return &CalculationHandler{
		charts:       charts,
		divisional:   divisional,
		panchang:     panchang,
		dasha:        dasha,
		kp:           kp,
		ashtakavarga: ashtakavarga,
		yogas:        yogas,
		matching:     matching,
		remedies:     remedies,
		horoscope:    horoscope,
		reports:      reports,
		defaults:     defaults,
		logger:       logger,
	}
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case utils.IsInputError(err):
		status = http.StatusBadRequest
	case utils.IsEphemerisError(err):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: " + err.Error()})
		return false
	}
	return true
}

func (h *CalculationHandler) applyDefaults(req *models.ChartRequest) {
	if req.HouseSystem == "" {
		req.HouseSystem = models.HouseSystem(h.defaults.DefaultHouseSystem)
	}
	if req.Ayanamsa == "" {
		req.Ayanamsa = models.Ayanamsa(h.defaults.DefaultAyanamsa)
	}
}

// Chart handles POST /api/v1/chart.
func (h *CalculationHandler) Chart(c *gin.Context) {
	var req models.ChartRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req)

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, chart)
}

// Divisional handles POST /api/v1/divisional. An empty divisions list
// yields the complete catalog.
func (h *CalculationHandler) Divisional(c *gin.Context) {
	var req models.DivisionalRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req.ChartRequest)

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(req.Divisions) == 0 {
		charts, err := h.divisional.AllCharts(chart)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, charts)
		return
	}

	out := make(map[string]*models.DivisionalChart, len(req.Divisions))
	for _, division := range req.Divisions {
		dc, err := h.divisional.Chart(chart, division)
		if err != nil {
			respondError(c, err)
			return
		}
		out[fmt.Sprintf("D%d", division)] = dc
	}
	respondOK(c, out)
}

// Panchang handles POST /api/v1/panchang.
func (h *CalculationHandler) Panchang(c *gin.Context) {
	var req models.PanchangRequest
	if !bindRequest(c, &req) {
		return
	}

	day, err := h.panchang.Calculate(req.Date, req.Time, req.Timezone, req.Latitude, req.Longitude)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, day)
}

// Dasha handles POST /api/v1/dasha.
func (h *CalculationHandler) Dasha(c *gin.Context) {
	var req models.DashaRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req.ChartRequest)
	depth := h.defaults.DefaultDashaDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}
	timeline, err := h.dasha.Timeline(chart, depth)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, timeline)
}

// KP handles POST /api/v1/kp. The chart is always cast with the
// Krishnamurti ayanamsa regardless of the request selector.
func (h *CalculationHandler) KP(c *gin.Context) {
	var req models.KPRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req.ChartRequest)
	if req.SubDepth == 0 {
		req.SubDepth = h.defaults.DefaultKPSubDepth
	}

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, models.Krishnamurti)
	if err != nil {
		respondError(c, err)
		return
	}
	kpChart, err := h.kp.Calculate(chart, req.SubDepth)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, kpChart)
}

// Ashtakavarga handles POST /api/v1/ashtakavarga.
func (h *CalculationHandler) Ashtakavarga(c *gin.Context) {
	var req models.ChartRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req)

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}
	table, err := h.ashtakavarga.Calculate(chart)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, table)
}

// Yogas handles POST /api/v1/yogas.
func (h *CalculationHandler) Yogas(c *gin.Context) {
	var req models.ChartRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req)

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.yogas.Evaluate(chart))
}

// Matching handles POST /api/v1/matching. Both charts are cast with the
// configured defaults; only Moon data participates in the scoring.
func (h *CalculationHandler) Matching(c *gin.Context) {
	var req models.MatchingRequest
	if !bindRequest(c, &req) {
		return
	}

	hs := models.HouseSystem(h.defaults.DefaultHouseSystem)
	ay := models.Ayanamsa(h.defaults.DefaultAyanamsa)
	groom, err := h.charts.Calculate(req.Groom, hs, ay)
	if err != nil {
		respondError(c, err)
		return
	}
	bride, err := h.charts.Calculate(req.Bride, hs, ay)
	if err != nil {
		respondError(c, err)
		return
	}
	score, err := h.matching.Match(groom, bride)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, score)
}

// Dashakoot handles POST /api/v1/matching/dashakoot, the 10-koota
// variant of Matching.
func (h *CalculationHandler) Dashakoot(c *gin.Context) {
	var req models.MatchingRequest
	if !bindRequest(c, &req) {
		return
	}

	hs := models.HouseSystem(h.defaults.DefaultHouseSystem)
	ay := models.Ayanamsa(h.defaults.DefaultAyanamsa)
	groom, err := h.charts.Calculate(req.Groom, hs, ay)
	if err != nil {
		respondError(c, err)
		return
	}
	bride, err := h.charts.Calculate(req.Bride, hs, ay)
	if err != nil {
		respondError(c, err)
		return
	}
	score, err := h.matching.MatchDashakoot(groom, bride)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, score)
}

// Remedies handles POST /api/v1/remedies.
func (h *CalculationHandler) Remedies(c *gin.Context) {
	var req models.ChartRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req)

	chart, err := h.charts.Calculate(req.BirthData, req.HouseSystem, req.Ayanamsa)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := h.remedies.Calculate(chart, h.yogas.Doshas(chart))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}

// Horoscope handles POST /api/v1/horoscope.
func (h *CalculationHandler) Horoscope(c *gin.Context) {
	var req models.HoroscopeRequest
	if !bindRequest(c, &req) {
		return
	}
	h.applyDefaults(&req.ChartRequest)
	if req.DashaDepth == 0 {
		req.DashaDepth = h.defaults.DefaultDashaDepth
	}

	report, err := h.horoscope.Generate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.reports != nil {
		h.reports.Set(c.Request.Context(), report)
	}
	respondOK(c, report)
}

// HoroscopeByID handles GET /api/v1/horoscope/:id from the report
// cache.
func (h *CalculationHandler) HoroscopeByID(c *gin.Context) {
	id := c.Param("id")
	if h.reports == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "report caching disabled"})
		return
	}
	report, ok := h.reports.Get(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "report not found"})
		return
	}
	respondOK(c, report)
}
