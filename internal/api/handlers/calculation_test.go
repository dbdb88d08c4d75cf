package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/cache"
	"github.com/vedanga/astro-engine-go/internal/config"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeEphemeris pins every astronomical quantity for handler tests.
type fakeEphemeris struct {
	posErr error
}

func (f *fakeEphemeris) Positions(time.Time) (map[astro.Planet]ephemeris.BodyState, error) {
	if f.posErr != nil {
		return nil, f.posErr
	}
	return map[astro.Planet]ephemeris.BodyState{
		astro.Sun:     {Longitude: 30.93, SpeedPerDay: 0.98},
		astro.Moon:    {Longitude: 283.95, SpeedPerDay: 13.2},
		astro.Mars:    {Longitude: 320.1, SpeedPerDay: 0.6},
		astro.Mercury: {Longitude: 38.2, SpeedPerDay: -0.1},
		astro.Jupiter: {Longitude: 95.4, SpeedPerDay: 0.2},
		astro.Venus:   {Longitude: 12.7, SpeedPerDay: 1.1},
		astro.Saturn:  {Longitude: 275.8, SpeedPerDay: 0.08},
		astro.Rahu:    {Longitude: 300.2, SpeedPerDay: -0.053},
		astro.Ketu:    {Longitude: 120.2, SpeedPerDay: -0.053},
	}, nil
}

func (f *fakeEphemeris) ChartAngles(time.Time, float64, float64) (ephemeris.Angles, error) {
	return ephemeris.Angles{Ascendant: 152.5, Midheaven: 62.5, ARMC: 60, Obliquity: 23.44}, nil
}

func (f *fakeEphemeris) SunriseSunset(date time.Time, _, _ float64) (time.Time, time.Time, error) {
	rise := time.Date(date.Year(), date.Month(), date.Day(), 0, 3, 0, 0, time.UTC)
	return rise, rise.Add(13*time.Hour + 35*time.Minute), nil
}

func (f *fakeEphemeris) AyanamsaDegrees(time.Time, string) float64 { return 0 }

func testDefaults() config.CalculationConfig {
	return config.CalculationConfig{
		DefaultHouseSystem: "EQUAL",
		DefaultAyanamsa:    "LAHIRI",
		DefaultDashaDepth:  1,
		DefaultKPSubDepth:  2,
	}
}

func newTestRouter(eph ephemeris.Adapter, reports *cache.RedisReportCache) *gin.Engine {
	h := NewCalculationHandler(
		services.NewHoroscopeService(eph, nil),
		services.NewChartService(eph, nil),
		services.NewDivisionalService(nil),
		services.NewPanchangService(eph, nil),
		services.NewDashaService(nil),
		services.NewKPService(nil),
		services.NewAshtakavargaService(nil),
		services.NewYogaService(nil),
		services.NewMatchingService(nil),
		services.NewRemedyService(nil),
		reports,
		testDefaults(),
		nil,
	)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/chart", h.Chart)
	v1.POST("/divisional", h.Divisional)
	v1.POST("/panchang", h.Panchang)
	v1.POST("/dasha", h.Dasha)
	v1.POST("/kp", h.KP)
	v1.POST("/ashtakavarga", h.Ashtakavarga)
	v1.POST("/yogas", h.Yogas)
	v1.POST("/matching", h.Matching)
	v1.POST("/matching/dashakoot", h.Dashakoot)
	v1.POST("/remedies", h.Remedies)
	v1.POST("/horoscope", h.Horoscope)
	v1.GET("/horoscope/:id", h.HoroscopeByID)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const birthJSON = `{"date":"1990-05-15","time":"14:30:00","timezone":"+05:30","latitude":28.6139,"longitude":77.2090}`

func TestChartEndpoint(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/chart", `{"birth_data":`+birthJSON+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Virgo", data["ascendant_sign"])
	assert.Equal(t, "EQUAL", data["house_system"], "defaults fill the omitted selector")
}

func TestChartEndpointBadRequests(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/chart", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(router, http.MethodPost, "/api/v1/chart", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "birth_data is required")

	badDate := strings.Replace(birthJSON, "1990-05-15", "15/05/1990", 1)
	w = perform(router, http.MethodPost, "/api/v1/chart", `{"birth_data":`+badDate+`}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestChartEndpointEphemerisFailure(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{posErr: ephemeris.ErrUnavailable}, nil)

	w := perform(router, http.MethodPost, "/api/v1/chart", `{"birth_data":`+birthJSON+`}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDivisionalEndpointSelectedCharts(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/divisional",
		`{"birth_data":`+birthJSON+`,"divisions":[1,9]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data, 2)
	assert.Contains(t, data, "D1")
	assert.Contains(t, data, "D9")
}

func TestPanchangEndpoint(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/panchang",
		`{"date":"1990-05-15","timezone":"+05:30","latitude":28.6139,"longitude":77.2090}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Tuesday", data["weekday"])
}

func TestDashaEndpointAppliesDefaultDepth(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/dasha", `{"birth_data":`+birthJSON+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	periods := data["periods"].([]interface{})
	require.Len(t, periods, 9)
	first := periods[0].(map[string]interface{})
	assert.NotEmpty(t, first["children"], "default depth adds antardashas")
}

func TestDashaEndpointExplicitZeroDepth(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/dasha",
		`{"birth_data":`+birthJSON+`,"depth":0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	periods := data["periods"].([]interface{})
	require.Len(t, periods, 9)
	first := periods[0].(map[string]interface{})
	assert.Empty(t, first["children"], "explicit zero keeps mahadashas only")
}

func TestMatchingEndpointSelfMatch(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/matching",
		`{"groom":`+birthJSON+`,"bride":`+birthJSON+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.InDelta(t, 28, data["total"].(float64), 1e-9)
	assert.Equal(t, "Excellent", data["compatibility"])
}

func TestDashakootEndpointSelfMatch(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodPost, "/api/v1/matching/dashakoot",
		`{"groom":`+birthJSON+`,"bride":`+birthJSON+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.InDelta(t, 28, data["total"].(float64), 1e-9)
	assert.InDelta(t, 38, data["max_total"].(float64), 1e-9)
	assert.InDelta(t, 28, data["ashtakoot_total"].(float64), 1e-9)
	assert.Len(t, data["kootas"].([]interface{}), 10)
	assert.NotEmpty(t, data["recommendation"])
}

func TestHoroscopeEndpointStoresReport(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	reports := cache.NewRedisReportCache(client, time.Hour, nil)
	router := newTestRouter(&fakeEphemeris{}, reports)

	w := perform(router, http.MethodPost, "/api/v1/horoscope", `{"birth_data":`+birthJSON+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	id := data["id"].(string)
	require.NotEmpty(t, id)
	sections := data["sections"].(map[string]interface{})
	assert.Len(t, sections, 8)

	w = perform(router, http.MethodGet, "/api/v1/horoscope/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	cached := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, id, cached["id"])

	w = perform(router, http.MethodGet, "/api/v1/horoscope/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHoroscopeByIDWithoutCache(t *testing.T) {
	router := newTestRouter(&fakeEphemeris{}, nil)

	w := perform(router, http.MethodGet, "/api/v1/horoscope/some-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "caching disabled")
}
