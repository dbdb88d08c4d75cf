package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var startTime = time.Now()

// HealthHandler reports service liveness, dependency health and basic
// host statistics.
type HealthHandler struct {
	redis   *redis.Client
	version string
}

// NewHealthHandler creates the health endpoint handler. redis may be
// nil when caching is disabled.
func NewHealthHandler(redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{redis: redisClient, version: version}
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Services  map[string]string      `json:"services"`
	System    map[string]interface{} `json:"system"`
}

// Check handles GET /health. A missing Redis degrades the status but
// never fails the endpoint; calculations run without it.
func (h *HealthHandler) Check(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Services:  map[string]string{"ephemeris": "healthy"},
		System:    map[string]interface{}{},
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			resp.Services["redis"] = "unhealthy: " + err.Error()
			resp.Status = "degraded"
		} else {
			resp.Services["redis"] = "healthy"
		}
	} else {
		resp.Services["redis"] = "disabled"
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.System["memory_used_percent"] = vm.UsedPercent
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		resp.System["cpu_percent"] = percents[0]
	}

	status := http.StatusOK
	if resp.Status == "degraded" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
