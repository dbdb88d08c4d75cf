package api

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vedanga/astro-engine-go/internal/api/handlers"
)

// SetupRoutes installs the health endpoint and the versioned
// calculation API on the router.
func SetupRoutes(router *gin.Engine, calc *handlers.CalculationHandler, health *handlers.HealthHandler, serviceName string) {
	router.Use(otelgin.Middleware(serviceName))

	router.GET("/health", health.Check)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/chart", calc.Chart)
		v1.POST("/divisional", calc.Divisional)
		v1.POST("/panchang", calc.Panchang)
		v1.POST("/dasha", calc.Dasha)
		v1.POST("/kp", calc.KP)
		v1.POST("/ashtakavarga", calc.Ashtakavarga)
		v1.POST("/yogas", calc.Yogas)
		v1.POST("/matching", calc.Matching)
		v1.POST("/matching/dashakoot", calc.Dashakoot)
		v1.POST("/remedies", calc.Remedies)
		v1.POST("/horoscope", calc.Horoscope)
		v1.GET("/horoscope/:id", calc.HoroscopeByID)
	}
}
