package api

import (
	"github.com/Conceptual-Machines/scales-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/scales-api/internal/api/middleware"
	"github.com/Conceptual-Machines/scales-api/internal/config"
	"github.com/Conceptual-Machines/scales-api/internal/metrics"
	"github.com/Conceptual-Machines/scales-api/internal/services"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, scaleService *services.ScaleService, recorder metrics.Recorder, version string) *gin.Engine {
	router := gin.New()

	// Request tracking and structured logging (outermost so panics are counted)
	router.Use(apimiddleware.RequestTracking(recorder))

	// Recovery middleware, wrapping Sentry so repanics end here
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		scaleHandler := handlers.NewScaleHandler(scaleService)
		v1.GET("/scales", scaleHandler.List)
		v1.GET("/scales/:root/:type", scaleHandler.Get)
		v1.POST("/scales", scaleHandler.Generate)
		v1.POST("/scales/custom", scaleHandler.GenerateCustom)
		v1.POST("/scales/parse", scaleHandler.ParseDisplay)
	}

	return router
}
