package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/scales-api/internal/api"
	"github.com/Conceptual-Machines/scales-api/internal/catalog"
	"github.com/Conceptual-Machines/scales-api/internal/config"
	"github.com/Conceptual-Machines/scales-api/internal/metrics"
	"github.com/Conceptual-Machines/scales-api/internal/services"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	sentryEnabled := false
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "scales-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			EnableLogs:       true,
			Debug:            cfg.Environment != environmentProduction,
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			sentryEnabled = true
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Metrics sinks
	cloudwatchClient, err := metrics.NewClient(context.Background(), cfg.Environment, cfg.CloudWatchNamespace)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
	}
	recorder := metrics.Multi{metrics.NewSentryMetrics(sentryEnabled)}
	if cloudwatchClient != nil {
		recorder = append(recorder, cloudwatchClient)
	}

	// Scale catalog
	cat, err := catalog.Load()
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load scale catalog:", err)
	}
	log.Printf("🎼 Loaded scale catalog (%d scale types)", cat.Len())

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	scaleService := services.NewScaleService(cat, recorder, cfg.DefaultOctave)

	// Initialize router
	router := api.SetupRouter(cfg, scaleService, recorder, GetVersion())

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
