package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
// Note: This is a stateless service - no database or auth secrets needed
type Config struct {
	// Environment
	Environment string
	Port        string

	// Scale defaults
	DefaultOctave int // Octave the root is placed in when a request gives none

	// HTTP
	AllowedOrigins []string // CORS origins; "*" allows any

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchNamespace string // Namespace for CloudWatch custom metrics
}

const (
	defaultOctave = 4
	minOctave     = -1
	maxOctave     = 9
)

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		DefaultOctave:       getOctave("DEFAULT_OCTAVE", defaultOctave),
		AllowedOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "Scales/API"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getOctave(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minOctave || v > maxOctave {
		log.Printf("⚠️  Ignoring %s=%q (want an integer in %d..%d), using %d", key, raw, minOctave, maxOctave, defaultValue)
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
