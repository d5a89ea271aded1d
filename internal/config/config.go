package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the recommendation
// service.
type Config struct {
	HTTPAddress string
	JWTSecret   string
	JWTIssuer   string
	HTTPTimeout time.Duration

	// Catalog source selection: URL wins over file; with neither set the
	// service runs on the seeded in-memory store.
	CatalogURL      string
	CatalogFile     string
	CatalogCacheTTL time.Duration

	KafkaBrokers   []string
	ConsumerGroup  string
	ConsumerTopics []string

	// Engine defaults applied when a request leaves the option at zero.
	MaxPerPattern       int
	DisableTrendOverlay bool
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		HTTPAddress:         getEnv("HTTP_ADDRESS", ":8092"),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:           getEnv("JWT_ISSUER", "i5e.identity"),
		HTTPTimeout:         getDurationEnv("HTTP_TIMEOUT", 5*time.Second),
		CatalogURL:          getEnv("CATALOG_URL", ""),
		CatalogFile:         getEnv("CATALOG_FILE", ""),
		CatalogCacheTTL:     getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
		KafkaBrokers:        splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		ConsumerGroup:       getEnv("CONSUMER_GROUP_ID", "recommendation-catalog-consumer"),
		ConsumerTopics:      splitAndTrim(getEnv("CONSUMER_TOPICS", "catalog_events")),
		MaxPerPattern:       getIntEnv("MAX_PER_PATTERN", 0),
		DisableTrendOverlay: getBoolEnv("DISABLE_TREND_OVERLAY", false),
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
