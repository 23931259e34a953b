package config

import (
	"os"
	"strconv"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	ServerPort          string
	ConfidenceThreshold float64
	NLU                 NLUConfig
	Logging             LoggingConfig
}

// NLUConfig describes the external intent-classification provider. An empty
// URL disables the external path entirely and the rule-based classifier is
// used for every utterance.
type NLUConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultPort       = "8080"
	defaultThreshold  = 0.6
	defaultNLUTimeout = 10 * time.Second
	defaultLogLevel   = "info"
	defaultLogFormat  = "json"
)

// Load reads configuration from environment variables, applying defaults for
// anything unset or unparseable.
func Load() *Config {
	return &Config{
		ServerPort:          valueOrDefault("SERVER_PORT", defaultPort),
		ConfidenceThreshold: parseFloatWithDefault("CONFIDENCE_THRESHOLD", defaultThreshold),
		NLU: NLUConfig{
			URL:     os.Getenv("NLU_URL"),
			Token:   os.Getenv("NLU_TOKEN"),
			Timeout: parseDurationWithDefault("NLU_TIMEOUT", defaultNLUTimeout),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLogLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLogFormat),
		},
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFloatWithDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 && val <= 1 {
			return val
		}
	}
	return fallback
}

func parseDurationWithDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
