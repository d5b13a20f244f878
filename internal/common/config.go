package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Matcher  MatcherConfig
	Price    PriceConfig
}

// DatabaseConfig holds reference-database configuration
type DatabaseConfig struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// MatcherConfig holds cascade thresholds
type MatcherConfig struct {
	SubstringThreshold float64
	FuzzyThreshold     float64
	SemanticThreshold  float64
	ConfidenceFloor    float64
}

// PriceConfig holds severity band boundaries (percent)
type PriceConfig struct {
	MinorPct       float64
	SmallPct       float64
	ModeratePct    float64
	SignificantPct float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("REF_DB_URL", ""),
			Table:           getEnv("REF_DB_TABLE", "materials"),
			MaxConns:        getEnvAsInt32("REF_DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("REF_DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("REF_DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("REF_DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("REF_DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Matcher: MatcherConfig{
			SubstringThreshold: getEnvAsFloat64("MATCH_SUBSTRING_THRESHOLD", 60),
			FuzzyThreshold:     getEnvAsFloat64("MATCH_FUZZY_THRESHOLD", 70),
			SemanticThreshold:  getEnvAsFloat64("MATCH_SEMANTIC_THRESHOLD", 50),
			ConfidenceFloor:    getEnvAsFloat64("MATCH_CONFIDENCE_FLOOR", 50),
		},
		Price: PriceConfig{
			MinorPct:       getEnvAsFloat64("PRICE_MINOR_PCT", 2),
			SmallPct:       getEnvAsFloat64("PRICE_SMALL_PCT", 5),
			ModeratePct:    getEnvAsFloat64("PRICE_MODERATE_PCT", 10),
			SignificantPct: getEnvAsFloat64("PRICE_SIGNIFICANT_PCT", 25),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. Thresholds are percentages
// and must stay within [0,100]; bands must be strictly increasing.
func (c *Config) Validate() error {
	for _, t := range []float64{
		c.Matcher.SubstringThreshold, c.Matcher.FuzzyThreshold,
		c.Matcher.SemanticThreshold, c.Matcher.ConfidenceFloor,
	} {
		if t < 0 || t > 100 {
			return NewAppError("CONFIG_ERROR", "matcher thresholds must be within [0,100]", ErrInvalidInput)
		}
	}
	p := c.Price
	if !(p.MinorPct > 0 && p.SmallPct > p.MinorPct && p.ModeratePct > p.SmallPct && p.SignificantPct > p.ModeratePct) {
		return NewAppError("CONFIG_ERROR", "price bands must be positive and strictly increasing", ErrInvalidInput)
	}
	return nil
}
