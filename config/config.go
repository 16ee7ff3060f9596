/* config.go
 * Contains the application configuration, loaded from a .env file (if present) and environment variables
 * Authors: Zachary Bower
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	HTTPAddr       string        `validate:"required"`
	FPLBaseURL     string        `validate:"required,url"`
	UserAgent      string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	RateLimit      float64       `validate:"gte=0"` // requests per second to the FPL api, 0 = unlimited
	RateBurst      int           `validate:"gte=1"`
	Season         string        `validate:"required"`
	Timezone       string        `validate:"required"`
	DiscordToken   string
	LogLevel       string `validate:"oneof=debug info warn warning error"`
	LogFormat      string `validate:"oneof=json text"`
	Environment    string `validate:"required"`
	Version        string
}

// Load loads the configuration from environment variables
// Preconditions: None. A .env file in the working directory is loaded if it exists, but real env vars take priority
// Postconditions: Returns a validated Config, or an error describing the first invalid value
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		FPLBaseURL:   getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api"),
		UserAgent:    getEnv("FPL_USER_AGENT", "Mozilla/5.0 (compatible; FPLInsights/1.0)"),
		Season:       getEnv("FPL_SEASON", "2024-25"),
		Timezone:     getEnv("TIMEZONE", "UTC"),
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		Version:      getEnv("VERSION", "dev"),
	}

	timeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FPL_TIMEOUT value: %w", err)
	}
	cfg.RequestTimeout = timeout

	rateLimit, err := strconv.ParseFloat(getEnv("FPL_RATE_LIMIT", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FPL_RATE_LIMIT value: %w", err)
	}
	cfg.RateLimit = rateLimit

	burst, err := strconv.Atoi(getEnv("FPL_RATE_BURST", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid FPL_RATE_BURST value: %w", err)
	}
	cfg.RateBurst = burst

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and that the timezone can be loaded
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	return nil
}

// Location returns the time zone used when grouping fixtures by day. Falls back to UTC if the zone cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
