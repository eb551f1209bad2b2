package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at process start and passed down explicitly.
type Config struct {
	Env        string
	Port       string
	APIBaseURL string

	// Outbound HTTP to the reservation backend.
	APITimeout time.Duration

	// Availability fetch retry policy. MaxRetries counts retries after the
	// first attempt; backoff doubles per retry starting at RetryBase.
	MaxRetries int
	RetryBase  time.Duration

	// Idle lifetime of a visitor's booking session.
	SessionTTL time.Duration
}

// Default reservation backend per environment; API_BASE_URL overrides.
var defaultBaseURLs = map[string]string{
	"development": "http://localhost:8000/api",
	"staging":     "https://staging-api.kamuluwatershotel.co.ke/api",
	"production":  "https://api.kamuluwatershotel.co.ke/api",
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return v
}

// Load resolves configuration from the environment. The base URL comes from
// API_BASE_URL when set, otherwise from the APP_ENV mapping.
func Load() (*Config, error) {
	env := strings.ToLower(envOrDefault("APP_ENV", "development"))

	base := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if base == "" {
		mapped, ok := defaultBaseURLs[env]
		if !ok {
			return nil, fmt.Errorf("unknown APP_ENV %q and API_BASE_URL not set", env)
		}
		base = mapped
	}

	return &Config{
		Env:        env,
		Port:       envOrDefault("PORT", "8080"),
		APIBaseURL: strings.TrimRight(base, "/"),
		APITimeout: envDuration("API_TIMEOUT", 10*time.Second),
		MaxRetries: envInt("FETCH_MAX_RETRIES", 2),
		RetryBase:  envDuration("FETCH_RETRY_BASE", time.Second),
		SessionTTL: envDuration("BOOKING_SESSION_TTL", 30*time.Minute),
	}, nil
}
