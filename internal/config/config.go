// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// ListenAddr is the address the HTTP server listens on (e.g. :8080).
	ListenAddr string `mapstructure:"LISTEN_ADDR"`
	// ClientOrigin is the dashboard origin allowed by CORS in addition to localhost dev.
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	// GeminiAPIKey authenticates calls to the generative-AI insight service. Empty disables the call (the fallback advisory is served).
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	// GeminiBaseURL is the generative-AI API base URL.
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`
	// GeminiModel is the model name used for insight generation.
	GeminiModel string `mapstructure:"GEMINI_MODEL"`
	// SimulationInterval is the telemetry simulation period (e.g. "5s").
	SimulationInterval string `mapstructure:"SIMULATION_INTERVAL"`
	// SimulationEnabled turns the movement simulation on or off.
	SimulationEnabled bool `mapstructure:"SIMULATION_ENABLED"`
	// APIKeys is a comma-separated list of keys accepted on mutating routes. Empty disables write auth.
	APIKeys string `mapstructure:"API_KEYS"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("CLIENT_ORIGIN", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	v.SetDefault("SIMULATION_INTERVAL", "5s")
	v.SetDefault("SIMULATION_ENABLED", true)
	v.SetDefault("API_KEYS", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.ListenAddr == "" {
		return nil, errors.New("config: LISTEN_ADDR must be set")
	}
	if cfg.GeminiBaseURL == "" {
		return nil, errors.New("config: GEMINI_BASE_URL must be set")
	}

	return &cfg, nil
}

// Interval parses SimulationInterval as a time.Duration. Returns 5s if unset or invalid.
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.SimulationInterval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// APIKeyList returns the accepted write keys from the comma-separated config.
// An empty list means write auth is disabled.
func (c *Config) APIKeyList() []string {
	if c == nil || c.APIKeys == "" {
		return nil
	}
	parts := strings.Split(c.APIKeys, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
