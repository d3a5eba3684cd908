package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "3000"
	DefaultEnv      = "production"
	DefaultLogLevel = "info"
)

type Config struct {
	Host     string
	Port     string
	Env      string
	LogLevel string

	AllowedOrigins []string

	// RateLimitRequests of 0 disables rate limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadConfig reads configuration from the environment. Files are loaded
// with godotenv first; with no arguments it looks for ./.env. Variables
// already present in the environment win over file values.
func LoadConfig(envFiles ...string) (*Config, error) {
	cfg := &Config{}

	// Load .env file if it exists
	if err := godotenv.Load(envFiles...); err == nil {
		cfg.EnvFileLoaded = true
	}

	cfg.Host = os.Getenv("HOST")
	cfg.Port = envOr("PORT", DefaultPort)
	cfg.Env = envOr("APP_ENV", DefaultEnv)
	cfg.LogLevel = envOr("LOG_LEVEL", DefaultLogLevel)
	cfg.AllowedOrigins = splitList(envOr("CORS_ALLOWED_ORIGINS", "*"))

	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS %q: %w", v, err)
		}
		cfg.RateLimitRequests = n
	}

	cfg.RateLimitWindow = time.Minute
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q: %w", v, err)
		}
		cfg.RateLimitWindow = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that may also have been set from CLI flags.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}

	if c.RateLimitRequests < 0 {
		return fmt.Errorf("invalid RATE_LIMIT_REQUESTS %d: must not be negative", c.RateLimitRequests)
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_WINDOW %s: must be positive", c.RateLimitWindow)
	}

	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}

	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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
