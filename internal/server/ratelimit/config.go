package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Route is the rate limit for one method and path. A Limit of zero or less
// means the route is unlimited.
type Route struct {
	Method string
	Path   string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	// IdleTTL is how long an unused bucket is kept
	IdleTTL   time.Duration
	Allowlist map[string]bool
	Denylist  map[string]bool
	Routes    []Route
}

// DefaultRoutes limits the analysis endpoints. Uploads are parsed before
// they are analyzed, so they get the tighter budget.
func DefaultRoutes() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/analyze", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: http.MethodPost, Path: "/analyze/text", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: http.MethodGet, Path: "/health", Limit: 0},
	}
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Hour,
		Allowlist:     map[string]bool{},
		Denylist:      map[string]bool{},
		Routes:        DefaultRoutes(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool(getenv, "RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.DefaultLimit = envInt(getenv, "RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration(getenv, "RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.IdleTTL = envDuration(getenv, "RATE_LIMIT_IDLE_TTL", cfg.IdleTTL)
	cfg.Allowlist = parseList(getenv("RATE_LIMIT_ALLOWLIST"))
	cfg.Denylist = parseList(getenv("RATE_LIMIT_DENYLIST"))
	return cfg
}

// route returns the limit that applies to a request
func (c *Config) route(method, path string) Route {
	for _, r := range c.Routes {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	return Route{Method: method, Path: path, Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

func envInt(getenv func(string) string, key string, fallback int) int {
	if v, err := strconv.Atoi(getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(getenv func(string) string, key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(getenv(key)); err == nil {
		return v
	}
	return fallback
}

// parseList parses a comma-separated list of client addresses into a set.
func parseList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result[item] = true
		}
	}
	return result
}
