package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig limits one route. A Path ending in "/" matches every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int           // defaults to Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	// Buckets idle for longer than IdleTTL are dropped every CleanupInterval.
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Endpoints       []EndpointConfig
}

// DefaultConfig is used when NewLimiter is given nil.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// LoadConfig builds a Config from RATE_LIMIT_* environment variables on top of DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envOr("RATE_LIMIT_ENABLED", cfg.Enabled, strconv.ParseBool)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.DefaultLimit = envOr("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit, strconv.Atoi)
	cfg.DefaultWindow = envOr("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow, time.ParseDuration)
	cfg.CleanupInterval = envOr("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval, time.ParseDuration)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))

	renderLimit := envOr("RATE_LIMIT_RENDER_LIMIT", 0, strconv.Atoi)
	if renderLimit > 0 {
		for i := range cfg.Endpoints {
			if cfg.Endpoints[i].Path == "/render" || strings.HasSuffix(cfg.Endpoints[i].Path, "/pdf") {
				cfg.Endpoints[i].Limit = renderLimit
			}
		}
	}

	return cfg
}

// DefaultEndpointConfigs returns the per-route limits. Rendering is the expensive
// operation, so it gets the tightest bucket.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/render", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/resumes/{id}/pdf", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/resumes", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/resumes/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func envOr[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
