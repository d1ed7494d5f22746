package ratelimit

import "strings"

// unlimited is returned for routes that are never limited.
var unlimited = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint returns the configuration that applies to a request, or nil when the
// default limit applies. Exact paths win over prefixes and longer prefixes over shorter ones.
// A "{name}" path segment matches any single segment.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		match := unlimited
		return &match
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if matchPattern(cfg.Path, path) {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if best == nil || len(cfg.Path) > len(best.Path) {
				best = cfg
			}
		}
	}
	return best
}

func matchPattern(pattern, path string) bool {
	if !strings.Contains(pattern, "{") {
		return pattern == path
	}
	want := strings.Split(pattern, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if strings.HasPrefix(want[i], "{") && strings.HasSuffix(want[i], "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
