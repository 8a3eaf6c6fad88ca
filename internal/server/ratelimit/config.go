package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path              string // Endpoint path pattern (supports prefix matching)
	Method            string // HTTP method (GET, POST, etc.)
	RequestsPerMinute int    // Sustained rate; 0 means unlimited
	Burst             int    // Burst capacity (defaults to RequestsPerMinute if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
	IdleTTL           time.Duration
	Whitelist         map[string]bool
	EndpointConfigs   []EndpointConfig
}

// NewConfig builds a limiter configuration from the server's rate limit
// settings. whitelist is a comma-separated list of client IPs.
func NewConfig(enabled bool, requestsPerMinute, burst int, whitelist string) *Config {
	return &Config{
		Enabled:           enabled,
		RequestsPerMinute: requestsPerMinute,
		Burst:             burst,
		CleanupInterval:   5 * time.Minute,
		IdleTTL:           time.Hour,
		Whitelist:         parseIPList(whitelist),
		EndpointConfigs:   DefaultEndpointConfigs(requestsPerMinute, burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations derived
// from the global rate. Document analysis parses uploads, so it gets a quarter
// of the global rate.
func DefaultEndpointConfigs(requestsPerMinute, burst int) []EndpointConfig {
	heavyRate := max(1, requestsPerMinute/4)
	heavyBurst := max(1, burst/4)
	return []EndpointConfig{
		{Path: "/analyze", Method: "POST", RequestsPerMinute: heavyRate, Burst: heavyBurst},
		{Path: "/analyze/stream", Method: "POST", RequestsPerMinute: heavyRate, Burst: heavyBurst},
		{Path: "/detect-field", Method: "POST", RequestsPerMinute: requestsPerMinute, Burst: burst},
		{Path: "/validate-format", Method: "POST", RequestsPerMinute: requestsPerMinute, Burst: burst},
		{Path: "/reports/", Method: "GET", RequestsPerMinute: requestsPerMinute * 2, Burst: burst * 2},
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
