package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	// 60 requests/min = 1 req/sec, burst of 2
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	if !m.Allow("client-1") {
		t.Error("first request should be allowed")
	}
	if !m.Allow("client-1") {
		t.Error("second request within burst should be allowed")
	}
	if m.Allow("client-1") {
		t.Error("third request should exceed burst capacity")
	}

	// A different key gets its own bucket
	if !m.Allow("client-2") {
		t.Error("request from a different key should be allowed")
	}
}

func TestRateLimiterStats(t *testing.T) {
	m := NewRateLimiter(120, time.Minute, 5, nil)
	defer m.Close()

	m.Allow("a")
	m.Allow("b")

	stats := m.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("expected burst capacity 5, got %v", stats["burst_capacity"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("expected 120 requests/min, got %v", stats["rate_per_minute"])
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		expected string
	}{
		{
			name:     "api key header preferred",
			apiKey:   "secret-key",
			byAPIKey: true,
			byIP:     true,
			expected: "api:secret-key",
		},
		{
			name:     "bearer token fallback",
			bearer:   "Bearer token-123",
			byAPIKey: true,
			expected: "api:token-123",
		},
		{
			name:     "falls back to IP when no key present",
			byAPIKey: true,
			byIP:     true,
			expected: "ip:192.0.2.1",
		},
		{
			name:     "no limiting dimensions configured",
			apiKey:   "secret-key",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/evaluations", nil)
			r.RemoteAddr = "192.0.2.1:54321"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}

			key := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if key != tt.expected {
				t.Errorf("expected key %q, got %q", tt.expected, key)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.0.2.1:54321",
			expected:   "192.0.2.1",
		},
		{
			name:       "x-forwarded-for takes precedence",
			remoteAddr: "192.0.2.1:54321",
			forwarded:  "203.0.113.7, 192.0.2.1",
			expected:   "203.0.113.7",
		},
		{
			name:       "invalid forwarded entries skipped",
			remoteAddr: "192.0.2.1:54321",
			forwarded:  "not-an-ip",
			expected:   "192.0.2.1",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "192.0.2.1:54321",
			realIP:     "198.51.100.9",
			expected:   "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			if ip := getClientIP(r); ip != tt.expected {
				t.Errorf("expected IP %q, got %q", tt.expected, ip)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if masked := maskAPIKey("short"); masked != "****" {
		t.Errorf("short keys should be fully masked, got %q", masked)
	}
	if masked := maskAPIKey("abcdefgh12345678"); masked != "abcdefgh****" {
		t.Errorf("expected prefix mask, got %q", masked)
	}
}
