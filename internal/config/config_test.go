package config

import (
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty allows all", raw: "", want: nil},
		{name: "single", raw: "http://localhost:3000", want: []string{"http://localhost:3000"}},
		{name: "trims and skips blanks", raw: " http://a.test , ,http://b.test ", want: []string{"http://a.test", "http://b.test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseOrigins(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("AUTO_MIGRATE", "not-a-bool")
	t.Setenv("LOGIN_RATE_LIMIT", "x")
	t.Setenv("ADMIN_USERNAME", "")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if !cfg.SessionCookieSecure {
		t.Error("SessionCookieSecure = false, want true")
	}
	if !cfg.AutoMigrate {
		t.Error("AutoMigrate should fall back to true on an unparsable value")
	}
	if cfg.LoginRateLimit != 20 {
		t.Errorf("LoginRateLimit = %d, want fallback 20", cfg.LoginRateLimit)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want admin", cfg.AdminUsername)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := CacheKey.SessionKey("abc"); got != "session:abc" {
		t.Errorf("SessionKey = %q", got)
	}
	if got := CacheKey.LoginAttemptsKey("admin-login", "10.0.0.1", 42); got != "ratelimit:admin-login:10.0.0.1:42" {
		t.Errorf("LoginAttemptsKey = %q", got)
	}
}
