package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("REFDATA_TEST_KEY", "set")

	if got := GetEnv("REFDATA_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, want %q", got, "set")
	}
	if got := GetEnv("REFDATA_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want %q", got, "fallback")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"valid", "30m", 30 * time.Minute},
		{"invalid falls back", "bogus", time.Hour},
		{"empty falls back", "", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDuration(tt.value, time.Hour); got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "refdata")
	t.Setenv("DB_PASSWORD", "refdata")
	t.Setenv("DB_NAME", "refdata")
	t.Setenv("JWT_SECRET", "this-is-a-test-secret-with-32-bytes!")
	t.Setenv("PORT", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("REDIS_HOST", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry = %v, want 1h", cfg.JWTExpiry)
	}
	if cfg.JWTIssuer != "refdata-service" {
		t.Errorf("JWTIssuer = %q, want default issuer", cfg.JWTIssuer)
	}
	if cfg.RedisHost != "" {
		t.Errorf("RedisHost = %q, want empty default", cfg.RedisHost)
	}
}
