package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "development")
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret should have a default")
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL should have a default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SMTP_PORT", "587")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.JWTSecret != "override-secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "override-secret")
	}
	if cfg.AppEnv != "production" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "production")
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d, want 587", cfg.SMTPPort)
	}
}
