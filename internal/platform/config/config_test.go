package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/schoolhr",
		JWTSecret:          "secret",
		TokenTTL:           8 * time.Hour,
		Environment:        "development",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 60,
		DirectoryPageSize:  10,
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	c := validConfig()
	c.DatabaseURL = "  "
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing DATABASE_URL")
	}
}

func TestValidateProductionNeedsJWTSecret(t *testing.T) {
	c := validConfig()
	c.Environment = "production"
	c.JWTSecret = ""
	c.RunSeed = false
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for blank JWT secret in production")
	}
}

func TestValidateEmailNeedsHost(t *testing.T) {
	c := validConfig()
	c.EmailEnabled = true
	c.SMTPHost = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when email enabled without SMTP host")
	}
}

func TestValidatePageSizePositive(t *testing.T) {
	c := validConfig()
	c.DirectoryPageSize = 0
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for zero page size")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DIRECTORY_PAGE_SIZE", "")
	t.Setenv("TOKEN_TTL", "")
	c := Load()
	if c.Addr != ":8080" {
		t.Fatalf("default addr: got %s", c.Addr)
	}
	if c.DirectoryPageSize != 10 {
		t.Fatalf("default page size: got %d", c.DirectoryPageSize)
	}
	if c.TokenTTL != 8*time.Hour {
		t.Fatalf("default token ttl: got %s", c.TokenTTL)
	}
}
