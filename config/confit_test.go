package config

import (
	"testing"
	"time"
)

func TestValidateDatabaseConfigMissing(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "")

	if err := ValidateDatabaseConfig(); err == nil {
		t.Fatal("expected validation error for missing database environment variables")
	}
}

func TestValidateDatabaseConfigSuccess(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "dbname")

	if err := ValidateDatabaseConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateJWTConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if err := ValidateJWTConfig(); err == nil {
		t.Fatal("expected validation error for missing JWT secret")
	}
}

func TestValidateJWTConfigInvalidTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_SESSION_TTL", "not-a-duration")

	if err := ValidateJWTConfig(); err == nil {
		t.Fatal("expected validation error for invalid JWT session TTL")
	}
}

func TestValidateEmailConfigInvalidPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "invalid")
	t.Setenv("SMTP_FROM", "from@example.com")

	if err := ValidateEmailConfig(); err == nil {
		t.Fatal("expected validation error for invalid SMTP_PORT")
	}
}

func TestValidateEmailConfigSuccess(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_FROM", "from@example.com")

	if err := ValidateEmailConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "dbname")
	t.Setenv("DB_PARAMS", "")

	got := LoadDatabaseConfig().DSN()
	want := "user:pass@tcp(localhost:3306)/dbname?charset=utf8mb4&parseTime=true&loc=Local"
	if got != want {
		t.Fatalf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestDatabaseConfigCustomParams(t *testing.T) {
	t.Setenv("DB_PARAMS", "parseTime=true&tls=skip-verify")

	cfg := LoadDatabaseConfig()
	if cfg.Params != "parseTime=true&tls=skip-verify" {
		t.Fatalf("expected custom params to win, got %s", cfg.Params)
	}
}

func TestLoadStorageConfigDefaultPresignTTL(t *testing.T) {
	t.Setenv("S3_PRESIGN_TTL", "")

	cfg := LoadStorageConfig()
	if cfg.PresignTTL != 15*time.Minute {
		t.Fatalf("expected default presign TTL of 15m, got %s", cfg.PresignTTL)
	}
}

func TestLoadStorageConfigCustomPresignTTL(t *testing.T) {
	t.Setenv("S3_PRESIGN_TTL", "30m")

	cfg := LoadStorageConfig()
	if cfg.PresignTTL != 30*time.Minute {
		t.Fatalf("expected presign TTL of 30m, got %s", cfg.PresignTTL)
	}
}

func TestLoadStorageConfigInvalidPresignTTL(t *testing.T) {
	t.Setenv("S3_PRESIGN_TTL", "soon")

	cfg := LoadStorageConfig()
	if cfg.PresignTTL != 15*time.Minute {
		t.Fatalf("expected fallback to default TTL, got %s", cfg.PresignTTL)
	}
}

func TestValidateAggregatesSections(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "dbname")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_FROM", "from@example.com")

	if err := Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
