package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	SecretKey    []byte
	Issuer       string
	SessionTTL   time.Duration
	CookieSecure bool
}

var (
	jwtConfig JWTConfig
	jwtOnce   sync.Once
)

// LoadJWTConfig reads the session token configuration once. The signing
// secret is mandatory; the process refuses to start without it.
func LoadJWTConfig() JWTConfig {
	jwtOnce.Do(func() {
		LoadEnv()

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}

		issuer := os.Getenv("JWT_ISSUER")
		if issuer == "" {
			issuer = "entertainment-api"
		}

		ttl := 24 * time.Hour
		if ttlStr := os.Getenv("JWT_SESSION_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			} else {
				log.Printf("invalid JWT_SESSION_TTL value %q, using default %s", ttlStr, ttl)
			}
		}

		jwtConfig = JWTConfig{
			SecretKey:    []byte(secret),
			Issuer:       issuer,
			SessionTTL:   ttl,
			CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		}
	})

	return jwtConfig
}

// ResetJWTConfigForTest clears the memoized config so tests can swap secrets.
func ResetJWTConfigForTest() {
	jwtOnce = sync.Once{}
	jwtConfig = JWTConfig{}
}
