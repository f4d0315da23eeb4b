package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset or empty leave the current value intact.
//
// Recognized variables:
//
//	FOLIO_ADDRESS                HTTP bind address
//	FOLIO_DATABASE_DSN           PostgreSQL DSN
//	FOLIO_SECRET_KEY             JWT HMAC secret key
//	FOLIO_ACCESS_TOKEN_VALIDITY  token lifetime, Go duration syntax (e.g. "30m")
//	FOLIO_BCRYPT_COST            bcrypt cost, integer
//
// Malformed duration or integer values panic, matching how the JSON overlay
// treats unreadable input.
func parseEnv(config *Config) {
	if v := os.Getenv("FOLIO_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("FOLIO_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("FOLIO_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("FOLIO_ACCESS_TOKEN_VALIDITY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("FOLIO_ACCESS_TOKEN_VALIDITY: %w", err))
		}
		config.AccessTokenValidityDuration = d
	}
	if v := os.Getenv("FOLIO_BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("FOLIO_BCRYPT_COST: %w", err))
		}
		config.BcryptCost = n
	}
}
