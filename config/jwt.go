package config

import (
	"os"
	"strconv"
	"time"
)

// JWTSecret signs and verifies editor tokens. Set JWT_SECRET in any real
// deployment; the fallback only exists so a fresh checkout boots.
var JWTSecret []byte

// JWTExpiration is the token lifetime, overridable via JWT_TTL_HOURS.
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "tiny-cms-dev-only-secret"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			JWTExpiration = time.Duration(hours) * time.Hour
		}
	}
}
