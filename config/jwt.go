package config

import (
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

const defaultJWTExpiration = 24 * time.Hour

func init() {
	JWTSecret = []byte(getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"))
	JWTExpiration = parseJWTExpiration(getEnv("JWT_EXPIRATION", ""))
}

// parseJWTExpiration reads a Go duration string ("24h", "30m"). Empty or
// invalid values fall back to the default rather than failing startup.
func parseJWTExpiration(raw string) time.Duration {
	if raw == "" {
		return defaultJWTExpiration
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultJWTExpiration
	}
	return d
}
