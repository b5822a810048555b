package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseJWTExpiration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"empty falls back", "", 24 * time.Hour},
		{"valid duration", "30m", 30 * time.Minute},
		{"hours", "72h", 72 * time.Hour},
		{"garbage falls back", "tomorrow", 24 * time.Hour},
		{"negative falls back", "-1h", 24 * time.Hour},
		{"zero falls back", "0s", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseJWTExpiration(tt.raw))
		})
	}
}
