package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:               "development",
		Port:              "8340",
		JWTSecret:         "secure-secret-at-least-32-chars-long",
		DBPassword:        "secure-password",
		DBSSLMode:         "disable",
		RedisURL:          "localhost:6379",
		LeaderboardWindow: 24,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero leaderboard window", func(c *Config) { c.LeaderboardWindow = 0 }, true},
		{"Negative leaderboard window", func(c *Config) { c.LeaderboardWindow = -1 }, true},
		{"Custom leaderboard window", func(c *Config) { c.LeaderboardWindow = 168 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProductionHardening(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		jwtSecret   string
		dbPassword  string
		expectError bool
	}{
		{"Production with default JWT secret", "production", "your-secret-key-change-in-production", "strong-password", true},
		{"Production with short JWT secret", "production", "short-secret", "strong-password", true},
		{"Production with default DB password", "production", "secure-secret-at-least-32-chars-long", "password", true},
		{"Production fully hardened", "production", "secure-secret-at-least-32-chars-long", "strong-password", false},
		{"Prod alias enforced too", "prod", "short-secret", "strong-password", true},
		{"Development tolerates weak values", "development", "dev-secret", "password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = tt.env
			c.JWTSecret = tt.jwtSecret
			c.DBPassword = tt.dbPassword

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
