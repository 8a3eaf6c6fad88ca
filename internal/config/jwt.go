package config

import "fmt"

// JWTConfig holds configuration for API token signing and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds a token configuration. hours below 1 is rejected.
func NewJWTConfig(secret string, hours int) (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          secret,
		ExpirationHours: hours,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// JWT returns the API token settings, or nil when bearer auth is disabled.
func (c *Config) JWT() (*JWTConfig, error) {
	if c.Server.JWTSecret == "" {
		return nil, nil
	}
	return NewJWTConfig(c.Server.JWTSecret, c.Server.JWTExpirationHours)
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return &Error{Field: "server.jwt_secret", Message: "cannot be empty"}
	}
	if c.ExpirationHours < 1 {
		return &Error{
			Field:   "server.jwt_expiration_hours",
			Message: fmt.Sprintf("must be at least 1 hour, got: %d", c.ExpirationHours),
		}
	}
	return nil
}
