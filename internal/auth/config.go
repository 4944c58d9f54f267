package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer     string        `yaml:"issuer" json:"issuer"`
	TokenTTL   time.Duration `yaml:"token_ttl" json:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig builds an AuthConfig with defaults for the optional fields
func NewAuthConfig(secret string, ttlMinutes int) *AuthConfig {
	cfg := &AuthConfig{
		JWTSecret:  secret,
		Issuer:     "studybuddy-backend",
		TokenTTL:   time.Duration(ttlMinutes) * time.Minute,
		BcryptCost: bcrypt.DefaultCost,
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return cfg
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
