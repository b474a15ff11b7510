package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthConfig holds session token and admin allow-list configuration.
type AuthConfig struct {
	// JWTSecret is the HMAC secret used to sign session tokens.
	JWTSecret string
	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration
	// AdminEmails is the allow-list of emails that receive the admin role
	// on first sign-in. The first one to sign in becomes superadmin.
	AdminEmails []string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:   GetEnv("JWT_SECRET", ""),
		TokenTTL:    GetEnvDuration("JWT_TTL", 24*time.Hour),
		AdminEmails: GetEnvList("ADMIN_EMAILS", nil),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be greater than 0")
	}
	return nil
}

// IsAdminEmail reports whether the email is on the admin allow-list.
// Comparison is case-insensitive.
func (c AuthConfig) IsAdminEmail(email string) bool {
	for _, allowed := range c.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}
