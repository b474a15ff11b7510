package config

import "fmt"

// SMTPConfig holds outbound email configuration.
type SMTPConfig struct {
	// Enabled toggles real SMTP delivery. When false the server logs
	// notifications instead of sending them.
	Enabled bool
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username authenticates against the SMTP server. Optional.
	Username string
	// Password authenticates against the SMTP server. Optional.
	Password string
	// From is the sender address for all outbound mail.
	From string
	// FromName is the display name used with the From address.
	FromName string
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables.
func LoadSMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Enabled:  GetEnvBool("SMTP_ENABLED", false),
		Host:     GetEnv("SMTP_HOST", "localhost"),
		Port:     GetEnvInt("SMTP_PORT", 587),
		Username: GetEnv("SMTP_USER", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
		From:     GetEnv("SMTP_FROM", "noreply@hashitup.dev"),
		FromName: GetEnv("SMTP_FROM_NAME", "HashItUp"),
	}
}

// Addr returns the host:port address of the SMTP server.
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates SMTP configuration.
func (c SMTPConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Host == "" {
		return fmt.Errorf("SMTP_HOST must be set when SMTP is enabled")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP_PORT: %d", c.Port)
	}
	if c.From == "" {
		return fmt.Errorf("SMTP_FROM must be set when SMTP is enabled")
	}
	return nil
}
