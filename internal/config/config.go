package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL   string
	Port          string
	SessionSecret string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	StaticDir     string
}

// Load reads configuration from environment variables. SMTP credentials are
// optional: when absent, OTP delivery is disabled and send-otp reports
// email_not_configured instead of failing silently.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      "8080",
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  587,
		StaticDir: "static",
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	cfg.DatabaseURL = databaseURL

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	cfg.SessionSecret = sessionSecret

	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTPHost = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT must be a number: %w", err)
		}
		cfg.SMTPPort = p
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.StaticDir = dir
	}

	return cfg, nil
}
