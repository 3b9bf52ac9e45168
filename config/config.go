package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	Port      string
	BrandName string

	// SMTP Configuration
	MailUsername string
	MailPassword string
	MailFrom     string
	MailServer   string
	MailPort     int

	// Connection options. STARTTLS and implicit TLS are mutually exclusive.
	MailSTARTTLS   bool
	MailSSLTLS     bool
	UseCredentials bool
	ValidateCerts  bool

	// Internal recipients for contact form notifications
	ContactRecipients []string

	// Directory containing the HTML email templates
	TemplatesDir string
}

// LoadConfig reads configuration from the environment (and .env in local
// development). Missing required variables are a startup error: the process
// must not come up half-configured and silently drop mail.
func LoadConfig() (*Config, error) {
	// Only effective locally, ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		BrandName: getEnv("BRAND_NAME", "Ville Propre"),

		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
		MailServer:   getEnv("MAIL_SERVER", ""),
		MailPort:     getEnvInt("MAIL_PORT", 587),

		MailSTARTTLS:   getEnvBool("MAIL_STARTTLS", true),
		MailSSLTLS:     getEnvBool("MAIL_SSL_TLS", false),
		UseCredentials: getEnvBool("USE_CREDENTIALS", true),
		ValidateCerts:  getEnvBool("VALIDATE_CERTS", true),

		ContactRecipients: parseRecipients(getEnv("MAIL_RECIPIENTS_CONTACT", "")),

		TemplatesDir: getEnv("MAIL_TEMPLATES_DIR", "pkg/email/templates"),
	}

	var missing []string
	if cfg.MailUsername == "" {
		missing = append(missing, "MAIL_USERNAME")
	}
	if cfg.MailPassword == "" {
		missing = append(missing, "MAIL_PASSWORD")
	}
	if cfg.MailFrom == "" {
		missing = append(missing, "MAIL_FROM")
	}
	if cfg.MailServer == "" {
		missing = append(missing, "MAIL_SERVER")
	}
	if len(cfg.ContactRecipients) == 0 {
		missing = append(missing, "MAIL_RECIPIENTS_CONTACT")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.MailSTARTTLS && cfg.MailSSLTLS {
		return nil, fmt.Errorf("MAIL_STARTTLS and MAIL_SSL_TLS are mutually exclusive")
	}

	return cfg, nil
}

// parseRecipients converts a comma-separated address list into a slice,
// trimming whitespace and dropping empty entries.
func parseRecipients(raw string) []string {
	if raw == "" {
		return nil
	}
	var recipients []string
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
