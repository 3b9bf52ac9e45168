package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contact-backend/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MAIL_USERNAME", "contact@villepropre.example")
	t.Setenv("MAIL_PASSWORD", "secret")
	t.Setenv("MAIL_FROM", "noreply@villepropre.example")
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("MAIL_RECIPIENTS_CONTACT", "equipe@villepropre.example")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 587, cfg.MailPort)
		assert.True(t, cfg.MailSTARTTLS)
		assert.False(t, cfg.MailSSLTLS)
		assert.True(t, cfg.UseCredentials)
		assert.True(t, cfg.ValidateCerts)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("Should fail fast on missing required variables", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MAIL_PASSWORD", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAIL_PASSWORD")
	})

	t.Run("Should reject STARTTLS combined with implicit TLS", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MAIL_STARTTLS", "true")
		t.Setenv("MAIL_SSL_TLS", "true")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("Should parse the recipient list, trimming and dropping empties", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MAIL_RECIPIENTS_CONTACT", " equipe@villepropre.example , , direction@villepropre.example ")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"equipe@villepropre.example", "direction@villepropre.example"}, cfg.ContactRecipients)
	})

	t.Run("Should fail when the recipient list is empty", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MAIL_RECIPIENTS_CONTACT", " , ")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAIL_RECIPIENTS_CONTACT")
	})
}
