package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	require.Equal(t, 465, cfg.SMTP.Port)
	require.False(t, cfg.SMTP.Configured())
	require.Equal(t, []string{"https://chatbot-lead-qualification-flow.vercel.app"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.RateLimiting.Enabled)
	require.Equal(t, time.Minute, cfg.RateLimiting.Window)
	require.Equal(t, "House of Companies", cfg.Brand.CompanyName)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("EMAIL_ADDRESS", "sales@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, "sales@example.com", cfg.SMTP.Address)
	require.True(t, cfg.SMTP.Configured())
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EMAIL_ADDRESS", "legacy@example.com")
	t.Setenv("LEADMAIL_SMTP_ADDRESS", "new@example.com")
	t.Setenv("LEADMAIL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "new@example.com", cfg.SMTP.Address)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestSMTPConfig_Configured(t *testing.T) {
	t.Parallel()

	require.False(t, SMTPConfig{Address: "a@b.co"}.Configured())
	require.False(t, SMTPConfig{Password: "x"}.Configured())
	require.False(t, SMTPConfig{Address: "  ", Password: "x"}.Configured())
	require.True(t, SMTPConfig{Address: "a@b.co", Password: "x"}.Configured())
}
