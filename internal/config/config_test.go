package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CHECKOUT_DATABASE__HOST", "localhost")
	t.Setenv("CHECKOUT_DATABASE__USER", "checkout")
	t.Setenv("CHECKOUT_DATABASE__PASSWORD", "secret")
	t.Setenv("CHECKOUT_DATABASE__NAME", "shop")
	t.Setenv("CHECKOUT_EMAIL__API_KEY", "xkeysib-test")
	t.Setenv("CHECKOUT_EMAIL__SENDER_EMAIL", "orders@example.com")
	t.Setenv("CHECKOUT_EMAIL__SENDER_NAME", "Example Store")
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "settings", cfg.Settings.Table)
	assert.Equal(t, "razorpay_key_id", cfg.Settings.KeyIDKey)
	assert.Equal(t, "razorpay_key_secret", cfg.Settings.KeySecretKey)
	assert.Equal(t, "INR", cfg.Gateway.DefaultCurrency)
	assert.Equal(t, "https://api.razorpay.com", cfg.Gateway.BaseURL)
	assert.Equal(t, "xkeysib-test", cfg.Email.APIKey)
	assert.Equal(t, "Example Store", cfg.Email.SenderName)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECKOUT_SERVER__PORT", "9090")
	t.Setenv("CHECKOUT_GATEWAY__TIMEOUT", "3s")
	t.Setenv("CHECKOUT_DATABASE__PORT", "6543")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoadConfig_MissingEmailCredentialsFails(t *testing.T) {
	t.Setenv("CHECKOUT_DATABASE__HOST", "localhost")
	t.Setenv("CHECKOUT_DATABASE__USER", "checkout")
	t.Setenv("CHECKOUT_DATABASE__PASSWORD", "secret")
	t.Setenv("CHECKOUT_DATABASE__NAME", "shop")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestLoadConfig_InvalidSenderEmailFails(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECKOUT_EMAIL__SENDER_EMAIL", "not-an-address")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SenderEmail")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	c := DatabaseConfig{
		Host:            "db.internal",
		Port:            6543,
		User:            "checkout",
		Password:        "p@ss/word",
		Name:            "shop",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	cfg, err := c.PgxConfig(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(6543), cfg.ConnConfig.Port)
	assert.Equal(t, "p@ss/word", cfg.ConnConfig.Password)
	assert.Equal(t, "shop", cfg.ConnConfig.Database)
	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "ficmart-checkout", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestDatabaseConfig_PgxConfig_PasswordCharacters(t *testing.T) {
	for _, password := range []string{"correct horse battery", "a+b=c", "50%off?#", "p:ss@host/db"} {
		t.Run(password, func(t *testing.T) {
			c := DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "check out",
				Password: password,
				Name:     "shop",
				SSLMode:  "disable",
			}

			cfg, err := c.PgxConfig(t.Context())
			require.NoError(t, err)

			assert.Equal(t, password, cfg.ConnConfig.Password)
			assert.Equal(t, "check out", cfg.ConnConfig.User)
			assert.Equal(t, "shop", cfg.ConnConfig.Database)
		})
	}
}
