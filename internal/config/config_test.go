package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AUTH_SERVICE_URL", "HISTORY_SERVICE_URL", "MOVEMENTS_SERVICE_URL", "PROMOTIONS_SERVICE_URL",
		"USE_MOCKS", "REQUEST_TIMEOUT", "TRANSFER_MAX", "SESSION_FILE", "SESSION_SECRET",
		"SESSION_TTL_MINUTES", "LOG_LEVEL", "PORT", "CORS_ALLOWED_ORIGINS", "INIT_BALANCE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_FILE", "/tmp/yapekuna-session")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.AuthServiceURL)
	assert.Equal(t, "http://localhost:8000", cfg.HistoryServiceURL)
	assert.Equal(t, "http://localhost:8001", cfg.MovementsServiceURL)
	assert.Equal(t, "http://localhost:8002", cfg.PromotionsServiceURL)
	assert.False(t, cfg.UseMocks)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, "500", cfg.TransferMax.String())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "500", cfg.InitBalance.String())
}

func TestRequireSessionSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_FILE", "/tmp/yapekuna-session")

	cfg, err := Load()
	require.NoError(t, err)
	require.EqualError(t, cfg.RequireSessionSecret(), "SESSION_SECRET is required")

	t.Setenv("USE_MOCKS", "true")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseMocks)
	require.NoError(t, cfg.RequireSessionSecret())
	assert.NotEmpty(t, cfg.SessionSecret)

	t.Setenv("SESSION_SECRET", "mine")
	cfg, err = Load()
	require.NoError(t, err)
	require.NoError(t, cfg.RequireSessionSecret())
	assert.Equal(t, "mine", cfg.SessionSecret)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct{ key, value string }{
		{"AUTH_SERVICE_URL", "localhost:8080"},
		{"TRANSFER_MAX", "-1"},
		{"INIT_BALANCE", "-5"},
		{"REQUEST_TIMEOUT", "soon"},
		{"USE_MOCKS", "maybe"},
		{"SESSION_TTL_MINUTES", "a day"},
		{"SESSION_TTL_MINUTES", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SESSION_SECRET", "s3cret")
			t.Setenv("SESSION_FILE", "/tmp/yapekuna-session")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadTrimsURLsAndParsesOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_FILE", "/tmp/yapekuna-session")
	t.Setenv("PROMOTIONS_SERVICE_URL", " https://promos.example.com/ ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://promos.example.com", cfg.PromotionsServiceURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
