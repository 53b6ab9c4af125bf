package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "teamboard")
	t.Setenv("DB_NAME", "teamboard")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Asia/Seoul", cfg.App.ReferenceZone)
	assert.False(t, cfg.App.IsDevEnvironment())
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Contains(t, cfg.DB.DSN(), "dbname=teamboard")
	assert.Contains(t, cfg.DB.DSN(), "sslmode=disable")
}

func TestLoadFromEnvFile(t *testing.T) {
	setRequired(t)
	// t.Setenv restores the previous state, so the values godotenv writes do
	// not leak into other tests.
	for _, key := range []string{"PORT", "ENVIRONMENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nENVIRONMENT=dev\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.App.IsDevEnvironment())
}

func TestLoadSMS(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.SMS.Enabled())
	assert.Equal(t, "82", cfg.SMS.CountryCode)

	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err, "token and sender number are required")

	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_FROM_NUMBER", "+15005550006")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.SMS.Enabled())
}

func TestLoadRequiresSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownZone(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_REFERENCE_ZONE", "Mars/Olympus_Mons")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "POLL_REFERENCE_ZONE")
}
