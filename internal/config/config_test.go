package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, overrides map[string]any) (*Config, error) {
	t.Helper()

	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(defaults(), "."), nil))
	require.NoError(t, k.Load(confmap.Provider(overrides, "."), nil))

	return fromKoanf(k)
}

func required() map[string]any {
	return map[string]any{
		"database.host":     "localhost",
		"database.port":     5432,
		"database.user":     "bluewave",
		"database.password": "secret",
		"database.name":     "bluewave",
		"auth.secret_key":   "0123456789abcdef0123",
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := load(t, required())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.ExposeStoreErrors)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, "queue", cfg.Audit.Mode)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.HealthChecks.Has("database"))
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestLoadFollowsPrimaryEnv(t *testing.T) {
	overrides := required()
	overrides["primary.env"] = "production"

	cfg, err := load(t, overrides)
	require.NoError(t, err)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	overrides := required()
	delete(overrides, "auth.secret_key")

	_, err := load(t, overrides)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAuditMode(t *testing.T) {
	overrides := required()
	overrides["audit.mode"] = "kafka"

	_, err := load(t, overrides)
	assert.Error(t, err)
}
