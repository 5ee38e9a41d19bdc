package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("SPLUNK_URL", "")
	t.Setenv("SPLUNK_TOKEN", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "contactbook", cfg.MongoDB)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Empty(t, cfg.SplunkURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_DB", "prod")
	t.Setenv("SPLUNK_URL", "https://splunk.example.com/services/collector")
	t.Setenv("SPLUNK_TOKEN", "tok")
	t.Setenv("STATIC_DIR", "assets")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "prod", cfg.MongoDB)
	assert.Equal(t, "https://splunk.example.com/services/collector", cfg.SplunkURL)
	assert.Equal(t, "tok", cfg.SplunkToken)
	assert.Equal(t, "assets", cfg.StaticDir)
}

func TestLoadRequiredKeys(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.EqualError(t, err, "MONGO_URI is required")

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err = Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", GetEnvAsString("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnvAsString("SOME_OTHER_KEY", "fallback"))
}
