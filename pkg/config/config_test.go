package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SERVER", "https://gateway.example.com")
	t.Setenv("API_KEY", "secret")
	t.Setenv("SECOND_MESSAGE_LINK", "example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example.com", cfg.Server)
	assert.Equal(t, "incoming_messages", cfg.QueueKey)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "*/5 * * * *", cfg.ReconcileCron)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.False(t, cfg.HasDB())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("SERVER", "https://gateway.example.com")
	t.Setenv("API_KEY", "")
	t.Setenv("SECOND_MESSAGE_LINK", "example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("WORKERS", "12")
	t.Setenv("QUEUE_KEY", "jobs")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "contacts")
	t.Setenv("DB_USER", "reader")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Workers)
	assert.Equal(t, "jobs", cfg.QueueKey)
	assert.True(t, cfg.HasDB())
	assert.Equal(t,
		"host=db.internal port=5432 user=reader password=pw dbname=contacts sslmode=disable",
		cfg.DSN())
}
