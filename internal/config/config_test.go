package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slack-todo/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todos")
	t.Setenv("SLACK_TOKEN", "xoxb-token")
	t.Setenv("SLACK_STARTUP_CHANNEL", "C123")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "./templates", cfg.TemplateDir)
		assert.Equal(t, 24*time.Hour, cfg.ActionTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("HTTP_PORT", "9000")
		t.Setenv("ACTION_TTL_SEC", "60")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.HTTPPort)
		assert.Equal(t, time.Minute, cfg.ActionTTL)
	})

	t.Run("missing DATABASE_URL", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_URL", "")
		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("missing SLACK_TOKEN", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SLACK_TOKEN", "")
		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("missing SLACK_STARTUP_CHANNEL", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SLACK_STARTUP_CHANNEL", "")
		_, err := config.Load()
		require.Error(t, err)
	})
}
