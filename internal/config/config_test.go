package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LocaleEnglish, cfg.UI.Locale)
	assert.Equal(t, TickInterval, cfg.UI.TickInterval)
	assert.Empty(t, cfg.Database.DSN)
	assert.False(t, cfg.Seed.Disabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
database:
  dsn: "file:board.db"
seed:
  path: ./seed.yaml
ui:
  locale: es
  theme: dracula
  tick_interval: 500ms
logging:
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:board.db", cfg.Database.DSN)
	assert.Equal(t, "./seed.yaml", cfg.Seed.Path)
	assert.Equal(t, LocaleSpanish, cfg.UI.Locale)
	assert.Equal(t, "dracula", cfg.UI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.TickInterval)
	assert.True(t, cfg.Logging.Development)
	assert.NotEmpty(t, cfg.Logging.Path)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, LocaleEnglish, cfg.UI.Locale)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "ui:\n  colour: red\n"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_LOCALE", "es")
	t.Setenv("TASKBOARD_DSN", "file:env.db")
	t.Setenv("TASKBOARD_LOG_DEVELOPMENT", "true")
	t.Setenv("TASKBOARD_TICK_INTERVAL", "2s")

	cfg, err := Load(writeConfig(t, "ui:\n  locale: en\n"))
	require.NoError(t, err)
	assert.Equal(t, LocaleSpanish, cfg.UI.Locale)
	assert.Equal(t, "file:env.db", cfg.Database.DSN)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 2*time.Second, cfg.UI.TickInterval)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		body string
	}{
		{name: "bad locale", body: "ui:\n  locale: fr\n"},
		{name: "zero tick", body: "ui:\n  tick_interval: 0s\n"},
		{name: "bad bool env", env: map[string]string{"TASKBOARD_LOG_DEVELOPMENT": "maybe"}},
		{name: "bad duration env", env: map[string]string{"TASKBOARD_TICK_INTERVAL": "soon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}
