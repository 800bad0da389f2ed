package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("BESTNOTES_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DriverMemory, cfg.Store.Driver)
	require.Equal(t, ":memory:", cfg.Store.Path)
	require.Equal(t, "Jan 2, 2006", cfg.UI.DateFormat)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.True(t, cfg.Feedback.Bell)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, "state", "bestnotes", "bestnotes.log"), cfg.Log.Path)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "custom.toml")
	data := []byte(`
[store]
driver = "sqlite"
path = "/tmp/notes.db"

[ui]
date_format = "2006-01-02"
timezone = "UTC"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("BESTNOTES_FEEDBACK_BELL", "false")
	t.Setenv("BESTNOTES_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, cfg.Store.Driver)
	require.Equal(t, "/tmp/notes.db", cfg.Store.Path)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, "UTC", cfg.UI.Timezone)
	require.False(t, cfg.Feedback.Bell)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)

	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Store: StoreConfig{Driver: DriverMemory},
		Log:   LogConfig{Level: "info"},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "postgres" }},
		{"sqlite without path", func(c *Config) { c.Store.Driver = DriverSQLite; c.Store.Path = " " }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "saved", "config.toml")
	t.Setenv("BESTNOTES_CONFIG", path)

	want := Config{
		Store:    StoreConfig{Driver: DriverSQLite, Path: filepath.Join(home, "notes.db")},
		UI:       UIConfig{DateFormat: "02/01", Timezone: "UTC"},
		Feedback: FeedbackConfig{Bell: false},
		Log:      LogConfig{Level: "warn", Path: ""},
	}
	require.NoError(t, Save(want))

	got, err := Load("")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
