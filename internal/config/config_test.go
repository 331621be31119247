package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ARISE_DB", "")
	t.Setenv("ARISE_USER", "")
	t.Setenv("ARISE_MONGO_URI", "")
	t.Setenv("ARISE_MONGO_DB", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arise.db"), cfg.DBPath)
	assert.Equal(t, "main_user", cfg.UserID)
	assert.Equal(t, "arise", cfg.Remote.Database)
	assert.False(t, cfg.RemoteConfigured())
}

func TestLoadFromFile(t *testing.T) {
	home := isolateHome(t)

	data := []byte("db_path: /tmp/custom.db\nuser_id: kai\nremote:\n  uri: mongodb://localhost:27017\n  database: habits\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".arise.yaml"), data, 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "kai", cfg.UserID)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Remote.URI)
	assert.Equal(t, "habits", cfg.Remote.Database)
	assert.True(t, cfg.RemoteConfigured())
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolateHome(t)

	data := []byte("db_path: /tmp/from-file.db\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".arise.yaml"), data, 0o600))
	t.Setenv("ARISE_DB", "/tmp/from-env.db")
	t.Setenv("ARISE_MONGO_URI", "mongodb://remote:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.True(t, cfg.RemoteConfigured())
}

func TestMalformedFileErrors(t *testing.T) {
	home := isolateHome(t)

	require.NoError(t, os.WriteFile(filepath.Join(home, ".arise.yaml"), []byte("{not yaml"), 0o600))
	_, err := Load()
	assert.Error(t, err)
}
