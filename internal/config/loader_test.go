package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9090
database:
  user: triage
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "triage", cfg.Database.User)
	// Defaults filled in for unset sections.
	assert.Equal(t, DefaultModelID, cfg.Model.ModelID)
	assert.Equal(t, DefaultProgressStrideAuto, cfg.Pipeline.ProgressStrideAuto)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 70000
database:
  user: triage
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9090
database:
  user: fileuser
`)
	t.Setenv("BIOTRIAGE_DATABASE_USER", "envuser")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "envuser", cfg.Database.User)
}

func TestMustLoad_PanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
