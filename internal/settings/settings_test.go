package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/gakun/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestParse_Override(t *testing.T) {
	s, err := settings.Parse([]byte("ssh_config_path: /custom/config\ncolor: never\n"))
	require.NoError(t, err)
	assert.Equal(t, "/custom/config", s.SSHConfigPath)
	assert.Equal(t, "never", s.Color)
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	s, err := settings.Parse([]byte("future_option: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "auto", s.Color)
	assert.Empty(t, s.SSHConfigPath)
}

func TestParse_Invalid(t *testing.T) {
	_, err := settings.Parse([]byte(":\n  - ["))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ssh_config_path: /tmp/ssh_config\n"), 0644))

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ssh_config", s.SSHConfigPath)
	assert.Equal(t, "auto", s.Color)
}
