package main

import (
	"github.com/ruminaider/gakun/internal/paths"
	"github.com/ruminaider/gakun/internal/settings"
)

// loadSettings reads the optional settings file.
func loadSettings() (settings.Settings, error) {
	return settings.Load(paths.SettingsFile())
}

// sshConfigPath returns the SSH config file to manage, honoring the
// settings override.
func sshConfigPath(s settings.Settings) string {
	if s.SSHConfigPath != "" {
		return s.SSHConfigPath
	}
	return paths.SSHConfigFile()
}
