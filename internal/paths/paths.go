package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.config/gakun.
func ConfigDir() string {
	return filepath.Join(home(), ".config", "gakun")
}

// RegistryFile returns ~/.config/gakun/config.json.
func RegistryFile() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// SettingsFile returns ~/.config/gakun/settings.yaml.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), "settings.yaml")
}

// SSHConfigFile returns ~/.ssh/config.
func SSHConfigFile() string {
	return filepath.Join(home(), ".ssh", "config")
}
