// Package settings reads the optional ~/.config/gakun/settings.yaml.
package settings

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Settings holds user overrides. Everything is optional; a missing file
// means defaults.
type Settings struct {
	// SSHConfigPath overrides the managed file, default ~/.ssh/config.
	SSHConfigPath string `yaml:"ssh_config_path,omitempty"`
	// Color controls ls output coloring: auto, always, or never.
	Color string `yaml:"color,omitempty"`
}

// Default returns settings with default values.
func Default() Settings {
	return Settings{Color: "auto"}
}

// Parse parses settings.yaml bytes. Unknown keys are ignored.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if s.Color == "" {
		s.Color = "auto"
	}
	return s, nil
}

// Load reads settings from path. A missing file returns defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}
