package commands

import (
	"github.com/ruminaider/gakun/internal/registry"
)

// ListResult holds the profiles in stored order plus the active profile name.
type ListResult struct {
	Profiles      []registry.Profile
	ActiveProfile string
}

// List returns all profiles for display. Read-only.
func List(registryPath string) (ListResult, error) {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Profiles: reg.Profiles, ActiveProfile: reg.ActiveProfile}, nil
}
