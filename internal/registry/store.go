package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Load reads the registry at path. A missing file is an empty registry,
// not an error.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Registry{}, nil
	}
	if err != nil {
		return Registry{}, fmt.Errorf("reading registry: %w", err)
	}
	return Parse(data)
}

// Save overwrites the registry at path, creating parent directories as
// needed. The new content is written to a temp file and renamed over the
// target so an interrupted write never leaves a truncated registry.
func Save(path string, reg Registry) error {
	reg.UpdatedAt = time.Now().Unix()

	data, err := Marshal(reg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing registry: %w", err)
	}
	return nil
}
