package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/ruminaider/gakun/internal/registry"
)

// Add records identityFile for host under the named profile, creating the
// profile on first use. An existing entry for the same host is replaced.
func Add(registryPath, profile, host, identityFile string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return err
	}

	reg.UpsertHost(profile, host, identityFile)

	if err := registry.Save(registryPath, reg); err != nil {
		return err
	}

	log.Debug().
		Str("profile", profile).
		Str("host", host).
		Str("key", identityFile).
		Msg("recorded host entry")
	return nil
}
