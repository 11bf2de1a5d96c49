package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/ruminaider/gakun/internal/registry"
	"github.com/ruminaider/gakun/internal/sshconfig"
)

// UseResult reports what Use activated.
type UseResult struct {
	Host         string
	IdentityFile string
}

// Use materializes the profile's entry for host into the managed section of
// the SSH config file and records the profile as active. The registry lookup
// and section computation both happen before anything is written, so a
// failure leaves both files untouched.
func Use(registryPath, sshConfigPath, profile, host string) (UseResult, error) {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return UseResult{}, err
	}

	entry, err := reg.FindHost(profile, host)
	if err != nil {
		return UseResult{}, err
	}

	text, err := readTextFile(sshConfigPath)
	if err != nil {
		return UseResult{}, err
	}

	updated, err := sshconfig.Upsert(text, entry.Host, entry.IdentityFile)
	if err != nil {
		return UseResult{}, err
	}

	if err := writeTextFile(sshConfigPath, updated); err != nil {
		return UseResult{}, err
	}

	reg.ActiveProfile = profile
	if err := registry.Save(registryPath, reg); err != nil {
		return UseResult{}, err
	}

	log.Debug().
		Str("profile", profile).
		Str("host", entry.Host).
		Str("key", entry.IdentityFile).
		Msg("managed section updated")
	return UseResult{Host: entry.Host, IdentityFile: entry.IdentityFile}, nil
}
