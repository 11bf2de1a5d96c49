package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/ruminaider/gakun/internal/sshconfig"
)

// Detach removes the managed section from the SSH config file. The file is
// only rewritten when the section was actually present, so a no-op detach
// leaves the modification time alone. It reports whether the file changed.
func Detach(sshConfigPath string) (bool, error) {
	text, err := readTextFile(sshConfigPath)
	if err != nil {
		return false, err
	}

	cleaned, err := sshconfig.Remove(text)
	if err != nil {
		return false, err
	}
	if cleaned == text {
		return false, nil
	}

	if err := writeTextFile(sshConfigPath, cleaned); err != nil {
		return false, err
	}

	log.Debug().Str("path", sshConfigPath).Msg("managed section removed")
	return true, nil
}
