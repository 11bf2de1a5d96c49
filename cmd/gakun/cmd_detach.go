package main

import (
	"fmt"

	"github.com/ruminaider/gakun/internal/commands"
	"github.com/spf13/cobra"
)

var detachCmd = &cobra.Command{
	Use:     "detach",
	Aliases: []string{"d"},
	Short:   "Remove the gakun-managed section from the SSH config",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		path := sshConfigPath(s)

		changed, err := commands.Detach(path)
		if err != nil {
			return err
		}

		if changed {
			fmt.Printf("Gakun section removed from %s ✓\n", path)
		} else {
			fmt.Printf("No gakun section in %s\n", path)
		}
		return nil
	},
}
