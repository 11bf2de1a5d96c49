package main

import (
	"fmt"

	"github.com/ruminaider/gakun/internal/commands"
	"github.com/ruminaider/gakun/internal/paths"
	"github.com/spf13/cobra"
)

var useHost string

var useCmd = &cobra.Command{
	Use:   "use [profile]",
	Short: "Use an SSH key for a certain host",
	Long:  "Activate a profile's key for a host by rewriting the gakun-managed section of the SSH config. Example: 'gakun use work -H gitlab.com'. With no arguments, prompts for the profile and host.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registryPath := paths.RegistryFile()

		var profile string
		var err error
		if len(args) > 0 {
			profile = args[0]
		} else {
			profile, err = pickProfile(registryPath)
			if err != nil {
				return err
			}
		}

		host := useHost
		if host == "" {
			host, err = pickHost(registryPath, profile)
			if err != nil {
				return err
			}
		}

		s, err := loadSettings()
		if err != nil {
			return err
		}

		result, err := commands.Use(registryPath, sshConfigPath(s), profile, host)
		if err != nil {
			return err
		}

		fmt.Printf("Key %s is now active for %s ✓\n", result.IdentityFile, result.Host)
		return nil
	},
}

func init() {
	useCmd.Flags().StringVarP(&useHost, "host", "H", "", "Host to configure")
}
