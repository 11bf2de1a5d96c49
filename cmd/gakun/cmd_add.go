package main

import (
	"fmt"

	"github.com/ruminaider/gakun/internal/commands"
	"github.com/ruminaider/gakun/internal/paths"
	"github.com/spf13/cobra"
)

var addHost string
var addKey string

var addCmd = &cobra.Command{
	Use:   "add <profile>",
	Short: "Add a host and key to a profile",
	Long:  "Add a host-to-key mapping to a profile, creating the profile if needed. Example: 'gakun add work -H gitlab.com -k ~/.ssh/id_rsa_work'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := args[0]

		if err := commands.Add(paths.RegistryFile(), profile, addHost, addKey); err != nil {
			return err
		}

		fmt.Printf("Added %s → %s to profile %s\n", addHost, addKey, profile)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addHost, "host", "H", "", "Host to configure")
	addCmd.Flags().StringVarP(&addKey, "key", "k", "", "Path to SSH key")
	_ = addCmd.MarkFlagRequired("host")
	_ = addCmd.MarkFlagRequired("key")
}
