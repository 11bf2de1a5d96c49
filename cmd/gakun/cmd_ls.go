package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ruminaider/gakun/internal/commands"
	"github.com/ruminaider/gakun/internal/paths"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		switch s.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}

		result, err := commands.List(paths.RegistryFile())
		if err != nil {
			return err
		}

		if len(result.Profiles) == 0 {
			fmt.Println("No profiles yet. Add one with 'gakun add <profile> -H <host> -k <key>'.")
			return nil
		}

		profileName := color.New(color.FgCyan, color.Bold)
		active := color.New(color.FgGreen)

		for _, p := range result.Profiles {
			fmt.Println()
			profileName.Printf("%s", p.Name)
			fmt.Print(":")
			if p.Name == result.ActiveProfile {
				active.Print(" (active)")
			}
			fmt.Println()
			for _, h := range p.Hosts {
				fmt.Printf("   %s → %s\n", h.Host, h.IdentityFile)
			}
		}
		return nil
	},
}
