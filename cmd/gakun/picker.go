package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/gakun/internal/registry"
)

// pickProfile prompts for one of the registry's profiles.
func pickProfile(registryPath string) (string, error) {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return "", err
	}
	if len(reg.Profiles) == 0 {
		return "", fmt.Errorf("no profiles yet; add one with 'gakun add <profile> -H <host> -k <key>'")
	}

	options := make([]huh.Option[string], 0, len(reg.Profiles))
	for _, p := range reg.Profiles {
		options = append(options, huh.NewOption(p.Name, p.Name))
	}

	var choice string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which profile?").
				Options(options...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}

// pickHost prompts for one of the profile's hosts.
func pickHost(registryPath, profile string) (string, error) {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return "", err
	}
	p, ok := reg.Lookup(profile)
	if !ok {
		return "", fmt.Errorf("%w: %q", registry.ErrProfileNotFound, profile)
	}
	if len(p.Hosts) == 0 {
		return "", fmt.Errorf("profile %q has no hosts yet", profile)
	}

	options := make([]huh.Option[string], 0, len(p.Hosts))
	for _, h := range p.Hosts {
		options = append(options, huh.NewOption(fmt.Sprintf("%s → %s", h.Host, h.IdentityFile), h.Host))
	}

	var choice string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Which host from %s?", profile)).
				Options(options...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}
