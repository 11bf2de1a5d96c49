package registry

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrCorruptStore means the registry file exists but is not parseable.
	// It is never auto-recovered; the user has to fix or remove the file.
	ErrCorruptStore = errors.New("registry file is corrupt")

	// ErrProfileNotFound means the named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrHostNotFound means the profile exists but has no entry for the host.
	ErrHostNotFound = errors.New("host not found in profile")
)

// HostEntry maps one host pattern to an identity file. The path is stored
// verbatim, never canonicalized.
type HostEntry struct {
	Host         string `json:"host"`
	IdentityFile string `json:"identity_file"`
}

// Profile is a named, ordered collection of host entries. Hosts are unique
// within a profile.
type Profile struct {
	Name  string      `json:"name"`
	Hosts []HostEntry `json:"hosts"`
}

// Registry is the persisted root object: all profiles in creation order plus
// the profile last activated with `use`. Profiles and hosts are slices so
// insertion order survives JSON round-trips.
type Registry struct {
	Profiles      []Profile `json:"profiles"`
	ActiveProfile string    `json:"active_profile,omitempty"`
	UpdatedAt     int64     `json:"updated_at"`
}

// Parse parses registry JSON bytes.
func Parse(data []byte) (Registry, error) {
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return Registry{}, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return reg, nil
}

// Marshal serializes a Registry to indented JSON.
func Marshal(reg Registry) ([]byte, error) {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling registry: %w", err)
	}
	return append(data, '\n'), nil
}

// Lookup returns the profile with the given name.
func (r *Registry) Lookup(name string) (*Profile, bool) {
	for i := range r.Profiles {
		if r.Profiles[i].Name == name {
			return &r.Profiles[i], true
		}
	}
	return nil, false
}

// UpsertHost records identityFile for host under the named profile. The
// profile is created (appended last) if it does not exist. An existing entry
// for the exact host string is replaced in place; otherwise the entry is
// appended, preserving the order of the others.
func (r *Registry) UpsertHost(profile, host, identityFile string) {
	p, ok := r.Lookup(profile)
	if !ok {
		r.Profiles = append(r.Profiles, Profile{Name: profile})
		p = &r.Profiles[len(r.Profiles)-1]
	}
	for i := range p.Hosts {
		if p.Hosts[i].Host == host {
			p.Hosts[i] = HostEntry{Host: host, IdentityFile: identityFile}
			return
		}
	}
	p.Hosts = append(p.Hosts, HostEntry{Host: host, IdentityFile: identityFile})
}

// FindHost returns the entry for host in the named profile.
func (r *Registry) FindHost(profile, host string) (HostEntry, error) {
	p, ok := r.Lookup(profile)
	if !ok {
		return HostEntry{}, fmt.Errorf("%w: %q", ErrProfileNotFound, profile)
	}
	for _, h := range p.Hosts {
		if h.Host == host {
			return h, nil
		}
	}
	return HostEntry{}, fmt.Errorf("%w: %q has no entry for %q", ErrHostNotFound, profile, host)
}
