package registry_test

import (
	"testing"

	"github.com/ruminaider/gakun/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertHost_CreatesProfile(t *testing.T) {
	var reg registry.Registry

	reg.UpsertHost("work", "gitlab.com", "/k")

	p, ok := reg.Lookup("work")
	require.True(t, ok)
	require.Len(t, p.Hosts, 1)
	assert.Equal(t, registry.HostEntry{Host: "gitlab.com", IdentityFile: "/k"}, p.Hosts[0])
}

func TestUpsertHost_AppendsInInsertionOrder(t *testing.T) {
	var reg registry.Registry

	reg.UpsertHost("work", "gitlab.com", "/k1")
	reg.UpsertHost("work", "github.com", "/k2")

	p, ok := reg.Lookup("work")
	require.True(t, ok)
	require.Len(t, p.Hosts, 2)
	assert.Equal(t, "gitlab.com", p.Hosts[0].Host)
	assert.Equal(t, "github.com", p.Hosts[1].Host)
}

func TestUpsertHost_ReplacesExistingHostInPlace(t *testing.T) {
	var reg registry.Registry

	reg.UpsertHost("work", "gitlab.com", "/k1")
	reg.UpsertHost("work", "github.com", "/k2")
	reg.UpsertHost("work", "gitlab.com", "/k3")

	p, ok := reg.Lookup("work")
	require.True(t, ok)
	require.Len(t, p.Hosts, 2)
	assert.Equal(t, "gitlab.com", p.Hosts[0].Host)
	assert.Equal(t, "/k3", p.Hosts[0].IdentityFile)
	assert.Equal(t, "github.com", p.Hosts[1].Host)
}

func TestUpsertHost_ProfilesKeepCreationOrder(t *testing.T) {
	var reg registry.Registry

	reg.UpsertHost("work", "gitlab.com", "/k1")
	reg.UpsertHost("personal", "github.com", "/k2")
	reg.UpsertHost("work", "bitbucket.org", "/k3")

	require.Len(t, reg.Profiles, 2)
	assert.Equal(t, "work", reg.Profiles[0].Name)
	assert.Equal(t, "personal", reg.Profiles[1].Name)
}

func TestFindHost(t *testing.T) {
	var reg registry.Registry
	reg.UpsertHost("work", "gitlab.com", "/k")

	entry, err := reg.FindHost("work", "gitlab.com")
	require.NoError(t, err)
	assert.Equal(t, "/k", entry.IdentityFile)
}

func TestFindHost_ProfileNotFound(t *testing.T) {
	var reg registry.Registry

	_, err := reg.FindHost("ghost", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestFindHost_HostNotFound(t *testing.T) {
	var reg registry.Registry
	reg.UpsertHost("work", "gitlab.com", "/k")

	_, err := reg.FindHost("work", "github.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrHostNotFound)
	assert.Contains(t, err.Error(), "github.com")
}

func TestParse_Corrupt(t *testing.T) {
	_, err := registry.Parse([]byte("{not json"))
	assert.ErrorIs(t, err, registry.ErrCorruptStore)
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	var reg registry.Registry
	reg.UpsertHost("work", "gitlab.com", "/k1")
	reg.UpsertHost("work", "github.com", "/k2")
	reg.UpsertHost("personal", "github.com", "/k3")
	reg.ActiveProfile = "work"
	reg.UpdatedAt = 1756000000

	data, err := registry.Marshal(reg)
	require.NoError(t, err)

	parsed, err := registry.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, reg, parsed)
}
