package config

import (
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/portage"
)

// Config is the effective diffmask configuration.
type Config struct {
	Portage      Portage              `koanf:"portage" toml:"portage"`
	Merge        Merge                `koanf:"merge" toml:"merge"`
	Viewer       Viewer               `koanf:"viewer" toml:"viewer"`
	Repositories []portage.Repository `koanf:"repositories" toml:"repositories,omitempty"`
	Profiles     []string             `koanf:"profiles" toml:"profiles"`
}

// Portage holds the locations of the portage files diffmask reads and
// writes. Relative paths are resolved below ConfigRoot.
type Portage struct {
	ConfigRoot      string `koanf:"config_root" toml:"config_root"`
	UnmaskFile      string `koanf:"unmask_file" toml:"unmask_file"`
	ReposConf       string `koanf:"repos_conf" toml:"repos_conf"`
	MakeProfile     string `koanf:"make_profile" toml:"make_profile"`
	LaymanInstalled string `koanf:"layman_installed" toml:"layman_installed"`
	LaymanStorage   string `koanf:"layman_storage" toml:"layman_storage"`
}

type Merge struct {
	MainLast bool `koanf:"main_last" toml:"main_last"`
}

type Viewer struct {
	Command string `koanf:"command" toml:"command"`
}

// Locations are the portage paths of a Config resolved against its
// configuration root.
type Locations struct {
	ConfigRoot      string
	UnmaskFile      string
	ReposConf       string
	MakeProfile     string
	LaymanInstalled string
	LaymanStorage   string
}

// Paths returns the path resolver for the configured root.
func (c *Config) Paths() (paths.Paths, error) {
	return paths.New(c.Portage.ConfigRoot)
}

// Locations resolves the portage paths through p.
func (c *Config) Locations(p paths.Paths) Locations {
	return Locations{
		ConfigRoot:      p.ConfigRoot(),
		UnmaskFile:      p.Resolve(c.Portage.UnmaskFile),
		ReposConf:       p.Resolve(c.Portage.ReposConf),
		MakeProfile:     p.Resolve(c.Portage.MakeProfile),
		LaymanInstalled: p.Resolve(c.Portage.LaymanInstalled),
		LaymanStorage:   p.Resolve(c.Portage.LaymanStorage),
	}
}

// ResolvedProfiles returns the static profile list with each entry
// resolved through p.
func (c *Config) ResolvedProfiles(p paths.Paths) []string {
	if len(c.Profiles) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Profiles))
	for _, prof := range c.Profiles {
		out = append(out, p.Resolve(prof))
	}
	return out
}
