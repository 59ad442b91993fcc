package portage

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/arthur-debert/diffmask/pkg/types"
)

// Repository is an ebuild repository on disk.
type Repository struct {
	Name     string `koanf:"name" toml:"name"`
	Location string `koanf:"location" toml:"location"`
	Priority int    `koanf:"priority" toml:"priority"`
}

// MaskFile is the path of the repository's own package.mask.
func (r Repository) MaskFile() string {
	return filepath.Join(r.Location, "profiles", "package.mask")
}

// ProfilesDir is the root of the repository's profile tree.
func (r Repository) ProfilesDir() string {
	return filepath.Join(r.Location, "profiles")
}

// Enumerator lists repositories in merge order.
type Enumerator interface {
	Repositories() ([]Repository, error)
}

// Static serves a fixed list. Entries without a name get the one
// recorded inside the repository.
type Static struct {
	FS    types.FS
	Repos []Repository
}

func (s Static) Repositories() ([]Repository, error) {
	out := make([]Repository, 0, len(s.Repos))
	for _, r := range s.Repos {
		if r.Name == "" {
			r.Name = RepoName(s.FS, r.Location)
		}
		out = append(out, r)
	}
	return out, nil
}

// Chain concatenates enumerators. The first repository seen with a given
// name wins.
type Chain []Enumerator

func (c Chain) Repositories() ([]Repository, error) {
	var out []Repository
	seen := make(map[string]bool)
	for _, e := range c {
		repos, err := e.Repositories()
		if err != nil {
			return nil, err
		}
		for _, r := range repos {
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			out = append(out, r)
		}
	}
	return out, nil
}

// RepoName reads the name a repository gives itself: profiles/repo_name,
// then repo-name in metadata/layout.conf, then the directory name.
func RepoName(fsys types.FS, location string) string {
	if data, err := fsys.ReadFile(filepath.Join(location, "profiles", "repo_name")); err == nil {
		if name := firstLine(string(data)); name != "" {
			return name
		}
	}
	if data, err := fsys.ReadFile(filepath.Join(location, "metadata", "layout.conf")); err == nil {
		if cfg, err := ini.Load(data); err == nil {
			if name := cfg.Section(ini.DefaultSection).Key("repo-name").String(); name != "" {
				return name
			}
		}
	}
	return filepath.Base(filepath.Clean(location))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
