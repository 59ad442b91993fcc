// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/filesystem"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Root is the configuration root of every test environment.
const Root = "/cfgroot"

// TestEnvironment is a portage configuration root on an in-memory
// filesystem.
type TestEnvironment struct {
	Root   string
	FS     types.FS
	Paths  paths.Paths
	Config *config.Config

	t *testing.T
}

// NewTestEnvironment creates an empty configuration root and loads the
// default configuration against it. overrides are passed to config.Load.
func NewTestEnvironment(t *testing.T, overrides map[string]interface{}) *TestEnvironment {
	t.Helper()

	t.Setenv(paths.EnvDiffmaskConfigDir, filepath.Join(Root, "home", ".config", "diffmask"))

	env := &TestEnvironment{
		Root: Root,
		FS:   filesystem.NewAferoFS(afero.NewMemMapFs()),
		t:    t,
	}

	merged := map[string]interface{}{"portage.config_root": Root}
	for k, v := range overrides {
		merged[k] = v
	}
	cfg, err := config.Load(config.Options{
		Getenv:    func(string) string { return "" },
		Overrides: merged,
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	env.Config = cfg

	p, err := cfg.Paths()
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	if err := env.FS.MkdirAll(Root, 0755); err != nil {
		t.Fatalf("Failed to create root: %v", err)
	}
	return env
}

// Path returns rel below the configuration root. Absolute paths are
// returned unchanged.
func (e *TestEnvironment) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(e.Root, rel)
}

// WriteFile creates path with content, making parent directories.
func (e *TestEnvironment) WriteFile(path, content string) {
	e.t.Helper()
	full := e.Path(path)
	if err := e.FS.MkdirAll(filepath.Dir(full), 0755); err != nil {
		e.t.Fatalf("Failed to create %s: %v", filepath.Dir(full), err)
	}
	if err := e.FS.WriteFile(full, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", full, err)
	}
}

// ReadFile returns the content of path, failing the test when absent.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(e.Path(path))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (e *TestEnvironment) Exists(path string) bool {
	_, err := e.FS.Stat(e.Path(path))
	return err == nil
}

// UnmaskPath is the configured package.unmask location.
func (e *TestEnvironment) UnmaskPath() string {
	return e.Paths.Resolve(e.Config.Portage.UnmaskFile)
}

// WriteUnmask writes the package.unmask file.
func (e *TestEnvironment) WriteUnmask(content string) {
	e.t.Helper()
	e.WriteFile(e.UnmaskPath(), content)
}

// ProtectedPath is the n-th ._cfg file next to the unmask file.
func (e *TestEnvironment) ProtectedPath(n int) string {
	dir, base := filepath.Split(e.UnmaskPath())
	return filepath.Join(dir, fmt.Sprintf("._cfg%04d_%s", n, base))
}

// Repo describes an ebuild repository to lay out.
type Repo struct {
	Name     string
	Priority int
	// Main marks the repository as main-repo in repos.conf.
	Main bool
	// Mask is the content of profiles/package.mask; empty means none.
	Mask string
}

// Location is where AddRepo puts the repository.
func (r Repo) Location() string {
	return filepath.Join("/var/db/repos", r.Name)
}

// AddRepo creates the repository and registers it in repos.conf.
func (e *TestEnvironment) AddRepo(r Repo) string {
	e.t.Helper()
	loc := r.Location()
	e.WriteFile(filepath.Join(loc, "profiles", "repo_name"), r.Name+"\n")
	if r.Mask != "" {
		e.WriteFile(filepath.Join(loc, "profiles", "package.mask"), r.Mask)
	}

	var conf strings.Builder
	if r.Main {
		conf.WriteString("[DEFAULT]\nmain-repo = " + r.Name + "\n\n")
	}
	fmt.Fprintf(&conf, "[%s]\nlocation = %s\npriority = %d\n", r.Name, loc, r.Priority)
	e.WriteFile(filepath.Join(paths.DefaultReposConf, r.Name+".conf"), conf.String())
	return loc
}

// AddProfile creates a profile directory with an optional package.mask
// and parent entries.
func (e *TestEnvironment) AddProfile(dir, mask string, parents ...string) string {
	e.t.Helper()
	full := e.Path(dir)
	if err := e.FS.MkdirAll(full, 0755); err != nil {
		e.t.Fatalf("Failed to create profile %s: %v", full, err)
	}
	if mask != "" {
		e.WriteFile(filepath.Join(full, "package.mask"), mask)
	}
	if len(parents) > 0 {
		e.WriteFile(filepath.Join(full, "parent"), strings.Join(parents, "\n")+"\n")
	}
	return full
}

// SetMakeProfile makes make.profile a directory inheriting from parents.
// The in-memory filesystem has no symlinks.
func (e *TestEnvironment) SetMakeProfile(parents ...string) {
	e.t.Helper()
	e.AddProfile(paths.DefaultMakeProfile, "", parents...)
}
