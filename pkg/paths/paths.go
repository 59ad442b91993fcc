package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/diffmask/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigRoot is portage's variable for the configuration root
	EnvConfigRoot = "PORTAGE_CONFIGROOT"

	// EnvDiffmaskConfigDir overrides the XDG config directory for diffmask
	EnvDiffmaskConfigDir = "DIFFMASK_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default locations, relative to the configuration root
const (
	DefaultUnmaskFile      = "etc/portage/package.unmask"
	DefaultReposConf       = "etc/portage/repos.conf"
	DefaultMakeProfile     = "etc/portage/make.profile"
	DefaultLaymanInstalled = "var/lib/layman/installed.xml"
	DefaultLaymanStorage   = "var/lib/layman"
)

const (
	// AppDirName is the directory name used below the XDG directories
	AppDirName = "diffmask"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "diffmask.log"
)

// Paths resolves the locations diffmask reads and writes.
type Paths interface {
	ConfigRoot() string
	Resolve(path string) string
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	configRoot string
	xdgConfig  string
	xdgState   string
}

// New creates a Paths instance. An empty configRoot falls back to
// $PORTAGE_CONFIGROOT, then to "/".
func New(configRoot string) (Paths, error) {
	p := &paths{}

	if configRoot == "" {
		configRoot = os.Getenv(EnvConfigRoot)
	}
	if configRoot == "" {
		configRoot = "/"
	}
	abs, err := filepath.Abs(ExpandHome(configRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for config root %s", configRoot)
	}
	p.configRoot = abs

	if dir := os.Getenv(EnvDiffmaskConfigDir); dir != "" {
		p.xdgConfig = ExpandHome(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		p.xdgState = filepath.Join(dir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p, nil
}

func (p *paths) ConfigRoot() string {
	return p.configRoot
}

// Resolve expands "~" and places relative paths under the config root.
func (p *paths) Resolve(path string) string {
	if path == "" {
		return ""
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.configRoot, path)
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is not supported
	return path
}
