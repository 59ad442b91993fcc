package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths

	// Write creates the user config file from the commented defaults
	// instead of printing the effective configuration.
	Write bool
}

// GenConfig renders the effective configuration, or writes a starter user
// config file when none exists yet.
func GenConfig(opts GenConfigOptions) (*types.ConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	target := opts.Paths.ConfigFile()

	if !opts.Write {
		content, err := config.ToTOML(opts.Config)
		if err != nil {
			return nil, err
		}
		return &types.ConfigResult{ConfigFile: target, Content: content}, nil
	}

	if _, err := opts.FS.Stat(target); err == nil {
		return nil, errors.Newf(errors.ErrFileCreate, "config file already exists: %s", target).
			WithDetail("path", target)
	}

	content := config.GenerateConfigContent()
	if err := opts.FS.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(target))
	}
	if err := opts.FS.WriteFile(target, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target)
	}
	logger.Info().Str("path", target).Msg("Wrote config file")
	return &types.ConfigResult{ConfigFile: target, Content: content, Written: true}, nil
}
