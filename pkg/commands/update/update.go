package update

import (
	"github.com/arthur-debert/diffmask/pkg/commands/internal"
	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/unmask"
)

// UpdateOptions holds options for the update command
type UpdateOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths

	// UnmaskFile overrides the configured package.unmask location.
	UnmaskFile string
	DryRun     bool
}

// Update re-derives package.unmask from the current merged package.mask.
// The new content goes next to the old file, never over it.
func Update(opts UpdateOptions) (*types.UpdateResult, error) {
	logger := logging.GetLogger("commands.update")
	done := logging.LogOperationStart(logger, "update")
	defer done()

	env := internal.Env{FS: opts.FS, Config: opts.Config, Paths: opts.Paths}

	merged, err := env.Merge()
	if err != nil {
		return nil, err
	}
	uf, err := unmask.Load(opts.FS, env.UnmaskPath(opts.UnmaskFile))
	if err != nil {
		return nil, err
	}
	return internal.Apply(merged, uf, opts.DryRun)
}
