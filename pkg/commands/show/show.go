package show

import (
	"github.com/arthur-debert/diffmask/pkg/commands/internal"
	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// MergeOptions holds options for the show command
type MergeOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths
}

// MergedMask builds the canonical package.mask the unmask file is
// reconciled against.
func MergedMask(opts MergeOptions) (*types.MergedResult, error) {
	logger := logging.GetLogger("commands.show")
	done := logging.LogOperationStart(logger, "show")
	defer done()

	env := internal.Env{FS: opts.FS, Config: opts.Config, Paths: opts.Paths}
	merged, err := env.Merge()
	if err != nil {
		return nil, err
	}
	return &types.MergedResult{
		Sources: merged.Sources(),
		Content: merged.Text(),
	}, nil
}
