package diff

import (
	"context"
	"io"

	"github.com/arthur-debert/diffmask/pkg/commands/internal"
	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/viewer"
)

// DiffOptions holds options for the vimdiff command
type DiffOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths

	UnmaskFile string
	// Command overrides viewer.command from the configuration.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Run replaces process execution, for tests.
	Run viewer.Runner
}

// Diff opens the merged package.mask next to package.unmask in the
// configured viewer and waits for it to exit.
func Diff(ctx context.Context, opts DiffOptions) error {
	logger := logging.GetLogger("commands.diff")
	done := logging.LogOperationStart(logger, "vimdiff")
	defer done()

	env := internal.Env{FS: opts.FS, Config: opts.Config, Paths: opts.Paths}
	merged, err := env.Merge()
	if err != nil {
		return err
	}

	command := opts.Command
	if command == "" {
		command = opts.Config.Viewer.Command
	}
	v := viewer.Viewer{
		FS:      opts.FS,
		Command: command,
		Stdin:   opts.Stdin,
		Stdout:  opts.Stdout,
		Stderr:  opts.Stderr,
		Run:     opts.Run,
	}
	return v.Compare(ctx, merged.Text(), env.UnmaskPath(opts.UnmaskFile))
}
