package inspect

import (
	"github.com/arthur-debert/diffmask/pkg/commands/internal"
	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/unmask"
)

// Inspectable sources
const (
	SourceMask   = "mask"
	SourceUnmask = "unmask"
)

// InspectOptions holds options for the inspect command
type InspectOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths

	// Source is SourceMask or SourceUnmask; empty means SourceUnmask.
	Source     string
	UnmaskFile string
}

// Inspect summarizes the sections, blocks and atoms of the merged mask or
// of package.unmask.
func Inspect(opts InspectOptions) (*types.InspectResult, error) {
	logger := logging.GetLogger("commands.inspect")
	env := internal.Env{FS: opts.FS, Config: opts.Config, Paths: opts.Paths}

	source := opts.Source
	if source == "" {
		source = SourceUnmask
	}

	result := &types.InspectResult{Source: source}
	var f *maskfile.File
	switch source {
	case SourceMask:
		merged, err := env.Merge()
		if err != nil {
			return nil, err
		}
		f = merged.File
	case SourceUnmask:
		uf, err := unmask.Load(opts.FS, env.UnmaskPath(opts.UnmaskFile))
		if err != nil {
			return nil, err
		}
		f = uf.File
		result.Path = uf.Path
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown source %q, want %s or %s", source, SourceMask, SourceUnmask)
	}

	result.Sections = internal.Sections(f)
	for _, s := range result.Sections {
		result.Blocks += len(s.Blocks)
		for _, b := range s.Blocks {
			result.Atoms += len(b.Atoms)
		}
	}
	logger.Debug().
		Str("source", source).
		Int("sections", len(result.Sections)).
		Int("blocks", result.Blocks).
		Msg("Inspected mask file")
	return result, nil
}
