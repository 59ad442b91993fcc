package add

import (
	"strings"

	"github.com/arthur-debert/diffmask/pkg/atom"
	"github.com/arthur-debert/diffmask/pkg/commands/internal"
	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/unmask"
)

// AddOptions holds options for the add command
type AddOptions struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths

	UnmaskFile string
	// Packages are atoms or package names: "cat/pkg", "=cat/pkg-1.0".
	Packages []string
	DryRun   bool
}

// AddPackages copies the canonical mask blocks that mask each package into
// package.unmask and then runs the regular update.
func AddPackages(opts AddOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")
	done := logging.LogOperationStart(logger, "add")
	defer done()

	if len(opts.Packages) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "add requires at least one package")
	}

	env := internal.Env{FS: opts.FS, Config: opts.Config, Paths: opts.Paths}
	merged, err := env.Merge()
	if err != nil {
		return nil, err
	}
	uf, err := unmask.Load(opts.FS, env.UnmaskPath(opts.UnmaskFile))
	if err != nil {
		return nil, err
	}

	result := &types.AddResult{Added: []types.BlockSummary{}}
	added := make(map[*maskfile.Block]bool)
	target := uf.Unnamed()

	for _, pkg := range opts.Packages {
		pkg = strings.TrimSpace(pkg)
		if pkg == "" {
			continue
		}
		matches := matcher(pkg)

		found := false
		for _, r := range merged.File.Named() {
			for _, b := range r.Blocks.Values() {
				if !matches(b) {
					continue
				}
				found = true
				if added[b] {
					continue
				}
				added[b] = true
				target.Blocks.Append(b.Clone())
				result.Added = append(result.Added, internal.Summarize(r.Name, b))
				logger.Info().Str("package", pkg).Str("section", r.Name).Str("block", b.Title()).Msg("Unmasking block")
			}
		}
		if !found {
			logger.Warn().Str("package", pkg).Msg("No mask block matches package")
			result.Unmatched = append(result.Unmatched, pkg)
		}
	}

	update, err := internal.Apply(merged, uf, opts.DryRun)
	if err != nil {
		return nil, err
	}
	result.Update = update
	return result, nil
}

// matcher selects the mask blocks relevant to a requested package. An
// exact version matches blocks whose atoms select that version; anything
// else matches blocks naming the package at all. Text that is not an atom
// only matches an identical mask line.
func matcher(pkg string) func(*maskfile.Block) bool {
	a := atom.Parse(pkg)
	spec, ok := a.Spec()
	if !ok {
		return func(b *maskfile.Block) bool { return b.ContainsAtom(a) }
	}
	if spec.Operator == atom.OpEqual && !spec.Glob && spec.Version != nil {
		cpv := atom.CPV{Category: spec.Category, Package: spec.Package, Version: *spec.Version, Repo: spec.Repo}
		return func(b *maskfile.Block) bool {
			return b.MatchesPackage(cpv) || b.ContainsAtom(a)
		}
	}
	return func(b *maskfile.Block) bool {
		return b.AffectsPackage(spec.Category, spec.Package)
	}
}
