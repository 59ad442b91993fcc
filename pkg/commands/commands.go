// Package commands provides high-level command implementations for diffmask.
//
// Each command is implemented in its own subdirectory:
//   - update/    - Update: reconcile package.unmask with the merged masks
//   - add/       - AddPackages: unmask packages, then update
//   - show/      - MergedMask: build the canonical package.mask
//   - inspect/   - Inspect: summarize a mask file
//   - diff/      - Diff: open the merged mask next to package.unmask
//   - genconfig/ - GenConfig: print or create the configuration
//   - internal/  - Merge plan and reconciliation plumbing shared by them
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/diffmask/pkg/commands/add"
	"github.com/arthur-debert/diffmask/pkg/commands/diff"
	"github.com/arthur-debert/diffmask/pkg/commands/genconfig"
	"github.com/arthur-debert/diffmask/pkg/commands/inspect"
	"github.com/arthur-debert/diffmask/pkg/commands/show"
	"github.com/arthur-debert/diffmask/pkg/commands/update"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Update reconciles package.unmask with the merged package.mask.
type UpdateOptions = update.UpdateOptions

func Update(opts UpdateOptions) (*types.UpdateResult, error) {
	return update.Update(opts)
}

// AddPackages unmasks packages, then updates.
type AddOptions = add.AddOptions

func AddPackages(opts AddOptions) (*types.AddResult, error) {
	return add.AddPackages(opts)
}

// MergedMask builds the canonical package.mask.
type MergeOptions = show.MergeOptions

func MergedMask(opts MergeOptions) (*types.MergedResult, error) {
	return show.MergedMask(opts)
}

// Inspect summarizes the merged mask or package.unmask.
type InspectOptions = inspect.InspectOptions

const (
	SourceMask   = inspect.SourceMask
	SourceUnmask = inspect.SourceUnmask
)

func Inspect(opts InspectOptions) (*types.InspectResult, error) {
	return inspect.Inspect(opts)
}

// Diff runs the configured viewer on the merged mask and package.unmask.
type DiffOptions = diff.DiffOptions

func Diff(ctx context.Context, opts DiffOptions) error {
	return diff.Diff(ctx, opts)
}

// GenConfig prints or creates the configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.ConfigResult, error) {
	return genconfig.GenConfig(opts)
}
