package internal

import (
	"strings"

	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/reconcile"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/unmask"
)

// Apply reconciles uf against the merged mask and writes the result
// through uf, or only renders it when dryRun is set.
func Apply(merged *Merged, uf *unmask.File, dryRun bool) (*types.UpdateResult, error) {
	logger := logging.GetLogger("commands")

	res, err := reconcile.Reconcile(merged.File, uf.File)
	if err != nil {
		return nil, err
	}

	result := &types.UpdateResult{
		UnmaskPath: uf.Path,
		DryRun:     dryRun,
		Kept:       []types.BlockSummary{},
		Dropped:    []types.BlockSummary{},
	}
	for _, k := range res.Report.Kept {
		result.Kept = append(result.Kept, Summarize(k.Section, k.Block, k.Matches...))
	}
	for _, e := range res.Report.Stale {
		result.Dropped = append(result.Dropped, Summarize(e.Section, e.Block))
	}
	for _, e := range res.Report.Ambiguous {
		result.Ambiguous = append(result.Ambiguous, Summarize(e.Section, e.Block))
	}

	if dryRun {
		result.Content = uf.Render(res.File)
		result.UpToDate = strings.TrimSpace(result.Content) == strings.TrimSpace(uf.File.String())
		logger.Info().
			Str("path", uf.Path).
			Bool("upToDate", result.UpToDate).
			Msg("Dry run, nothing written")
		return result, nil
	}

	wr, err := uf.Write(res.File)
	if err != nil {
		return nil, err
	}
	result.UpToDate = wr.UpToDate
	if !wr.UpToDate {
		result.Written = wr.Path
	}
	logger.Info().
		Str("path", uf.Path).
		Str("written", result.Written).
		Int("kept", len(result.Kept)).
		Int("dropped", len(result.Dropped)).
		Msg("Unmask file reconciled")
	return result, nil
}
