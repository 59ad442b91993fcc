// Package reconcile re-derives a package.unmask file from a freshly merged
// package.mask file and the previous package.unmask.
//
// Upstream mask entries have no stable identity, so an override block is
// re-identified by content: an equal canonical block, a canonical block
// with the same leading comment, or any canonical block holding one of its
// atoms. The result holds the matched canonical blocks themselves, in
// canonical order, under their canonical section names.
package reconcile

import (
	"slices"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Kept is a canonical block carried into the new override.
type Kept struct {
	Section string
	Block   *maskfile.Block
	Matches []types.MatchKind
}

// Entry is an override block together with the section it came from.
// The unnamed section has an empty name.
type Entry struct {
	Section string
	Block   *maskfile.Block
}

// Report describes how the new override was derived.
type Report struct {
	Kept []Kept
	// Stale lists override blocks that matched nothing and were dropped.
	Stale []Entry
	// Ambiguous lists unnamed override blocks that matched canonical
	// blocks in more than one section. Each of those blocks is kept.
	Ambiguous []Entry
}

// Result is the reconciled override content plus its report.
type Result struct {
	File   *maskfile.File
	Report Report
}

type match struct {
	block *maskfile.Block
	kind  types.MatchKind
}

// Reconcile matches the override blocks of unmask against mask.
func Reconcile(mask, unmask *maskfile.File) (*Result, error) {
	logger := logging.GetLogger("reconcile")
	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	out := maskfile.NewFile()
	res := &Result{File: out}

	// override block -> canonical sections it matched in
	hits := make(map[*maskfile.Block][]string)

	for _, mr := range mask.Named() {
		var candidates []*maskfile.Block
		if ur, ok := unmask.Repo(mr.Name); ok {
			candidates = append(candidates, ur.Blocks.Values()...)
		}
		candidates = append(candidates, unmask.Unnamed().Blocks.Values()...)

		var matches []match
		for _, b := range candidates {
			found := matchBlock(mr, b)
			if len(found) > 0 {
				hits[b] = append(hits[b], mr.Name)
			}
			matches = append(matches, found...)
		}
		if len(matches) == 0 {
			continue
		}

		kept, err := keepInOrder(mr, matches)
		if err != nil {
			return nil, err
		}
		section := out.Section(mr.Name)
		for _, k := range kept {
			section.Blocks.Append(k.Block)
		}
		res.Report.Kept = append(res.Report.Kept, kept...)

		logger.Debug().
			Str("section", mr.Name).
			Int("candidates", len(candidates)).
			Int("kept", section.Blocks.Len()).
			Msg("Section reconciled")
	}

	for _, ur := range unmask.Repos.All() {
		for _, b := range ur.Blocks.All() {
			sections := hits[b]
			switch {
			case len(sections) == 0:
				res.Report.Stale = append(res.Report.Stale, Entry{Section: ur.Name, Block: b})
			case ur.Unnamed() && len(sections) > 1:
				res.Report.Ambiguous = append(res.Report.Ambiguous, Entry{Section: ur.Name, Block: b})
				logger.Warn().
					Str("entry", b.Title()).
					Strs("sections", sections).
					Msg("Unassociated entry matches several sections")
			}
		}
	}

	logger.Info().
		Int("kept", len(res.Report.Kept)).
		Int("stale", len(res.Report.Stale)).
		Msg("Reconciliation finished")
	return res, nil
}

// matchBlock collects the canonical blocks of mr that b selects.
func matchBlock(mr *maskfile.Repo, b *maskfile.Block) []match {
	var found []match
	if e, ok := mr.Blocks.Find(b); ok {
		found = append(found, match{e, types.MatchExact})
	} else if e, ok := mr.Blocks.FindFunc(b.CommentEqual); ok {
		found = append(found, match{e, types.MatchComment})
	}
	for _, a := range b.Atoms.All() {
		e, ok := mr.Blocks.FindFunc(func(c *maskfile.Block) bool { return c.ContainsAtom(a) })
		if ok {
			found = append(found, match{e, types.MatchAtom})
		}
	}
	return found
}

// keepInOrder walks mr in file order and returns each matched block once,
// with its match kinds best first. Every matched block must be equal to a
// block of mr.
func keepInOrder(mr *maskfile.Repo, matches []match) ([]Kept, error) {
	var pending []Kept
	for _, m := range matches {
		i := slices.IndexFunc(pending, func(k Kept) bool { return k.Block.Equal(m.block) })
		if i < 0 {
			pending = append(pending, Kept{Section: mr.Name, Block: m.block})
			i = len(pending) - 1
		}
		if !slices.Contains(pending[i].Matches, m.kind) {
			pending[i].Matches = append(pending[i].Matches, m.kind)
		}
	}

	var kept []Kept
	for _, b := range mr.Blocks.All() {
		i := slices.IndexFunc(pending, func(k Kept) bool { return k.Block.Equal(b) })
		if i < 0 {
			continue
		}
		k := pending[i]
		k.Block = b
		slices.SortFunc(k.Matches, compareKinds)
		kept = append(kept, k)
		pending = slices.Delete(pending, i, i+1)
	}
	if len(pending) > 0 {
		return nil, errors.Newf(errors.ErrMatchInconsistent,
			"%d matched blocks of section %q are missing from the ordered pass", len(pending), mr.Name)
	}
	return kept, nil
}

var kindOrder = []types.MatchKind{types.MatchExact, types.MatchComment, types.MatchAtom}

func compareKinds(a, b types.MatchKind) int {
	return slices.Index(kindOrder, a) - slices.Index(kindOrder, b)
}
