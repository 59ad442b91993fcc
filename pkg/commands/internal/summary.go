package internal

import (
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Summarize describes b for the output renderers.
func Summarize(section string, b *maskfile.Block, matches ...types.MatchKind) types.BlockSummary {
	s := types.BlockSummary{
		Section: section,
		Title:   b.Title(),
		Atoms:   make([]string, 0, b.Atoms.Len()),
		Matches: matches,
	}
	for _, a := range b.Atoms.Values() {
		s.Atoms = append(s.Atoms, a.Text())
	}
	return s
}

// Sections summarizes every section of f, unnamed first.
func Sections(f *maskfile.File) []types.SectionInfo {
	var out []types.SectionInfo
	for _, r := range f.Repos.Values() {
		info := types.SectionInfo{Name: r.Name, Unnamed: r.Unnamed()}
		for _, b := range r.Blocks.Values() {
			info.Blocks = append(info.Blocks, Summarize(r.Name, b))
		}
		out = append(out, info)
	}
	return out
}
