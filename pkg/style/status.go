package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/diffmask/pkg/types"
)

// Status is what happened to a mask block.
type Status string

const (
	StatusKept      Status = "kept"
	StatusDropped   Status = "dropped"
	StatusAmbiguous Status = "ambiguous"
	StatusAdded     Status = "added"
	StatusListed    Status = "listed"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusKept:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusDropped:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusAmbiguous:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusAdded:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// MatchStyle colors the name of a match strategy.
func MatchStyle(kind types.MatchKind) *pterm.Style {
	switch kind {
	case types.MatchExact:
		return pterm.NewStyle(pterm.FgGreen)
	case types.MatchComment:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgYellow)
	}
}

// RenderBlock renders one block summary as a status line followed by its
// atoms.
func RenderBlock(status Status, b types.BlockSummary) string {
	var out strings.Builder

	badge := StatusStyle(status).Sprint(fmt.Sprintf(" %-9s ", status))
	fmt.Fprintf(&out, "  %s %s", badge, NormalStyle.Render(b.Title))
	if len(b.Matches) > 0 {
		kinds := make([]string, 0, len(b.Matches))
		for _, m := range b.Matches {
			kinds = append(kinds, MatchStyle(m).Sprint(string(m)))
		}
		fmt.Fprintf(&out, " %s", MutedStyle.Render("(")+strings.Join(kinds, ", ")+MutedStyle.Render(")"))
	}
	out.WriteString("\n")
	for _, a := range b.Atoms {
		out.WriteString("      " + AtomStyle.Render(a) + "\n")
	}
	return out.String()
}

// RenderGroup renders blocks under a section heading, in order, starting
// a new heading whenever the section changes.
func RenderGroup(status Status, blocks []types.BlockSummary) string {
	var out strings.Builder
	current := "\x00"
	for _, b := range blocks {
		if b.Section != current {
			current = b.Section
			out.WriteString(Section(current) + "\n")
		}
		out.WriteString(RenderBlock(status, b))
	}
	return out.String()
}
