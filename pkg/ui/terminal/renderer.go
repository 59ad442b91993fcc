// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/style"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/ui/msgs"
)

// Renderer provides rich terminal output using pterm prefixes and lipgloss
// styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out strings.Builder

	switch v := result.(type) {
	case *types.UpdateResult:
		r.update(&out, v)
	case *types.AddResult:
		if len(v.Added) > 0 {
			out.WriteString(style.TitleStyle.Render("Unmasked") + "\n")
			out.WriteString(style.RenderGroup(style.StatusAdded, v.Added))
			out.WriteString("\n")
		}
		for _, pkg := range v.Unmatched {
			out.WriteString(pterm.Warning.Sprint(fmt.Sprintf(msgs.MsgNoMatch, pkg)) + "\n")
		}
		if v.Update != nil {
			r.update(&out, v.Update)
		}
	case *types.MergedResult:
		out.WriteString(style.MutedStyle.Render("sources: "+strings.Join(v.Sources, ", ")) + "\n\n")
		out.WriteString(v.Content)
	case *types.InspectResult:
		r.inspect(&out, v)
	case *types.ConfigResult:
		if v.Written {
			out.WriteString(pterm.Success.Sprint(fmt.Sprintf(msgs.MsgConfigWritten, style.PathStyle.Render(v.ConfigFile))) + "\n")
		} else {
			out.WriteString(style.MutedStyle.Render("# "+v.ConfigFile) + "\n")
			out.WriteString(v.Content)
		}
	default:
		fmt.Fprintf(&out, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, out.String())
	return err
}

func (r *Renderer) update(out *strings.Builder, v *types.UpdateResult) {
	if len(v.Kept) > 0 {
		out.WriteString(style.TitleStyle.Render("Kept") + "\n")
		out.WriteString(style.RenderGroup(style.StatusKept, v.Kept))
		out.WriteString("\n")
	}
	if len(v.Dropped) > 0 {
		out.WriteString(style.TitleStyle.Render("Dropped") + "\n")
		out.WriteString(style.RenderGroup(style.StatusDropped, v.Dropped))
		out.WriteString("\n")
	}
	if len(v.Ambiguous) > 0 {
		out.WriteString(style.WarningStyle.Render("Ambiguous") + "\n")
		out.WriteString(style.RenderGroup(style.StatusAmbiguous, v.Ambiguous))
		out.WriteString("\n")
	}

	switch {
	case v.DryRun:
		if !v.UpToDate {
			out.WriteString(style.BoxStyle.Render(strings.TrimRight(v.Content, "\n")) + "\n")
			out.WriteString(pterm.Info.Sprint(msgs.MsgDryRunNotice) + "\n")
			return
		}
		out.WriteString(pterm.Success.Sprint(msgs.MsgUpToDate) + "\n")
	case v.UpToDate:
		out.WriteString(pterm.Success.Sprint(msgs.MsgUpToDate) + "\n")
	default:
		out.WriteString(pterm.Info.Sprint(fmt.Sprintf(msgs.MsgSavedAs, style.PathStyle.Render(v.Written))) + "\n")
	}
}

func (r *Renderer) inspect(out *strings.Builder, v *types.InspectResult) {
	title := v.Source
	if v.Path != "" {
		title += " " + style.PathStyle.Render(v.Path)
	}
	out.WriteString(style.TitleStyle.Render(title) + "\n\n")
	for _, s := range v.Sections {
		if len(s.Blocks) == 0 {
			continue
		}
		out.WriteString(style.RenderGroup(style.StatusListed, s.Blocks))
	}
	out.WriteString("\n" + style.MutedStyle.Render(fmt.Sprintf(msgs.MsgSections, len(v.Sections), v.Blocks, v.Atoms)) + "\n")
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = strings.TrimPrefix(msg, "["+string(code)+"] ")
	}
	_, werr := fmt.Fprintln(r.output, pterm.Error.Sprint(msg))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}
