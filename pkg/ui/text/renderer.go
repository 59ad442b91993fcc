// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/ui/msgs"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.UpdateResult:
		return r.renderUpdate(v)
	case *types.AddResult:
		for _, b := range v.Added {
			if err := r.line(msgs.MsgUnmasking, b.Title, sectionName(b.Section)); err != nil {
				return err
			}
		}
		for _, pkg := range v.Unmatched {
			if err := r.line(msgs.MsgNoMatch, pkg); err != nil {
				return err
			}
		}
		if v.Update != nil {
			return r.renderUpdate(v.Update)
		}
		return nil
	case *types.MergedResult:
		_, err := io.WriteString(r.output, v.Content)
		return err
	case *types.InspectResult:
		return r.renderInspect(v)
	case *types.ConfigResult:
		if v.Written {
			return r.line(msgs.MsgConfigWritten, v.ConfigFile)
		}
		_, err := io.WriteString(r.output, v.Content)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderUpdate(v *types.UpdateResult) error {
	for _, b := range v.Dropped {
		if err := r.line(msgs.MsgDropped, b.Title); err != nil {
			return err
		}
	}
	for _, b := range v.Ambiguous {
		if err := r.line(msgs.MsgAmbiguous, b.Title); err != nil {
			return err
		}
	}

	switch {
	case v.DryRun:
		if _, err := io.WriteString(r.output, v.Content); err != nil {
			return err
		}
		if v.UpToDate {
			return r.line(msgs.MsgUpToDate)
		}
		return r.line(msgs.MsgDryRunNotice)
	case v.UpToDate:
		return r.line(msgs.MsgUpToDate)
	default:
		return r.line(msgs.MsgSavedAs, v.Written)
	}
}

func (r *Renderer) renderInspect(v *types.InspectResult) error {
	header := v.Source
	if v.Path != "" {
		header += ": " + v.Path
	}
	if err := r.line("%s", header); err != nil {
		return err
	}
	for _, s := range v.Sections {
		if err := r.line("\n%s", sectionName(s.Name)); err != nil {
			return err
		}
		for _, b := range s.Blocks {
			if err := r.line("  %s", b.Title); err != nil {
				return err
			}
			for _, a := range b.Atoms {
				if err := r.line("    %s", a); err != nil {
					return err
				}
			}
		}
	}
	return r.line("\n"+msgs.MsgSections, len(v.Sections), v.Blocks, v.Atoms)
}

func (r *Renderer) line(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, strings.TrimSuffix(format, "\n")+"\n", args...)
	return err
}

func sectionName(name string) string {
	if name == "" {
		return msgs.MsgUnnamed
	}
	return name
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
