// Package maskmerge concatenates the package.mask files of repositories
// and profiles into one document, each source under its own
// "## *label*" section header.
package maskmerge

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/portage"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// MaskFileName is the file read from each profile directory.
const MaskFileName = "package.mask"

// Plan lists the mask sources in merge order.
type Plan struct {
	Repositories []portage.Repository
	// Profiles are profile directories, parents first.
	Profiles []string
	// ProfilesRoot is the directory profile labels are relative to.
	ProfilesRoot string
	// Main, when set, is merged after everything else instead of in
	// its place among Repositories.
	Main *portage.Repository
}

// Builder reads the sources of a Plan.
type Builder struct {
	FS     types.FS
	Logger zerolog.Logger
}

// NewBuilder returns a Builder logging under the maskmerge component.
func NewBuilder(fsys types.FS) Builder {
	return Builder{FS: fsys, Logger: logging.GetLogger("maskmerge")}
}

// Build returns the merged document as lines. Sources that do not exist
// are skipped.
func (b Builder) Build(plan Plan) ([]string, error) {
	var out []string

	add := func(path, label string) error {
		lines, ok, err := b.read(path)
		if err != nil || !ok {
			return err
		}
		stripped := StripBoilerplate(lines)
		b.Logger.Debug().
			Str("source", label).
			Str("path", path).
			Int("lines", len(lines)).
			Int("dropped", len(lines)-len(stripped)).
			Msg("Mask source merged")
		out = append(out, "\n", maskfile.Header(label), "\n")
		out = append(out, stripped...)
		return nil
	}

	for _, r := range plan.Repositories {
		if plan.Main != nil && r.Name == plan.Main.Name {
			continue
		}
		if err := add(r.MaskFile(), r.Name); err != nil {
			return nil, err
		}
	}
	for _, p := range plan.Profiles {
		if err := add(filepath.Join(p, MaskFileName), profileLabel(plan.ProfilesRoot, p)); err != nil {
			return nil, err
		}
	}
	if plan.Main != nil {
		if err := add(plan.Main.MaskFile(), plan.Main.Name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// read returns the lines of a mask file, or of every file in a mask
// directory. ok is false when path does not exist.
func (b Builder) read(path string) (lines []string, ok bool, err error) {
	info, err := b.FS.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			b.Logger.Trace().Str("path", path).Msg("Mask source absent")
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := b.FS.ReadDir(path)
		if err != nil {
			return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", path)
		}
		files = files[:0]
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
		sort.Strings(files)
	}

	for _, f := range files {
		data, err := b.FS.ReadFile(f)
		if err != nil {
			return nil, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", f)
		}
		text := string(data)
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		lines = append(lines, maskfile.SplitLines(text)...)
	}
	return lines, true, nil
}

func profileLabel(root, dir string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, dir); err == nil {
			return "profile: " + rel
		}
	}
	return "profile: " + dir
}

// StripBoilerplate drops the license header and examples that precede
// the first real entry: everything before the comment run that starts
// after a blank line (or at the top) and precedes the first atom.
func StripBoilerplate(lines []string) []string {
	start := -1
	afterBlank := true
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "#"):
			if afterBlank {
				start = i
				afterBlank = false
			}
		case strings.TrimSpace(l) == "":
			afterBlank = true
		default:
			if start > 0 {
				return lines[start:]
			}
			return lines
		}
	}
	return lines
}
