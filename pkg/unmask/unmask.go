// Package unmask binds a parsed package.unmask file to its location on
// disk and writes updated content next to it through the protect naming
// scheme instead of replacing it.
package unmask

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	derrors "github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/protect"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// File is a package.unmask file bound to a path.
type File struct {
	*maskfile.File
	Path string

	// Namer picks the path updated content is written to.
	Namer protect.Namer

	fs types.FS
}

// WriteResult reports what Write did.
type WriteResult struct {
	UpToDate bool
	// Path is the file holding the new content, or the original path
	// when it was already up to date.
	Path string
}

// Load reads path. A missing file yields an empty override.
func Load(fsys types.FS, path string) (*File, error) {
	logger := logging.GetLogger("unmask")

	f := &File{
		Path:  path,
		Namer: protect.ConfigProtect{FS: fsys},
		fs:    fsys,
	}

	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug().Str("path", path).Msg("No unmask file, starting empty")
		f.File = maskfile.NewFile()
		return f, nil
	case err != nil:
		return nil, derrors.Wrapf(err, derrors.ErrFileAccess, "cannot read %s", path)
	}

	f.File = maskfile.ParseString(string(data))
	logger.Debug().
		Str("path", path).
		Int("sections", f.Repos.Len()).
		Int("blocks", f.Blocks()).
		Msg("Unmask file loaded")
	return f, nil
}

// Render returns the text content would be written as.
func (f *File) Render(content *maskfile.File) string {
	return content.String()
}

// Write stores content unless it matches what is on disk, ignoring
// surrounding whitespace. New content never replaces the file: it goes
// to the path the Namer returns.
func (f *File) Write(content *maskfile.File) (WriteResult, error) {
	logger := logging.GetLogger("unmask")
	text := f.Render(content)

	current, err := f.fs.ReadFile(f.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return WriteResult{}, derrors.Wrapf(err, derrors.ErrFileAccess, "cannot read %s", f.Path)
	}
	if strings.TrimSpace(string(current)) == strings.TrimSpace(text) {
		logger.Info().Str("path", f.Path).Msg("Unmask file is up to date")
		return WriteResult{UpToDate: true, Path: f.Path}, nil
	}

	target, err := f.Namer.Next(f.Path)
	if err != nil {
		return WriteResult{}, err
	}
	if target == f.Path {
		// An empty placeholder forces a protected name, so the change
		// can be reviewed with the usual merge tools.
		if err := f.fs.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
			return WriteResult{}, derrors.Wrapf(err, derrors.ErrDirCreate, "cannot create %s", filepath.Dir(f.Path))
		}
		if err := f.fs.WriteFile(f.Path, nil, 0644); err != nil {
			return WriteResult{}, derrors.Wrapf(err, derrors.ErrFileCreate, "cannot create %s", f.Path)
		}
		if target, err = f.Namer.Next(f.Path); err != nil {
			return WriteResult{}, err
		}
		if target == f.Path {
			return WriteResult{}, derrors.Newf(derrors.ErrInternal, "no protected name available for %s", f.Path)
		}
	}

	if err := f.fs.WriteFile(target, []byte(text), 0644); err != nil {
		return WriteResult{}, derrors.Wrapf(err, derrors.ErrFileWrite, "cannot write %s", target)
	}
	logger.Info().Str("path", f.Path).Str("written", target).Msg("New unmask content written")
	return WriteResult{Path: target}, nil
}
