package portage

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// ProfileStack resolves makeProfile (usually /etc/portage/make.profile)
// and returns the profile directories it inherits from, parents before
// children. Parent entries of the form "repo:path" are looked up among
// repos. A missing make.profile yields an empty stack.
func ProfileStack(fsys types.FS, makeProfile string, repos ...Repository) ([]string, error) {
	logger := logging.GetLogger("portage")

	root, err := resolveLink(fsys, makeProfile)
	if err != nil {
		if isNotExist(err) {
			logger.Debug().Str("path", makeProfile).Msg("No make.profile")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrProfileResolve, "cannot resolve %s", makeProfile)
	}

	w := &profileWalker{fs: fsys, repos: repos, state: make(map[string]int)}
	if err := w.visit(root); err != nil {
		return nil, err
	}
	logger.Debug().Str("profile", root).Int("depth", len(w.stack)).Msg("Profile stack resolved")
	return w.stack, nil
}

func resolveLink(fsys types.FS, path string) (string, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return filepath.Clean(path), nil
	}
	target, err := fsys.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

const (
	visiting = 1
	visited  = 2
)

type profileWalker struct {
	fs    types.FS
	repos []Repository
	state map[string]int
	stack []string
}

func (w *profileWalker) visit(dir string) error {
	switch w.state[dir] {
	case visiting:
		return errors.Newf(errors.ErrProfileResolve, "profile %s inherits from itself", dir)
	case visited:
		return nil
	}
	w.state[dir] = visiting

	data, err := w.fs.ReadFile(filepath.Join(dir, "parent"))
	if err != nil && !isNotExist(err) {
		return errors.Wrapf(err, errors.ErrProfileResolve, "cannot read parent of %s", dir)
	}
	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		parent, err := w.parentDir(dir, entry)
		if err != nil {
			return err
		}
		if err := w.visit(parent); err != nil {
			return err
		}
	}

	w.state[dir] = visited
	w.stack = append(w.stack, dir)
	return nil
}

func (w *profileWalker) parentDir(dir, entry string) (string, error) {
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry), nil
	}
	repo, rel, ok := strings.Cut(entry, ":")
	if !ok {
		return filepath.Join(dir, entry), nil
	}
	for _, r := range w.repos {
		if r.Name == repo {
			return filepath.Join(r.ProfilesDir(), rel), nil
		}
	}
	return "", errors.Newf(errors.ErrProfileResolve, "profile %s names unknown repository %q", dir, repo)
}
