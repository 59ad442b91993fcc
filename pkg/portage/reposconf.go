package portage

import (
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// ReposConf reads portage's repos.conf, a file or a directory of files.
type ReposConf struct {
	FS   types.FS
	Path string
}

func (r ReposConf) load() (*ini.File, error) {
	info, err := r.FS.Stat(r.Path)
	if err != nil {
		if isNotExist(err) {
			return ini.Empty(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", r.Path)
	}

	files := []string{r.Path}
	if info.IsDir() {
		entries, err := r.FS.ReadDir(r.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", r.Path)
		}
		files = files[:0]
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
				continue
			}
			files = append(files, filepath.Join(r.Path, name))
		}
		sort.Strings(files)
	}

	cfg := ini.Empty()
	for _, f := range files {
		data, err := r.FS.ReadFile(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", f)
		}
		if err := cfg.Append(data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRepoConfig, "cannot parse %s", f).
				WithDetail("path", f)
		}
	}
	return cfg, nil
}

// Repositories returns the configured repositories ordered by priority,
// then name.
func (r ReposConf) Repositories() ([]Repository, error) {
	logger := logging.GetLogger("portage")

	cfg, err := r.load()
	if err != nil {
		return nil, err
	}

	var repos []Repository
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		loc := sec.Key("location").String()
		if loc == "" {
			logger.Warn().Str("repo", sec.Name()).Msg("Repository without location ignored")
			continue
		}
		repos = append(repos, Repository{
			Name:     sec.Name(),
			Location: loc,
			Priority: sec.Key("priority").MustInt(0),
		})
	}
	sort.SliceStable(repos, func(i, j int) bool {
		if repos[i].Priority != repos[j].Priority {
			return repos[i].Priority < repos[j].Priority
		}
		return repos[i].Name < repos[j].Name
	})

	logger.Debug().Str("path", r.Path).Int("count", len(repos)).Msg("repos.conf read")
	return repos, nil
}

// MainRepo returns the repository named by main-repo in [DEFAULT].
func (r ReposConf) MainRepo() (Repository, bool, error) {
	cfg, err := r.load()
	if err != nil {
		return Repository{}, false, err
	}
	name := cfg.Section(ini.DefaultSection).Key("main-repo").String()
	if name == "" {
		return Repository{}, false, nil
	}
	repos, err := r.Repositories()
	if err != nil {
		return Repository{}, false, err
	}
	for _, repo := range repos {
		if repo.Name == name {
			return repo, true, nil
		}
	}
	return Repository{}, false, nil
}
