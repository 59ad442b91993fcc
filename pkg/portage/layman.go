package portage

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Layman lists the overlays recorded in layman's installed.xml.
type Layman struct {
	FS types.FS
	// Path of installed.xml.
	Path string
	// Storage is the directory overlays are checked out into.
	Storage string
}

// Repositories returns the installed overlays in file order. A missing
// installed.xml means layman is not in use.
func (l Layman) Repositories() ([]Repository, error) {
	logger := logging.GetLogger("portage")

	data, err := l.FS.ReadFile(l.Path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", l.Path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepoConfig, "cannot parse %s", l.Path)
	}

	var repos []Repository
	// <repositories><repo><name>x</name></repo> and the older
	// <layman><overlay name="x"/> layouts
	for _, el := range append(doc.FindElements("//repo"), doc.FindElements("//overlay")...) {
		name := el.SelectAttrValue("name", "")
		if name == "" {
			if child := el.SelectElement("name"); child != nil {
				name = strings.TrimSpace(child.Text())
			}
		}
		if name == "" {
			continue
		}
		repos = append(repos, Repository{Name: name, Location: filepath.Join(l.Storage, name)})
	}

	logger.Debug().Str("path", l.Path).Int("count", len(repos)).Msg("Layman overlays read")
	return repos, nil
}
