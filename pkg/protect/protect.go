// Package protect names the files that receive updated configuration
// without touching the live file, following portage's CONFIG_PROTECT
// convention: ._cfg0000_name, ._cfg0001_name, and so on. Tools such as
// dispatch-conf and etc-update pick these files up for merging.
package protect

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	derrors "github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/types"
)

const prefix = "._cfg"

// Namer returns the path new content for path should be written to.
type Namer interface {
	Next(path string) (string, error)
}

// ConfigProtect implements Namer with the ._cfgNNNN_ scheme.
type ConfigProtect struct {
	FS types.FS
}

// Next returns path itself when it does not exist yet. Otherwise it
// returns the next free ._cfgNNNN_<base> name in the same directory.
func (c ConfigProtect) Next(path string) (string, error) {
	logger := logging.GetLogger("protect")

	if _, err := c.FS.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		return "", derrors.Wrapf(err, derrors.ErrFileAccess, "cannot stat %s", path)
	}

	dir, base := filepath.Dir(path), filepath.Base(path)
	entries, err := c.FS.ReadDir(dir)
	if err != nil {
		return "", derrors.Wrapf(err, derrors.ErrFileAccess, "cannot list %s", dir)
	}

	last := -1
	for _, e := range entries {
		n, ok := protectNumber(e.Name(), base)
		if ok && n > last {
			last = n
		}
	}

	next := filepath.Join(dir, fmt.Sprintf("%s%04d_%s", prefix, last+1, base))
	logger.Debug().Str("path", path).Str("next", next).Msg("Protected name chosen")
	return next, nil
}

// protectNumber extracts NNNN from ._cfgNNNN_<base>.
func protectNumber(name, base string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || len(name) < len(prefix)+5 {
		return 0, false
	}
	if name[len(prefix)+4] != '_' || name[len(prefix)+5:] != base {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix) : len(prefix)+4])
	if err != nil {
		return 0, false
	}
	return n, true
}
