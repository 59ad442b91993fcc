// pkg/unmask/unmask_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Loading, change detection and protected writes

package unmask_test

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/filesystem"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/unmask"
)

const unmaskPath = "/etc/portage/package.unmask"

func memFS(t *testing.T) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/etc/portage", 0755))
	return fsys
}

func read(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	f, err := unmask.Load(memFS(t), unmaskPath)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Repos.Len())
	assert.Equal(t, 0, f.Blocks())
	assert.Equal(t, unmaskPath, f.Path)
}

func TestLoadUnreadablePath(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, fsys.MkdirAll(unmaskPath, 0755))

	_, err := unmask.Load(fsys, unmaskPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestWriteUpToDate(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, fsys.WriteFile(unmaskPath, []byte("\n# c\na/b\n\n\n"), 0644))

	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)

	res, err := f.Write(maskfile.ParseString("# c\na/b\n"))
	require.NoError(t, err)
	assert.True(t, res.UpToDate)
	assert.Equal(t, unmaskPath, res.Path)

	entries, err := fsys.ReadDir("/etc/portage")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no new file may appear")
}

func TestWriteEmptyResultWithoutFile(t *testing.T) {
	fsys := memFS(t)
	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)

	res, err := f.Write(maskfile.NewFile())
	require.NoError(t, err)
	assert.True(t, res.UpToDate)
	_, err = fsys.Stat(unmaskPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteChangedContentGoesToProtectedPath(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, fsys.WriteFile(unmaskPath, []byte("old/atom\n"), 0644))

	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)

	res, err := f.Write(maskfile.ParseString("## *gentoo*\nnew/atom\n"))
	require.NoError(t, err)
	assert.False(t, res.UpToDate)
	assert.Equal(t, "/etc/portage/._cfg0000_package.unmask", res.Path)
	assert.Equal(t, "## *gentoo*\nnew/atom\n", read(t, fsys, res.Path))
	assert.Equal(t, "old/atom\n", read(t, fsys, unmaskPath), "original stays untouched")
}

func TestWriteWithoutOriginalCreatesPlaceholder(t *testing.T) {
	fsys := memFS(t)
	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)

	res, err := f.Write(maskfile.ParseString("new/atom\n"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/portage/._cfg0000_package.unmask", res.Path)
	assert.Equal(t, "", read(t, fsys, unmaskPath))
	assert.Equal(t, "new/atom\n", read(t, fsys, res.Path))
}

type fixedNamer struct{ path string }

func (n fixedNamer) Next(string) (string, error) { return n.path, nil }

func TestWriteRefusesNamerThatNeverAdvances(t *testing.T) {
	fsys := memFS(t)
	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)
	f.Namer = fixedNamer{path: unmaskPath}

	_, err = f.Write(maskfile.ParseString("new/atom\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestRenderDoesNotWrite(t *testing.T) {
	fsys := memFS(t)
	f, err := unmask.Load(fsys, unmaskPath)
	require.NoError(t, err)

	assert.Equal(t, "a/b\n", f.Render(maskfile.ParseString("a/b\n")))
	_, err = fsys.Stat(unmaskPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
