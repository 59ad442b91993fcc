// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, t.TempDir
// PURPOSE: Exercise both types.FS implementations through the same operations

package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	t.Helper()
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":    {fs: NewOS(), root: t.TempDir()},
		"afero": {fs: NewAferoFS(afero.NewMemMapFs()), root: "/work"},
	}
}

func TestFSOperations(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fsys := impl.fs
			dir := filepath.Join(impl.root, "etc", "portage")
			require.NoError(t, fsys.MkdirAll(dir, 0755))

			unmask := filepath.Join(dir, "package.unmask")
			content := []byte("# keep\ndev-lang/go\n")
			require.NoError(t, fsys.WriteFile(unmask, content, 0644))

			info, err := fsys.Stat(unmask)
			require.NoError(t, err)
			assert.Equal(t, "package.unmask", info.Name())
			assert.Equal(t, int64(len(content)), info.Size())

			got, err := fsys.ReadFile(unmask)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err, "reading a directory must fail")

			entries, err := fsys.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "package.unmask", entries[0].Name())

			linfo, err := fsys.Lstat(unmask)
			require.NoError(t, err)
			assert.False(t, linfo.IsDir())

			require.NoError(t, fsys.Remove(unmask))
			_, err = fsys.Stat(unmask)
			assert.True(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestCreateTemp(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fsys := impl.fs
			require.NoError(t, fsys.MkdirAll(impl.root, 0755))

			path, err := fsys.CreateTemp(impl.root, "package.mask.*", []byte("merged\n"))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(filepath.Base(path), "package.mask."))

			got, err := fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "merged\n", string(got))
		})
	}
}

func TestReadlinkMemFS(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	_, err := fsys.Readlink("/etc/portage/make.profile")
	assert.Error(t, err)
}
