// pkg/viewer/viewer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, /bin/sh for the exec test
// PURPOSE: Command splitting, temp file lifecycle and exit status handling

package viewer_test

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/filesystem"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/viewer"
)

type call struct {
	name    string
	args    []string
	content string
}

func recorder(t *testing.T, fsys types.FS, calls *[]call, result error) viewer.Runner {
	return func(_ context.Context, name string, args []string, _ io.Reader, _, _ io.Writer) error {
		require.GreaterOrEqual(t, len(args), 2)
		data, err := fsys.ReadFile(args[len(args)-2])
		require.NoError(t, err)
		*calls = append(*calls, call{name: name, args: args, content: string(data)})
		return result
	}
}

func TestCompare(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/tmp", 0755))

	var calls []call
	v := viewer.Viewer{
		FS:      fsys,
		Command: `vimdiff -c "set diffopt+=iwhite"`,
		TempDir: "/tmp",
		Run:     recorder(t, fsys, &calls, nil),
	}
	require.NoError(t, v.Compare(context.Background(), "## *gentoo*\na/b\n", "/etc/portage/package.unmask"))

	require.Len(t, calls, 1)
	c := calls[0]
	assert.Equal(t, "vimdiff", c.name)
	require.Len(t, c.args, 4)
	assert.Equal(t, []string{"-c", "set diffopt+=iwhite"}, c.args[:2])
	assert.Equal(t, "/etc/portage/package.unmask", c.args[3])
	assert.Equal(t, "## *gentoo*\na/b\n", c.content)

	_, err := fsys.Stat(c.args[2])
	assert.ErrorIs(t, err, fs.ErrNotExist, "temp file is removed afterwards")
}

func TestCompareDefaultCommand(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	var calls []call
	v := viewer.Viewer{FS: fsys, Run: recorder(t, fsys, &calls, nil)}
	require.NoError(t, v.Compare(context.Background(), "", "/u"))
	require.Len(t, calls, 1)
	assert.Equal(t, viewer.DefaultCommand, calls[0].name)
}

func TestCompareIgnoresExitStatus(t *testing.T) {
	err := viewer.Viewer{
		FS:      filesystem.NewOS(),
		Command: "sh -c 'exit 3' viewer",
		TempDir: t.TempDir(),
	}.Compare(context.Background(), "a/b\n", "/nonexistent")
	assert.NoError(t, err)
}

func TestCompareStartFailure(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	v := viewer.Viewer{
		FS: fsys,
		Run: func(context.Context, string, []string, io.Reader, io.Writer, io.Writer) error {
			return exec.ErrNotFound
		},
	}
	err := v.Compare(context.Background(), "", "/u")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrViewerExecute))
	assert.True(t, stderrors.Is(err, exec.ErrNotFound))
}

func TestCompareBadCommand(t *testing.T) {
	v := viewer.Viewer{FS: filesystem.NewAferoFS(afero.NewMemMapFs()), Command: `vimdiff "unterminated`}
	err := v.Compare(context.Background(), "", "/u")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
