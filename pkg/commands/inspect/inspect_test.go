// pkg/commands/inspect/inspect_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: in-memory portage tree (testutil)
// PURPOSE: Test structured summaries of mask and unmask files

package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/commands/inspect"
	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/testutil"
)

func TestInspect_Unmask(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)
	env.WriteUnmask("# mine\ndev-util/bar\n\n## *gentoo*\n# Alice <alice@example.org> (2024-01-01)\n=dev-lang/foo-1.0\n=dev-lang/foo-1.1\n")

	result, err := inspect.Inspect(inspect.InspectOptions{FS: env.FS, Config: env.Config, Paths: env.Paths})
	require.NoError(t, err)

	assert.Equal(t, inspect.SourceUnmask, result.Source)
	assert.Equal(t, env.UnmaskPath(), result.Path)
	require.Len(t, result.Sections, 2)
	assert.True(t, result.Sections[0].Unnamed)
	assert.Equal(t, "gentoo", result.Sections[1].Name)
	assert.Equal(t, 2, result.Blocks)
	assert.Equal(t, 3, result.Atoms)
	assert.Equal(t, "mine", result.Sections[0].Blocks[0].Title)
	assert.Equal(t, []string{"=dev-lang/foo-1.0", "=dev-lang/foo-1.1"}, result.Sections[1].Blocks[0].Atoms)
}

func TestInspect_Mask(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)
	env.SetupStandardTree()

	result, err := inspect.Inspect(inspect.InspectOptions{
		FS: env.FS, Config: env.Config, Paths: env.Paths,
		Source: inspect.SourceMask,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	// unnamed, extra, profile: base, gentoo
	require.Len(t, result.Sections, 4)
	assert.Equal(t, 4, result.Blocks)
	assert.Equal(t, 5, result.Atoms)
}

func TestInspect_MissingUnmask(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)

	result, err := inspect.Inspect(inspect.InspectOptions{FS: env.FS, Config: env.Config, Paths: env.Paths})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Blocks)
	require.Len(t, result.Sections, 1)
}

func TestInspect_UnknownSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)

	_, err := inspect.Inspect(inspect.InspectOptions{
		FS: env.FS, Config: env.Config, Paths: env.Paths,
		Source: "package.use",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
