// pkg/commands/add/add_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: in-memory portage tree (testutil)
// PURPOSE: Test unmasking packages by copying their canonical mask blocks

package add

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/testutil"
)

func TestAddPackages(t *testing.T) {
	tests := []struct {
		name          string
		packages      []string
		wantSections  []string
		wantTitles    []string
		wantUnmatched []string
	}{
		{
			name:         "package_name",
			packages:     []string{"dev-util/bar"},
			wantSections: []string{"gentoo"},
			wantTitles:   []string{"Bob <bob@example.org> (2024-02-02)"},
		},
		{
			name:         "exact_version",
			packages:     []string{"=dev-lang/foo-1.0"},
			wantSections: []string{"gentoo"},
			wantTitles:   []string{"Alice <alice@example.org> (2024-01-01)"},
		},
		{
			name:          "version_not_masked",
			packages:      []string{"=dev-lang/foo-2.0"},
			wantUnmatched: []string{"=dev-lang/foo-2.0"},
		},
		{
			name:         "ranged_overlay_mask",
			packages:     []string{"=app-misc/qux-3.1"},
			wantSections: []string{"extra"},
			wantTitles:   []string{"Carol <carol@example.org> (2024-03-03)"},
		},
		{
			name:         "profile_mask",
			packages:     []string{"sys-apps/thing"},
			wantSections: []string{"profile: base"},
		},
		{
			name:         "same_block_added_once",
			packages:     []string{"dev-util/bar", "dev-util/baz"},
			wantSections: []string{"gentoo"},
		},
		{
			name:          "partly_unmatched",
			packages:      []string{"nope/nothing", "dev-util/baz"},
			wantSections:  []string{"gentoo"},
			wantUnmatched: []string{"nope/nothing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, nil)
			env.SetupStandardTree()

			result, err := AddPackages(AddOptions{
				FS:       env.FS,
				Config:   env.Config,
				Paths:    env.Paths,
				Packages: tt.packages,
				DryRun:   true,
			})
			require.NoError(t, err)

			var sections, titles []string
			for _, b := range result.Added {
				sections = append(sections, b.Section)
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.wantSections, sections)
			if tt.wantTitles != nil {
				assert.Equal(t, tt.wantTitles, titles)
			}
			assert.Equal(t, tt.wantUnmatched, result.Unmatched)

			require.NotNil(t, result.Update)
			assert.Len(t, result.Update.Kept, len(tt.wantSections))
		})
	}
}

func TestAddPackages_WritesProtectedFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)
	env.SetupStandardTree()

	result, err := AddPackages(AddOptions{
		FS:       env.FS,
		Config:   env.Config,
		Paths:    env.Paths,
		Packages: []string{"dev-util/bar"},
	})
	require.NoError(t, err)

	// a missing package.unmask gets an empty placeholder so the new
	// content lands in a ._cfg file
	assert.Equal(t, "", env.ReadFile(env.UnmaskPath()))
	require.Equal(t, env.ProtectedPath(0), result.Update.Written)

	written := maskfile.ParseString(env.ReadFile(result.Update.Written))
	gentoo, ok := written.Repo("gentoo")
	require.True(t, ok)
	require.Equal(t, 1, gentoo.Blocks.Len())
	assert.Equal(t, "Bob <bob@example.org> (2024-02-02)", gentoo.Blocks.At(0).Title())
}

func TestAddPackages_KeepsExistingEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)
	env.SetupStandardTree()
	env.WriteUnmask("sys-apps/thing\n")

	result, err := AddPackages(AddOptions{
		FS:       env.FS,
		Config:   env.Config,
		Paths:    env.Paths,
		Packages: []string{"=dev-lang/foo-1.0"},
		DryRun:   true,
	})
	require.NoError(t, err)

	var sections []string
	for _, k := range result.Update.Kept {
		sections = append(sections, k.Section)
	}
	assert.Equal(t, []string{"profile: base", "gentoo"}, sections)
}

func TestAddPackages_NoPackages(t *testing.T) {
	env := testutil.NewTestEnvironment(t, nil)

	_, err := AddPackages(AddOptions{FS: env.FS, Config: env.Config, Paths: env.Paths})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMatcher(t *testing.T) {
	block := maskfile.NewBlock([]string{"# why\n", ">=dev-lang/go-1.22\n", "not an atom\n"})

	tests := []struct {
		pkg  string
		want bool
	}{
		{"dev-lang/go", true},
		{"=dev-lang/go-1.23", true},
		{"=dev-lang/go-1.21", false},
		{">=dev-lang/go-1.0", true},
		{"dev-lang/rust", false},
		{"not an atom", true},
		{"something else", false},
	}

	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher(tt.pkg)(block))
		})
	}
}
