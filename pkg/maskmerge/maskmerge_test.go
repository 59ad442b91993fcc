// pkg/maskmerge/maskmerge_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Boilerplate stripping and source ordering of the merged mask

package maskmerge_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/filesystem"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/maskmerge"
	"github.com/arthur-debert/diffmask/pkg/portage"
	"github.com/arthur-debert/diffmask/pkg/types"
)

const gentooMask = `# Copyright 2024 Gentoo Authors
# Distributed under the terms of the GNU General Public License v2

# Example:
## # Dev E. Loper <developer@gentoo.org> (2019-07-01)
## # Masking foo.
## cat/foo

# Jane Doe <jane@example.org> (2024-01-01)
# Broken.
dev-lang/foo
`

func memFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
	return fsys
}

func TestStripBoilerplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "license_and_examples",
			in:   gentooMask,
			want: "# Jane Doe <jane@example.org> (2024-01-01)\n# Broken.\ndev-lang/foo\n",
		},
		{
			name: "comment_glued_to_atom_at_top",
			in:   "# reason\ncat/pkg\n",
			want: "# reason\ncat/pkg\n",
		},
		{
			name: "atom_first",
			in:   "cat/pkg\n# later\n",
			want: "cat/pkg\n# later\n",
		},
		{
			name: "no_atoms",
			in:   "# only\n\n# comments\n",
			want: "# only\n\n# comments\n",
		},
		{
			name: "blank_between_run_and_atom",
			in:   "# license\n\n# entry\n\ncat/pkg\n",
			want: "# entry\n\ncat/pkg\n",
		},
		{
			name: "leading_blank_lines",
			in:   "\n\n# entry\ncat/pkg\n",
			want: "# entry\ncat/pkg\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maskmerge.StripBoilerplate(maskfile.SplitLines(tt.in))
			assert.Equal(t, tt.want, strings.Join(got, ""))
		})
	}
}

func TestBuildOrder(t *testing.T) {
	root := "/var/db/repos/gentoo/profiles"
	fsys := memFS(t, map[string]string{
		root + "/package.mask":                         gentooMask,
		"/var/db/repos/local/profiles/package.mask/a": "# A <a@x>\nlocal/a\n",
		"/var/db/repos/local/profiles/package.mask/b": "local/b",
		root + "/base/package.mask":                    "# Base <b@x>\nsys-apps/base\n",
	})
	gentoo := portage.Repository{Name: "gentoo", Location: "/var/db/repos/gentoo"}
	plan := maskmerge.Plan{
		Repositories: []portage.Repository{
			gentoo,
			{Name: "guru", Location: "/var/db/repos/guru"},
			{Name: "local", Location: "/var/db/repos/local"},
		},
		Profiles:     []string{root + "/base", root + "/default/linux"},
		ProfilesRoot: root,
	}

	lines, err := maskmerge.NewBuilder(fsys).Build(plan)
	require.NoError(t, err)

	want := "\n## *gentoo*\n\n# Jane Doe <jane@example.org> (2024-01-01)\n# Broken.\ndev-lang/foo\n" +
		"\n## *local*\n\n# A <a@x>\nlocal/a\nlocal/b\n" +
		"\n## *profile: base*\n\n# Base <b@x>\nsys-apps/base\n"
	if diff := cmp.Diff(want, strings.Join(lines, "")); diff != "" {
		t.Errorf("merged mask (-want +got):\n%s", diff)
	}

	f := maskfile.Parse(lines)
	var sections []string
	for _, r := range f.Named() {
		sections = append(sections, r.Name)
	}
	assert.Equal(t, []string{"gentoo", "local", "profile: base"}, sections)
	assert.Equal(t, 0, f.Unnamed().Blocks.Len())

	plan.Main = &gentoo
	lines, err = maskmerge.NewBuilder(fsys).Build(plan)
	require.NoError(t, err)
	f = maskfile.Parse(lines)
	sections = sections[:0]
	for _, r := range f.Named() {
		sections = append(sections, r.Name)
	}
	assert.Equal(t, []string{"local", "profile: base", "gentoo"}, sections)
}

func TestBuildNothingToMerge(t *testing.T) {
	lines, err := maskmerge.NewBuilder(memFS(t, nil)).Build(maskmerge.Plan{
		Repositories: []portage.Repository{{Name: "gentoo", Location: "/nowhere"}},
		Profiles:     []string{"/nowhere/profiles/base"},
	})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestProfileLabelWithoutRoot(t *testing.T) {
	fsys := memFS(t, map[string]string{"/p/base/package.mask": "a/b\n"})
	lines, err := maskmerge.NewBuilder(fsys).Build(maskmerge.Plan{Profiles: []string{"/p/base"}})
	require.NoError(t, err)
	assert.Contains(t, lines, "## *profile: /p/base*\n")
}
