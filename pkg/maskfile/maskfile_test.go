// pkg/maskfile/maskfile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Parser state machine, block layout and byte-exact rendering

package maskfile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diffmask/pkg/atom"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
)

const gentooStyle = `# Jane Doe <jane@example.org> (2024-01-01)
# Broken with newer compilers.
dev-lang/foo
=dev-libs/bar-1.2

# John Roe <john@example.org> (2024-02-02)
# Removal on 2024-03-01.
app-misc/baz
`

const withSections = `dev-lang/unnamed

## *gentoo*

# Jane Doe <jane@example.org> (2024-01-01)
# reason
dev-lang/foo

## *profile: default/linux*

sys-apps/bar
`

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"gentoo_style", gentooStyle},
		{"named_sections", withSections},
		{"blank_between_atoms", "# c\na/b\n\nc/d\n"},
		{"raw_atom", "# c\nnot a valid atom line\n"},
		{"leading_blank_lines", "\n\n# c\na/b\n"},
		{"footnote_reattached", "# Jane <j@x> (2024)\na/b\n\n# Footnote.\n# John <jn@x> (2024)\nc/d\n"},
		{"comment_only_tail", "a/b\n\n# nothing follows\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := maskfile.ParseString(tt.text)
			if diff := cmp.Diff(tt.text, f.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripDropsOneTrailingBlankLine(t *testing.T) {
	f := maskfile.ParseString("# c\na/b\n\n")
	assert.Equal(t, "# c\na/b\n", f.String())
}

func TestNewBlockLayout(t *testing.T) {
	b := maskfile.NewBlock(maskfile.SplitLines("\n# first\n\n# second\na/b\n\n>=c/d-1.0\n\n\n"))

	if diff := cmp.Diff([]string{"\n"}, b.Before); diff != "" {
		t.Errorf("Before (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"# first\n", "\n", "# second\n"}, b.Comment); diff != "" {
		t.Errorf("Comment (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, b.Atoms.Len())
	assert.Equal(t, "a/b", b.Atoms.At(0).Text())
	assert.Equal(t, ">=c/d-1.0", b.Atoms.At(1).Text())
	assert.Equal(t, []string{"\n", "\n"}, b.After)
	assert.Equal(t, "first", b.Title())
}

func TestNewBlockTerminator(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"no_after", []string{"a/b\n"}, "a/b\n\n"},
		{"missing_final_newline", []string{"a/b"}, "a/b\n"},
		{"after_without_newline", []string{"a/b\n", "# tail"}, "a/b\n# tail\n"},
		{"after_already_blank", []string{"a/b\n", "\n"}, "a/b\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskfile.NewBlock(tt.lines).String())
		})
	}
}

func TestBlockEquality(t *testing.T) {
	a := maskfile.NewBlock([]string{"\n", "# c\n", "a/b\n"})
	b := maskfile.NewBlock([]string{"# c\n", "a/b\n", "\n", "\n"})
	c := maskfile.NewBlock([]string{"# c\n", "a/c\n"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.CommentEqual(c))
	assert.True(t, a.ContainsAtom(atom.Parse("a/b  \n")))
	assert.False(t, a.ContainsAtom(atom.Parse("a/c\n")))
}

func TestBlockMatchesPackage(t *testing.T) {
	b := maskfile.NewBlock(maskfile.SplitLines("# c\n<dev-lang/go-1.20\nnot an atom\n"))

	old, err := atom.ParseCPV("dev-lang/go-1.19")
	require.NoError(t, err)
	current, err := atom.ParseCPV("dev-lang/go-1.22")
	require.NoError(t, err)

	assert.True(t, b.MatchesPackage(old))
	assert.False(t, b.MatchesPackage(current))
	assert.True(t, b.AffectsPackage("dev-lang", "go"))
}

func TestBlockCloneIsIndependent(t *testing.T) {
	b := maskfile.NewBlock(maskfile.SplitLines("# c\na/b\n"))
	clone := b.Clone()
	require.True(t, b.Equal(clone))
	assert.NotSame(t, b, clone)

	clone.Atoms.Append(atom.Parse("x/y\n"))
	assert.Equal(t, 1, b.Atoms.Len())
}

func TestParseMaskReasonReattachesFootnote(t *testing.T) {
	f := maskfile.ParseString("# Jane <j@x> (2024)\na/b\n\n# Footnote.\n# John <jn@x> (2024)\nc/d\n")

	blocks := f.Unnamed().Blocks.Values()
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"\n", "# Footnote.\n"}, blocks[0].After)
	assert.Equal(t, []string{"# John <jn@x> (2024)\n"}, blocks[1].Comment)
}

func TestParseMaskReasonMergesOnlyOnce(t *testing.T) {
	// The header that closes a block uses up the merge; the next
	// header therefore opens its own block.
	f := maskfile.ParseString("# A <a@x>\na/b\n# B <b@x>\n# C <c@x>\nc/d\n")

	blocks := f.Unnamed().Blocks.Values()
	require.Len(t, blocks, 2)
	assert.Equal(t, "# A <a@x>\na/b\n\n", blocks[0].String())
	assert.Equal(t, []string{"# B <b@x>\n", "# C <c@x>\n"}, blocks[1].Comment)
}

func TestParseSections(t *testing.T) {
	f := maskfile.ParseString(withSections)

	require.Equal(t, 3, f.Repos.Len())
	assert.True(t, f.Unnamed().Unnamed())
	assert.Equal(t, 1, f.Unnamed().Blocks.Len())

	var names []string
	for _, r := range f.Named() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"gentoo", "profile: default/linux"}, names)

	gentoo, ok := f.Repo("gentoo")
	require.True(t, ok)
	require.Equal(t, 1, gentoo.Blocks.Len())
	assert.Equal(t, "# reason\n", gentoo.Blocks.At(0).Comment[1])

	_, ok = f.Repo("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, f.Blocks())
}

func TestParseHeaderDiscardsPendingComment(t *testing.T) {
	f := maskfile.ParseString("a/b\n# stray\n## *x*\nc/d\n")

	assert.NotContains(t, f.String(), "stray")
	assert.Equal(t, "a/b\n\n", f.Unnamed().Blocks.At(0).String())
	x, ok := f.Repo("x")
	require.True(t, ok)
	assert.Equal(t, 1, x.Blocks.Len())
}

func TestParseRepeatedHeaderMergesSection(t *testing.T) {
	f := maskfile.ParseString("## *x*\na/b\n\n## *y*\nc/d\n\n## *x*\ne/f\n")

	require.Len(t, f.Named(), 2)
	x, _ := f.Repo("x")
	assert.Equal(t, 2, x.Blocks.Len())
	assert.Equal(t, "## *x*\na/b\n\ne/f\n\n", x.String())
}

func TestParseEmptyHeaderNameSelectsUnnamedSection(t *testing.T) {
	f := maskfile.ParseString("## *x*\na/b\n\n## **\n# Note\nc/d\n")

	x, ok := f.Repo("x")
	require.True(t, ok)
	assert.Equal(t, 1, x.Blocks.Len())
	require.Equal(t, 1, f.Unnamed().Blocks.Len())
	b := f.Unnamed().Blocks.At(0)
	assert.Equal(t, []string{"# Note\n"}, b.Comment)
	assert.Equal(t, "c/d", b.Atoms.At(0).Text())
}

func TestFileSection(t *testing.T) {
	f := maskfile.NewFile()
	r := f.Section("gentoo")
	assert.Same(t, r, f.Section("gentoo"))
	r.Blocks.Append(maskfile.NewBlock([]string{"a/b\n"}))
	assert.Equal(t, "## *gentoo*\na/b\n", f.String())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, maskfile.SplitLines(""))
	assert.Equal(t, []string{"a\n", "b"}, maskfile.SplitLines("a\nb"))
	assert.Equal(t, []string{"a\n", "\n"}, maskfile.SplitLines("a\n\n"))
}
