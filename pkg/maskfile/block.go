package maskfile

import (
	"slices"
	"strings"

	"github.com/arthur-debert/diffmask/pkg/atom"
	"github.com/arthur-debert/diffmask/pkg/ordered"
)

// Block is a single mask entry: a leading comment followed by atoms.
type Block struct {
	// Before holds blank lines seen before any comment or atom.
	Before []string
	// Comment holds the lines up to the first atom. Blank lines are
	// kept once the comment has started.
	Comment []string
	Atoms   ordered.List[atom.Atom]
	// After holds the trailing comment and blank lines. It always ends
	// with a newline-terminated line.
	After []string

	// interior[i] are filler lines rendered right before Atoms.At(i).
	interior map[int][]string
}

// NewBlock builds a block from raw lines.
func NewBlock(lines []string) *Block {
	b := &Block{}
	var pending []string
	for _, l := range lines {
		filler := isComment(l) || isBlank(l)
		switch {
		case b.Atoms.Len() == 0 && filler:
			if len(b.Comment) == 0 && isBlank(l) {
				b.Before = append(b.Before, l)
			} else {
				b.Comment = append(b.Comment, l)
			}
		case filler:
			pending = append(pending, l)
		default:
			if len(pending) > 0 {
				if b.interior == nil {
					b.interior = make(map[int][]string)
				}
				b.interior[b.Atoms.Len()] = pending
				pending = nil
			}
			b.Atoms.Append(atom.Parse(l))
		}
	}
	b.After = pending

	if len(b.After) == 0 || !strings.HasSuffix(b.After[len(b.After)-1], "\n") {
		b.After = append(b.After, "\n")
	}
	return b
}

func (b *Block) String() string {
	var sb strings.Builder
	for _, l := range b.Before {
		sb.WriteString(l)
	}
	for _, l := range b.Comment {
		sb.WriteString(l)
	}
	for i, a := range b.Atoms.All() {
		for _, l := range b.interior[i] {
			sb.WriteString(l)
		}
		sb.WriteString(a.String())
	}
	for _, l := range b.After {
		sb.WriteString(l)
	}
	return sb.String()
}

// Equal compares the rendered blocks, ignoring surrounding whitespace.
func (b *Block) Equal(other *Block) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return strings.TrimSpace(b.String()) == strings.TrimSpace(other.String())
}

// ContainsAtom reports whether one of the block's atoms equals a.
func (b *Block) ContainsAtom(a atom.Atom) bool {
	return b.Atoms.Contains(a)
}

// CommentEqual reports whether both blocks carry the same leading comment.
func (b *Block) CommentEqual(other *Block) bool {
	return slices.Equal(b.Comment, other.Comment)
}

// MatchesPackage reports whether any atom of the block selects c.
func (b *Block) MatchesPackage(c atom.CPV) bool {
	_, ok := b.Atoms.FindFunc(func(a atom.Atom) bool { return a.Matches(c) })
	return ok
}

// AffectsPackage reports whether any atom names category/name.
func (b *Block) AffectsPackage(category, name string) bool {
	_, ok := b.Atoms.FindFunc(func(a atom.Atom) bool { return a.AffectsPackage(category, name) })
	return ok
}

// Lines returns the rendered block split into lines.
func (b *Block) Lines() []string {
	return SplitLines(b.String())
}

// Clone returns an independent copy of the block.
func (b *Block) Clone() *Block {
	return NewBlock(b.Lines())
}

// Title is the first non-blank comment line without its '#' markers, or
// the first atom when the block has no comment.
func (b *Block) Title() string {
	for _, l := range b.Comment {
		if t := strings.TrimSpace(strings.TrimLeft(l, "#")); t != "" {
			return t
		}
	}
	if b.Atoms.Len() > 0 {
		return b.Atoms.At(0).Text()
	}
	return ""
}

func isComment(l string) bool {
	return strings.HasPrefix(l, "#")
}

func isBlank(l string) bool {
	return strings.TrimSpace(l) == ""
}
