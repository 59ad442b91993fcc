// Package atom models one package-specifier line of a mask file.
//
// An Atom is a tagged union: a line that follows the portage atom grammar is
// kept as a parsed Spec, anything else is kept verbatim as raw text. Parsing
// never fails, so malformed input survives a parse/render cycle untouched.
package atom

import "strings"

// Kind tells which variant an Atom holds.
type Kind int

const (
	KindRaw Kind = iota
	KindParsed
)

func (k Kind) String() string {
	if k == KindParsed {
		return "parsed"
	}
	return "raw"
}

// Atom is a single package-matching line.
type Atom struct {
	kind Kind
	line string
	spec *Spec
}

// Parse turns one line (terminator included) into an Atom.
func Parse(line string) Atom {
	spec, err := ParseSpec(strings.TrimSpace(line))
	if err != nil {
		return Atom{kind: KindRaw, line: line}
	}
	return Atom{kind: KindParsed, line: line, spec: spec}
}

// Raw builds a raw atom without attempting to parse it.
func Raw(line string) Atom {
	return Atom{kind: KindRaw, line: line}
}

func (a Atom) Kind() Kind {
	return a.kind
}

// Spec returns the parsed specifier, or false for raw atoms.
func (a Atom) Spec() (*Spec, bool) {
	return a.spec, a.kind == KindParsed
}

// String returns the line exactly as it was read.
func (a Atom) String() string {
	return a.line
}

// Text is the line without trailing whitespace.
func (a Atom) Text() string {
	return strings.TrimRight(a.line, " \t\r\n")
}

// Equal compares the text of two atoms, ignoring trailing whitespace.
func (a Atom) Equal(other Atom) bool {
	return a.Text() == other.Text()
}

// Matches reports whether the atom selects the given package version.
// Raw atoms never match anything.
func (a Atom) Matches(c CPV) bool {
	if a.kind != KindParsed {
		return false
	}
	return a.spec.Matches(c)
}

// AffectsPackage reports whether the atom names the package key
// category/name, regardless of version constraints.
func (a Atom) AffectsPackage(category, name string) bool {
	if a.kind != KindParsed {
		return false
	}
	return a.spec.MatchesKey(category, name)
}
