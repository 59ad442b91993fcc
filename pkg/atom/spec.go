package atom

import (
	"path"
	"regexp"
	"strings"

	"github.com/arthur-debert/diffmask/pkg/errors"
)

// Operator is the version comparison prefix of an atom.
type Operator string

const (
	OpNone         Operator = ""
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "="
	OpApprox       Operator = "~"
	OpGreaterEqual Operator = ">="
	OpGreater      Operator = ">"
)

// longest prefixes first
var operators = []Operator{OpLessEqual, OpGreaterEqual, OpLess, OpGreater, OpEqual, OpApprox}

var (
	categoryRe = regexp.MustCompile(`^[A-Za-z0-9_*][A-Za-z0-9+_.*-]*$`)
	packageRe  = regexp.MustCompile(`^[A-Za-z0-9_*][A-Za-z0-9+_*-]*$`)
	slotRe     = regexp.MustCompile(`^(?:\*|=|[A-Za-z0-9_][A-Za-z0-9+_.-]*(?:/[A-Za-z0-9_][A-Za-z0-9+_.-]*)?=?)$`)
	repoRe     = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*$`)
	useRe      = regexp.MustCompile(`^[A-Za-z0-9!=?(),+_@-]+$`)
)

// Spec is a parsed package atom, e.g. >=dev-lang/go-1.22:0::gentoo[static].
// Category and Package may hold '*' wildcards.
type Spec struct {
	Operator Operator
	Category string
	Package  string
	Version  *Version
	Glob     bool // =cat/pkg-1.2*
	Slot     string
	SubSlot  string
	Repo     string
	Use      []string
}

// ParseSpec parses a trimmed atom. It returns ErrInvalidInput when the
// text does not follow the atom grammar.
func ParseSpec(text string) (*Spec, error) {
	invalid := func(reason string) (*Spec, error) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid atom %q: %s", text, reason)
	}
	if text == "" || strings.ContainsAny(text, " \t") || strings.HasPrefix(text, "#") {
		return invalid("not a single token")
	}

	s := &Spec{}
	rest := text
	for _, op := range operators {
		if strings.HasPrefix(rest, string(op)) {
			s.Operator = op
			rest = rest[len(op):]
			break
		}
	}

	if strings.HasSuffix(rest, "]") {
		open := strings.LastIndex(rest, "[")
		if open < 0 {
			return invalid("unbalanced use dependency")
		}
		for _, flag := range strings.Split(rest[open+1:len(rest)-1], ",") {
			if !useRe.MatchString(flag) {
				return invalid("bad use dependency")
			}
			s.Use = append(s.Use, flag)
		}
		rest = rest[:open]
	}

	if i := strings.Index(rest, "::"); i >= 0 {
		s.Repo = rest[i+2:]
		rest = rest[:i]
		if !repoRe.MatchString(s.Repo) {
			return invalid("bad repository name")
		}
	}

	if i := strings.Index(rest, ":"); i >= 0 {
		slot := rest[i+1:]
		rest = rest[:i]
		if !slotRe.MatchString(slot) {
			return invalid("bad slot")
		}
		s.Slot, s.SubSlot, _ = strings.Cut(slot, "/")
	}

	cat, pkgver, ok := strings.Cut(rest, "/")
	if !ok || !categoryRe.MatchString(cat) {
		return invalid("bad category")
	}
	s.Category = cat

	if s.Operator == OpNone {
		if !validPackageName(pkgver) {
			return invalid("bad package name")
		}
		s.Package = pkgver
		return s, nil
	}

	if s.Operator == OpEqual && strings.HasSuffix(pkgver, "*") {
		s.Glob = true
		pkgver = strings.TrimSuffix(pkgver, "*")
	}
	pkg, ver, ok := splitPackageVersion(pkgver)
	if !ok {
		return invalid("operator without a version")
	}
	v, err := ParseVersion(ver)
	if err != nil {
		return invalid("bad version")
	}
	if s.Operator == OpApprox && v.revision != "" {
		return invalid("~ does not take a revision")
	}
	s.Package = pkg
	s.Version = &v
	return s, nil
}

// splitPackageVersion finds the leftmost hyphen that starts a valid version.
func splitPackageVersion(s string) (pkg, ver string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		if isVersion(s[i+1:]) && validPackageName(s[:i]) {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// validPackageName rejects names that would read as name-version.
func validPackageName(name string) bool {
	if !packageRe.MatchString(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '-' && isVersion(name[i+1:]) {
			return false
		}
	}
	return true
}

// Key returns category/package.
func (s *Spec) Key() string {
	return s.Category + "/" + s.Package
}

// MatchesKey reports whether the atom names category/name, wildcards
// included.
func (s *Spec) MatchesKey(category, name string) bool {
	return globMatch(s.Category, category) && globMatch(s.Package, name)
}

// Matches reports whether the atom selects c. Slot and USE constraints
// are ignored since a bare CPV carries neither. The repository only
// takes part when c names one.
func (s *Spec) Matches(c CPV) bool {
	if !s.MatchesKey(c.Category, c.Package) {
		return false
	}
	if s.Repo != "" && c.Repo != "" && s.Repo != c.Repo {
		return false
	}
	if s.Operator == OpNone {
		return true
	}

	switch s.Operator {
	case OpEqual:
		if s.Glob {
			return globVersion(s.Version.String(), c.Version.String())
		}
		return c.Version.Compare(*s.Version) == 0
	case OpApprox:
		return compareBase(c.Version, *s.Version) == 0
	case OpLess:
		return c.Version.Compare(*s.Version) < 0
	case OpLessEqual:
		return c.Version.Compare(*s.Version) <= 0
	case OpGreater:
		return c.Version.Compare(*s.Version) > 0
	case OpGreaterEqual:
		return c.Version.Compare(*s.Version) >= 0
	}
	return false
}

// globVersion implements =cat/pkg-1.2*: the candidate starts with the
// prefix and does not continue the last numeric component.
func globVersion(prefix, candidate string) bool {
	if !strings.HasPrefix(candidate, prefix) {
		return false
	}
	if len(candidate) == len(prefix) {
		return true
	}
	return !(isDigit(prefix[len(prefix)-1]) && isDigit(candidate[len(prefix)]))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func globMatch(pattern, name string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == name
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
