package atom

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/diffmask/pkg/errors"
)

var versionRe = regexp.MustCompile(`^(\d+)((?:\.\d+)*)([a-z]?)((?:_(?:pre|p|beta|alpha|rc)\d*)*)(?:-r(\d+))?$`)

var suffixRe = regexp.MustCompile(`_(pre|p|beta|alpha|rc)(\d*)`)

// suffix ranks; a version with no suffix sits between rc and p.
var suffixRank = map[string]int{
	"alpha": 0,
	"beta":  1,
	"pre":   2,
	"rc":    3,
	"p":     5,
}

const noSuffixRank = 4

type versionSuffix struct {
	kind string
	num  string
}

// Version is a portage package version such as 1.2.3b_rc1-r2.
type Version struct {
	raw        string
	components []string
	letter     string
	suffixes   []versionSuffix
	revision   string
}

// ParseVersion parses a version string, revision included.
func ParseVersion(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.Newf(errors.ErrInvalidInput, "invalid version %q", s)
	}
	v := Version{raw: s, letter: m[3], revision: m[5]}
	v.components = append(v.components, m[1])
	if m[2] != "" {
		v.components = append(v.components, strings.Split(m[2][1:], ".")...)
	}
	for _, sm := range suffixRe.FindAllStringSubmatch(m[4], -1) {
		v.suffixes = append(v.suffixes, versionSuffix{kind: sm[1], num: sm[2]})
	}
	return v, nil
}

func isVersion(s string) bool {
	return versionRe.MatchString(s)
}

func (v Version) String() string {
	return v.raw
}

// WithoutRevision returns the version text with any -rN removed.
func (v Version) WithoutRevision() string {
	if i := strings.LastIndex(v.raw, "-r"); i >= 0 && v.revision != "" {
		return v.raw[:i]
	}
	return v.raw
}

// Compare orders two versions the way portage does. The result is
// negative, zero or positive.
func (v Version) Compare(o Version) int {
	if c := compareBase(v, o); c != 0 {
		return c
	}
	return compareNumeric(v.revision, o.revision)
}

// compareBase compares everything but the revision.
func compareBase(v, o Version) int {
	if c := compareNumeric(v.components[0], o.components[0]); c != 0 {
		return c
	}
	for i := 1; i < len(v.components) && i < len(o.components); i++ {
		a, b := v.components[i], o.components[i]
		var c int
		if strings.HasPrefix(a, "0") || strings.HasPrefix(b, "0") {
			c = strings.Compare(strings.TrimRight(a, "0"), strings.TrimRight(b, "0"))
		} else {
			c = compareNumeric(a, b)
		}
		if c != 0 {
			return c
		}
	}
	if c := len(v.components) - len(o.components); c != 0 {
		return sign(c)
	}
	if c := strings.Compare(v.letter, o.letter); c != 0 {
		return c
	}

	n := max(len(v.suffixes), len(o.suffixes))
	for i := 0; i < n; i++ {
		ra, na := noSuffixRank, ""
		if i < len(v.suffixes) {
			ra, na = suffixRank[v.suffixes[i].kind], v.suffixes[i].num
		}
		rb, nb := noSuffixRank, ""
		if i < len(o.suffixes) {
			rb, nb = suffixRank[o.suffixes[i].kind], o.suffixes[i].num
		}
		if ra != rb {
			return sign(ra - rb)
		}
		if c := compareNumeric(na, nb); c != 0 {
			return c
		}
	}
	return 0
}

// compareNumeric compares unbounded decimal strings. Empty means zero.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return strings.Compare(a, b)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
