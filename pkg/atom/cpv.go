package atom

import (
	"strings"

	"github.com/arthur-debert/diffmask/pkg/errors"
)

// CPV is a concrete package version: category/package-version[-rN],
// optionally tagged with the repository it comes from.
type CPV struct {
	Category string
	Package  string
	Version  Version
	Repo     string
}

// ParseCPV parses category/package-version with an optional ::repo.
func ParseCPV(s string) (CPV, error) {
	text := strings.TrimSpace(s)
	var c CPV
	if i := strings.Index(text, "::"); i >= 0 {
		c.Repo = text[i+2:]
		text = text[:i]
	}
	cat, pkgver, ok := strings.Cut(text, "/")
	if !ok || !categoryRe.MatchString(cat) || strings.Contains(cat, "*") {
		return CPV{}, errors.Newf(errors.ErrInvalidInput, "invalid package version %q", s)
	}
	pkg, ver, ok := splitPackageVersion(pkgver)
	if !ok || strings.Contains(pkg, "*") {
		return CPV{}, errors.Newf(errors.ErrInvalidInput, "invalid package version %q", s)
	}
	v, err := ParseVersion(ver)
	if err != nil {
		return CPV{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid package version %q", s)
	}
	c.Category, c.Package, c.Version = cat, pkg, v
	return c, nil
}

// Key returns category/package.
func (c CPV) Key() string {
	return c.Category + "/" + c.Package
}

func (c CPV) String() string {
	s := c.Key() + "-" + c.Version.String()
	if c.Repo != "" {
		s += "::" + c.Repo
	}
	return s
}
