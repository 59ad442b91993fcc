package maskfile

import (
	"strings"

	"github.com/arthur-debert/diffmask/pkg/ordered"
)

// Repo is a section of a mask file. The unnamed section has an empty Name.
type Repo struct {
	Name   string
	Blocks ordered.List[*Block]
}

// NewRepo creates an empty section.
func NewRepo(name string) *Repo {
	return &Repo{Name: name}
}

func (r *Repo) Unnamed() bool {
	return r.Name == ""
}

func (r *Repo) String() string {
	if r.Unnamed() {
		return r.Blocks.String()
	}
	return Header(r.Name) + r.Blocks.String()
}

// Equal compares section names and rendered content.
func (r *Repo) Equal(other *Repo) bool {
	return r.Name == other.Name &&
		strings.TrimSpace(r.Blocks.String()) == strings.TrimSpace(other.Blocks.String())
}

// Header renders the section header line for name.
func Header(name string) string {
	return "## *" + name + "*\n"
}

// File is a parsed mask file.
type File struct {
	Repos ordered.List[*Repo]
}

// NewFile returns a file holding only the empty unnamed section.
func NewFile() *File {
	f := &File{}
	f.Repos.Append(NewRepo(""))
	return f
}

// Unnamed returns the section for entries outside any header.
func (f *File) Unnamed() *Repo {
	return f.Repos.At(0)
}

// Repo looks a named section up.
func (f *File) Repo(name string) (*Repo, bool) {
	return f.Repos.FindFunc(func(r *Repo) bool { return r.Name == name })
}

// Named returns the named sections in file order.
func (f *File) Named() []*Repo {
	return f.Repos.Values()[1:]
}

// Section returns the section called name, appending it when missing.
func (f *File) Section(name string) *Repo {
	if r, ok := f.Repo(name); ok {
		return r
	}
	r := NewRepo(name)
	f.Repos.Append(r)
	return r
}

// Blocks counts the blocks of every section.
func (f *File) Blocks() int {
	n := 0
	for _, r := range f.Repos.All() {
		n += r.Blocks.Len()
	}
	return n
}

// String renders the file. A document ending in a blank line loses it.
func (f *File) String() string {
	out := f.Repos.String()
	if strings.HasSuffix(out, "\n\n") {
		return out[:len(out)-1]
	}
	return out
}
