package maskfile

import "strings"

// SplitLines splits text into lines, keeping each "\n". The last line
// may lack one.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ParseString parses a whole document.
func ParseString(text string) *File {
	return Parse(SplitLines(text))
}

// sectionName returns the name of a "## *name*\n" header line. The name
// may be empty, which selects the unnamed section.
func sectionName(l string) (string, bool) {
	if len(l) < 6 || !strings.HasPrefix(l, "## *") || !strings.HasSuffix(l, "*\n") {
		return "", false
	}
	return l[4 : len(l)-2], true
}

// isMaskReason reports lines like "# Jane Doe <jane@example.org> (2024-01-01)"
// that open a new upstream mask entry.
func isMaskReason(l string) bool {
	return strings.Contains(l, "<") && strings.Contains(l, ">")
}

type rawSection struct {
	name   string
	blocks [][]string
}

// Parse builds a File from lines as produced by SplitLines. Parsing never
// fails; lines that are not valid atoms are kept as raw atoms.
func Parse(lines []string) *File {
	sections := []*rawSection{{}}
	cur := sections[0]

	var buf []string
	prev := -1 // index in cur.blocks of the block closed last, if mergeable
	gotAtoms := false

	for _, l := range lines {
		if isComment(l) {
			if gotAtoms {
				cur.blocks = append(cur.blocks, buf)
				prev = len(cur.blocks) - 1
				buf = nil
				gotAtoms = false
			}
			if name, ok := sectionName(l); ok {
				buf = nil
				prev = -1
				cur = nil
				for _, s := range sections {
					if s.name == name {
						cur = s
					}
				}
				if cur == nil {
					cur = &rawSection{name: name}
					sections = append(sections, cur)
				}
				continue
			}
			if isMaskReason(l) && prev >= 0 {
				cur.blocks[prev] = append(cur.blocks[prev], buf...)
				prev = -1
				buf = nil
			}
		} else if !isBlank(l) {
			gotAtoms = true
		}
		buf = append(buf, l)
	}
	if strings.TrimSpace(strings.Join(buf, "")) != "" {
		cur.blocks = append(cur.blocks, buf)
	}

	f := &File{}
	for _, s := range sections {
		r := NewRepo(s.name)
		for _, lines := range s.blocks {
			r.Blocks.Append(NewBlock(lines))
		}
		f.Repos.Append(r)
	}
	return f
}
