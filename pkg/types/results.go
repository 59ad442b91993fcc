package types

// MatchKind names the strategy that selected a canonical block.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchComment MatchKind = "comment"
	MatchAtom    MatchKind = "atom"
)

// BlockSummary is a short, render-friendly description of a block.
type BlockSummary struct {
	Section string      `json:"section" yaml:"section"`
	Title   string      `json:"title" yaml:"title"` // first comment line, or first atom
	Atoms   []string    `json:"atoms" yaml:"atoms"`
	Matches []MatchKind `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// UpdateResult holds the result of the 'update' command.
type UpdateResult struct {
	UnmaskPath string         `json:"unmaskPath" yaml:"unmaskPath"`
	Written    string         `json:"written,omitempty" yaml:"written,omitempty"` // protected path the new content went to
	UpToDate   bool           `json:"upToDate" yaml:"upToDate"`
	DryRun     bool           `json:"dryRun" yaml:"dryRun"`
	Content    string         `json:"content,omitempty" yaml:"content,omitempty"`
	Kept       []BlockSummary `json:"kept" yaml:"kept"`
	Dropped    []BlockSummary `json:"dropped" yaml:"dropped"`
	Ambiguous  []BlockSummary `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
}

// AddResult holds the result of the 'add' command.
type AddResult struct {
	Added     []BlockSummary `json:"added" yaml:"added"`
	Unmatched []string       `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
	Update    *UpdateResult  `json:"update,omitempty" yaml:"update,omitempty"`
}

// SectionInfo describes one section of a parsed mask file.
type SectionInfo struct {
	Name    string         `json:"name" yaml:"name"`
	Unnamed bool           `json:"unnamed" yaml:"unnamed"`
	Blocks  []BlockSummary `json:"blocks" yaml:"blocks"`
}

// InspectResult holds the result of the 'inspect' command.
type InspectResult struct {
	Source   string        `json:"source" yaml:"source"`
	Path     string        `json:"path,omitempty" yaml:"path,omitempty"`
	Sections []SectionInfo `json:"sections" yaml:"sections"`
	Blocks   int           `json:"blocks" yaml:"blocks"`
	Atoms    int           `json:"atoms" yaml:"atoms"`
}

// MergedResult holds the canonical merged package.mask.
type MergedResult struct {
	Sources []string `json:"sources" yaml:"sources"`
	Content string   `json:"content" yaml:"content"`
}

// ConfigResult holds the effective configuration rendered as TOML.
type ConfigResult struct {
	ConfigFile string `json:"configFile" yaml:"configFile"`
	Content    string `json:"content" yaml:"content"`
	Written    bool   `json:"written" yaml:"written"`
}
