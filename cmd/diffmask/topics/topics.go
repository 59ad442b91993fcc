// Package topics embeds the markdown help topics of the diffmask command.
package topics

import "embed"

// FS holds the topic files, served by "diffmask help <topic>".
//
//go:embed *.md
var FS embed.FS
