// Package maskfile parses package.mask style files into sections of
// comment+atom blocks and renders them back to text.
//
// A File is a list of sections (Repo). The first section is always the
// unnamed one holding entries that appear before any "## *name*" header.
// Each section is a list of Blocks; a Block owns its leading comment, its
// atoms and the filler lines around them, so rendering an unmodified File
// reproduces its input.
package maskfile
