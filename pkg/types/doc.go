// Package types defines the interfaces and result structures shared by the
// diffmask packages: the FS abstraction used for all file access and the
// plain-data results that commands hand to the output renderers.
package types
