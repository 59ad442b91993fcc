package types

import (
	"io/fs"
)

// FS is the filesystem interface required for diffmask operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error

	// CreateTemp writes data to a new file in dir whose name follows
	// pattern (see os.CreateTemp) and returns its path.
	CreateTemp(dir, pattern string, data []byte) (string, error)

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
