package fnode

import "io/fs"

// FileSystem is the statically declared table of OS calls a Tree consumes,
// one call per node operation. Implementations are injected at construction
// (see WithFileSystem); the library never looks up OS API members at
// runtime.
//
// Production code uses the OS-backed implementation from
// internal/files/filesystem; tests use the in-memory one.
type FileSystem interface {
	// Stat returns metadata for the entry at path.
	Stat(path string) (fs.FileInfo, error)

	// ReadDir returns the directory entries at path, sorted by filename.
	ReadDir(path string) ([]fs.DirEntry, error)

	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it if
	// needed.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// AppendFile appends data to the file at path, creating it if needed.
	AppendFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates the directory at path along with any missing
	// ancestors. Existing directories are not an error.
	MkdirAll(path string, perm fs.FileMode) error
}
