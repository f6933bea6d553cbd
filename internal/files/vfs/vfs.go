// Package vfs is the file system the editor's documents live on, plus the
// text codecs used to read and write them.
//
// Store talks to a VFS rather than to package os so that the file
// directives (?wf, ?rf, ?cd and file switching) run against MemFS in tests.
package vfs

import "io/fs"

// VFS is the set of file operations the file directives need. Relative
// paths resolve against the VFS working directory, which ?cd changes.
type VFS interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates path. The parent directory must exist.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error

	Stat(path string) (fs.FileInfo, error)

	// Abs resolves path against the working directory.
	Abs(path string) (string, error)

	Chdir(dir string) error
	Getwd() (string, error)

	// Exists reports whether path names a file or directory.
	Exists(path string) bool
}
