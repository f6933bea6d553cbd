package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFS is the VFS of the running process. Chdir changes the process
// working directory, which is what ?cd means outside of tests.
type OSFS struct{}

// NewOSFS returns the process file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

var _ VFS = (*OSFS)(nil)

func (*OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (*OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (*OSFS) Remove(path string) error { return os.Remove(path) }

func (*OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (*OSFS) Abs(path string) (string, error) { return filepath.Abs(path) }

func (*OSFS) Chdir(dir string) error { return os.Chdir(dir) }

func (*OSFS) Getwd() (string, error) { return os.Getwd() }

func (*OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
