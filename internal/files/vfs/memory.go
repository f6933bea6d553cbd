package vfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MemFS implements VFS using an in-memory file system.
// It is primarily used for testing.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool
	cwd   string
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system rooted at "/".
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
		cwd:   "/",
	}
}

// Ensure MemFS implements VFS.
var _ VFS = (*MemFS)(nil)

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// WriteFile writes data to a file, creating it if necessary.
// The parent directory must exist.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: syscall.EISDIR}
	}
	if !m.dirs[path.Dir(filePath)] {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[filePath] = &memFile{content: content, mode: perm, modTime: time.Now()}
	return nil
}

// Remove removes a file or empty directory.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if _, ok := m.files[filePath]; ok {
		delete(m.files, filePath)
		return nil
	}
	if m.dirs[filePath] {
		if m.hasChildren(filePath) {
			return &fs.PathError{Op: "remove", Path: filePath, Err: syscall.ENOTEMPTY}
		}
		delete(m.dirs, filePath)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return memInfo{name: path.Base(filePath), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
	}
	if m.dirs[filePath] {
		return memInfo{name: path.Base(filePath), mode: fs.ModeDir | 0755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// memInfo is the fs.FileInfo of a MemFS entry.
type memInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return i.mode }
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.mode.IsDir() }
func (i memInfo) Sys() any           { return nil }

// Abs returns the absolute path.
func (m *MemFS) Abs(filePath string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cleanPath(filePath), nil
}

// Chdir changes the working directory. The directory must exist.
func (m *MemFS) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = m.cleanPath(dir)
	if !m.dirs[dir] {
		if _, ok := m.files[dir]; ok {
			return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
		}
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	m.cwd = dir
	return nil
}

// Getwd returns the working directory.
func (m *MemFS) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cwd, nil
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	_, ok := m.files[filePath]
	return ok || m.dirs[filePath]
}

// MkdirAll creates a directory and all parent directories.
func (m *MemFS) MkdirAll(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = m.cleanPath(dir)
	for dir != "/" {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

// Files returns the sorted paths of all files.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// cleanPath resolves p against the working directory. Caller holds mu.
func (m *MemFS) cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = path.Join(m.cwd, p)
	}
	return path.Clean(p)
}

func (m *MemFS) hasChildren(dir string) bool {
	prefix := dir + "/"
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for d := range m.dirs {
		if strings.HasPrefix(d, prefix) {
			return true
		}
	}
	return false
}
