package files

import (
	"errors"
	"io/fs"

	"github.com/dshills/whiskey/internal/files/vfs"
)

// DefaultMaxFileSize is the largest file Open accepts.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Store opens and writes documents through a VFS.
// It is used from the editor's single event loop and is not safe for
// concurrent use.
type Store struct {
	vfs         vfs.VFS
	maxFileSize int64
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size. Zero means unlimited.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// NewStore creates a Store backed by fsys.
func NewStore(fsys vfs.VFS, opts ...Option) *Store {
	s := &Store{
		vfs:         fsys,
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FS returns the underlying file system.
func (s *Store) FS() vfs.VFS {
	return s.vfs
}

// Open reads name and returns its Document. A file that does not exist
// opens as a new, empty document.
func (s *Store) Open(name string) (*Document, error) {
	absPath, err := s.vfs.Abs(name)
	if err != nil {
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}

	info, err := s.vfs.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(absPath), nil
		}
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: name, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, &PathError{Op: "open", Path: name, Err: ErrFileTooLarge}
	}

	content, err := s.vfs.ReadFile(absPath)
	if err != nil {
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}
	if vfs.IsBinary(content) {
		return nil, &PathError{Op: "open", Path: name, Err: ErrBinaryFile}
	}

	text, enc, err := vfs.Decode(content)
	if err != nil {
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}

	doc := &Document{
		Path:            absPath,
		Encoding:        enc,
		LineEnding:      vfs.DetectLineEnding(text),
		TrailingNewline: text == "" || hasLineBreakSuffix(text),
	}
	doc.setLines(vfs.SplitLines(text))
	return doc, nil
}

// Save writes lines to the document's path and records them as its
// content.
func (s *Store) Save(doc *Document, lines []string) error {
	if doc.Path == "" {
		return &PathError{Op: "save", Path: "", Err: ErrNoName}
	}

	content, err := doc.Content(lines)
	if err != nil {
		return &PathError{Op: "save", Path: doc.Path, Err: err}
	}
	if err := s.vfs.WriteFile(doc.Path, content, 0644); err != nil {
		return &PathError{Op: "save", Path: doc.Path, Err: err}
	}

	doc.setLines(lines)
	doc.New = false
	return nil
}

// SaveAs writes lines to name and moves the document there.
func (s *Store) SaveAs(doc *Document, name string, lines []string) error {
	absPath, err := s.vfs.Abs(name)
	if err != nil {
		return &PathError{Op: "save", Path: name, Err: err}
	}
	if info, err := s.vfs.Stat(absPath); err == nil && info.IsDir() {
		return &PathError{Op: "save", Path: name, Err: ErrIsDirectory}
	}

	prev := doc.Path
	doc.Path = absPath
	if err := s.Save(doc, lines); err != nil {
		doc.Path = prev
		return err
	}
	return nil
}

// Delete removes the named file.
func (s *Store) Delete(name string) error {
	absPath, err := s.vfs.Abs(name)
	if err != nil {
		return &PathError{Op: "delete", Path: name, Err: err}
	}
	info, err := s.vfs.Stat(absPath)
	if err != nil {
		return &PathError{Op: "delete", Path: name, Err: err}
	}
	if info.IsDir() {
		return &PathError{Op: "delete", Path: name, Err: ErrIsDirectory}
	}
	if err := s.vfs.Remove(absPath); err != nil {
		return &PathError{Op: "delete", Path: name, Err: err}
	}
	return nil
}

// Chdir changes the working directory used to resolve relative names.
func (s *Store) Chdir(dir string) error {
	if err := s.vfs.Chdir(dir); err != nil {
		return &PathError{Op: "chdir", Path: dir, Err: err}
	}
	return nil
}

// Getwd returns the working directory.
func (s *Store) Getwd() (string, error) {
	return s.vfs.Getwd()
}

func hasLineBreakSuffix(text string) bool {
	last := text[len(text)-1]
	return last == '\n' || last == '\r'
}
