package loader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads one config file.
type TOMLLoader struct {
	files FileReader
	path  string
}

// NewTOMLLoader returns a loader for path. A nil reader selects OSReader.
func NewTOMLLoader(files FileReader, path string) *TOMLLoader {
	if files == nil {
		files = OSReader
	}
	return &TOMLLoader{files: files, path: path}
}

// Load returns the file's tables. An empty path or a missing file is not an
// error and yields a nil map.
func (l *TOMLLoader) Load() (map[string]any, error) {
	if l.path == "" {
		return nil, nil
	}
	data, err := l.files.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", l.path, err)
	}
	return ParseTOML(l.path, data)
}

// ParseTOML decodes data. File names the source in errors.
func ParseTOML(file string, data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		perr := &ParseError{File: file, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return tree, nil
}

// ParseError is a syntax error in the config file. Line and Column are
// 1-based and zero when go-toml could not locate the error.
type ParseError struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
