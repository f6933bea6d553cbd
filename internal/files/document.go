package files

import (
	"path/filepath"
	"slices"

	"github.com/dshills/whiskey/internal/files/vfs"
)

// Document is a file as the editor sees it: decoded lines plus the
// on-disk format needed to write it back.
type Document struct {
	// Path is the absolute path to the file.
	Path string

	// Lines holds the decoded text, one entry per line, without endings.
	Lines []string

	// Encoding is the detected character encoding.
	Encoding vfs.Encoding

	// LineEnding is the detected line ending style.
	LineEnding vfs.LineEnding

	// TrailingNewline records whether the file ended with a line break.
	TrailingNewline bool

	// New is true until the document has been written to disk once.
	New bool
}

// NewDocument creates an empty, unsaved document for path.
func NewDocument(path string) *Document {
	return &Document{
		Path:            path,
		Lines:           []string{""},
		Encoding:        vfs.EncodingUTF8,
		LineEnding:      vfs.LineEndingLF,
		TrailingNewline: true,
		New:             true,
	}
}

// Name returns the base name of the document path.
func (d *Document) Name() string {
	if d.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(d.Path)
}

// Content renders lines in the document's line ending and encoding.
// A single empty line renders as an empty file.
func (d *Document) Content(lines []string) ([]byte, error) {
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return vfs.Encode("", d.Encoding)
	}
	return vfs.Encode(vfs.JoinLines(lines, d.LineEnding, d.TrailingNewline), d.Encoding)
}

func (d *Document) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d.Lines = slices.Clone(lines)
}
