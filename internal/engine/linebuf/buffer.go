package linebuf

import "strings"

// Buffer is a mutable document of lines with a single edit cursor.
type Buffer struct {
	lines  [][]rune
	cursor Position

	tabWidth    int
	autoPairs   map[rune]rune
	expandPairs map[rune]rune

	modified bool
}

// New creates a buffer holding one empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:       [][]rune{{}},
		tabWidth:    DefaultTabWidth,
		autoPairs:   DefaultAutoPairs(),
		expandPairs: DefaultExpandPairs(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromText creates a buffer from text, splitting it on line endings.
// The cursor starts at (0, 0) and the buffer is not marked modified.
func NewFromText(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = splitLines(text)
	return b
}

// Replace installs a fresh document, resetting the cursor to (0, 0).
// Line terminators embedded in a line are treated as line breaks. The
// buffer is marked clean because the content comes from outside.
func (b *Buffer) Replace(lines []string) {
	b.lines = splitLines(strings.Join(lines, "\n"))
	b.cursor = Position{}
	b.modified = false
}

// TabWidth returns the soft tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of the given row, or "" if the row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the document joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor, clamping it to the document.
func (b *Buffer) SetCursor(pos Position) {
	b.cursor = b.clamp(pos)
}

// Modified reports whether the text changed since the buffer was created,
// replaced, or last marked clean.
func (b *Buffer) Modified() bool {
	return b.modified
}

// MarkClean clears the modified flag, typically after a save.
func (b *Buffer) MarkClean() {
	b.modified = false
}

// Snapshot is a read-only copy of the document and cursor.
type Snapshot struct {
	Lines    []string
	Cursor   Position
	Modified bool
}

// Snapshot returns a copy of the current state for rendering.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{
		Lines:    b.Lines(),
		Cursor:   b.cursor,
		Modified: b.modified,
	}
}

// clamp returns pos restricted to valid rows and columns.
func (b *Buffer) clamp(pos Position) Position {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if pos.Row >= len(b.lines) {
		pos.Row = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := len(b.lines[pos.Row]); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// splitLines breaks text on "\n", "\r\n" and "\r".
// It always returns at least one line.
func splitLines(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}
