package linebuf

import "unicode"

// InsertChar inserts r at the cursor and advances the column by one.
//
// If r is an auto-pair opener, its closer is inserted as well and the
// cursor lands between the two. Tabs and line terminators are ignored;
// use InsertTab and NewLine for those.
func (b *Buffer) InsertChar(r rune) {
	if r == '\t' || r == '\n' || r == '\r' {
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if closer, ok := b.autoPairs[r]; ok {
		b.lines[row] = insertRunes(b.lines[row], col, r, closer)
	} else {
		b.lines[row] = insertRunes(b.lines[row], col, r)
	}
	b.cursor.Col++
	b.modified = true
}

// InsertTab inserts a soft tab of TabWidth spaces at the cursor.
func (b *Buffer) InsertTab() {
	row, col := b.cursor.Row, b.cursor.Col
	b.lines[row] = insertRunes(b.lines[row], col, b.softTab()...)
	b.cursor.Col += b.tabWidth
	b.modified = true
}

// Backspace deletes backward from the cursor.
//
// When the TabWidth runes before the cursor are all spaces they are
// removed together. At the start of a line the line is joined onto the
// previous one. At (0, 0) nothing happens.
func (b *Buffer) Backspace() {
	row, col := b.cursor.Row, b.cursor.Col

	if col > 0 {
		line := b.lines[row]
		n := 1
		if b.isSoftTabBefore(line, col) {
			n = b.tabWidth
		}
		b.lines[row] = append(line[:col-n:col-n], line[col:]...)
		b.cursor.Col -= n
		b.modified = true
		return
	}

	if row == 0 {
		return
	}

	prev := b.lines[row-1]
	joinCol := len(prev)
	b.lines[row-1] = append(prev[:joinCol:joinCol], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Position{Row: row - 1, Col: joinCol}
	b.modified = true
}

// NewLine splits the current line at the cursor.
//
// The head stays in place and the tail moves to a new line below, prefixed
// with an indentation derived from the current line:
//
//   - between an expand opener and its closer (e.g. "{|}"), an empty inner
//     line indented one level deeper is inserted, and the tail goes on a
//     third line at the original indentation
//   - after an expand opener, the new line is indented one level deeper
//   - otherwise the current line's leading whitespace is copied
//
// The cursor moves to the end of the indentation on the line below.
func (b *Buffer) NewLine() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	indent := leadingWhitespace(line)
	head := cloneRunes(line[:col])
	tail := cloneRunes(line[col:])

	var before, after rune
	if col > 0 {
		before = line[col-1]
	}
	if col < len(line) {
		after = line[col]
	}
	closer, opens := b.expandPairs[before]

	var newLines [][]rune
	var cursorCol int
	switch {
	case opens && col > 0 && after == closer && col < len(line):
		inner := concatRunes(indent, b.softTab())
		outer := concatRunes(indent, tail)
		newLines = [][]rune{inner, outer}
		cursorCol = len(inner)
	case opens && col > 0:
		deeper := concatRunes(indent, b.softTab())
		newLines = [][]rune{concatRunes(deeper, tail)}
		cursorCol = len(deeper)
	default:
		newLines = [][]rune{concatRunes(indent, tail)}
		cursorCol = len(indent)
	}

	b.lines[row] = head
	b.lines = insertLines(b.lines, row+1, newLines...)
	b.cursor = Position{Row: row + 1, Col: cursorCol}
	b.modified = true
}

// softTab returns a fresh run of TabWidth spaces.
func (b *Buffer) softTab() []rune {
	tab := make([]rune, b.tabWidth)
	for i := range tab {
		tab[i] = ' '
	}
	return tab
}

// isSoftTabBefore reports whether the TabWidth runes before col are spaces.
func (b *Buffer) isSoftTabBefore(line []rune, col int) bool {
	if col < b.tabWidth {
		return false
	}
	for _, r := range line[col-b.tabWidth : col] {
		if r != ' ' {
			return false
		}
	}
	return true
}

// leadingWhitespace returns a copy of the whitespace prefix of line.
func leadingWhitespace(line []rune) []rune {
	n := 0
	for n < len(line) && unicode.IsSpace(line[n]) {
		n++
	}
	return cloneRunes(line[:n])
}

func insertRunes(line []rune, at int, rs ...rune) []rune {
	out := make([]rune, 0, len(line)+len(rs))
	out = append(out, line[:at]...)
	out = append(out, rs...)
	return append(out, line[at:]...)
}

func insertLines(lines [][]rune, at int, add ...[]rune) [][]rune {
	out := make([][]rune, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	return append(out, lines[at:]...)
}

func concatRunes(a, b []rune) []rune {
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func cloneRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	copy(out, rs)
	return out
}
