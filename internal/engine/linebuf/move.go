package linebuf

// MoveCursor moves the cursor one step in the given direction.
//
// Up and Down keep the column when the target line is long enough and
// clamp it otherwise. Left at the start of a line wraps to the end of the
// previous line; Right at the end of a line wraps to the start of the next
// line. Moves past the edges of the document are no-ops.
func (b *Buffer) MoveCursor(dir Direction) {
	row, col := b.cursor.Row, b.cursor.Col
	last := len(b.lines) - 1

	switch dir {
	case Up:
		if row > 0 {
			b.cursor = Position{Row: row - 1, Col: min(col, len(b.lines[row-1]))}
		}
	case Down:
		if row < last {
			b.cursor = Position{Row: row + 1, Col: min(col, len(b.lines[row+1]))}
		}
	case Left:
		if col > 0 {
			b.cursor.Col--
		} else if row > 0 {
			b.cursor = Position{Row: row - 1, Col: len(b.lines[row-1])}
		}
	case Right:
		if col < len(b.lines[row]) {
			b.cursor.Col++
		} else if row < last {
			b.cursor = Position{Row: row + 1, Col: 0}
		}
	}
}

// GoToLine moves the cursor to the start of a 1-based line number,
// clamped to the document. It returns the row the cursor landed on.
func (b *Buffer) GoToLine(line int) int {
	b.SetCursor(Position{Row: line - 1, Col: 0})
	return b.cursor.Row
}
