package linebuf

import "fmt"

// Position is a cursor location in the document.
// Row and Col are 0-indexed and measured in runes. Col may equal the
// length of the line, meaning the cursor sits after the last rune.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Direction is a cursor movement direction.
type Direction uint8

const (
	// Up moves to the previous row.
	Up Direction = iota
	// Down moves to the next row.
	Down
	// Left moves one rune back, wrapping to the end of the previous row.
	Left
	// Right moves one rune forward, wrapping to the start of the next row.
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
