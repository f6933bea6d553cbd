package mode

// Mode is the current editing mode.
type Mode uint8

const (
	// Edit routes key events to the document.
	Edit Mode = iota

	// Command routes key events to the console line.
	Command
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Edit:
		return "edit"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}

// DisplayName returns the label shown by the renderer.
func (m Mode) DisplayName() string {
	switch m {
	case Edit:
		return "TEXT MODE"
	case Command:
		return "CONSOLE MODE"
	default:
		return ""
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Command {
		return CursorUnderline
	}
	return CursorBar
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == Edit {
		return Command
	}
	return Edit
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (edit mode).
	CursorBar

	// CursorUnderline is an underline cursor (command mode).
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
