// Package linebuf provides the line-oriented document model and the
// cursor-relative editing operations of the editor.
//
// A Buffer owns an ordered sequence of lines and a single cursor. Lines are
// stored as rune slices, so every row and column is measured in Unicode
// scalar values rather than bytes. The buffer never contains a line
// terminator and always holds at least one line.
//
// Editing operations mirror the keys a user presses:
//
//   - InsertChar inserts a rune, auto-pairing brackets and quotes
//   - InsertTab inserts a soft tab (a run of spaces)
//   - Backspace deletes backward, removing a whole soft tab at once
//   - NewLine splits the line and derives the indentation of the new line
//   - MoveCursor moves the cursor with wrap-around at line ends
//
// Every operation is total: a request that would move the cursor outside
// the document is a no-op rather than an error.
//
// Basic usage:
//
//	buf := linebuf.NewFromText("if (x) {}")
//	buf.SetCursor(linebuf.Position{Row: 0, Col: 8})
//	buf.NewLine()
//	// buf.Lines() == []string{"if (x) {", "    ", "}"}
//	// buf.Cursor() == linebuf.Position{Row: 1, Col: 4}
//
// Thread Safety:
//
// A Buffer is not safe for concurrent use. The host event loop is the
// single writer and serializes every call.
package linebuf
