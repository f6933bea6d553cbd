// Package renderer draws the editor screen.
//
// A View turns a read-only State snapshot into cells on a backend:
//
//	┌──────┬──────────────────────────────────┐
//	│  1   │ document lines                   │  text area (scrolls)
//	│  2   │                                  │
//	├──────┴──────────────────────────────────┤
//	│ TEXT MODE  main.go [+]        Ln 2, Col 5│  mode bar
//	│ > ?wf                                   │  console line
//	│ saved main.go                           │  status message
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	view := renderer.NewView(term, renderer.DefaultOptions())
//	view.Render(state)
//
// The backend subpackage abstracts the terminal (tcell) and provides a
// NullBackend for tests. Colors come from a Palette.
package renderer
