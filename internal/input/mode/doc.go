// Package mode provides the two-state editing mode of the editor.
//
// The editor is either in Edit mode, where key events go to the document,
// or in Command mode, where they go to the console line. The same toggle
// event switches in both directions:
//
//	┌────────┐   Toggle()   ┌─────────┐
//	│  Edit  │ ───────────▶ │ Command │
//	└────────┘ ◀─────────── └─────────┘
//	              Toggle()
//
// When switching:
//  1. Exit hooks registered for the old mode are called
//  2. Enter hooks registered for the new mode are called
//  3. Change callbacks are notified
//
// The host clears the pending console text both on entering and on
// leaving Command. There is no terminal state; exiting the process is an
// effect of the exit directive, not a mode.
package mode
