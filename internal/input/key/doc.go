// Package key provides the decoded key events the host delivers to the
// editor, and parsing of key specifications used in configuration.
//
// This package defines:
//
//   - Key: identifies a keyboard key (special keys or KeyRune)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//
// # Key Specifications
//
// Bindings in the configuration file can be written as:
//
//   - Simple keys: "a", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Ctrl+Space"
//   - Vim-style: "<C-s>", "<C-Space>", "<Esc>"
package key
