package key

import "unicode"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is an unmodified printable character.
// Shift alone does not count as a modifier for characters.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier other than Shift on a
// character is pressed.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Matches reports whether e is the same key press as binding.
// Letters compare case-insensitively when Ctrl is held, since terminals
// cannot report Ctrl+Shift letters apart from Ctrl letters.
func (e Event) Matches(binding Event) bool {
	if e.Key != binding.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == binding.Modifiers
	}
	if e.Modifiers&^ModShift != binding.Modifiers&^ModShift {
		return false
	}
	if e.Modifiers.Has(ModCtrl) {
		return unicode.ToLower(e.Rune) == unicode.ToLower(binding.Rune)
	}
	return e.Rune == binding.Rune
}

// String returns a canonical representation like "Ctrl+S" or "Enter".
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
