package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "?", "1"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace"
//   - With modifiers: "Ctrl+S", "Ctrl+Space"
//   - Vim-style: "<C-s>", "<C-Space>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"))
	}
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseParts(strings.Split(spec, "+"))
	}
	return parseKey(spec, ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// parseParts treats all but the last part as modifiers.
func parseParts(parts []string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		if k == KeySpace && mods == ModNone {
			return NewRuneEvent(' ', ModNone), nil
		}
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]
	if mods.Has(ModCtrl) {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}
