package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyLeft, "Left"},
		{KeySpace, "Space"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{"cr", KeyEnter},
		{" ESC ", KeyEscape},
		{"bs", KeyBackspace},
		{"pgdn", KeyPageDown},
		{"bogus", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsArrowKey(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrowKey() {
			t.Errorf("%v should be an arrow key", k)
		}
	}
	if KeyEnter.IsArrowKey() || KeyRune.IsArrowKey() {
		t.Error("Enter and Rune are not arrow keys")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModAlt | ModMeta, "Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		isChar   bool
		modified bool
	}{
		{"letter", NewRuneEvent('a', ModNone), true, false},
		{"shifted letter", NewRuneEvent('A', ModShift), true, false},
		{"ctrl letter", NewRuneEvent('s', ModCtrl), false, true},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), false, false},
		{"shift enter", NewSpecialEvent(KeyEnter, ModShift), false, true},
		{"control rune", NewRuneEvent('\x01', ModNone), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsChar(); got != tt.isChar {
				t.Errorf("IsChar() = %v, want %v", got, tt.isChar)
			}
			if got := tt.ev.IsModified(); got != tt.modified {
				t.Errorf("IsModified() = %v, want %v", got, tt.modified)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('x', ModNone), "x"},
		{NewRuneEvent('X', ModShift), "X"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('s', ModCtrl), "Ctrl+s"},
		{NewSpecialEvent(KeySpace, ModCtrl), "Ctrl+Space"},
		{NewSpecialEvent(KeyTab, ModShift), "Shift+Tab"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"?", NewRuneEvent('?', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"ctrl+space", NewSpecialEvent(KeySpace, ModCtrl)},
		{"<C-t>", NewRuneEvent('t', ModCtrl)},
		{"<C-Space>", NewSpecialEvent(KeySpace, ModCtrl)},
		{"Alt+Left", NewSpecialEvent(KeyLeft, ModAlt)},
		{"+", NewRuneEvent('+', ModNone)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper+x", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"abc", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("Hyper+x")
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		ev      Event
		binding string
		want    bool
	}{
		{"ctrl letter", NewRuneEvent('s', ModCtrl), "Ctrl+S", true},
		{"ctrl shifted letter", NewRuneEvent('S', ModCtrl|ModShift), "Ctrl+S", true},
		{"plain letter vs ctrl", NewRuneEvent('s', ModNone), "Ctrl+S", false},
		{"ctrl space", NewSpecialEvent(KeySpace, ModCtrl), "Ctrl+Space", true},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), "Esc", true},
		{"shifted escape", NewSpecialEvent(KeyEscape, ModShift), "Esc", false},
		{"plain rune", NewRuneEvent('?', ModShift), "?", true},
		{"different rune", NewRuneEvent('a', ModNone), "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Matches(MustParse(tt.binding)); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.binding, got, tt.want)
			}
		})
	}
}
