package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

// The zero Modifier is ModNone. Meta covers Cmd on macOS and the Windows
// key; tcell reports both as Meta.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// modifierOrder is the order modifiers appear in binding names, which is
// also the order String prints them.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// String joins the held modifiers with "+", for example "Ctrl+Alt".
func (m Modifier) String() string {
	var b strings.Builder
	for _, o := range modifierOrder {
		if !m.Has(o.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(o.name)
	}
	return b.String()
}

// modifierAliases accepts the spellings used in config files, including
// the single-letter forms of "<C-s>" specs.
var modifierAliases = map[string]Modifier{
	"ctrl": ModCtrl, "control": ModCtrl, "c": ModCtrl,
	"alt": ModAlt, "option": ModAlt, "a": ModAlt,
	"shift": ModShift, "s": ModShift,
	"meta": ModMeta, "cmd": ModMeta, "super": ModMeta, "m": ModMeta,
}

// ModifierFromName returns the modifier a binding part names, ignoring case
// and surrounding space, or ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
