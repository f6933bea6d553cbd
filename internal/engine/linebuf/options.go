package linebuf

// DefaultTabWidth is the number of spaces inserted by InsertTab.
const DefaultTabWidth = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the soft tab width.
// Widths below one are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithAutoPairs replaces the opener to closer table used by InsertChar.
// A nil or empty map disables auto-pairing.
func WithAutoPairs(pairs map[rune]rune) Option {
	return func(b *Buffer) {
		b.autoPairs = clonePairs(pairs)
	}
}

// WithExpandPairs replaces the brace pairs that drive NewLine indentation.
// An opener before the cursor increases the indentation of the new line;
// an opener immediately followed by its closer expands into three lines.
func WithExpandPairs(pairs map[rune]rune) Option {
	return func(b *Buffer) {
		b.expandPairs = clonePairs(pairs)
	}
}

// DefaultAutoPairs returns the bracket and quote pairs inserted together.
func DefaultAutoPairs() map[rune]rune {
	return map[rune]rune{
		'(':  ')',
		'[':  ']',
		'{':  '}',
		'"':  '"',
		'\'': '\'',
	}
}

// DefaultExpandPairs returns the pairs that drive smart indentation.
// Only curly braces take part by default.
func DefaultExpandPairs() map[rune]rune {
	return map[rune]rune{'{': '}'}
}

func clonePairs(pairs map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(pairs))
	for k, v := range pairs {
		out[k] = v
	}
	return out
}
