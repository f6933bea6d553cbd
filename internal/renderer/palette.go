package renderer

import (
	"fmt"

	"github.com/dshills/whiskey/internal/renderer/core"
)

// Palette is the set of colors the view draws with.
type Palette struct {
	Name       string
	Foreground core.Color
	Background core.Color
	Gutter     core.Color
	Accent     core.Color
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Name:       "default",
		Foreground: core.ColorFromRGB(0xd0, 0xd0, 0xd0),
		Background: core.ColorFromRGB(0x00, 0x00, 0x00),
		Gutter:     core.ColorFromRGB(0x6c, 0x6c, 0x6c),
		Accent:     core.ColorFromRGB(0xff, 0xff, 0xff),
	}
}

// ParsePalette builds a palette from hex colors. Empty colors are taken
// from DefaultPalette.
func ParsePalette(name, fg, bg, gutter, accent string) (Palette, error) {
	p := DefaultPalette()
	p.Name = name

	for _, c := range []struct {
		field string
		hex   string
		dst   *core.Color
	}{
		{"foreground", fg, &p.Foreground},
		{"background", bg, &p.Background},
		{"gutter", gutter, &p.Gutter},
		{"accent", accent, &p.Accent},
	} {
		if c.hex == "" {
			continue
		}
		color, err := core.ColorFromHex(c.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s %s: %w", name, c.field, err)
		}
		*c.dst = color
	}
	return p, nil
}

// Text is the style of document text and the console line.
func (p Palette) Text() core.Style {
	return core.NewStyle(p.Foreground, p.Background)
}

// LineNumber is the style of gutter numbers.
func (p Palette) LineNumber() core.Style {
	return core.NewStyle(p.Gutter, p.Background)
}

// CurrentLineNumber is the gutter style of the cursor line.
func (p Palette) CurrentLineNumber() core.Style {
	return core.NewStyle(p.Accent, p.Background).Bold()
}

// Bar is the style of the mode bar. Its background is the accent mixed
// into the background so it reads on both dark and light palettes.
func (p Palette) Bar() core.Style {
	bg := p.Background.Blend(p.Accent, 0.2)
	fg := p.Accent
	if bg.Luminance() > 0.6 && p.Accent.Luminance() > 0.6 {
		fg = p.Background
	}
	return core.NewStyle(fg, bg).Bold()
}

// Status is the style of the status message row.
func (p Palette) Status() core.Style {
	return core.NewStyle(p.Gutter, p.Background)
}
