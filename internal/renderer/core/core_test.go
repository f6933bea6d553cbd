package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		a, b Color
		want bool
	}{
		{ColorDefault, ColorDefault, true},
		{ColorDefault, ColorFromRGB(0, 0, 0), false},
		{ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 4), false},
		{ColorFromIndex(5), ColorFromIndex(5), true},
		{ColorFromIndex(5), ColorFromRGB(5, 0, 0), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); !got.Equals(black) {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := black.Blend(white, 1); !got.Equals(white) {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	mid := black.Blend(white, 0.5)
	if mid.R < 64 || mid.R > 192 || absDiff(mid.R, mid.G) > 1 || absDiff(mid.G, mid.B) > 1 {
		t.Errorf("Blend(0.5) = %v, want a neutral gray", mid)
	}
	if got := ColorDefault.Blend(white, 0.3); !got.IsDefault() {
		t.Errorf("default Blend(0.3) = %v, want default", got)
	}
}

func TestColorLuminance(t *testing.T) {
	if l := ColorFromRGB(0, 0, 0).Luminance(); l > 0.01 {
		t.Errorf("black luminance = %v", l)
	}
	if l := ColorFromRGB(255, 255, 255).Luminance(); l < 0.99 {
		t.Errorf("white luminance = %v", l)
	}
}

func TestStyle(t *testing.T) {
	s := NewStyle(ColorFromRGB(1, 1, 1), ColorDefault).Bold().Reverse()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("attributes = %v", s.Attributes)
	}
	if s.Attributes.Has(AttrItalic) {
		t.Error("italic should not be set")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled should differ from default")
	}
	if !DefaultStyle().WithForeground(ColorDefault).Equals(DefaultStyle()) {
		t.Error("WithForeground(default) should equal default style")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'é', 1},
		{'日', 2},
		{'한', 2},
		{'\t', 0},
		{0x7F, 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if got := StringWidth([]rune("a日b")); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}
}

func TestCellsFromString(t *testing.T) {
	cells := CellsFromString("a日", DefaultStyle())
	if len(cells) != 3 {
		t.Fatalf("len = %d, want 3", len(cells))
	}
	if !cells[2].IsContinuation() {
		t.Error("wide rune should be followed by a continuation cell")
	}
	if got := StringFromCells(cells); got != "a日" {
		t.Errorf("StringFromCells = %q", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
	if (ScreenRect{Left: 5, Right: 2}).Width() != 0 {
		t.Error("inverted rect should have zero width")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
