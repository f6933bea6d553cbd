package viewport

import "testing"

func TestNewViewportClamps(t *testing.T) {
	v := NewViewport(0, -3)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", v.Width(), v.Height())
	}
}

func TestScrollToReveal_Vertical(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		line    int
		wantTop int
		moved   bool
	}{
		{"visible", 0, 5, 0, false},
		{"below", 0, 12, 3, true},
		{"far below", 0, 100, 91, true},
		{"above", 20, 4, 4, true},
		{"last row", 10, 19, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(80, 10)
			v.ScrollTo(tt.top)
			moved := v.ScrollToReveal(tt.line, 0)
			if v.TopLine() != tt.wantTop || moved != tt.moved {
				t.Errorf("TopLine = %d moved = %v, want %d %v", v.TopLine(), moved, tt.wantTop, tt.moved)
			}
			if !v.IsLineVisible(tt.line) {
				t.Errorf("line %d not visible after reveal", tt.line)
			}
		})
	}
}

func TestScrollToReveal_Margins(t *testing.T) {
	v := NewViewport(20, 10)
	v.SetMargins(2, 2, 3, 3)

	v.ScrollToReveal(8, 0)
	if v.TopLine() != 1 {
		t.Errorf("TopLine = %d, want 1", v.TopLine())
	}
	if row := v.LineToScreenRow(8); row != 7 {
		t.Errorf("LineToScreenRow(8) = %d, want 7", row)
	}

	v.ScrollToReveal(2, 0)
	if v.TopLine() != 0 {
		t.Errorf("TopLine = %d, want 0", v.TopLine())
	}
}

func TestScrollToReveal_Horizontal(t *testing.T) {
	v := NewViewport(10, 5)

	v.ScrollToReveal(0, 15)
	if v.LeftColumn() != 6 {
		t.Errorf("LeftColumn = %d, want 6", v.LeftColumn())
	}
	v.ScrollToReveal(0, 2)
	if v.LeftColumn() != 2 {
		t.Errorf("LeftColumn = %d, want 2", v.LeftColumn())
	}
}

func TestLineToScreenRow_Hidden(t *testing.T) {
	v := NewViewport(10, 5)
	v.ScrollTo(10)
	if row := v.LineToScreenRow(3); row != -1 {
		t.Errorf("LineToScreenRow(3) = %d, want -1", row)
	}
}
