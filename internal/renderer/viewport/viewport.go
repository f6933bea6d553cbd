// Package viewport provides viewport management for the renderer.
package viewport

// Viewport represents the visible portion of the buffer.
// It is owned by the render loop and is not safe for concurrent use.
type Viewport struct {
	// Position in buffer (first visible line and display column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Scroll margins (keep cursor this far from edges)
	marginTop    int
	marginBottom int
	marginLeft   int
	marginRight  int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible display column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetMargins sets how many lines and columns are kept between the
// cursor and the viewport edges.
func (v *Viewport) SetMargins(top, bottom, left, right int) {
	v.marginTop = max(top, 0)
	v.marginBottom = max(bottom, 0)
	v.marginLeft = max(left, 0)
	v.marginRight = max(right, 0)
}

// Margins returns the configured scroll margins.
func (v *Viewport) Margins() (top, bottom, left, right int) {
	return v.marginTop, v.marginBottom, v.marginLeft, v.marginRight
}

// ScrollTo moves the viewport so line is the first visible line.
func (v *Viewport) ScrollTo(line int) {
	v.topLine = max(line, 0)
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow converts a buffer line to a viewport row, or -1.
func (v *Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.topLine
}

// ScrollToReveal scrolls the minimum amount that keeps (line, col) inside
// the margins. It reports whether the viewport moved.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	top, left := v.topLine, v.leftColumn

	// Margins never take more than half the viewport.
	mt := min(v.marginTop, (v.height-1)/2)
	mb := min(v.marginBottom, (v.height-1)/2)
	ml := min(v.marginLeft, (v.width-1)/2)
	mr := min(v.marginRight, (v.width-1)/2)

	if line < v.topLine+mt {
		v.topLine = max(line-mt, 0)
	} else if line > v.topLine+v.height-1-mb {
		v.topLine = line - v.height + 1 + mb
	}

	if col < v.leftColumn+ml {
		v.leftColumn = max(col-ml, 0)
	} else if col > v.leftColumn+v.width-1-mr {
		v.leftColumn = col - v.width + 1 + mr
	}

	return top != v.topLine || left != v.leftColumn
}
