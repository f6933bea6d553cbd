package renderer

import (
	"fmt"
	"strconv"

	"github.com/dshills/whiskey/internal/engine/linebuf"
	"github.com/dshills/whiskey/internal/input/mode"
	"github.com/dshills/whiskey/internal/renderer/backend"
	"github.com/dshills/whiskey/internal/renderer/core"
	"github.com/dshills/whiskey/internal/renderer/viewport"
)

// chromeRows is the number of rows below the text area: mode bar,
// console line and status message.
const chromeRows = 3

// ConsolePrompt is drawn before the console text.
const ConsolePrompt = "> "

// State is a read-only snapshot of everything the view draws.
type State struct {
	Lines  [][]rune
	Cursor linebuf.Position
	Mode   mode.Mode

	// Console is the command line text and ConsoleCursor the rune index
	// of the console cursor.
	Console       string
	ConsoleCursor int

	Status   string
	FileName string
	Modified bool
}

// Options configures a View.
type Options struct {
	LineNumbers bool // Show line numbers in gutter
	TabWidth    int  // Display width of a tab stop
	ScrollOff   int  // Lines kept above and below the cursor
}

// DefaultOptions returns default view options.
func DefaultOptions() Options {
	return Options{
		LineNumbers: true,
		TabWidth:    linebuf.DefaultTabWidth,
		ScrollOff:   2,
	}
}

// View draws State snapshots to a backend.
type View struct {
	backend  backend.Backend
	viewport *viewport.Viewport
	palette  Palette
	opts     Options
}

// NewView creates a view drawing to b.
func NewView(b backend.Backend, opts Options) *View {
	if opts.TabWidth < 1 {
		opts.TabWidth = linebuf.DefaultTabWidth
	}
	w, h := b.Size()
	vp := viewport.NewViewport(w, h-chromeRows)
	vp.SetMargins(opts.ScrollOff, opts.ScrollOff, 0, 0)
	return &View{
		backend:  b,
		viewport: vp,
		palette:  DefaultPalette(),
		opts:     opts,
	}
}

// Palette returns the active palette.
func (v *View) Palette() Palette {
	return v.palette
}

// SetPalette switches the palette used by the next Render.
func (v *View) SetPalette(p Palette) {
	v.palette = p
}

// TopLine returns the first visible document line.
func (v *View) TopLine() int {
	return v.viewport.TopLine()
}

// TextHeight returns the number of document rows on screen.
func (v *View) TextHeight() int {
	_, h := v.backend.Size()
	return max(h-chromeRows, 0)
}

// Render draws s and flushes the backend.
func (v *View) Render(s State) {
	width, height := v.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}

	textHeight := max(height-chromeRows, 0)
	gutter := v.gutterWidth(len(s.Lines))
	textWidth := max(width-gutter, 1)

	v.viewport.Resize(textWidth, textHeight)
	cursorCol := displayColumn(lineAt(s.Lines, s.Cursor.Row), s.Cursor.Col, v.opts.TabWidth)
	if textHeight > 0 {
		v.viewport.ScrollToReveal(s.Cursor.Row, cursorCol)
		if maxTop := max(len(s.Lines)-textHeight, 0); v.viewport.TopLine() > maxTop {
			v.viewport.ScrollTo(maxTop)
		}
	}

	v.backend.Fill(core.RectFromSize(0, 0, height, width), core.NewStyledCell(' ', v.palette.Text()))

	for row := 0; row < textHeight; row++ {
		line := v.viewport.TopLine() + row
		if line >= len(s.Lines) {
			break
		}
		v.drawGutter(row, line, gutter, line == s.Cursor.Row)
		v.drawLine(row, gutter, width, s.Lines[line])
	}

	barRow := textHeight
	v.drawBar(barRow, width, s)
	if s.Mode == mode.Command {
		v.drawText(barRow+1, 0, width, ConsolePrompt+s.Console, v.palette.Text())
	}
	v.drawText(barRow+2, 0, width, s.Status, v.palette.Status())

	v.placeCursor(s, gutter, cursorCol, textHeight, width, height)
	v.backend.Show()
}

func (v *View) gutterWidth(lineCount int) int {
	if !v.opts.LineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(lineCount)), 3) + 1
}

func (v *View) drawGutter(row, line, gutter int, current bool) {
	if gutter == 0 {
		return
	}
	style := v.palette.LineNumber()
	if current {
		style = v.palette.CurrentLineNumber()
	}
	num := fmt.Sprintf("%*d ", gutter-1, line+1)
	for x, r := range num {
		v.backend.SetCell(x, row, core.NewStyledCell(r, style))
	}
}

// drawLine draws the visible part of a document line, honoring the
// horizontal scroll offset.
func (v *View) drawLine(row, gutter, width int, line []rune) {
	style := v.palette.Text()
	left := v.viewport.LeftColumn()
	col := 0
	for _, r := range line {
		w := cellWidth(r, col, v.opts.TabWidth)
		if col < left {
			col += w
			continue
		}
		x := gutter + col - left
		if x+w > width {
			break
		}
		switch {
		case r == '\t':
			for i := 0; i < w; i++ {
				v.backend.SetCell(x+i, row, core.NewStyledCell(' ', style))
			}
		case w > 0:
			v.backend.SetCell(x, row, core.NewStyledCell(r, style))
			if w == 2 {
				v.backend.SetCell(x+1, row, core.ContinuationCell(style))
			}
		}
		col += w
	}
}

func (v *View) drawBar(row, width int, s State) {
	style := v.palette.Bar()
	v.backend.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', style))

	name := s.FileName
	if name == "" {
		name = "[scratch]"
	}
	if s.Modified {
		name += " [+]"
	}
	left := " " + s.Mode.DisplayName() + "  " + name
	right := fmt.Sprintf("Ln %d, Col %d ", s.Cursor.Row+1, s.Cursor.Col+1)

	v.drawText(row, 0, width, left, style)
	if rw := core.StringWidth([]rune(right)); core.StringWidth([]rune(left))+rw < width {
		v.drawText(row, width-rw, width, right, style)
	}
}

// drawText draws s from column x, clipped at width.
func (v *View) drawText(row, x, width int, s string, style core.Style) {
	for _, c := range core.CellsFromString(s, style) {
		if x >= width {
			return
		}
		v.backend.SetCell(x, row, c)
		x++
	}
}

func (v *View) placeCursor(s State, gutter, cursorCol, textHeight, width, height int) {
	v.backend.SetCursorStyle(cursorStyle(s.Mode.CursorStyle()))

	if s.Mode == mode.Command {
		console := []rune(s.Console)
		pos := min(max(s.ConsoleCursor, 0), len(console))
		x := core.StringWidth([]rune(ConsolePrompt)) + core.StringWidth(console[:pos])
		if row := textHeight + 1; row < height {
			v.backend.ShowCursor(min(x, width-1), row)
			return
		}
		v.backend.HideCursor()
		return
	}

	row := v.viewport.LineToScreenRow(s.Cursor.Row)
	if row < 0 || row >= textHeight {
		v.backend.HideCursor()
		return
	}
	x := gutter + cursorCol - v.viewport.LeftColumn()
	v.backend.ShowCursor(min(x, width-1), row)
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}

func lineAt(lines [][]rune, row int) []rune {
	if row < 0 || row >= len(lines) {
		return nil
	}
	return lines[row]
}

// displayColumn returns the screen column of rune index col in line.
func displayColumn(line []rune, col, tabWidth int) int {
	x := 0
	for i, r := range line {
		if i >= col {
			break
		}
		x += cellWidth(r, x, tabWidth)
	}
	return x
}

// cellWidth returns the columns r occupies when drawn at column x.
func cellWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	return core.RuneWidth(r)
}
