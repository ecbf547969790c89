package tabletop

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TermCanvas renders draw-command lists into a tcell screen region: one map
// cell becomes two terminal columns by one row (roughly square on most
// fonts). It backs the read-only console viewer; pixel coordinates are
// quantised through the same cell lattice the other backends draw.
type TermCanvas struct {
	screen     tcell.Screen
	cellSize   float32 // map pixels per grid cell
	offX, offY int     // terminal origin of the map view

	// buffer accumulates per-map-cell colours so overlapping fills composite
	// in list order before a single flush.
	cols, rows int
	buffer     []tcell.Color
	set        []bool
}

// NewTermCanvas creates a terminal canvas for a grid of cols×rows map cells.
func NewTermCanvas(screen tcell.Screen, g Grid, offX, offY int) *TermCanvas {
	cols, rows := g.Cols(), g.Rows()
	return &TermCanvas{
		screen:   screen,
		cellSize: float32(g.CellSize),
		offX:     offX,
		offY:     offY,
		cols:     cols,
		rows:     rows,
		buffer:   make([]tcell.Color, cols*rows),
		set:      make([]bool, cols*rows),
	}
}

// Clear wipes the canvas buffer.
func (t *TermCanvas) Clear() {
	for i := range t.set {
		t.set[i] = false
	}
}

// blend composites src over the existing colour with src's alpha.
func blendTcell(dst tcell.Color, src color.RGBA) tcell.Color {
	dr, dg, db := dst.RGB()
	a := int32(src.A)
	r := (int32(src.R)*a + dr*(255-a)) / 255
	g := (int32(src.G)*a + dg*(255-a)) / 255
	b := (int32(src.B)*a + db*(255-a)) / 255
	return tcell.NewRGBColor(r, g, b)
}

// paint composites a colour onto one map cell of the buffer.
func (t *TermCanvas) paint(cx, cy int, c color.RGBA) {
	if cx < 0 || cy < 0 || cx >= t.cols || cy >= t.rows {
		return
	}
	i := cy*t.cols + cx
	base := tcell.NewRGBColor(24, 26, 30)
	if t.set[i] {
		base = t.buffer[i]
	}
	t.buffer[i] = blendTcell(base, c)
	t.set[i] = true
}

// FillRect composites the rect's colour over every map cell it covers.
func (t *TermCanvas) FillRect(x, y, w, h float32, c color.RGBA) {
	if t.cellSize <= 0 {
		return
	}
	x0 := int(x / t.cellSize)
	y0 := int(y / t.cellSize)
	x1 := int((x + w - 1) / t.cellSize)
	y1 := int((y + h - 1) / t.cellSize)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			t.paint(cx, cy, c)
		}
	}
}

// StrokeRect approximates an outline by painting the rect's border cells.
func (t *TermCanvas) StrokeRect(x, y, w, h, thickness float32, c color.RGBA) {
	t.FillRect(x, y, w, 1, c)
	t.FillRect(x, y+h-1, w, 1, c)
	t.FillRect(x, y, 1, h, c)
	t.FillRect(x+w-1, y, 1, h, c)
}

// StrokeLine walks the segment and paints every map cell it passes through.
func (t *TermCanvas) StrokeLine(x1, y1, x2, y2, thickness float32, c color.RGBA) {
	if t.cellSize <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	steps := int(maxF(absF(dx), absF(dy))/t.cellSize)*2 + 1
	for i := 0; i <= steps; i++ {
		f := float32(i) / float32(steps)
		t.paint(int((x1+dx*f)/t.cellSize), int((y1+dy*f)/t.cellSize), c)
	}
}

// Flush writes the composited buffer to the terminal. Each map cell draws as
// two block characters so the view stays roughly square.
func (t *TermCanvas) Flush() {
	for cy := 0; cy < t.rows; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			i := cy*t.cols + cx
			col := tcell.NewRGBColor(24, 26, 30)
			if t.set[i] {
				col = t.buffer[i]
			}
			style := tcell.StyleDefault.Foreground(col)
			t.screen.SetContent(t.offX+cx*2, t.offY+cy, '█', nil, style)
			t.screen.SetContent(t.offX+cx*2+1, t.offY+cy, '█', nil, style)
		}
	}
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
