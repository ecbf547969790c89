package tabletop

import "image/color"

// RecordedCall is one primitive invocation captured by RecorderCanvas.
type RecordedCall struct {
	Op    DrawOp
	Color color.RGBA
}

// RecorderCanvas is a Canvas that records primitive calls instead of
// drawing. Tests use it to assert renderer contracts, in particular that
// the lighting fast path issues zero shape draws.
type RecorderCanvas struct {
	Clears int
	Calls  []RecordedCall
}

// Clear records a clear.
func (r *RecorderCanvas) Clear() {
	r.Clears++
	r.Calls = r.Calls[:0]
}

// FillRect records a fill.
func (r *RecorderCanvas) FillRect(x, y, w, h float32, c color.RGBA) {
	r.Calls = append(r.Calls, RecordedCall{Op: OpFillRect, Color: c})
}

// StrokeRect records an outline.
func (r *RecorderCanvas) StrokeRect(x, y, w, h, thickness float32, c color.RGBA) {
	r.Calls = append(r.Calls, RecordedCall{Op: OpStrokeRect, Color: c})
}

// StrokeLine records a line.
func (r *RecorderCanvas) StrokeLine(x1, y1, x2, y2, thickness float32, c color.RGBA) {
	r.Calls = append(r.Calls, RecordedCall{Op: OpStrokeLine, Color: c})
}
