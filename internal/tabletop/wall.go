package tabletop

import "math"

// WallSegment is one opaque edge in pixel space, placed by the DM.
// Walls block vision and light; players never see the raw geometry,
// only its effect on fog and lighting.
type WallSegment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// isDegenerate reports a zero-length segment. DM editing produces these
// (click without drag); they are skipped, never an error.
func (w WallSegment) isDegenerate() bool {
	return math.Abs(w.X1-w.X2) < 1e-9 && math.Abs(w.Y1-w.Y2) < 1e-9
}

// orient returns the sign of the cross product (b-a)×(c-a):
// +1 counter-clockwise, -1 clockwise, 0 collinear (within epsilon).
func orient(ax, ay, bx, by, cx, cy float64) int {
	v := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	const eps = 1e-9
	if v > eps {
		return 1
	}
	if v < -eps {
		return -1
	}
	return 0
}

// segmentsCross reports whether segment p1-p2 properly crosses segment q1-q2.
// Touches and grazes (a sightline passing exactly through a wall endpoint,
// or running collinear along a wall) do NOT count as crossings. Vision is
// biased toward over-revealing: a ray that merely clips a wall corner stays
// clear, so fog never flickers at corners.
func segmentsCross(p1x, p1y, p2x, p2y, q1x, q1y, q2x, q2y float64) bool {
	o1 := orient(p1x, p1y, p2x, p2y, q1x, q1y)
	o2 := orient(p1x, p1y, p2x, p2y, q2x, q2y)
	o3 := orient(q1x, q1y, q2x, q2y, p1x, p1y)
	o4 := orient(q1x, q1y, q2x, q2y, p2x, p2y)
	return o1*o2 < 0 && o3*o4 < 0
}

// SightlineClear returns true if the straight line from (ax,ay) to (bx,by)
// is not blocked by any wall segment. Degenerate walls are ignored.
func SightlineClear(ax, ay, bx, by float64, walls []WallSegment) bool {
	for _, w := range walls {
		if w.isDegenerate() {
			continue
		}
		if segmentsCross(ax, ay, bx, by, w.X1, w.Y1, w.X2, w.Y2) {
			return false
		}
	}
	return true
}

// cellSightlineClear tests the centre-to-centre sightline between two cells.
func cellSightlineClear(g Grid, from, to Cell, walls []WallSegment) bool {
	ax, ay := g.CellCenter(from)
	bx, by := g.CellCenter(to)
	return SightlineClear(ax, ay, bx, by, walls)
}

// pruneWalls drops degenerate segments and clamps endpoints to the pixel
// bounds of the grid. Wall data comes from free-form DM editing and is
// treated as untrusted.
func pruneWalls(g Grid, walls []WallSegment) []WallSegment {
	maxX := float64(g.Width)
	maxY := float64(g.Height)
	kept := make([]WallSegment, 0, len(walls))
	for _, w := range walls {
		if w.isDegenerate() {
			continue
		}
		w.X1 = clampF(w.X1, 0, maxX)
		w.Y1 = clampF(w.Y1, 0, maxY)
		w.X2 = clampF(w.X2, 0, maxX)
		w.Y2 = clampF(w.Y2, 0, maxY)
		if w.isDegenerate() { // clamping can collapse an off-map segment
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
