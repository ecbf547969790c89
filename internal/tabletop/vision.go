package tabletop

// RecomputeVision computes the union of cells visible to the given observer
// tokens, subject to wall occlusion and each observer's range cap.
//
// For every observer the sweep tests the sightline from the observer's eye
// cell centre to each candidate cell centre against all wall segments. A cell
// is visible iff no wall properly crosses the sightline and the cell is within
// the observer's range (unlimited when VisionFeet is 0). Multiple observers
// are unioned, never intersected.
//
// Empty wall or observer lists are valid: no observers means an empty set.
// The observer's own footprint is always visible, even when standing on a
// wall cell.
func RecomputeVision(g Grid, walls []WallSegment, observers []*Token) CellSet {
	visible := make(CellSet)
	cols, rows := g.Cols(), g.Rows()
	if cols == 0 || rows == 0 {
		return visible
	}
	walls = pruneWalls(g, walls)

	for _, obs := range observers {
		if obs == nil {
			continue
		}
		eye := g.Clamp(obs.EyeCell())

		// Own footprint is unconditionally visible.
		for _, c := range obs.Footprint() {
			if g.InBounds(c) {
				visible.Add(c)
			}
		}

		// Candidate window: the whole grid, or the range bounding box.
		minX, minY, maxX, maxY := 0, 0, cols-1, rows-1
		rangeCells := 0
		if obs.VisionFeet > 0 {
			rangeCells = feetToCells(obs.VisionFeet)
			minX = maxInt(0, eye.X-rangeCells)
			minY = maxInt(0, eye.Y-rangeCells)
			maxX = minInt(cols-1, eye.X+rangeCells)
			maxY = minInt(rows-1, eye.Y+rangeCells)
		}

		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				c := Cell{X: cx, Y: cy}
				if visible.Has(c) {
					continue
				}
				if rangeCells > 0 && cellDistance(eye, c) > float64(rangeCells) {
					continue
				}
				if cellSightlineClear(g, eye, c, walls) {
					visible.Add(c)
				}
			}
		}
	}
	return visible
}

// PartyObservers filters a token roster down to the tokens that feed party
// vision (player characters).
func PartyObservers(tokens []*Token) []*Token {
	var out []*Token
	for _, t := range tokens {
		if t != nil && t.ContributesVision() {
			out = append(out, t)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
