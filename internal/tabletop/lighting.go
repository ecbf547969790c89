package tabletop

// LightLevel is the rendering classification of one cell.
type LightLevel uint8

const (
	LightDark LightLevel = iota
	LightDim
	LightBright
)

// String returns the lowercase name of the level.
func (l LightLevel) String() string {
	switch l {
	case LightBright:
		return "bright"
	case LightDim:
		return "dim"
	default:
		return "dark"
	}
}

// AmbientLight is the map-wide default applied before per-source
// contributions. Ambient bright makes the whole map bright regardless of
// sources.
type AmbientLight = LightLevel

// LightSource emits bright light out to BrightFeet and dim light out to
// DimFeet, measured from the source cell. Sources are attached to tokens
// (torches, spells) or placed standalone (braziers, windows).
type LightSource struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	BrightFeet int `json:"brightFeet"`
	DimFeet    int `json:"dimFeet"`
}

// LightGrid is the per-cell brightness classification, row-major.
type LightGrid struct {
	Cols   int
	Rows   int
	levels []LightLevel
}

// newLightGrid allocates a grid filled with the given floor level.
func newLightGrid(cols, rows int, floor LightLevel) *LightGrid {
	lg := &LightGrid{Cols: cols, Rows: rows, levels: make([]LightLevel, cols*rows)}
	if floor != LightDark {
		for i := range lg.levels {
			lg.levels[i] = floor
		}
	}
	return lg
}

// At returns the level at (x,y), dark when out of bounds.
func (lg *LightGrid) At(x, y int) LightLevel {
	if lg == nil || x < 0 || y < 0 || x >= lg.Cols || y >= lg.Rows {
		return LightDark
	}
	return lg.levels[y*lg.Cols+x]
}

// raise upgrades a cell's level; the brightest contribution wins.
func (lg *LightGrid) raise(x, y int, l LightLevel) {
	if x < 0 || y < 0 || x >= lg.Cols || y >= lg.Rows {
		return
	}
	i := y*lg.Cols + x
	if l > lg.levels[i] {
		lg.levels[i] = l
	}
}

// ComputeLighting classifies every cell bright/dim/dark from the ambient
// floor and the light sources. Walls occlude light exactly as they occlude
// vision: a source lights a cell only if the centre-to-centre sightline from
// the source cell is clear.
func ComputeLighting(g Grid, walls []WallSegment, ambient AmbientLight, sources []LightSource) *LightGrid {
	cols, rows := g.Cols(), g.Rows()
	if cols == 0 || rows == 0 {
		return newLightGrid(0, 0, LightDark)
	}
	lg := newLightGrid(cols, rows, ambient)
	if ambient == LightBright {
		// Nothing can be brighter than bright.
		return lg
	}
	walls = pruneWalls(g, walls)

	for _, src := range sources {
		dimCells := feetToCells(src.DimFeet)
		brightCells := feetToCells(src.BrightFeet)
		reach := maxInt(dimCells, brightCells)
		if reach == 0 {
			continue
		}
		origin := g.Clamp(Cell{X: src.X, Y: src.Y})
		minX := maxInt(0, origin.X-reach)
		minY := maxInt(0, origin.Y-reach)
		maxX := minInt(cols-1, origin.X+reach)
		maxY := minInt(rows-1, origin.Y+reach)

		for cy := minY; cy <= maxY; cy++ {
			for cx := minX; cx <= maxX; cx++ {
				c := Cell{X: cx, Y: cy}
				d := cellDistance(origin, c)
				var level LightLevel
				switch {
				case d <= float64(brightCells):
					level = LightBright
				case d <= float64(dimCells):
					level = LightDim
				default:
					continue
				}
				if lg.At(cx, cy) >= level {
					continue // already at least this bright, skip the LOS test
				}
				if c == origin || cellSightlineClear(g, origin, c, walls) {
					lg.raise(cx, cy, level)
				}
			}
		}
	}
	return lg
}

// ApplyDarkvision returns the lighting grid as one viewer perceives it:
// dark cells within the viewer's darkvision range AND within the current
// visible set are upgraded to dim. Darkvision never pierces walls or extends
// visibility; it reclassifies, feeding off the vision engine's output.
//
// Viewers without darkvision perceive the grid unchanged (the same grid is
// returned, not a copy).
func ApplyDarkvision(lg *LightGrid, viewer *Token, visible CellSet) *LightGrid {
	if lg == nil || viewer == nil || viewer.DarkvisionFeet <= 0 {
		return lg
	}
	rangeCells := feetToCells(viewer.DarkvisionFeet)
	if rangeCells == 0 {
		return lg
	}
	eye := viewer.EyeCell()

	out := &LightGrid{Cols: lg.Cols, Rows: lg.Rows, levels: make([]LightLevel, len(lg.levels))}
	copy(out.levels, lg.levels)
	for c := range visible {
		if out.At(c.X, c.Y) != LightDark {
			continue
		}
		if cellDistance(eye, c) <= float64(rangeCells) {
			out.raise(c.X, c.Y, LightDim)
		}
	}
	return out
}

// PartyPerceivedLighting folds darkvision over every party viewer: each
// cell takes the brightest classification any viewer perceives. Used for the
// shared player-screen lighting overlay.
func PartyPerceivedLighting(lg *LightGrid, viewers []*Token, visible CellSet) *LightGrid {
	out := lg
	for _, v := range viewers {
		adj := ApplyDarkvision(lg, v, visible)
		if adj == lg {
			continue
		}
		if out == lg {
			out = adj
			continue
		}
		for i, lvl := range adj.levels {
			if lvl > out.levels[i] {
				out.levels[i] = lvl
			}
		}
	}
	return out
}
