package tabletop

// TerrainKind tags a cell for the movement-range overlay and the terrain
// layer. Normal ground carries no tag.
type TerrainKind uint8

const (
	TerrainNormal    TerrainKind = iota // open floor
	TerrainDifficult                    // rubble, undergrowth: half speed
	TerrainHazard                       // spikes, fire: passable but flagged
	TerrainWater                        // deep water: quarter speed
	TerrainPit                          // open pit: impassable
	terrainKindCount                    // sentinel
)

// String returns the lowercase tag name.
func (k TerrainKind) String() string {
	switch k {
	case TerrainDifficult:
		return "difficult"
	case TerrainHazard:
		return "hazard"
	case TerrainWater:
		return "water"
	case TerrainPit:
		return "pit"
	default:
		return "normal"
	}
}

// terrainMoveCostMul returns the movement cost multiplier for a terrain kind.
// 0 means impassable.
func terrainMoveCostMul(k TerrainKind) float64 {
	switch k {
	case TerrainDifficult:
		return 2.0
	case TerrainHazard:
		return 1.0
	case TerrainWater:
		return 4.0
	case TerrainPit:
		return 0
	default:
		return 1.0
	}
}

// TerrainPatch is one DM-painted rectangle of tagged cells, in cell units.
type TerrainPatch struct {
	X    int         `json:"x"`
	Y    int         `json:"y"`
	W    int         `json:"w"`
	H    int         `json:"h"`
	Kind TerrainKind `json:"kind"`
}

// TerrainGrid is the per-cell terrain tag lookup, row-major. Cells outside
// the grid read as normal ground.
type TerrainGrid struct {
	Cols  int
	Rows  int
	kinds []TerrainKind
}

// BuildTerrainGrid rasterises DM-painted patches onto the cell lattice.
// Later patches win where they overlap. Patches hanging off the map edge are
// clipped, not rejected.
func BuildTerrainGrid(g Grid, patches []TerrainPatch) *TerrainGrid {
	cols, rows := g.Cols(), g.Rows()
	tg := &TerrainGrid{Cols: cols, Rows: rows, kinds: make([]TerrainKind, cols*rows)}
	for _, p := range patches {
		x0 := maxInt(0, p.X)
		y0 := maxInt(0, p.Y)
		x1 := minInt(cols, p.X+p.W)
		y1 := minInt(rows, p.Y+p.H)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				tg.kinds[y*cols+x] = p.Kind
			}
		}
	}
	return tg
}

// At returns the terrain tag at (x,y), normal when out of bounds.
func (tg *TerrainGrid) At(x, y int) TerrainKind {
	if tg == nil || x < 0 || y < 0 || x >= tg.Cols || y >= tg.Rows {
		return TerrainNormal
	}
	return tg.kinds[y*tg.Cols+x]
}

// MoveCostFeet returns the cost in feet of entering (x,y), or 0 when the
// cell cannot be entered.
func (tg *TerrainGrid) MoveCostFeet(x, y int) float64 {
	mul := terrainMoveCostMul(tg.At(x, y))
	if mul == 0 {
		return 0
	}
	return feetPerCell * mul
}
