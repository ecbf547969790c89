package tabletop

import "math"

// feetPerCell is the tabletop scale: one grid square is a 5-foot square.
const feetPerCell = 5

// Cell is a single grid square identified by integer column/row coordinates.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key packs a cell into a single comparable integer. Coordinates are
// always non-negative on a valid grid, so the packing is lossless.
func (c Cell) Key() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}

// CellFromKey unpacks a cell key produced by Cell.Key.
func CellFromKey(k int64) Cell {
	return Cell{X: int(k >> 32), Y: int(int32(k))}
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has returns true if the cell is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts a cell into the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// AddAll inserts every cell of other into the set.
func (s CellSet) AddAll(other CellSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Cells returns the set's members in unspecified order.
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Grid maps the continuous pixel map onto the discrete cell lattice.
// Width and Height are in pixels; CellSize is the pixel side of one cell.
type Grid struct {
	CellSize int `json:"cellSize"`
	Width    int `json:"width"`
	Height   int `json:"height"`
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// InBounds returns true if the cell lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Cols() && c.Y < g.Rows()
}

// WorldToCell converts pixel coordinates to the containing cell.
func (g Grid) WorldToCell(wx, wy float64) Cell {
	if g.CellSize <= 0 {
		return Cell{}
	}
	return Cell{X: int(math.Floor(wx / float64(g.CellSize))), Y: int(math.Floor(wy / float64(g.CellSize)))}
}

// CellCenter returns the pixel coordinates of a cell's centre.
func (g Grid) CellCenter(c Cell) (float64, float64) {
	cs := float64(g.CellSize)
	return float64(c.X)*cs + cs/2, float64(c.Y)*cs + cs/2
}

// Clamp snaps a cell to the nearest in-bounds cell. Useful for tolerating
// free-form DM edits that drag things off the map edge.
func (g Grid) Clamp(c Cell) Cell {
	cols, rows := g.Cols(), g.Rows()
	if cols == 0 || rows == 0 {
		return Cell{}
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X >= cols {
		c.X = cols - 1
	}
	if c.Y >= rows {
		c.Y = rows - 1
	}
	return c
}

// cellDistance returns the Euclidean distance between two cell centres,
// measured in cells.
func cellDistance(a, b Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// feetToCells converts a distance in feet to whole cells, rounding down.
func feetToCells(feet int) int {
	if feet <= 0 {
		return 0
	}
	return feet / feetPerCell
}
