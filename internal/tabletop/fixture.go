package tabletop

// TestTable is a headless session fixture used by tests and cmd/mapreport.
// It mirrors the app's Table construction but has no ebiten dependency and
// is built from explicit options rather than a map file.

// tableOptionKind controls the pass in which an option is applied.
type tableOptionKind int

const (
	tableOptInfra tableOptionKind = iota // grid size, ambient, fog mode; applied first
	tableOptPiece                       // walls, tokens, lights, terrain; applied after the grid exists
)

// TableOption is a builder function applied during NewTestTable.
type TableOption struct {
	kind tableOptionKind
	fn   func(*GameMap)
}

// WithGridSize sets the grid to cols×rows cells of cellSize pixels.
func WithGridSize(cols, rows, cellSize int) TableOption {
	return TableOption{tableOptInfra, func(m *GameMap) {
		m.Grid = Grid{CellSize: cellSize, Width: cols * cellSize, Height: rows * cellSize}
	}}
}

// WithAmbient sets the map-wide ambient light floor.
func WithAmbient(a AmbientLight) TableOption {
	return TableOption{tableOptInfra, func(m *GameMap) {
		m.Ambient = a
	}}
}

// WithDynamicFog enables the re-fogging reveal rule.
func WithDynamicFog(enabled bool) TableOption {
	return TableOption{tableOptInfra, func(m *GameMap) {
		m.Fog.DynamicFog = enabled
	}}
}

// WithWall adds a wall segment in cell units: endpoints land on lattice
// corners, so a wall from (2,0) to (2,4) seals the edge between columns 1
// and 2 for rows 0-3.
func WithWall(x1, y1, x2, y2 int) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		cs := float64(m.Grid.CellSize)
		m.Walls = append(m.Walls, WallSegment{
			X1: float64(x1) * cs, Y1: float64(y1) * cs,
			X2: float64(x2) * cs, Y2: float64(y2) * cs,
		})
	}}
}

// WithPixelWall adds a wall segment in raw pixel coordinates.
func WithPixelWall(x1, y1, x2, y2 float64) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		m.Walls = append(m.Walls, WallSegment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}}
}

// WithPlayer adds a 1x1 player token at (x,y).
func WithPlayer(id, x, y int) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		m.Tokens = append(m.Tokens, &Token{
			ID: id, Kind: TokenPlayer, GridX: x, GridY: y, SizeX: 1, SizeY: 1, SpeedFeet: 30,
		})
	}}
}

// WithToken adds an arbitrary token.
func WithToken(t *Token) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		m.Tokens = append(m.Tokens, t)
	}}
}

// WithLight adds a light source at cell (x,y).
func WithLight(x, y, brightFeet, dimFeet int) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		m.Lights = append(m.Lights, LightSource{X: x, Y: y, BrightFeet: brightFeet, DimFeet: dimFeet})
	}}
}

// WithTerrain paints a terrain patch in cell units.
func WithTerrain(x, y, w, h int, kind TerrainKind) TableOption {
	return TableOption{tableOptPiece, func(m *GameMap) {
		m.Terrain = append(m.Terrain, TerrainPatch{X: x, Y: y, W: w, H: h, Kind: kind})
	}}
}

// NewTestTable constructs a headless Table from options in two ordered
// passes: infrastructure first (grid, ambient, fog mode), then pieces
// (walls, tokens, lights, terrain). The pipeline runs once before returning.
func NewTestTable(opts ...TableOption) *Table {
	m := &GameMap{
		Name:    "fixture",
		Grid:    Grid{CellSize: 50, Width: 20 * 50, Height: 20 * 50},
		Ambient: LightDark,
	}
	for _, o := range opts {
		if o.kind == tableOptInfra {
			o.fn(m)
		}
	}
	for _, o := range opts {
		if o.kind == tableOptPiece {
			o.fn(m)
		}
	}
	m.Normalize()
	return NewTable(m, true)
}
