package tabletop

// TokenKind classifies who controls a token and whether it feeds party vision.
type TokenKind uint8

const (
	TokenPlayer  TokenKind = iota // player character, contributes to party vision
	TokenNPC                      // DM-controlled, no vision contribution
	TokenMonster                  // DM-controlled, no vision contribution
	TokenMarker                   // inert marker (treasure, objective)
)

// Token is a creature or marker placed on the map. Its footprint is the
// rectangle of cells [GridX,GridX+SizeX) × [GridY,GridY+SizeY).
type Token struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Kind  TokenKind `json:"kind"`
	GridX int       `json:"gridX"`
	GridY int       `json:"gridY"`
	SizeX int       `json:"sizeX"`
	SizeY int       `json:"sizeY"`

	// VisionFeet caps how far the token can see. 0 means unlimited.
	VisionFeet int `json:"visionFeet,omitempty"`
	// DarkvisionFeet lets the token treat dark cells as dim within range.
	DarkvisionFeet int `json:"darkvisionFeet,omitempty"`
	// SpeedFeet is the movement budget used by the movement-range overlay.
	SpeedFeet int `json:"speedFeet,omitempty"`
}

// Footprint returns every cell the token occupies.
func (t *Token) Footprint() []Cell {
	sx, sy := t.SizeX, t.SizeY
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	cells := make([]Cell, 0, sx*sy)
	for dy := 0; dy < sy; dy++ {
		for dx := 0; dx < sx; dx++ {
			cells = append(cells, Cell{X: t.GridX + dx, Y: t.GridY + dy})
		}
	}
	return cells
}

// EyeCell returns the cell vision rays originate from: the centre of the
// footprint, rounded toward the top-left for even sizes.
func (t *Token) EyeCell() Cell {
	sx, sy := t.SizeX, t.SizeY
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	return Cell{X: t.GridX + (sx-1)/2, Y: t.GridY + (sy-1)/2}
}

// ContributesVision reports whether the token feeds the party vision union.
func (t *Token) ContributesVision() bool {
	return t.Kind == TokenPlayer
}

// clampToGrid snaps the token's footprint fully onto the grid.
func (t *Token) clampToGrid(g Grid) {
	if t.SizeX < 1 {
		t.SizeX = 1
	}
	if t.SizeY < 1 {
		t.SizeY = 1
	}
	cols, rows := g.Cols(), g.Rows()
	if cols == 0 || rows == 0 {
		t.GridX, t.GridY = 0, 0
		return
	}
	if t.SizeX > cols {
		t.SizeX = cols
	}
	if t.SizeY > rows {
		t.SizeY = rows
	}
	if t.GridX < 0 {
		t.GridX = 0
	}
	if t.GridY < 0 {
		t.GridY = 0
	}
	if t.GridX+t.SizeX > cols {
		t.GridX = cols - t.SizeX
	}
	if t.GridY+t.SizeY > rows {
		t.GridY = rows - t.SizeY
	}
}
