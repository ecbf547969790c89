package tabletop

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg" // background decoding
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// FogState is the persisted slice of fog: the explored history and the
// per-map reveal rule. Current visibility is transient and never saved.
type FogState struct {
	Explored   []Cell `json:"exploredCells"`
	DynamicFog bool   `json:"dynamicFogEnabled"`
}

// GameMap is the JSON boundary contract with the persistence layer. The DM
// authors everything in it; the vision/lighting/AoE core only ever reads it.
type GameMap struct {
	Name       string         `json:"name"`
	Grid       Grid           `json:"grid"`
	Background string         `json:"background,omitempty"` // image path, relative to the map file
	Ambient    AmbientLight   `json:"ambientLight"`
	Tokens     []*Token       `json:"tokens"`
	Walls      []WallSegment  `json:"wallSegments"`
	Lights     []LightSource  `json:"lightSources"`
	Terrain    []TerrainPatch `json:"terrain"`
	Fog        FogState       `json:"fogOfWar"`
}

// Normalize clamps and prunes DM-authored data so downstream computation
// never sees malformed geometry: degenerate walls are dropped, tokens and
// light sources snapped onto the grid, duplicate token IDs reassigned.
func (m *GameMap) Normalize() {
	if m.Grid.CellSize <= 0 {
		m.Grid.CellSize = 50
	}
	if m.Grid.Width < m.Grid.CellSize {
		m.Grid.Width = m.Grid.CellSize
	}
	if m.Grid.Height < m.Grid.CellSize {
		m.Grid.Height = m.Grid.CellSize
	}
	m.Walls = pruneWalls(m.Grid, m.Walls)

	seen := make(map[int]bool, len(m.Tokens))
	nextID := 1
	kept := m.Tokens[:0]
	for _, t := range m.Tokens {
		if t == nil {
			continue
		}
		t.clampToGrid(m.Grid)
		for t.ID == 0 || seen[t.ID] {
			t.ID = nextID
			nextID++
		}
		seen[t.ID] = true
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
		kept = append(kept, t)
	}
	m.Tokens = kept

	for i := range m.Lights {
		c := m.Grid.Clamp(Cell{X: m.Lights[i].X, Y: m.Lights[i].Y})
		m.Lights[i].X, m.Lights[i].Y = c.X, c.Y
	}

	explored := m.Fog.Explored[:0]
	for _, c := range m.Fog.Explored {
		if m.Grid.InBounds(c) {
			explored = append(explored, c)
		}
	}
	m.Fog.Explored = explored
}

// TokenByID returns the token with the given ID, or nil.
func (m *GameMap) TokenByID(id int) *Token {
	for _, t := range m.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// LoadMap reads and normalizes a map file.
func LoadMap(path string) (*GameMap, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- DM-chosen map path
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	var m GameMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	m.Normalize()
	return &m, nil
}

// SaveMap writes the map back to disk, folding the session's fog state into
// the persisted explored history first. Explored cells are written sorted so
// saves diff cleanly.
func SaveMap(path string, m *GameMap, fog *FogOfWar) error {
	if fog != nil {
		m.Fog.Explored = fog.Explored().Cells()
		m.Fog.DynamicFog = fog.DynamicFog
	}
	sort.Slice(m.Fog.Explored, func(i, j int) bool {
		a, b := m.Fog.Explored[i], m.Fog.Explored[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- map files are not secrets
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}

// RestoreFog builds the session fog state from the map's persisted slice.
func (m *GameMap) RestoreFog() *FogOfWar {
	fog := NewFogOfWar(m.Fog.DynamicFog)
	fog.AddExplored(NewCellSet(m.Fog.Explored...))
	return fog
}

// LoadBackground decodes the map's background image and rescales it to the
// pixel dimensions of the grid. Returns nil with no error when the map has
// no background.
func (m *GameMap) LoadBackground(mapDir string) (*image.RGBA, error) {
	if m.Background == "" {
		return nil, nil
	}
	path := m.Background
	if !filepath.IsAbs(path) {
		path = filepath.Join(mapDir, path)
	}
	f, err := os.Open(path) // #nosec G304 -- DM-chosen image path
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, m.Grid.Width, m.Grid.Height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
