package tabletop

import (
	"fmt"
	"math/rand"
)

// GenerateDemoMap builds a deterministic dungeon-style map: a handful of
// walled rooms with door gaps, torches in some rooms, scattered difficult
// terrain, a small party and a few monsters. Used by cmd/tabletop when no
// map file is given, by cmd/mapreport's built-in scenario, and by tests that
// want a realistic fixture.
func GenerateDemoMap(seed int64) *GameMap {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- demo content only
	const cell = 50
	m := &GameMap{
		Name:    fmt.Sprintf("demo-%d", seed),
		Grid:    Grid{CellSize: cell, Width: 40 * cell, Height: 24 * cell},
		Ambient: LightDark,
	}

	// Rooms: non-overlapping rectangles in cell units, walls along their
	// edges with one door gap per room.
	type room struct{ x, y, w, h int }
	var rooms []room
	for attempts := 0; attempts < 60 && len(rooms) < 6; attempts++ {
		r := room{
			x: 1 + rng.Intn(30),
			y: 1 + rng.Intn(16),
			w: 4 + rng.Intn(5),
			h: 4 + rng.Intn(4),
		}
		if r.x+r.w > 39 || r.y+r.h > 23 {
			continue
		}
		overlaps := false
		for _, o := range rooms {
			if r.x < o.x+o.w+1 && o.x < r.x+r.w+1 && r.y < o.y+o.h+1 && o.y < r.y+r.h+1 {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, r)
		}
	}

	for i, r := range rooms {
		px := func(c int) float64 { return float64(c * cell) }
		// Door: one cell-wide gap in a rng-chosen side.
		doorSide := rng.Intn(4)
		doorAt := 1 + rng.Intn(maxInt(1, r.w-2)) // offset along the wall
		doorAtV := 1 + rng.Intn(maxInt(1, r.h-2))

		addWallRun := func(x1, y1, x2, y2 float64) {
			m.Walls = append(m.Walls, WallSegment{X1: x1, Y1: y1, X2: x2, Y2: y2})
		}
		// Top side.
		if doorSide == 0 {
			addWallRun(px(r.x), px(r.y), px(r.x+doorAt), px(r.y))
			addWallRun(px(r.x+doorAt+1), px(r.y), px(r.x+r.w), px(r.y))
		} else {
			addWallRun(px(r.x), px(r.y), px(r.x+r.w), px(r.y))
		}
		// Bottom side.
		if doorSide == 1 {
			addWallRun(px(r.x), px(r.y+r.h), px(r.x+doorAt), px(r.y+r.h))
			addWallRun(px(r.x+doorAt+1), px(r.y+r.h), px(r.x+r.w), px(r.y+r.h))
		} else {
			addWallRun(px(r.x), px(r.y+r.h), px(r.x+r.w), px(r.y+r.h))
		}
		// Left side.
		if doorSide == 2 {
			addWallRun(px(r.x), px(r.y), px(r.x), px(r.y+doorAtV))
			addWallRun(px(r.x), px(r.y+doorAtV+1), px(r.x), px(r.y+r.h))
		} else {
			addWallRun(px(r.x), px(r.y), px(r.x), px(r.y+r.h))
		}
		// Right side.
		if doorSide == 3 {
			addWallRun(px(r.x+r.w), px(r.y), px(r.x+r.w), px(r.y+doorAtV))
			addWallRun(px(r.x+r.w), px(r.y+doorAtV+1), px(r.x+r.w), px(r.y+r.h))
		} else {
			addWallRun(px(r.x+r.w), px(r.y), px(r.x+r.w), px(r.y+r.h))
		}

		// Torch in every other room.
		if i%2 == 0 {
			m.Lights = append(m.Lights, LightSource{
				X: r.x + r.w/2, Y: r.y + r.h/2,
				BrightFeet: 20, DimFeet: 40,
			})
		}
		// Rubble in some rooms.
		if rng.Intn(3) == 0 {
			m.Terrain = append(m.Terrain, TerrainPatch{
				X: r.x + 1, Y: r.y + 1,
				W: maxInt(1, r.w/2), H: maxInt(1, r.h/2),
				Kind: TerrainDifficult,
			})
		}
	}

	// A stream along the bottom of the map.
	m.Terrain = append(m.Terrain, TerrainPatch{X: 0, Y: 22, W: 40, H: 2, Kind: TerrainWater})

	// Party near the top-left, monsters tucked into the last room.
	m.Tokens = append(m.Tokens,
		&Token{ID: 1, Name: "Yara", Kind: TokenPlayer, GridX: 2, GridY: 2, SizeX: 1, SizeY: 1, DarkvisionFeet: 60, SpeedFeet: 30},
		&Token{ID: 2, Name: "Bram", Kind: TokenPlayer, GridX: 3, GridY: 2, SizeX: 1, SizeY: 1, SpeedFeet: 25},
	)
	if len(rooms) > 0 {
		last := rooms[len(rooms)-1]
		m.Tokens = append(m.Tokens,
			&Token{ID: 3, Name: "Ogre", Kind: TokenMonster, GridX: last.x + 1, GridY: last.y + 1, SizeX: 2, SizeY: 2, DarkvisionFeet: 60, SpeedFeet: 40},
		)
	}

	m.Normalize()
	return m
}
