package tabletop

import (
	"math"
	"sort"
)

// AoEShape is the template kind for an area of effect.
type AoEShape uint8

const (
	AoECube AoEShape = iota
	AoESphere
	AoECylinder
	AoEEmanation
	AoECone
	AoELine
	aoeShapeCount // sentinel
)

// String returns the lowercase shape name.
func (s AoEShape) String() string {
	switch s {
	case AoECube:
		return "cube"
	case AoESphere:
		return "sphere"
	case AoECylinder:
		return "cylinder"
	case AoEEmanation:
		return "emanation"
	case AoECone:
		return "cone"
	case AoELine:
		return "line"
	default:
		return "unknown"
	}
}

// Compass is one of the 8 facing directions for cones and lines.
type Compass uint8

const (
	East Compass = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
	compassCount // sentinel
)

// Angle returns the facing in radians, 0 = east, pi/2 = south (screen-down).
func (c Compass) Angle() float64 {
	return float64(c) * math.Pi / 4
}

// CompassFromAngle snaps an arbitrary angle to the nearest compass facing.
func CompassFromAngle(a float64) Compass {
	sector := math.Round(a / (math.Pi / 4))
	idx := int(sector) % int(compassCount)
	if idx < 0 {
		idx += int(compassCount)
	}
	return Compass(idx)
}

// AoEConfig fully describes one area template. It is a value object:
// recomputed into a cell set on demand, never persisted past the current
// interactive placement.
type AoEConfig struct {
	Shape     AoEShape
	SizeFeet  int
	OriginX   int
	OriginY   int
	Direction Compass // cones and lines only
	WidthFeet int     // lines only
	// EntitySize is the footprint side (in cells) of the emanating entity.
	// Only emanations use it; 0 behaves as 1.
	EntitySize int
}

// AoECells converts the template into the exact set of covered cells.
// Pure and deterministic for identical input: the UI recomputes it on every
// drag tick for live preview. The returned slice is sorted row-major.
func AoECells(cfg AoEConfig) []Cell {
	size := feetToCells(cfg.SizeFeet)
	if size <= 0 {
		return nil
	}
	origin := Cell{X: cfg.OriginX, Y: cfg.OriginY}
	var cells []Cell

	switch cfg.Shape {
	case AoECube:
		// Axis-aligned square of side size, origin at the top-left corner.
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				cells = append(cells, Cell{X: origin.X + dx, Y: origin.Y + dy})
			}
		}

	case AoESphere, AoECylinder:
		// All cells whose centre lies within the radius of the origin centre.
		cells = radiusCells(origin, size)

	case AoEEmanation:
		// Radius measured from the nearest edge of the entity's footprint,
		// so the area includes the footprint itself (distance zero).
		es := cfg.EntitySize
		if es < 1 {
			es = 1
		}
		seen := make(CellSet)
		for fy := 0; fy < es; fy++ {
			for fx := 0; fx < es; fx++ {
				for _, c := range radiusCells(Cell{X: origin.X + fx, Y: origin.Y + fy}, size) {
					seen.Add(c)
				}
			}
		}
		cells = seen.Cells()

	case AoECone:
		// Cells within range whose angle from the origin falls within
		// ±45° of the facing. The origin cell itself is not part of the cone.
		facing := cfg.Direction.Angle()
		const halfSpread = math.Pi / 4
		for dy := -size; dy <= size; dy++ {
			for dx := -size; dx <= size; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if math.Sqrt(float64(dx*dx+dy*dy)) > float64(size) {
					continue
				}
				diff := angleDiff(math.Atan2(float64(dy), float64(dx)), facing)
				if math.Abs(diff) <= halfSpread+1e-9 {
					cells = append(cells, Cell{X: origin.X + dx, Y: origin.Y + dy})
				}
			}
		}

	case AoELine:
		// A rectangle size cells long by width cells wide, extending from
		// the origin along the facing. The width expands symmetrically,
		// rounding the extra cell toward the facing's left side.
		width := feetToCells(cfg.WidthFeet)
		if width < 1 {
			width = 1
		}
		dirX, dirY := compassStep(cfg.Direction)
		perpX, perpY := -dirY, dirX
		seen := make(CellSet)
		for along := 1; along <= size; along++ {
			for across := -(width - 1) / 2; across <= width/2; across++ {
				seen.Add(Cell{
					X: origin.X + dirX*along + perpX*across,
					Y: origin.Y + dirY*along + perpY*across,
				})
			}
		}
		cells = seen.Cells()
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// radiusCells returns all cells whose centre-to-centre Euclidean distance
// from the origin is within r cells, origin included.
func radiusCells(origin Cell, r int) []Cell {
	var out []Cell
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if math.Sqrt(float64(dx*dx+dy*dy)) <= float64(r)+1e-9 {
				out = append(out, Cell{X: origin.X + dx, Y: origin.Y + dy})
			}
		}
	}
	return out
}

// compassStep returns the unit cell step for a facing. Diagonals step one
// cell on both axes.
func compassStep(c Compass) (int, int) {
	switch c {
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	default: // NorthEast
		return 1, -1
	}
}

// angleDiff wraps a-b to [-pi, pi].
func angleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
