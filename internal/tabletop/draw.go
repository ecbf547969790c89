package tabletop

import "image/color"

// LayerID identifies one overlay layer. Each layer rebuilds its command list
// independently when its inputs change and clears itself when empty, so
// a layer with no content never leaves stale graphics behind.
type LayerID uint8

const (
	LayerGrid LayerID = iota
	LayerTerrain
	LayerWalls
	LayerLighting
	LayerFog
	LayerAoE
	LayerMovement
	layerCount // sentinel
)

// String returns the lowercase layer name.
func (l LayerID) String() string {
	switch l {
	case LayerGrid:
		return "grid"
	case LayerTerrain:
		return "terrain"
	case LayerWalls:
		return "walls"
	case LayerLighting:
		return "lighting"
	case LayerFog:
		return "fog"
	case LayerAoE:
		return "aoe"
	case LayerMovement:
		return "movement"
	default:
		return "unknown"
	}
}

// DrawOp is the primitive kind of one draw command.
type DrawOp uint8

const (
	OpFillRect DrawOp = iota
	OpStrokeRect
	OpStrokeLine
)

// DrawCmd is one immutable draw instruction in pixel space. A layer's frame
// is a plain []DrawCmd; backends apply the list without interpreting map
// state, so the same list drives ebiten, the terminal viewer, and test spies.
type DrawCmd struct {
	Op         DrawOp
	X, Y, W, H float32 // rects
	X2, Y2     float32 // line endpoint (OpStrokeLine: X,Y -> X2,Y2)
	Thickness  float32
	Color      color.RGBA
}

// Canvas is the minimal surface a rendering backend must expose.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float32, c color.RGBA)
	StrokeRect(x, y, w, h, thickness float32, c color.RGBA)
	StrokeLine(x1, y1, x2, y2, thickness float32, c color.RGBA)
}

// ApplyCommands clears the canvas and replays a command list onto it.
func ApplyCommands(cv Canvas, cmds []DrawCmd) {
	cv.Clear()
	ReplayCommands(cv, cmds)
}

// ReplayCommands replays a command list without clearing first. Backends
// that composite several layers into one surface (the terminal viewer)
// clear once and replay each layer in order.
func ReplayCommands(cv Canvas, cmds []DrawCmd) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpFillRect:
			cv.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpStrokeRect:
			cv.StrokeRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Thickness, cmd.Color)
		case OpStrokeLine:
			cv.StrokeLine(cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.Thickness, cmd.Color)
		}
	}
}

// Overlay palette.
var (
	gridLineColor   = color.RGBA{R: 52, G: 58, B: 66, A: 120}
	wallColor       = color.RGBA{R: 220, G: 170, B: 60, A: 230}
	fogHiddenPlayer = color.RGBA{R: 8, G: 9, B: 12, A: 255}
	fogMemoryPlayer = color.RGBA{R: 8, G: 9, B: 12, A: 200}
	fogHiddenHost   = color.RGBA{R: 8, G: 9, B: 12, A: 90}
	fogMemoryHost   = color.RGBA{R: 8, G: 9, B: 12, A: 60}
	dimLightColor   = color.RGBA{R: 10, G: 10, B: 25, A: 110}
	darkLightColor  = color.RGBA{R: 4, G: 4, B: 12, A: 185}
	aoeFillColor    = color.RGBA{R: 200, G: 60, B: 40, A: 70}
	aoeEdgeColor    = color.RGBA{R: 230, G: 90, B: 60, A: 160}
	movementColor   = color.RGBA{R: 60, G: 140, B: 220, A: 60}
	terrainColors   = [terrainKindCount]color.RGBA{
		TerrainNormal:    {},
		TerrainDifficult: {R: 140, G: 110, B: 60, A: 70},
		TerrainHazard:    {R: 190, G: 60, B: 60, A: 80},
		TerrainWater:     {R: 40, G: 90, B: 170, A: 90},
		TerrainPit:       {R: 20, G: 20, B: 20, A: 160},
	}
)

// cellRect returns the pixel rectangle of a cell.
func cellRect(g Grid, c Cell) (x, y, w, h float32) {
	cs := float32(g.CellSize)
	return float32(c.X) * cs, float32(c.Y) * cs, cs, cs
}

// BuildGridCommands draws the cell lattice lines.
func BuildGridCommands(g Grid) []DrawCmd {
	cols, rows := g.Cols(), g.Rows()
	if cols == 0 || rows == 0 {
		return nil
	}
	cs := float32(g.CellSize)
	w := float32(cols) * cs
	h := float32(rows) * cs
	cmds := make([]DrawCmd, 0, cols+rows+2)
	for x := 0; x <= cols; x++ {
		px := float32(x) * cs
		cmds = append(cmds, DrawCmd{Op: OpStrokeLine, X: px, Y: 0, X2: px, Y2: h, Thickness: 1, Color: gridLineColor})
	}
	for y := 0; y <= rows; y++ {
		py := float32(y) * cs
		cmds = append(cmds, DrawCmd{Op: OpStrokeLine, X: 0, Y: py, X2: w, Y2: py, Thickness: 1, Color: gridLineColor})
	}
	return cmds
}

// BuildWallCommands draws raw wall geometry. DM-only: players never see
// walls, only their effect on fog and lighting, so the list is empty unless
// isHost is set.
func BuildWallCommands(g Grid, walls []WallSegment, isHost bool) []DrawCmd {
	if !isHost {
		return nil
	}
	walls = pruneWalls(g, walls)
	cmds := make([]DrawCmd, 0, len(walls))
	for _, w := range walls {
		cmds = append(cmds, DrawCmd{
			Op: OpStrokeLine,
			X:  float32(w.X1), Y: float32(w.Y1),
			X2: float32(w.X2), Y2: float32(w.Y2),
			Thickness: 3, Color: wallColor,
		})
	}
	return cmds
}

// BuildFogCommands tints cells according to the fog state. The DM always
// sees true terrain under a low-alpha tint; players get opaque fog outside
// the revealed set and a dimmed memory tint under dynamic fog.
func BuildFogCommands(g Grid, fog *FogOfWar, isHost bool) []DrawCmd {
	cols, rows := g.Cols(), g.Rows()
	if fog == nil || cols == 0 || rows == 0 {
		return nil
	}
	var cmds []DrawCmd
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			c := Cell{X: cx, Y: cy}
			var tint color.RGBA
			switch fog.CellState(c) {
			case FogRevealed:
				continue
			case FogMemory:
				if isHost {
					tint = fogMemoryHost
				} else {
					tint = fogMemoryPlayer
				}
			default: // FogHidden
				if isHost {
					tint = fogHiddenHost
				} else {
					tint = fogHiddenPlayer
				}
			}
			x, y, w, h := cellRect(g, c)
			cmds = append(cmds, DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: tint})
		}
	}
	return cmds
}

// BuildLightingCommands shades dim and dark cells. Bright cells draw
// nothing. With no walls and ambient bright the whole overlay is a no-op and
// returns nil: the "no lighting effect" steady state must issue zero draws,
// not a full-screen transparent pass.
func BuildLightingCommands(g Grid, walls []WallSegment, ambient AmbientLight, lg *LightGrid) []DrawCmd {
	if ambient == LightBright && len(pruneWalls(g, walls)) == 0 {
		return nil
	}
	if lg == nil {
		return nil
	}
	var cmds []DrawCmd
	for cy := 0; cy < lg.Rows; cy++ {
		for cx := 0; cx < lg.Cols; cx++ {
			var tint color.RGBA
			switch lg.At(cx, cy) {
			case LightBright:
				continue
			case LightDim:
				tint = dimLightColor
			default:
				tint = darkLightColor
			}
			x, y, w, h := cellRect(g, Cell{X: cx, Y: cy})
			cmds = append(cmds, DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: tint})
		}
	}
	return cmds
}

// BuildTerrainCommands tints tagged terrain cells. Normal ground draws
// nothing.
func BuildTerrainCommands(g Grid, tg *TerrainGrid) []DrawCmd {
	if tg == nil {
		return nil
	}
	var cmds []DrawCmd
	for cy := 0; cy < tg.Rows; cy++ {
		for cx := 0; cx < tg.Cols; cx++ {
			k := tg.At(cx, cy)
			if k == TerrainNormal {
				continue
			}
			x, y, w, h := cellRect(g, Cell{X: cx, Y: cy})
			cmds = append(cmds, DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: terrainColors[k]})
		}
	}
	return cmds
}

// BuildAoECommands fills the template cells and outlines each. Cells off the
// grid are dropped. No active template means an empty list and the layer clears.
func BuildAoECommands(g Grid, cells []Cell) []DrawCmd {
	var cmds []DrawCmd
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		x, y, w, h := cellRect(g, c)
		cmds = append(cmds,
			DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: aoeFillColor},
			DrawCmd{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Thickness: 1, Color: aoeEdgeColor},
		)
	}
	return cmds
}

// BuildMovementCommands tints every reachable cell.
func BuildMovementCommands(g Grid, reach CellSet) []DrawCmd {
	var cmds []DrawCmd
	for c := range reach {
		if !g.InBounds(c) {
			continue
		}
		x, y, w, h := cellRect(g, c)
		cmds = append(cmds, DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: movementColor})
	}
	return cmds
}
