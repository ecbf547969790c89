package tabletop

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// borderWidth is the pixel gap between the window edge and the map view.
const borderWidth = 16

// layerDrawOrder is the compositing order, bottom to top. Fog sits above
// lighting so unexplored cells stay hidden regardless of light; walls are
// topmost because only the DM ever sees them.
var layerDrawOrder = [layerCount]LayerID{
	LayerTerrain, LayerGrid, LayerAoE, LayerMovement, LayerLighting, LayerFog, LayerWalls,
}

// aoeShapeCycle is the order the T key steps through template shapes.
var aoeShapeCycle = [aoeShapeCount]AoEShape{
	AoECube, AoESphere, AoECylinder, AoEEmanation, AoECone, AoELine,
}

// App is the windowed tabletop: it owns the Table, the camera and the
// offscreen layer canvases, and feeds input mutations into the pipeline.
type App struct {
	table   *Table
	log     *logrus.Logger
	mapPath string // save target; empty for generated maps

	width  int
	height int

	worldBuf   *ebiten.Image
	background *ebiten.Image
	layerImgs  [layerCount]*EbitenCanvas
	showLayer  [layerCount]bool
	showHUD    bool

	camX    float64
	camY    float64
	camZoom float64

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Token drag state.
	dragTokenID int
	// Active AoE placement shape; applied on right click.
	placingShape AoEShape
	placing      bool
}

// NewApp builds the windowed session around a loaded (or generated) map.
// mapPath may be empty, in which case saving is disabled.
func NewApp(cfg Config, m *GameMap, mapPath string, log *logrus.Logger) (*App, error) {
	if m == nil {
		return nil, fmt.Errorf("no map")
	}
	a := &App{
		table:    NewTable(m, cfg.Session.Host),
		log:      log,
		mapPath:  mapPath,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		showHUD:  true,
		camZoom:  1.0,
		prevKeys: make(map[ebiten.Key]bool),
	}
	for i := range a.showLayer {
		a.showLayer[i] = true
	}
	a.worldBuf = ebiten.NewImage(m.Grid.Width, m.Grid.Height)
	for i := range a.layerImgs {
		a.layerImgs[i] = NewEbitenCanvas(ebiten.NewImage(m.Grid.Width, m.Grid.Height))
	}
	a.camX = float64(m.Grid.Width) / 2
	a.camY = float64(m.Grid.Height) / 2

	if bg, err := m.LoadBackground(filepath.Dir(mapPath)); err != nil {
		log.WithError(err).Warn("background image unavailable")
	} else if bg != nil {
		a.background = ebiten.NewImageFromImage(bg)
	}

	log.WithFields(logrus.Fields{
		"map":    m.Name,
		"cells":  m.Grid.Cols() * m.Grid.Rows(),
		"tokens": len(m.Tokens),
		"host":   cfg.Session.Host,
	}).Info("session ready")
	return a, nil
}

// Update handles input and re-replays dirty layers.
func (a *App) Update() error {
	a.handleKeys()
	a.handleMouse()

	for id := LayerID(0); id < layerCount; id++ {
		if a.table.TakeLayerDirty(id) {
			ApplyCommands(a.layerImgs[id], a.table.Layer(id))
		}
	}
	return nil
}

// handleKeys processes edge-triggered key presses.
func (a *App) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// Layer toggles: 1-7 in draw order.
	layerKeys := [layerCount]ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7,
	}
	for i, k := range layerKeys {
		if pressed(k) {
			id := layerDrawOrder[i]
			a.showLayer[id] = !a.showLayer[id]
		}
	}

	if pressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}
	if pressed(ebiten.KeyV) {
		a.table.IsHost = !a.table.IsHost
		a.table.Refresh()
	}
	if pressed(ebiten.KeyF) {
		a.table.SetDynamicFog(!a.table.Fog.DynamicFog)
		a.log.WithField("dynamic", a.table.Fog.DynamicFog).Info("fog mode")
	}
	if pressed(ebiten.KeyT) {
		if !a.placing {
			a.placing = true
		} else {
			a.placingShape = aoeShapeCycle[(int(a.placingShape)+1)%int(aoeShapeCount)]
		}
	}
	if pressed(ebiten.KeyEscape) {
		a.placing = false
		a.table.SetAoE(nil)
	}
	if pressed(ebiten.KeyC) {
		if err := CopyDebugReport(a.table); err != nil {
			a.log.WithError(err).Warn("clipboard copy failed")
		} else {
			a.log.Info("debug report copied")
		}
	}
	if pressed(ebiten.KeyO) && a.mapPath != "" {
		if err := SaveMap(a.mapPath, a.table.Map, a.table.Fog); err != nil {
			a.log.WithError(err).Error("save failed")
		} else {
			a.log.WithField("path", a.mapPath).Info("map saved")
		}
	}

	// Camera pan.
	panSpeed := 8.0 / a.camZoom
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.camX += panSpeed
	}

	// Zoom.
	const zoomMin, zoomMax = 0.25, 4.0
	_, wy := ebiten.Wheel()
	if wy != 0 {
		a.camZoom *= math.Pow(1.12, wy)
	}
	if a.camZoom < zoomMin {
		a.camZoom = zoomMin
	}
	if a.camZoom > zoomMax {
		a.camZoom = zoomMax
	}

	a.prevKeys = currentKeys
}

// handleMouse drives token dragging and AoE placement.
func (a *App) handleMouse() {
	mx, my := ebiten.CursorPosition()
	wx, wy := a.screenToWorld(mx, my)
	cell := a.table.Map.Grid.WorldToCell(wx, wy)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !a.prevMouseLeft {
		if tok := a.tokenAt(cell); tok != nil {
			a.dragTokenID = tok.ID
			a.table.MovementTokenID = tok.ID
			a.table.Refresh()
		} else {
			a.dragTokenID = 0
		}
	}
	if !left && a.prevMouseLeft && a.dragTokenID != 0 {
		// Drop: snap the token to the cursor cell and recompute.
		a.table.MoveToken(a.dragTokenID, cell.X, cell.Y)
		a.dragTokenID = 0
	}
	a.prevMouseLeft = left

	// AoE live preview follows the cursor while placing; facing points from
	// the origin toward the cursor for directional shapes.
	if a.placing {
		cfg := &AoEConfig{
			Shape:    a.placingShape,
			SizeFeet: 20,
			OriginX:  cell.X,
			OriginY:  cell.Y,
		}
		if a.placingShape == AoECone || a.placingShape == AoELine {
			cx, cy := a.table.Map.Grid.CellCenter(cell)
			cfg.Direction = CompassFromAngle(math.Atan2(wy-cy, wx-cx))
			cfg.WidthFeet = 5
		}
		prev := a.table.AoE
		if prev == nil || *prev != *cfg {
			a.table.SetAoE(cfg)
		}
	}
}

// tokenAt returns the topmost token whose footprint covers the cell.
func (a *App) tokenAt(c Cell) *Token {
	for i := len(a.table.Map.Tokens) - 1; i >= 0; i-- {
		t := a.table.Map.Tokens[i]
		if c.X >= t.GridX && c.X < t.GridX+t.SizeX && c.Y >= t.GridY && c.Y < t.GridY+t.SizeY {
			return t
		}
	}
	return nil
}

// screenToWorld inverts the camera transform.
func (a *App) screenToWorld(sx, sy int) (float64, float64) {
	vpW := float64(a.width - 2*borderWidth)
	vpH := float64(a.height - 2*borderWidth)
	wx := (float64(sx-borderWidth)-vpW/2)/a.camZoom + a.camX
	wy := (float64(sy-borderWidth)-vpH/2)/a.camZoom + a.camY
	return wx, wy
}

// Draw composites background, tokens and overlay layers with the camera
// transform, then the HUD in screen space.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 13, B: 16, A: 255})

	a.worldBuf.Clear()
	a.drawWorld(a.worldBuf)

	vpW := float64(a.width - 2*borderWidth)
	vpH := float64(a.height - 2*borderWidth)
	var cam ebiten.GeoM
	cam.Translate(-a.camX, -a.camY)
	cam.Scale(a.camZoom, a.camZoom)
	cam.Translate(vpW/2, vpH/2)
	cam.Translate(borderWidth, borderWidth)
	screen.DrawImage(a.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	border := color.RGBA{R: 70, G: 75, B: 90, A: 255}
	vector.StrokeRect(screen, borderWidth-1, borderWidth-1, float32(vpW)+2, float32(vpH)+2, 2.0, border, false)

	if a.showHUD {
		a.drawHUD(screen)
	}
}

// drawWorld renders the map in world space: background, tokens, then the
// overlay layers in compositing order.
func (a *App) drawWorld(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 24, G: 26, B: 30, A: 255})
	if a.background != nil {
		dst.DrawImage(a.background, nil)
	}

	a.drawTokens(dst)

	for _, id := range layerDrawOrder {
		if a.showLayer[id] {
			dst.DrawImage(a.layerImgs[id].Image(), nil)
		}
	}
}

// drawTokens draws each token as a filled square with a kind-coloured
// border. Players only see tokens standing in currently visible cells;
// their own tokens are always shown.
func (a *App) drawTokens(dst *ebiten.Image) {
	g := a.table.Map.Grid
	for _, t := range a.table.Map.Tokens {
		if !a.table.IsHost && !t.ContributesVision() && !a.tokenSeen(t) {
			continue
		}
		cs := float32(g.CellSize)
		x := float32(t.GridX) * cs
		y := float32(t.GridY) * cs
		w := float32(t.SizeX) * cs
		h := float32(t.SizeY) * cs

		var fill, edge color.RGBA
		switch t.Kind {
		case TokenPlayer:
			fill = color.RGBA{R: 50, G: 110, B: 190, A: 235}
			edge = color.RGBA{R: 120, G: 180, B: 250, A: 255}
		case TokenMonster:
			fill = color.RGBA{R: 170, G: 50, B: 40, A: 235}
			edge = color.RGBA{R: 240, G: 110, B: 90, A: 255}
		case TokenNPC:
			fill = color.RGBA{R: 150, G: 130, B: 50, A: 235}
			edge = color.RGBA{R: 220, G: 200, B: 110, A: 255}
		default:
			fill = color.RGBA{R: 90, G: 90, B: 100, A: 200}
			edge = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		vector.FillRect(dst, x+2, y+2, w-4, h-4, fill, false)
		thickness := float32(1.5)
		if t.ID == a.table.MovementTokenID {
			thickness = 3
		}
		vector.StrokeRect(dst, x+2, y+2, w-4, h-4, thickness, edge, false)
		ebitenutil.DebugPrintAt(dst, t.Name, int(x)+4, int(y)+4)
	}
}

// tokenSeen reports whether any footprint cell is currently visible.
func (a *App) tokenSeen(t *Token) bool {
	for _, c := range t.Footprint() {
		if a.table.Visible.Has(c) {
			return true
		}
	}
	return false
}

// drawHUD prints the key legend and pipeline timings.
func (a *App) drawHUD(screen *ebiten.Image) {
	view := "player"
	if a.table.IsHost {
		view = "DM"
	}
	fogMode := "classic"
	if a.table.Fog.DynamicFog {
		fogMode = "dynamic"
	}
	lines := []string{
		fmt.Sprintf("%s | view:%s [V]  fog:%s [F]  save [O]  report [C]  HUD [H]", a.table.Map.Name, view, fogMode),
		"layers 1-7: terrain grid aoe move light fog walls | T: AoE shape  Esc: clear",
		a.table.Perf().Summary(),
	}
	if a.placing {
		lines = append(lines, fmt.Sprintf("placing: %s", a.placingShape))
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, borderWidth+4, a.height-borderWidth-14*(len(lines)-i))
	}
}

// Layout reports the fixed window size to ebiten.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// ensure App satisfies ebiten.Game.
var _ ebiten.Game = (*App)(nil)
