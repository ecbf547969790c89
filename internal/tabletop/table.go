package tabletop

import "time"

// Table is the live session state for one loaded map: the authoritative
// DM-owned map plus every derived set the renderer consumes. All derived
// state is recomputed wholesale by Refresh in a fixed order: there is no
// incremental patching and therefore no incremental-update consistency bugs.
type Table struct {
	Map    *GameMap
	Fog    *FogOfWar
	IsHost bool

	// Active AoE template, nil when none is being placed.
	AoE *AoEConfig
	// Token whose movement range is shown, 0 for none.
	MovementTokenID int

	// Derived state, owned by Refresh.
	Terrain   *TerrainGrid
	Visible   CellSet
	Lighting  *LightGrid // raw classification
	Perceived *LightGrid // party view after darkvision
	AoECells  []Cell
	Movement  CellSet

	layers [layerCount][]DrawCmd
	dirty  [layerCount]bool
	perf   *PerfTracker
}

// NewTable builds a session around a normalized map, restoring fog from the
// map's persisted state.
func NewTable(m *GameMap, isHost bool) *Table {
	t := &Table{
		Map:    m,
		IsHost: isHost,
		perf:   NewPerfTracker(120),
	}
	if m != nil {
		t.Fog = m.RestoreFog()
		t.Terrain = BuildTerrainGrid(m.Grid, m.Terrain)
	}
	t.Refresh()
	return t
}

// Refresh recomputes every derived set and rebuilds every layer's command
// list. The order is contractual: vision first, then the fog merge, then
// lighting (darkvision reads the fresh visible set), then draw commands.
// With no map loaded every layer clears and nothing is computed.
func (t *Table) Refresh() {
	for i := range t.layers {
		t.layers[i] = nil
		t.dirty[i] = true
	}
	if t.Map == nil || t.Fog == nil {
		t.Visible = nil
		t.Lighting = nil
		t.Perceived = nil
		t.AoECells = nil
		t.Movement = nil
		return
	}
	m := t.Map
	start := time.Now()

	// 1. VISION
	party := PartyObservers(m.Tokens)
	t.Visible = RecomputeVision(m.Grid, m.Walls, party)

	// 2. FOG MERGE: explored grows, visible is replaced.
	t.Fog.AddExplored(t.Visible)
	t.Fog.SetVisible(t.Visible)

	// 3. LIGHTING: darkvision depends on the visible set from step 2.
	t.Lighting = ComputeLighting(m.Grid, m.Walls, m.Ambient, t.allLights())
	t.Perceived = PartyPerceivedLighting(t.Lighting, party, t.Visible)

	// 4. TEMPLATES
	if t.AoE != nil {
		t.AoECells = AoECells(*t.AoE)
	} else {
		t.AoECells = nil
	}
	if tok := m.TokenByID(t.MovementTokenID); tok != nil {
		t.Movement = MovementRange(m.Grid, m.Walls, t.Terrain, tok)
	} else {
		t.Movement = nil
	}

	// 5. PROJECT: pure state into draw-command lists.
	lightingGrid := t.Lighting
	if !t.IsHost {
		lightingGrid = t.Perceived
	}
	t.layers[LayerGrid] = BuildGridCommands(m.Grid)
	t.layers[LayerTerrain] = BuildTerrainCommands(m.Grid, t.Terrain)
	t.layers[LayerWalls] = BuildWallCommands(m.Grid, m.Walls, t.IsHost)
	t.layers[LayerLighting] = BuildLightingCommands(m.Grid, m.Walls, m.Ambient, lightingGrid)
	t.layers[LayerFog] = BuildFogCommands(m.Grid, t.Fog, t.IsHost)
	t.layers[LayerAoE] = BuildAoECommands(m.Grid, t.AoECells)
	t.layers[LayerMovement] = BuildMovementCommands(m.Grid, t.Movement)

	t.perf.Record(time.Since(start))
}

// allLights merges standalone sources with token-carried ones. Tokens carry
// light when their map entry lists a source at their cell; for now standalone
// sources are authoritative and token torches are modelled as standalone
// sources placed by the DM.
func (t *Table) allLights() []LightSource {
	return t.Map.Lights
}

// Layer returns the current command list for one layer. Nil means the layer
// has nothing to draw and its surface should be cleared.
func (t *Table) Layer(id LayerID) []DrawCmd {
	if id >= layerCount {
		return nil
	}
	return t.layers[id]
}

// TakeLayerDirty reports and clears the layer's redraw flag. Backends call
// this once per frame per layer so unchanged layers skip their replay.
func (t *Table) TakeLayerDirty(id LayerID) bool {
	if id >= layerCount {
		return false
	}
	d := t.dirty[id]
	t.dirty[id] = false
	return d
}

// MoveToken relocates a token and re-runs the pipeline. Out-of-bounds
// destinations are clamped, not rejected.
func (t *Table) MoveToken(id, gridX, gridY int) {
	if t.Map == nil {
		return
	}
	tok := t.Map.TokenByID(id)
	if tok == nil {
		return
	}
	tok.GridX, tok.GridY = gridX, gridY
	tok.clampToGrid(t.Map.Grid)
	t.Refresh()
}

// SetAoE installs (or clears, with nil) the active template and re-runs the
// pipeline.
func (t *Table) SetAoE(cfg *AoEConfig) {
	t.AoE = cfg
	t.Refresh()
}

// SetDynamicFog flips the per-map reveal rule.
func (t *Table) SetDynamicFog(enabled bool) {
	if t.Fog == nil {
		return
	}
	t.Fog.DynamicFog = enabled
	t.Refresh()
}

// Perf exposes recompute timing stats for the HUD and reports.
func (t *Table) Perf() *PerfTracker {
	return t.perf
}
