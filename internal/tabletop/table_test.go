package tabletop

import "testing"

func TestTable_PipelineOrdering_ExploredTracksVisible(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithWall(5, 0, 5, 10),
		WithPlayer(1, 2, 5),
	)
	if len(table.Visible) == 0 {
		t.Fatal("pipeline should have produced a visible set")
	}
	for c := range table.Visible {
		if !table.Fog.Explored().Has(c) {
			t.Fatalf("visible cell %v missing from explored after refresh", c)
		}
	}
	if table.Visible.Has(Cell{X: 7, Y: 5}) {
		t.Fatal("cell behind the wall should not be visible")
	}
}

func TestTable_TokenMove_VisibleShrinksExploredKeeps(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithWall(5, 0, 5, 10),
		WithPlayer(1, 7, 5), // starts on the right side
	)
	if !table.Visible.Has(Cell{X: 8, Y: 5}) {
		t.Fatal("setup: right side should be visible")
	}
	// Walk through: teleport the token to the left side.
	table.MoveToken(1, 2, 5)
	if table.Visible.Has(Cell{X: 8, Y: 5}) {
		t.Fatal("visible set must shrink when the observer moves away")
	}
	if !table.Fog.Explored().Has(Cell{X: 8, Y: 5}) {
		t.Fatal("explored history must keep the old cells")
	}
}

func TestTable_DarkvisionReadsFreshVisibility(t *testing.T) {
	// The lighting pass must consume the visible set computed in the same
	// refresh, not the previous one: after moving, the perceived grid shows
	// dim cells around the new position.
	table := NewTestTable(
		WithGridSize(30, 10, 50),
		WithToken(&Token{ID: 1, Kind: TokenPlayer, GridX: 2, GridY: 5, SizeX: 1, SizeY: 1, DarkvisionFeet: 30}),
	)
	table.MoveToken(1, 25, 5)
	if got := table.Perceived.At(27, 5); got != LightDim {
		t.Fatalf("darkvision should light cells near the new position, got %s", got)
	}
	if got := table.Perceived.At(2, 5); got != LightDark {
		t.Fatalf("old position is beyond darkvision range now, got %s", got)
	}
}

func TestTable_AoELayer_ClearsWhenTemplateRemoved(t *testing.T) {
	table := NewTestTable(WithGridSize(10, 10, 50), WithPlayer(1, 5, 5))
	table.SetAoE(&AoEConfig{Shape: AoESphere, SizeFeet: 20, OriginX: 5, OriginY: 5})
	if len(table.Layer(LayerAoE)) == 0 {
		t.Fatal("active template should produce AoE commands")
	}
	table.SetAoE(nil)
	if len(table.Layer(LayerAoE)) != 0 {
		t.Fatal("cleared template must leave an empty command list")
	}
}

func TestTable_NoMap_AllLayersEmpty(t *testing.T) {
	table := &Table{perf: NewPerfTracker(8)}
	table.Refresh()
	for id := LayerID(0); id < layerCount; id++ {
		if len(table.Layer(id)) != 0 {
			t.Fatalf("layer %s should be empty with no map loaded", id)
		}
	}
}

func TestTable_HostSeesWalls_PlayerDoesNot(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithWall(5, 0, 5, 10),
		WithPlayer(1, 2, 5),
	)
	if len(table.Layer(LayerWalls)) == 0 {
		t.Fatal("DM view should draw wall geometry")
	}
	table.IsHost = false
	table.Refresh()
	if len(table.Layer(LayerWalls)) != 0 {
		t.Fatal("player view must never draw wall geometry")
	}
}

func TestTable_DynamicFogToggle_RefogsOldCells(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithWall(5, 0, 5, 10),
		WithPlayer(1, 7, 5),
	)
	table.MoveToken(1, 2, 5) // right side now explored-but-not-visible
	old := Cell{X: 8, Y: 5}

	if table.Fog.CellState(old) != FogRevealed {
		t.Fatal("classic fog keeps explored cells revealed")
	}
	table.SetDynamicFog(true)
	if table.Fog.CellState(old) != FogMemory {
		t.Fatal("dynamic fog must re-fog explored cells outside visibility")
	}
}

func TestTable_LayerDirtyFlagsClearOnTake(t *testing.T) {
	table := NewTestTable(WithGridSize(5, 5, 50), WithPlayer(1, 2, 2))
	if !table.TakeLayerDirty(LayerFog) {
		t.Fatal("fresh refresh should mark layers dirty")
	}
	if table.TakeLayerDirty(LayerFog) {
		t.Fatal("second take without a refresh should be clean")
	}
	table.Refresh()
	if !table.TakeLayerDirty(LayerFog) {
		t.Fatal("refresh should re-mark layers dirty")
	}
}

func TestTable_MovementOverlayFollowsSelection(t *testing.T) {
	table := NewTestTable(WithGridSize(10, 10, 50), WithPlayer(1, 5, 5))
	if len(table.Layer(LayerMovement)) != 0 {
		t.Fatal("no selection means an empty movement layer")
	}
	table.MovementTokenID = 1
	table.Refresh()
	if len(table.Layer(LayerMovement)) == 0 {
		t.Fatal("selected token should produce a movement overlay")
	}
	if !table.Movement.Has(Cell{X: 5, Y: 5}) {
		t.Fatal("movement range includes the token's own cell")
	}
}
