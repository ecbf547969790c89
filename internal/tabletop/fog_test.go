package tabletop

import "testing"

func TestFog_AddExploredIsMonotonic(t *testing.T) {
	fog := NewFogOfWar(false)
	fog.AddExplored(NewCellSet(Cell{X: 1, Y: 1}, Cell{X: 2, Y: 2}))
	if len(fog.Explored()) != 2 {
		t.Fatalf("expected 2 explored cells, got %d", len(fog.Explored()))
	}
	// Adding a disjoint set grows, never shrinks.
	fog.AddExplored(NewCellSet(Cell{X: 3, Y: 3}))
	if len(fog.Explored()) != 3 {
		t.Fatalf("expected 3 explored cells, got %d", len(fog.Explored()))
	}
	// An empty merge leaves everything in place.
	fog.AddExplored(NewCellSet())
	if len(fog.Explored()) != 3 {
		t.Fatal("empty merge must not shrink the explored set")
	}
}

func TestFog_AddExploredIsIdempotent(t *testing.T) {
	fog := NewFogOfWar(false)
	cells := NewCellSet(Cell{X: 5, Y: 5}, Cell{X: 6, Y: 5})
	fog.AddExplored(cells)
	fog.AddExplored(cells)
	if len(fog.Explored()) != 2 {
		t.Fatalf("re-adding explored cells must be a no-op, got %d", len(fog.Explored()))
	}
}

func TestFog_SetVisibleReplacesWholesale(t *testing.T) {
	fog := NewFogOfWar(false)
	fog.SetVisible(NewCellSet(Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}))
	fog.SetVisible(NewCellSet(Cell{X: 9, Y: 9}))
	if len(fog.Visible()) != 1 || !fog.Visible().Has(Cell{X: 9, Y: 9}) {
		t.Fatal("SetVisible must replace, not merge")
	}
}

func TestFog_ClassicMode_ExploredStaysRevealed(t *testing.T) {
	fog := NewFogOfWar(false)
	c := Cell{X: 4, Y: 4}
	// Explored in a prior turn, now outside current visibility.
	fog.AddExplored(NewCellSet(c))
	fog.SetVisible(NewCellSet(Cell{X: 0, Y: 0}))
	if fog.CellState(c) != FogRevealed {
		t.Fatal("classic fog: explored cell must stay revealed")
	}
}

func TestFog_DynamicMode_ExploredRefogs(t *testing.T) {
	fog := NewFogOfWar(true)
	c := Cell{X: 4, Y: 4}
	fog.AddExplored(NewCellSet(c))
	fog.SetVisible(NewCellSet(Cell{X: 0, Y: 0}))
	if fog.CellState(c) != FogMemory {
		t.Fatal("dynamic fog: explored cell outside visibility must re-fog")
	}
	// But currently-visible cells stay revealed.
	fog.SetVisible(NewCellSet(c))
	if fog.CellState(c) != FogRevealed {
		t.Fatal("dynamic fog: currently visible cell must render revealed")
	}
}

func TestFog_NeverSeenCellIsHidden(t *testing.T) {
	fog := NewFogOfWar(false)
	if fog.CellState(Cell{X: 7, Y: 7}) != FogHidden {
		t.Fatal("never-seen cell must be hidden")
	}
}

func TestFogStore_KeyedByMap(t *testing.T) {
	store := NewFogStore()
	store.AddExplored("crypt", NewCellSet(Cell{X: 1, Y: 1}))
	store.AddExplored("forest", NewCellSet(Cell{X: 2, Y: 2}, Cell{X: 3, Y: 3}))
	if len(store.For("crypt", false).Explored()) != 1 {
		t.Fatal("crypt fog polluted by another map")
	}
	if len(store.For("forest", false).Explored()) != 2 {
		t.Fatal("forest fog missing cells")
	}
}
