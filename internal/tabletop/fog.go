package tabletop

// FogOfWar holds the per-map fog state: the persistent explored history and
// the transient current-turn visibility.
//
// explored only ever grows during a session; visible is replaced wholesale
// every time vision recomputes, since visibility can shrink as tokens move.
type FogOfWar struct {
	explored CellSet
	visible  CellSet

	// DynamicFog selects the reveal rule for players. False: once explored,
	// always shown (classic D&D fog). True: cells outside current visibility
	// re-fog even if previously explored.
	DynamicFog bool
}

// NewFogOfWar creates an empty fog state.
func NewFogOfWar(dynamic bool) *FogOfWar {
	return &FogOfWar{
		explored:   make(CellSet),
		visible:    make(CellSet),
		DynamicFog: dynamic,
	}
}

// AddExplored merges cells into the persistent explored history. Idempotent
// union: re-adding an explored cell is a no-op, and the history never shrinks.
func (f *FogOfWar) AddExplored(cells CellSet) {
	f.explored.AddAll(cells)
}

// SetVisible replaces the transient current-visibility set.
func (f *FogOfWar) SetVisible(cells CellSet) {
	if cells == nil {
		cells = make(CellSet)
	}
	f.visible = cells
}

// Explored returns the persistent explored set. Callers must not mutate it.
func (f *FogOfWar) Explored() CellSet {
	return f.explored
}

// Visible returns the current-turn visible set. Callers must not mutate it.
func (f *FogOfWar) Visible() CellSet {
	return f.visible
}

// FogCellState is what the player-side renderer should do with one cell.
type FogCellState uint8

const (
	FogHidden   FogCellState = iota // never seen: opaque fog
	FogMemory                       // explored but not currently visible
	FogRevealed                     // currently visible (or permanently revealed)
)

// CellState classifies one cell under the active reveal rule.
// With DynamicFog off, explored cells stay FogRevealed forever. With it on,
// explored-but-not-visible cells drop to FogMemory and re-fog visually.
func (f *FogOfWar) CellState(c Cell) FogCellState {
	if f.visible.Has(c) {
		return FogRevealed
	}
	if f.explored.Has(c) {
		if f.DynamicFog {
			return FogMemory
		}
		return FogRevealed
	}
	return FogHidden
}

// FogStore keys fog state by map ID so switching maps preserves each map's
// explored history for the session.
type FogStore struct {
	byMap map[string]*FogOfWar
}

// NewFogStore creates an empty store.
func NewFogStore() *FogStore {
	return &FogStore{byMap: make(map[string]*FogOfWar)}
}

// For returns the fog state for a map, creating it on first use.
func (s *FogStore) For(mapID string, dynamic bool) *FogOfWar {
	if f, ok := s.byMap[mapID]; ok {
		return f
	}
	f := NewFogOfWar(dynamic)
	s.byMap[mapID] = f
	return f
}

// AddExplored merges cells into a map's explored history.
func (s *FogStore) AddExplored(mapID string, cells CellSet) {
	s.For(mapID, false).AddExplored(cells)
}
