package tabletop

import "testing"

func TestSightline_ClearWithNoWalls(t *testing.T) {
	if !SightlineClear(0, 0, 500, 500, nil) {
		t.Fatal("expected clear sightline with no walls")
	}
}

func TestSightline_BlockedByCrossingWall(t *testing.T) {
	walls := []WallSegment{{X1: 100, Y1: 0, X2: 100, Y2: 400}}
	if SightlineClear(0, 200, 300, 200, walls) {
		t.Fatal("expected sightline blocked by crossing wall")
	}
}

func TestSightline_WallBeyondEndpoint_NotBlocked(t *testing.T) {
	walls := []WallSegment{{X1: 400, Y1: 0, X2: 400, Y2: 400}}
	if !SightlineClear(0, 200, 300, 200, walls) {
		t.Fatal("wall beyond the endpoint should not block")
	}
}

func TestSightline_GrazingWallEndpoint_StaysVisible(t *testing.T) {
	// Sightline passes exactly through the wall's endpoint at (100,100).
	// Corner grazes resolve to visible so fog never flickers at corners.
	walls := []WallSegment{{X1: 100, Y1: 100, X2: 100, Y2: 300}}
	if !SightlineClear(50, 50, 150, 150, walls) {
		t.Fatal("sightline grazing a wall endpoint should stay clear")
	}
}

func TestSightline_CollinearAlongWall_StaysVisible(t *testing.T) {
	walls := []WallSegment{{X1: 100, Y1: 200, X2: 300, Y2: 200}}
	if !SightlineClear(0, 200, 400, 200, walls) {
		t.Fatal("sightline running along a wall should stay clear")
	}
}

func TestSightline_DegenerateWallIgnored(t *testing.T) {
	walls := []WallSegment{{X1: 150, Y1: 150, X2: 150, Y2: 150}}
	if !SightlineClear(0, 0, 300, 300, walls) {
		t.Fatal("zero-length wall must be skipped, not block")
	}
}

func TestSightline_ZeroLengthRay_DoesNotPanic(t *testing.T) {
	walls := []WallSegment{{X1: 0, Y1: 0, X2: 200, Y2: 200}}
	_ = SightlineClear(50, 50, 50, 50, walls)
}

func TestPruneWalls_DropsDegenerateAndClampsOffMap(t *testing.T) {
	g := Grid{CellSize: 50, Width: 500, Height: 500}
	walls := []WallSegment{
		{X1: 10, Y1: 10, X2: 10, Y2: 10},         // degenerate
		{X1: -100, Y1: 50, X2: 200, Y2: 50},      // clamp left
		{X1: -500, Y1: -500, X2: -400, Y2: -400}, // collapses after clamping
		{X1: 100, Y1: 100, X2: 200, Y2: 200},     // fine
	}
	kept := pruneWalls(g, walls)
	if len(kept) != 2 {
		t.Fatalf("expected 2 surviving walls, got %d", len(kept))
	}
	if kept[0].X1 != 0 {
		t.Fatalf("expected off-map endpoint clamped to 0, got %v", kept[0].X1)
	}
}
