package tabletop

import "testing"

func cellsToSet(cells []Cell) CellSet {
	return NewCellSet(cells...)
}

func TestAoE_Cube20Feet_Is4x4AnchoredAtOrigin(t *testing.T) {
	got := AoECells(AoEConfig{Shape: AoECube, SizeFeet: 20, OriginX: 5, OriginY: 5})
	if len(got) != 16 {
		t.Fatalf("expected 16 cells for a 20ft cube, got %d", len(got))
	}
	set := cellsToSet(got)
	if !set.Has(Cell{X: 5, Y: 5}) {
		t.Fatal("origin must be a corner of the cube")
	}
	if !set.Has(Cell{X: 8, Y: 8}) {
		t.Fatal("opposite corner of the 4x4 square missing")
	}
	if set.Has(Cell{X: 4, Y: 5}) || set.Has(Cell{X: 9, Y: 5}) {
		t.Fatal("cube must not extend past its 4x4 footprint")
	}
}

func TestAoE_Sphere20Feet_RadiusBoundary(t *testing.T) {
	got := cellsToSet(AoECells(AoEConfig{Shape: AoESphere, SizeFeet: 20, OriginX: 10, OriginY: 10}))
	if !got.Has(Cell{X: 10, Y: 10}) {
		t.Fatal("sphere must include its origin")
	}
	if !got.Has(Cell{X: 14, Y: 10}) {
		t.Fatal("cell at exactly 4 cells must be inside the sphere")
	}
	if got.Has(Cell{X: 15, Y: 10}) {
		t.Fatal("cell at 5 cells must be outside the sphere")
	}
}

func TestAoE_CylinderMatchesSphereFootprint(t *testing.T) {
	sphere := AoECells(AoEConfig{Shape: AoESphere, SizeFeet: 30, OriginX: 8, OriginY: 8})
	cyl := AoECells(AoEConfig{Shape: AoECylinder, SizeFeet: 30, OriginX: 8, OriginY: 8})
	if len(sphere) != len(cyl) {
		t.Fatalf("cylinder base should match sphere cross-section: %d vs %d", len(sphere), len(cyl))
	}
}

func TestAoE_EmanationMeasuresFromFootprintEdge(t *testing.T) {
	// A 2x2 creature with a 10ft (2 cell) emanation: the cell 2 to the right
	// of the right edge is in range of the nearest footprint cell even
	// though it is 3 cells from the anchor corner.
	got := cellsToSet(AoECells(AoEConfig{
		Shape: AoEEmanation, SizeFeet: 10, OriginX: 5, OriginY: 5, EntitySize: 2,
	}))
	if !got.Has(Cell{X: 5, Y: 5}) || !got.Has(Cell{X: 6, Y: 6}) {
		t.Fatal("emanation includes the entity's own footprint")
	}
	if !got.Has(Cell{X: 8, Y: 5}) {
		t.Fatal("cell within 2 cells of the footprint's right edge missing")
	}
	if got.Has(Cell{X: 9, Y: 5}) {
		t.Fatal("cell 3 cells past the footprint edge should be out of range")
	}

	point := cellsToSet(AoECells(AoEConfig{
		Shape: AoEEmanation, SizeFeet: 10, OriginX: 5, OriginY: 5, EntitySize: 1,
	}))
	if point.Has(Cell{X: 8, Y: 5}) {
		t.Fatal("1x1 entity emanation should not reach 3 cells out")
	}
}

func TestAoE_ConeFacingEast(t *testing.T) {
	got := cellsToSet(AoECells(AoEConfig{
		Shape: AoECone, SizeFeet: 20, OriginX: 10, OriginY: 10, Direction: East,
	}))
	if got.Has(Cell{X: 10, Y: 10}) {
		t.Fatal("cone must not include its origin cell")
	}
	if !got.Has(Cell{X: 12, Y: 10}) {
		t.Fatal("cell straight ahead missing from the cone")
	}
	// The ±45° edges are part of the cone.
	if !got.Has(Cell{X: 12, Y: 12}) || !got.Has(Cell{X: 12, Y: 8}) {
		t.Fatal("45-degree edge cells missing from the cone")
	}
	if got.Has(Cell{X: 8, Y: 10}) {
		t.Fatal("cell behind the origin cannot be in an east-facing cone")
	}
	if got.Has(Cell{X: 10, Y: 13}) {
		t.Fatal("cell outside the angular spread should be excluded")
	}
}

func TestAoE_LineEastward(t *testing.T) {
	got := cellsToSet(AoECells(AoEConfig{
		Shape: AoELine, SizeFeet: 30, WidthFeet: 5, OriginX: 4, OriginY: 4, Direction: East,
	}))
	if len(got) != 6 {
		t.Fatalf("30ft x 5ft line should cover 6 cells, got %d", len(got))
	}
	if !got.Has(Cell{X: 5, Y: 4}) || !got.Has(Cell{X: 10, Y: 4}) {
		t.Fatal("line should run 6 cells east of the origin")
	}
	if got.Has(Cell{X: 4, Y: 4}) {
		t.Fatal("line starts adjacent to the origin, not on it")
	}
}

func TestAoE_LineWidth10Feet(t *testing.T) {
	got := cellsToSet(AoECells(AoEConfig{
		Shape: AoELine, SizeFeet: 10, WidthFeet: 10, OriginX: 4, OriginY: 4, Direction: South,
	}))
	if len(got) != 4 {
		t.Fatalf("10ft x 10ft line should cover 4 cells, got %d", len(got))
	}
}

func TestAoE_PureAndDeterministic(t *testing.T) {
	cfg := AoEConfig{Shape: AoECone, SizeFeet: 60, OriginX: 20, OriginY: 20, Direction: NorthWest}
	a := AoECells(cfg)
	b := AoECells(cfg)
	if len(a) != len(b) {
		t.Fatalf("same config produced %d then %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell order diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestAoE_ZeroSizeYieldsNothing(t *testing.T) {
	if got := AoECells(AoEConfig{Shape: AoESphere, SizeFeet: 0, OriginX: 5, OriginY: 5}); got != nil {
		t.Fatalf("zero-size template should produce no cells, got %d", len(got))
	}
}

func TestCompassFromAngle_SnapsToNearestFacing(t *testing.T) {
	if got := CompassFromAngle(0.1); got != East {
		t.Fatalf("expected east, got %d", got)
	}
	if got := CompassFromAngle(-0.8); got != NorthEast {
		t.Fatalf("expected north-east, got %d", got)
	}
}
