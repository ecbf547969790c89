package tabletop

import "testing"

func TestGenerateDemoMap_DeterministicForSeed(t *testing.T) {
	a := GenerateDemoMap(7)
	b := GenerateDemoMap(7)
	if len(a.Walls) != len(b.Walls) || len(a.Tokens) != len(b.Tokens) || len(a.Lights) != len(b.Lights) {
		t.Fatal("same seed must produce the same map")
	}
	for i := range a.Walls {
		if a.Walls[i] != b.Walls[i] {
			t.Fatalf("wall %d diverged between runs", i)
		}
	}
}

func TestGenerateDemoMap_ProducesPlayableSession(t *testing.T) {
	m := GenerateDemoMap(1)
	if len(PartyObservers(m.Tokens)) < 2 {
		t.Fatal("demo map needs a party")
	}
	if len(m.Walls) == 0 || len(m.Lights) == 0 {
		t.Fatal("demo map should have rooms and torches")
	}

	table := NewTable(m, true)
	if len(table.Visible) == 0 {
		t.Fatal("party should see something from the starting position")
	}
	if len(table.Visible) >= m.Grid.Cols()*m.Grid.Rows() {
		t.Fatal("room walls should hide part of the dungeon")
	}
	for _, tok := range m.Tokens {
		if !m.Grid.InBounds(Cell{X: tok.GridX, Y: tok.GridY}) {
			t.Fatalf("token %d placed off the grid", tok.ID)
		}
	}
}
