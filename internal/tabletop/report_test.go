package tabletop

import (
	"strings"
	"testing"
)

func TestDebugReport_CoversMapAndFog(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithWall(5, 0, 5, 10),
		WithPlayer(1, 2, 5),
		WithLight(2, 5, 20, 40),
	)
	report := BuildDebugReport(table)
	for _, want := range []string{
		`map="fixture"`, "grid=10x10", "walls=1", "lights=1", "explored=", "observer #1", "lighting:", "recompute",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestDebugReport_SoloVisionSortedByTokenID(t *testing.T) {
	table := NewTestTable(
		WithGridSize(10, 10, 50),
		WithPlayer(3, 1, 1),
		WithPlayer(1, 8, 8),
	)
	report := BuildDebugReport(table)
	first := strings.Index(report, "observer #1")
	second := strings.Index(report, "observer #3")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("per-observer lines must appear in ID order:\n%s", report)
	}
}

func TestDebugReport_NoMap(t *testing.T) {
	if got := BuildDebugReport(nil); !strings.Contains(got, "no map loaded") {
		t.Fatalf("nil table should report gracefully, got %q", got)
	}
}
