package tabletop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
)

// BuildDebugReport summarises the session for bug reports: map shape, fog
// coverage, per-observer vision counts, lighting distribution and pipeline
// timings. The DM triggers it from the app (copied to the clipboard) and
// cmd/mapreport prints it.
func BuildDebugReport(t *Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Grid Warden debug report ---\n")
	if t == nil || t.Map == nil {
		b.WriteString("no map loaded\n")
		return b.String()
	}
	m := t.Map
	cols, rows := m.Grid.Cols(), m.Grid.Rows()
	total := cols * rows
	fmt.Fprintf(&b, "map=%q grid=%dx%d cells (%dpx)\n", m.Name, cols, rows, m.Grid.CellSize)
	fmt.Fprintf(&b, "tokens=%d walls=%d lights=%d terrain_patches=%d ambient=%s dynamic_fog=%v\n",
		len(m.Tokens), len(m.Walls), len(m.Lights), len(m.Terrain), m.Ambient, t.Fog.DynamicFog)

	if total > 0 {
		fmt.Fprintf(&b, "visible=%d/%d (%.1f%%) explored=%d/%d (%.1f%%)\n",
			len(t.Visible), total, pct(len(t.Visible), total),
			len(t.Fog.Explored()), total, pct(len(t.Fog.Explored()), total))
	}

	// Per-observer breakdown, sorted by token ID for stable output.
	party := PartyObservers(m.Tokens)
	sort.Slice(party, func(i, j int) bool { return party[i].ID < party[j].ID })
	for _, tok := range party {
		solo := RecomputeVision(m.Grid, m.Walls, []*Token{tok})
		fmt.Fprintf(&b, "  observer #%d %q at (%d,%d): sees %d cells (range=%dft darkvision=%dft)\n",
			tok.ID, tok.Name, tok.GridX, tok.GridY, len(solo), tok.VisionFeet, tok.DarkvisionFeet)
	}

	if t.Lighting != nil && total > 0 {
		var bright, dim, dark int
		for cy := 0; cy < rows; cy++ {
			for cx := 0; cx < cols; cx++ {
				switch t.Lighting.At(cx, cy) {
				case LightBright:
					bright++
				case LightDim:
					dim++
				default:
					dark++
				}
			}
		}
		fmt.Fprintf(&b, "lighting: bright=%.1f%% dim=%.1f%% dark=%.1f%%\n",
			pct(bright, total), pct(dim, total), pct(dark, total))
	}

	fmt.Fprintf(&b, "%s\n", t.Perf().Summary())
	return b.String()
}

// CopyDebugReport places the report on the system clipboard.
func CopyDebugReport(t *Table) error {
	return clipboard.WriteAll(BuildDebugReport(t))
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
