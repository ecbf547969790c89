package main

import (
	"flag"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Grid-Warden/internal/tabletop"
)

// console is a read-only terminal map viewer: the same draw-command lists
// the windowed app renders, replayed through the tcell backend. Handy for
// eyeballing fog and lighting over SSH.
//
// Keys: v toggles DM/player view, f toggles dynamic fog, q quits.
func main() {
	var mapPath string
	var seed int64
	flag.StringVar(&mapPath, "map", "", "map file (empty generates a demo map)")
	flag.Int64Var(&seed, "seed", 1, "demo map seed")
	flag.Parse()

	log := logrus.New()
	var m *tabletop.GameMap
	var err error
	if mapPath != "" {
		m, err = tabletop.LoadMap(mapPath)
		if err != nil {
			log.WithError(err).Fatal("load map")
		}
	} else {
		m = tabletop.GenerateDemoMap(seed)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("screen init")
	}
	defer screen.Fini()

	table := tabletop.NewTable(m, true)
	canvas := tabletop.NewTermCanvas(screen, m.Grid, 0, 1)

	// Fog above lighting, walls on top: same compositing order as the app.
	order := []tabletop.LayerID{
		tabletop.LayerTerrain, tabletop.LayerAoE, tabletop.LayerMovement,
		tabletop.LayerLighting, tabletop.LayerFog, tabletop.LayerWalls,
	}

	redraw := func() {
		screen.Clear()
		canvas.Clear()
		for _, id := range order {
			tabletop.ReplayCommands(canvas, table.Layer(id))
		}
		canvas.Flush()
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'q':
				return
			case 'v':
				table.IsHost = !table.IsHost
				table.Refresh()
				redraw()
			case 'f':
				table.SetDynamicFog(!table.Fog.DynamicFog)
				redraw()
			}
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
		}
	}
}
