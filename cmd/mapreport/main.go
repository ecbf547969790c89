package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Grid-Warden/internal/tabletop"
)

// mapreport loads a map (or generates the demo one), runs the full
// vision/fog/lighting pipeline headlessly and prints the debug report.
// Useful for checking a map's sightlines and light coverage without
// opening a window, and for bug reports.
func main() {
	var mapPath string
	var seed int64
	var dynamicFog bool
	var iterations int
	var observerID int
	flag.StringVar(&mapPath, "map", "", "map file (empty generates a demo map)")
	flag.Int64Var(&seed, "seed", 1, "demo map seed")
	flag.BoolVar(&dynamicFog, "dynamic-fog", false, "force dynamic fog mode")
	flag.IntVar(&iterations, "iterations", 1, "pipeline reruns (for timing stats)")
	flag.IntVar(&observerID, "observer", 0, "report vision for this token ID only (0 = whole party)")
	flag.Parse()

	if iterations <= 0 {
		fmt.Println("error: -iterations must be > 0")
		os.Exit(1)
	}

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
	if dynamicFog {
		m.Fog.DynamicFog = true
	}
	if observerID != 0 {
		// Solo view: demote every other player so only this observer feeds vision.
		found := false
		for _, tok := range m.Tokens {
			if tok.ID == observerID {
				found = true
				continue
			}
			if tok.Kind == tabletop.TokenPlayer {
				tok.Kind = tabletop.TokenNPC
			}
		}
		if !found {
			log.WithField("observer", observerID).Fatal("no such token")
		}
	}

	table := tabletop.NewTable(m, true)
	for i := 1; i < iterations; i++ {
		table.Refresh()
	}
	fmt.Print(tabletop.BuildDebugReport(table))
}
