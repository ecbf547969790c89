package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Grid-Warden/internal/tabletop"
)

func main() {
	var configPath string
	var mapPath string
	var seed int64
	flag.StringVar(&configPath, "config", "gridwarden.toml", "config file path")
	flag.StringVar(&mapPath, "map", "", "map file (overrides config; empty generates a demo map)")
	flag.Int64Var(&seed, "seed", 1, "demo map seed when no map file is given")
	flag.Parse()

	cfg, err := tabletop.LoadConfig(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := tabletop.NewLogger(cfg.Logging)

	if mapPath == "" {
		mapPath = cfg.Session.MapPath
	}
	var m *tabletop.GameMap
	savePath := mapPath
	if mapPath != "" {
		m, err = tabletop.LoadMap(mapPath)
		if err != nil {
			log.WithError(err).Fatal("load map")
		}
	} else {
		m = tabletop.GenerateDemoMap(seed)
		log.WithField("seed", seed).Info("no map file, generated demo map")
	}

	app, err := tabletop.NewApp(cfg, m, savePath, log)
	if err != nil {
		log.WithError(err).Fatal("init")
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(app); err != nil {
		log.WithError(err).Fatal("run")
	}
}
