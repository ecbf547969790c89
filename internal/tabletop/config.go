package tabletop

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config is the application configuration: a TOML file with GRIDWARDEN_*
// environment overrides applied on top.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Session SessionConfig `toml:"session"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width" env:"GRIDWARDEN_WINDOW_WIDTH"`
	Height int    `toml:"height" env:"GRIDWARDEN_WINDOW_HEIGHT"`
	Title  string `toml:"title" env:"GRIDWARDEN_WINDOW_TITLE"`
}

type SessionConfig struct {
	MapPath string `toml:"map_path" env:"GRIDWARDEN_MAP"`
	Host    bool   `toml:"host" env:"GRIDWARDEN_HOST"` // DM view when true
}

type LoggingConfig struct {
	Level string `toml:"level" env:"GRIDWARDEN_LOG_LEVEL"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Window:  WindowConfig{Width: 1600, Height: 900, Title: "Grid Warden"},
		Session: SessionConfig{Host: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads the TOML file (a missing file just means defaults) and
// then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if data, err := os.ReadFile(path); err == nil { // #nosec G304 -- user-chosen config path
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env overrides: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the application logger from config. The geometric core
// never logs; only the app shell and the cmd tools do.
func NewLogger(cfg LoggingConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
