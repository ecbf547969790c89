package tabletop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Window.Width != 1600 || !cfg.Session.Host || cfg.Logging.Level != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridwarden.toml")
	body := "[window]\nwidth = 1280\n\n[logging]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("GRIDWARDEN_WINDOW_WIDTH", "800")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Fatalf("env override must beat the file, got width %d", cfg.Window.Width)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("file value should survive where no env is set, got %q", cfg.Logging.Level)
	}
	if cfg.Window.Height != 900 {
		t.Fatalf("unset fields keep their defaults, got height %d", cfg.Window.Height)
	}
}

func TestLoadConfig_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth="), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed TOML must surface an error")
	}
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	log := NewLogger(LoggingConfig{Level: "chatty"})
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("unknown level should fall back to info, got %s", log.GetLevel())
	}
	if NewLogger(LoggingConfig{Level: "debug"}).GetLevel() != logrus.DebugLevel {
		t.Fatal("valid level not applied")
	}
}
