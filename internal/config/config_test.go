package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("listen addr default = %q", cfg.Server.ListenAddr)
	}
	if cfg.Schedule.RefreshCron == "" {
		t.Error("refresh cron must have a default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  listen_addr: \":9000\"\ndatabase:\n  sqlite_path: \"data/board.db\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddr != ":9999" {
		t.Errorf("env must override file, got %q", cfg.Server.ListenAddr)
	}
	if cfg.Database.SQLitePath != "data/board.db" {
		t.Errorf("file value lost: %q", cfg.Database.SQLitePath)
	}
}
