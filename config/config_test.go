package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	if cfg.Web.Port != 3000 {
		t.Fatalf("web port = %d, want 3000", cfg.Web.Port)
	}
	if cfg.Database.Type != "postgres" {
		t.Fatalf("database type = %q, want postgres", cfg.Database.Type)
	}
	if cfg.Logger.Mode != "production" {
		t.Fatalf("logger mode = %q, want production", cfg.Logger.Mode)
	}
}

func TestLoadConfigFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "cardstock.yml")
	data := `
system:
  location: "Asia/Baghdad"
  workdir: "/tmp/cardstock"
web:
  host: "127.0.0.1"
  port: 8088
database:
  type: "sqlite"
  name: "carddb"
logger:
  mode: "development"
metrics:
  stock_snapshot_cron: "@every 5m"
`
	if err := os.WriteFile(cfile, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig(cfile)
	if cfg.Web.Host != "127.0.0.1" || cfg.Web.Port != 8088 {
		t.Fatalf("unexpected web config %+v", cfg.Web)
	}
	if cfg.Database.Type != "sqlite" || cfg.Database.Name != "carddb" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Metrics.StockSnapshotCron != "@every 5m" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	// Unset fields keep their defaults.
	if cfg.Database.MaxConn != 100 {
		t.Fatalf("max_conn = %d, want default 100", cfg.Database.MaxConn)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CARDSTOCK_WEB_PORT", "9001")
	t.Setenv("CARDSTOCK_DB_TYPE", "sqlite")
	t.Setenv("CARDSTOCK_SYSTEM_DEBUG", "true")

	cfg := LoadConfig("")
	if cfg.Web.Port != 9001 {
		t.Fatalf("web port = %d, want 9001", cfg.Web.Port)
	}
	if cfg.Database.Type != "sqlite" {
		t.Fatalf("database type = %q, want sqlite", cfg.Database.Type)
	}
	if !cfg.System.Debug {
		t.Fatal("system debug not overridden")
	}
}
