package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("listen %q", cfg.Server.Listen)
	}
	if cfg.Cache.TTLMinutes != 60 {
		t.Errorf("ttl %d", cfg.Cache.TTLMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  listen: ":9999"
cache:
  ttl_minutes: 5
symbols:
  - name: SAP
    ticker: SAP.DE
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CACHE_TTL_MINUTES", "15")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":9999" {
		t.Errorf("listen %q", cfg.Server.Listen)
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("env override lost: ttl %d", cfg.Cache.TTLMinutes)
	}
	if len(cfg.Symbols) != 1 || cfg.Symbols[0].Ticker != "SAP.DE" {
		t.Errorf("symbols %v", cfg.Symbols)
	}
}

func TestValidate_BadSymbols(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Symbols = append(cfg.Symbols, struct {
		Name   string `yaml:"name"`
		Ticker string `yaml:"ticker"`
	}{Name: "SAP"})
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing ticker")
	}
}
