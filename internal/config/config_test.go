package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDataPath, "")
	t.Setenv(EnvKeywords, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg != def {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDataPath, "")
	t.Setenv(EnvKeywords, "")
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig()
	cfg.General.DataPath = "/data/bank.csv"
	cfg.Budget.TopCategories = 5
	cfg.Appearance.Theme = "catppuccin-mocha"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDataPath, "")
	t.Setenv(EnvKeywords, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(dir, "ledgerlens", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[budget]\nlimit_factor = 0.8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Budget.LimitFactor != 0.8 {
		t.Errorf("LimitFactor = %v, want 0.8", cfg.Budget.LimitFactor)
	}
	if cfg.Budget.IncomeFactor != 1.2 || cfg.Server.Addr != "127.0.0.1:8788" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "ledgerlens", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[budget\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("Load() error = %v, want parse error", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDataPath, "/tmp/x.json")
	t.Setenv(EnvKeywords, "/tmp/k.yaml")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.General.DataPath != "/tmp/x.json" || cfg.General.KeywordsFile != "/tmp/k.yaml" || cfg.Log.Level != "debug" {
		t.Errorf("ApplyEnv = %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"limit factor", func(c *Config) { c.Budget.LimitFactor = 0 }, "limit_factor"},
		{"income factor", func(c *Config) { c.Budget.IncomeFactor = -1 }, "income_factor"},
		{"top", func(c *Config) { c.Budget.TopCategories = 0 }, "top_categories"},
		{"threshold", func(c *Config) { c.Budget.RecommendThreshold = 101 }, "recommend_threshold"},
		{"interval", func(c *Config) { c.Server.IntervalSec = 0 }, "interval_sec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestBudgetConfig_Planner(t *testing.T) {
	p := DefaultConfig().Budget.Planner()
	if p.TopCategories != 3 || p.LimitFactor.String() != "0.9" || p.RecommendThreshold.String() != "20" {
		t.Errorf("Planner() = %+v", p)
	}
}
