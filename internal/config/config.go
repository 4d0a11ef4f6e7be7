// Package config loads and saves ledgerlens settings from a TOML file,
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/ledgerlens/internal/budget"
)

// Environment variables that override the config file.
const (
	EnvDataPath = "LEDGERLENS_DATA"
	EnvKeywords = "LEDGERLENS_KEYWORDS"
	EnvLogLevel = "LEDGERLENS_LOG_LEVEL"
)

// Config holds all ledgerlens configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds input locations and display preferences.
type GeneralConfig struct {
	DataPath      string `toml:"data_path,omitempty"`
	KeywordsFile  string `toml:"keywords_file,omitempty"`
	CurrencyLabel string `toml:"currency_label"`
}

// BudgetConfig holds the budget planning heuristics.
type BudgetConfig struct {
	LimitFactor        float64 `toml:"limit_factor"`
	IncomeFactor       float64 `toml:"income_factor"`
	TopCategories      int     `toml:"top_categories"`
	RecommendThreshold float64 `toml:"recommend_threshold"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	IntervalSec int    `toml:"interval_sec"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencyLabel: "rub.",
		},
		Budget: BudgetConfig{
			LimitFactor:        0.9,
			IncomeFactor:       1.2,
			TopCategories:      3,
			RecommendThreshold: 20,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:8788",
			IntervalSec: 15,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledgerlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ledgerlens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides config values from LEDGERLENS_* variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataPath); v != "" {
		cfg.General.DataPath = v
	}
	if v := os.Getenv(EnvKeywords); v != "" {
		cfg.General.KeywordsFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	b := c.Budget
	if b.LimitFactor <= 0 {
		errs = append(errs, fmt.Errorf("budget.limit_factor must be > 0, got %v", b.LimitFactor))
	}
	if b.IncomeFactor <= 0 {
		errs = append(errs, fmt.Errorf("budget.income_factor must be > 0, got %v", b.IncomeFactor))
	}
	if b.TopCategories < 1 {
		errs = append(errs, fmt.Errorf("budget.top_categories must be >= 1, got %d", b.TopCategories))
	}
	if b.RecommendThreshold < 0 || b.RecommendThreshold > 100 {
		errs = append(errs, fmt.Errorf("budget.recommend_threshold must be within 0-100, got %v", b.RecommendThreshold))
	}
	if c.Server.IntervalSec < 1 {
		errs = append(errs, fmt.Errorf("server.interval_sec must be >= 1, got %d", c.Server.IntervalSec))
	}
	return errors.Join(errs...)
}

// Planner converts the budget settings into a budget.Planner.
func (b BudgetConfig) Planner() budget.Planner {
	return budget.NewPlanner(b.LimitFactor, b.IncomeFactor, b.TopCategories, b.RecommendThreshold)
}
