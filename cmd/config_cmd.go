package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	if flagJSON {
		return printJSON(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data path:      %s\n", orUnset(cfg.General.DataPath))
	fmt.Printf("    Keywords file:  %s\n", orValue(cfg.General.KeywordsFile, "built-in"))
	fmt.Printf("    Currency label: %s\n", cfg.General.CurrencyLabel)
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Limit factor:        %g\n", cfg.Budget.LimitFactor)
	fmt.Printf("    Income factor:       %g\n", cfg.Budget.IncomeFactor)
	fmt.Printf("    Top categories:      %d\n", cfg.Budget.TopCategories)
	fmt.Printf("    Recommend threshold: %g%%\n", cfg.Budget.RecommendThreshold)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:  %s\n", cfg.Server.Addr)
	fmt.Printf("    Interval: %ds\n", cfg.Server.IntervalSec)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `ledgerlens setup` to reconfigure.")
	return nil
}

func orUnset(s string) string {
	return orValue(s, "not set")
}

func orValue(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
