package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/config"
	"github.com/theirongolddev/ledgerlens/internal/rules"
	"github.com/theirongolddev/ledgerlens/internal/source"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("setup needs an interactive terminal")
	}

	cfg := appCfg

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to ledgerlens!").
				Description("Point it at your bank exports and pick a look."),
			huh.NewInput().
				Title("Transactions file or directory").
				Description("CSV, JSON or SQLite; a directory is scanned for all of them").
				Value(&cfg.General.DataPath).
				Validate(validateDataPath),
			huh.NewInput().
				Title("Keyword table (optional)").
				Description("TOML or YAML file; leave empty for the built-in table").
				Value(&cfg.General.KeywordsFile).
				Validate(validateKeywords),
			huh.NewInput().
				Title("Currency label").
				Value(&cfg.General.CurrencyLabel),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DataPath = strings.TrimSpace(cfg.General.DataPath)
	cfg.General.KeywordsFile = strings.TrimSpace(cfg.General.KeywordsFile)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `ledgerlens setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateDataPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	files, err := source.ScanPath(s)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no CSV, JSON or SQLite files found")
	}
	return nil
}

func validateKeywords(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := rules.Load(s)
	return err
}
