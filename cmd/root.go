// Package cmd implements the ledgerlens CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/analysis"
	"github.com/theirongolddev/ledgerlens/internal/classify"
	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/config"
	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
	"github.com/theirongolddev/ledgerlens/internal/rules"
)

var (
	flagData     string
	flagKeywords string
	flagFrom     string
	flagTo       string
	flagCategory string
	flagJSON     bool
	flagQuiet    bool
	flagLogLevel string

	appCfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ledgerlens",
	Short: "Personal finance analysis and budget planning",
	Long: "Categorize bank transactions from CSV, JSON or SQLite exports, " +
		"summarize income and spending, and plan next month's budget.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "f", "", "Transactions file or directory (CSV, JSON, SQLite)")
	rootCmd.PersistentFlags().StringVarP(&flagKeywords, "keywords", "k", "", "Keyword table file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "First month to analyze (YYYY-MM)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Last month to analyze (YYYY-MM)")
	rootCmd.PersistentFlags().StringVar(&flagCategory, "category", "", "Only analyze this category")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads .env and the config file, then installs the logger on the
// command context.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagData != "" {
		cfg.General.DataPath = flagData
	}
	if flagKeywords != "" {
		cfg.General.KeywordsFile = flagKeywords
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", config.ConfigPath(), err)
	}
	appCfg = cfg

	log, err := logger.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}
	if flagJSON {
		log = logger.NewWithWriter(os.Stderr).Level(log.GetLevel())
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, log))
	return nil
}

// loadClassifier builds the classifier from the configured keyword table,
// or the built-in one.
func loadClassifier() (*classify.Classifier, error) {
	if appCfg.General.KeywordsFile == "" {
		return classify.New(nil), nil
	}
	table, err := rules.Load(appCfg.General.KeywordsFile)
	if err != nil {
		return nil, err
	}
	return classify.New(table), nil
}

// resolveDataPath returns the configured data path, asking for one on an
// interactive terminal.
func resolveDataPath() (string, error) {
	if appCfg.General.DataPath != "" {
		return appCfg.General.DataPath, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("no data file: pass --data or set " + config.EnvDataPath)
	}

	var path string
	err := huh.NewInput().
		Title("Enter the name of the data file (CSV or JSON)").
		Value(&path).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a file name is required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// loadData is the shared data loading path used by all commands.
func loadData(ctx context.Context, path string) (*pipeline.LoadResult, error) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning %s...\n", path)
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%10 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	result, err := pipeline.Load(ctx, path, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Loaded %s transactions from %d files    \n",
			cli.FormatNumber(int64(len(result.Transactions))),
			result.ParsedFiles,
		)
	}
	return result, nil
}

// analysisOptions turns flags and config into analysis options.
func analysisOptions() (analysis.Options, error) {
	c, err := loadClassifier()
	if err != nil {
		return analysis.Options{}, err
	}
	planner := appCfg.Budget.Planner()
	return analysis.Options{
		Classifier: c,
		Planner:    &planner,
		From:       flagFrom,
		To:         flagTo,
		Category:   flagCategory,
	}, nil
}

// runAnalysis loads the data and runs the full analysis.
func runAnalysis(cmd *cobra.Command) (*analysis.Report, *pipeline.LoadResult, error) {
	path, err := resolveDataPath()
	if err != nil {
		return nil, nil, err
	}
	opts, err := analysisOptions()
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	result, err := loadData(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return analysis.Run(ctx, result.Transactions, opts), result, nil
}

func warnLoadErrors(result *pipeline.LoadResult) {
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "\n  %d files could not be parsed\n", result.FileErrors)
	}
	if result.RowErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d rows had a missing or invalid amount\n", result.RowErrors)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(d decimal.Decimal) string {
	return cli.FormatMoney(d, appCfg.General.CurrencyLabel)
}

// signedMoney shows the sign on positive balances too.
func signedMoney(d decimal.Decimal) string {
	s := cli.FormatSigned(d)
	if label := appCfg.General.CurrencyLabel; label != "" {
		s += " " + label
	}
	return s
}

func wholeMoney(d decimal.Decimal) string {
	return cli.FormatWholeMoney(d, appCfg.General.CurrencyLabel)
}
