package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Key indicators and classification stats",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	report, result, err := runAnalysis(cmd)
	if err != nil {
		return err
	}
	defer warnLoadErrors(result)

	if flagJSON {
		return printJSON(struct {
			Classification any `json:"classification_stats"`
			Basic          any `json:"basic_stats"`
		}{report.Classification, report.Basic})
	}

	if len(report.Transactions) == 0 {
		fmt.Println("\n  No data available for analysis.")
		return nil
	}

	basic := report.Basic
	cs := report.Classification

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL ANALYSIS"))
	fmt.Println()

	rows := [][]string{
		{"Income", money(basic.TotalIncome)},
		{"Expenses", money(basic.TotalExpense)},
		{"Balance", signedMoney(basic.Balance)},
		{"Transactions", cli.FormatNumber(int64(basic.TransactionsCount))},
		{"---"},
		{"Categories used", cli.FormatNumber(int64(cs.UniqueCategories))},
		{"Unclassified", cli.FormatPercent(cs.UnclassifiedRate)},
	}
	for i, label := range cs.TopLabels() {
		rows = append(rows, []string{fmt.Sprintf("Top %d", i+1), label})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	return nil
}
