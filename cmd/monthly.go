package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Income, expenses and top categories per month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(cmd *cobra.Command, _ []string) error {
	report, result, err := runAnalysis(cmd)
	if err != nil {
		return err
	}
	defer warnLoadErrors(result)

	if flagJSON {
		return printJSON(report.ByTime)
	}

	if len(report.ByTime) == 0 {
		fmt.Println("\n  No dated transactions found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY"))
	fmt.Println()

	rows := make([][]string, 0, len(report.ByTime))
	expenses := make([]float64, 0, len(report.ByTime))
	for _, m := range report.ByTime {
		rows = append(rows, []string{
			m.Month,
			money(m.Income),
			money(m.Expense),
			signedMoney(m.Balance),
			strings.Join(m.TopCategories, ", "),
		})
		expenses = append(expenses, m.Expense.InexactFloat64())
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Balance", "Top expenses"},
		Rows:    rows,
	}))

	if len(expenses) > 1 {
		fmt.Printf("\n  Spending trend  %s\n", cli.RenderSparkline(expenses))
	}
	return nil
}
