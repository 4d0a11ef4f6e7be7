package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Totals, expense shares and balance per category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	report, result, err := runAnalysis(cmd)
	if err != nil {
		return err
	}
	defer warnLoadErrors(result)

	if flagJSON {
		return printJSON(struct {
			ByCategory any `json:"by_category"`
			Flows      any `json:"category_flows"`
			Total      any `json:"category_flow_total"`
		}{report.ByCategory, report.Flows, report.FlowTotal})
	}

	if len(report.ByCategory) == 0 {
		fmt.Println("\n  No data available for analysis.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES"))
	fmt.Println()

	rows := make([][]string, 0, len(report.ByCategory))
	for _, c := range report.ByCategory {
		rows = append(rows, []string{
			c.Category,
			money(c.TotalAmount),
			cli.FormatNumber(int64(c.TransactionsCount)),
			cli.FormatPercent(c.ExpenseShare),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Net total", "Count", "Expense share"},
		Rows:    rows,
	}))

	// Net totals are ascending, so the heaviest spenders come first.
	var maxShare float64
	for _, c := range report.ByCategory {
		if v := c.ExpenseShare.InexactFloat64(); v > maxShare {
			maxShare = v
		}
	}
	if maxShare > 0 {
		fmt.Println()
		for _, c := range report.ByCategory {
			if !c.ExpenseShare.IsPositive() {
				continue
			}
			label := fmt.Sprintf("%-22s %7s", c.Category, cli.FormatPercent(c.ExpenseShare))
			fmt.Println(cli.RenderHorizontalBar(label, c.ExpenseShare.InexactFloat64(), maxShare, 30))
		}
	}

	fmt.Println()
	flowRows := make([][]string, 0, len(report.Flows)+2)
	for _, f := range report.Flows {
		flowRows = append(flowRows, []string{
			f.Category, wholeMoney(f.Income), wholeMoney(f.Expense), wholeMoney(f.Balance),
		})
	}
	t := report.FlowTotal
	flowRows = append(flowRows,
		[]string{"---"},
		[]string{"Total", wholeMoney(t.Income), wholeMoney(t.Expense), wholeMoney(t.Balance)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Income", "Expenses", "Balance"},
		Rows:    flowRows,
	}))

	fmt.Printf("\n  Total expenses: %s\n", money(t.Expense))
	fmt.Printf("  Expense categories: %d\n", expenseCategories(report.Flows))
	return nil
}
