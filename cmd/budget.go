package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/model"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Historical averages, next month's plan and plan vs actual",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	report, result, err := runAnalysis(cmd)
	if err != nil {
		return err
	}
	defer warnLoadErrors(result)

	if flagJSON {
		return printJSON(struct {
			Historical model.HistoricalAnalysis `json:"historical_analysis"`
			Template   model.BudgetTemplate     `json:"budget_template"`
			Comparison model.BudgetComparison   `json:"budget_comparison"`
		}{report.Historical, report.Template, report.Comparison})
	}

	hist := report.Historical
	tmpl := report.Template
	cmp := report.Comparison

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET PLAN  " + tmpl.Period))
	fmt.Println()

	if len(tmpl.CategoryLimits) == 0 {
		fmt.Println("  No dated expenses to plan from.")
	} else {
		rows := make([][]string, 0, len(cmp.Categories))
		for _, c := range cmp.Categories {
			status := cli.Good("within")
			if c.Exceeded {
				status = cli.Warn("over")
			}
			rows = append(rows, []string{
				c.Category,
				money(c.Limit),
				money(c.Actual),
				cli.RenderProgressBar(c.Actual, c.Limit, 16),
				status,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Limit", "Actual", "Used", "Status"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	perf := cmp.PerformanceSummary
	savings := cmp.SavingsComparison

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget execution",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Estimated income", money(tmpl.EstimatedIncome)},
			{"Success rate", cli.FormatPercent(perf.PerformanceRate)},
			{"Categories in the budget", cli.FormatNumber(int64(perf.TotalCategoriesAnalyzed))},
			{"Met the budget", cli.FormatNumber(int64(perf.CategoriesWithinBudget))},
			{"Exceeded the budget", cli.FormatNumber(int64(perf.CategoriesOverBudget))},
			{"---"},
			{"Actual savings", money(savings.ActualSavings)},
			{"Planned savings", money(savings.PlannedSavings)},
			{"Goal", goalLabel(savings.SavingsGoalMet)},
		},
	}))

	fmt.Println()
	fmt.Println("  Recommendations:")
	for i, rec := range firstN(hist.Recommendations, 3) {
		fmt.Printf("    %d. %s\n", i+1, rec)
	}
	return nil
}

func goalLabel(met bool) string {
	if met {
		return cli.Good("Achieved!")
	}
	return cli.Warn("Not achieved")
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func expenseCategories(flows []model.CategoryFlow) int {
	n := 0
	for _, f := range flows {
		if f.Expense.IsPositive() {
			n++
		}
	}
	return n
}
