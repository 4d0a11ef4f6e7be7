package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/tui/components"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	tmpl := a.report.Template
	cmp := a.report.Comparison
	perf := cmp.PerformanceSummary
	savings := cmp.SavingsComparison
	var b strings.Builder

	// Row 1: plan headline
	goal, goalColor := "Not achieved", t.Over
	if savings.SavingsGoalMet {
		goal, goalColor = "Achieved", t.Income
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Period", Value: tmpl.Period, Note: fmt.Sprintf("%d categories", perf.TotalCategoriesAnalyzed)},
		{Label: "Estimated income", Value: a.money(tmpl.EstimatedIncome), Color: t.Income},
		{Label: "Planned savings", Value: a.money(savings.PlannedSavings)},
		{Label: "Actual savings", Value: a.money(savings.ActualSavings), Note: goal, Color: goalColor},
	}, cw))
	b.WriteString("\n")

	// Row 2: per-category usage bars
	innerW := components.CardInnerWidth(cw)
	labelW := 22
	moneyW := 18
	barW := max(innerW-labelW-2*moneyW-10, 10)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var bars strings.Builder
	if len(cmp.Categories) == 0 {
		bars.WriteString(mutedStyle.Render("No dated expenses to plan from."))
	}
	for _, c := range cmp.Categories {
		pct := 0.0
		if c.Limit.IsPositive() {
			pct = c.Actual.Div(c.Limit).InexactFloat64()
		}
		bars.WriteString(components.BudgetBar(c.Category, pct, labelW, barW))
		bars.WriteString(rowStyle.Render(fmt.Sprintf(" %*s", moneyW, a.money(c.Actual))))
		bars.WriteString(mutedStyle.Render(fmt.Sprintf(" / %s", a.money(c.Limit))))
		bars.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Plan vs Actual", bars.String(), cw))
	b.WriteString("\n")

	// Row 3: execution summary + recommendations
	var exec strings.Builder
	for _, kv := range []struct{ k, v string }{
		{"Success rate", cli.FormatPercent(perf.PerformanceRate)},
		{"Met the budget", cli.FormatNumber(int64(perf.CategoriesWithinBudget))},
		{"Exceeded the budget", cli.FormatNumber(int64(perf.CategoriesOverBudget))},
	} {
		exec.WriteString(mutedStyle.Render(fmt.Sprintf("%-20s ", kv.k)))
		exec.WriteString(rowStyle.Render(kv.v))
		exec.WriteString("\n")
	}

	var recs strings.Builder
	for i, rec := range a.report.Historical.Recommendations {
		if i == 3 {
			break
		}
		recs.WriteString(rowStyle.Render(fmt.Sprintf("%d. %s", i+1, rec)))
		recs.WriteString("\n")
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Execution", exec.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Recommendations", recs.String(), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Execution", exec.String(), halves[0]),
			components.ContentCard("Recommendations", recs.String(), halves[1]),
		}))
	}
	return b.String()
}
