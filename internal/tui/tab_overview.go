package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/tui/components"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.report
	basic := r.Basic
	cs := r.Classification
	var b strings.Builder

	// Row 1: key indicators
	balanceColor := t.Income
	if basic.Balance.IsNegative() {
		balanceColor = t.Over
	}
	txnNote := fmt.Sprintf("%d categories", cs.UniqueCategories)
	if a.result != nil && (a.result.FileErrors > 0 || a.result.RowErrors > 0) {
		txnNote = fmt.Sprintf("%d files / %d rows skipped", a.result.FileErrors, a.result.RowErrors)
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: a.money(basic.TotalIncome), Color: t.Income},
		{Label: "Expenses", Value: a.money(basic.TotalExpense), Color: t.Expense},
		{Label: "Balance", Value: a.money(basic.Balance), Color: balanceColor},
		{Label: "Transactions", Value: cli.FormatNumber(int64(basic.TransactionsCount)), Note: txnNote},
	}, cw))
	b.WriteString("\n")

	// Row 2: classification + monthly spending
	nameStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var cls strings.Builder
	fmt.Fprintf(&cls, "%s %s\n",
		mutedStyle.Render("Unclassified"),
		valueStyle.Render(cli.FormatPercent(cs.UnclassifiedRate)))
	fmt.Fprintf(&cls, "%s %s\n\n",
		mutedStyle.Render("Processed   "),
		valueStyle.Render(cli.FormatNumber(int64(cs.TotalProcessed))))
	for i, c := range cs.Top {
		fmt.Fprintf(&cls, "%s %s %s\n",
			mutedStyle.Render(fmt.Sprintf("%d.", i+1)),
			nameStyle.Render(fmt.Sprintf("%-22s", truncStr(c.Category, 22))),
			valueStyle.Render(cli.FormatNumber(int64(c.Count))))
	}

	halves := components.LayoutRow(cw, 2)
	chartW := halves[1]
	if a.isCompactLayout() {
		chartW = cw
	}
	bars := make([]components.Bar, 0, len(r.ByTime))
	for _, m := range r.ByTime {
		bar := components.Bar{Label: m.Month[2:], Value: m.Expense.InexactFloat64()}
		if m.Balance.IsNegative() {
			bar.Color = t.Over
		}
		bars = append(bars, bar)
	}
	spend := "No dated transactions."
	if len(bars) > 0 {
		spend = components.BarChart(bars, t.Expense, components.CardInnerWidth(chartW), 8)
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Classification", cls.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Monthly Expenses", spend, cw))
	} else {
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Classification", cls.String(), halves[0]),
			components.ContentCard("Monthly Expenses", spend, halves[1]),
		}))
	}
	return b.String()
}
