package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/tui/components"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active
	months := a.report.ByTime
	if len(months) == 0 {
		return components.ContentCard("Monthly", "No dated transactions.", cw)
	}

	var b strings.Builder

	// Row 1: income vs expense trends
	income := make([]float64, len(months))
	expense := make([]float64, len(months))
	for i, m := range months {
		income[i] = m.Income.InexactFloat64()
		expense[i] = m.Expense.InexactFloat64()
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	trend := labelStyle.Render("Income   ") + components.Sparkline(income, t.Income) + "\n" +
		labelStyle.Render("Expenses ") + components.Sparkline(expense, t.Expense)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Trend  %s .. %s", months[0].Month, months[len(months)-1].Month), trend, cw))
	b.WriteString("\n")

	// Row 2: per-month table
	innerW := components.CardInnerWidth(cw)
	moneyW := 18
	topW := max(innerW-7-3*(moneyW+1)-1, 10)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	monthStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Over).Background(t.Surface)

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-7s %*s %*s %*s %s",
		"Month", moneyW, "Income", moneyW, "Expenses", moneyW, "Balance", "Top expenses")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	for _, m := range months {
		balStyle := rowStyle
		if m.Balance.IsNegative() {
			balStyle = overStyle
		}
		body.WriteString(monthStyle.Render(fmt.Sprintf("%-7s", m.Month)))
		body.WriteString(incomeStyle.Render(fmt.Sprintf(" %*s", moneyW, a.money(m.Income))))
		body.WriteString(expenseStyle.Render(fmt.Sprintf(" %*s", moneyW, a.money(m.Expense))))
		body.WriteString(balStyle.Render(fmt.Sprintf(" %*s", moneyW, a.money(m.Balance))))
		body.WriteString(mutedStyle.Render(" " + truncStr(strings.Join(m.TopCategories, ", "), topW)))
		body.WriteString("\n")
	}

	b.WriteString(components.ContentCard(fmt.Sprintf("Months (%d)", len(months)), body.String(), cw))
	return b.String()
}
