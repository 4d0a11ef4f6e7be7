package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/tui/components"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	var b strings.Builder
	b.WriteString(a.renderCategoryTotals(cw))
	b.WriteString("\n")
	b.WriteString(a.renderCategoryFlows(cw))
	return b.String()
}

func (a App) renderCategoryTotals(cw int) string {
	t := theme.Active
	cats := a.report.ByCategory

	innerW := components.CardInnerWidth(cw)
	moneyW := 18
	nameW := 22
	barMax := max(innerW-nameW-moneyW-6-8-4, 1)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)

	maxShare := 0.0
	for _, c := range cats {
		maxShare = max(maxShare, c.ExpenseShare.InexactFloat64())
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %6s %8s", nameW, "Category", moneyW, "Net total", "Count", "Share")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for _, c := range cats {
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))))
		body.WriteString(rowStyle.Render(fmt.Sprintf(" %*s %6d %8s ",
			moneyW, a.money(c.TotalAmount), c.TransactionsCount, cli.FormatPercent(c.ExpenseShare))))
		if maxShare > 0 && !a.isCompactLayout() {
			n := int(c.ExpenseShare.InexactFloat64() / maxShare * float64(barMax))
			body.WriteString(barStyle.Render(strings.Repeat("█", n)))
		}
		body.WriteString("\n")
	}

	return components.ContentCard(fmt.Sprintf("Categories (%d)", len(cats)), body.String(), cw)
}

func (a App) renderCategoryFlows(cw int) string {
	t := theme.Active
	flows := a.report.Flows
	total := a.report.FlowTotal

	innerW := components.CardInnerWidth(cw)
	moneyW := 18
	nameW := max(min(innerW-3*(moneyW+1), 24), 10)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	row := func(name string, income, expense, balance string, ns lipgloss.Style) string {
		return ns.Render(fmt.Sprintf("%-*s", nameW, truncStr(name, nameW))) +
			incomeStyle.Render(fmt.Sprintf(" %*s", moneyW, income)) +
			expenseStyle.Render(fmt.Sprintf(" %*s", moneyW, expense)) +
			totalStyle.Render(fmt.Sprintf(" %*s", moneyW, balance)) + "\n"
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s", nameW, "Category", moneyW, "Income", moneyW, "Expenses", moneyW, "Balance")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	for _, f := range flows {
		body.WriteString(row(f.Category, a.money(f.Income), a.money(f.Expense), a.money(f.Balance), nameStyle))
	}
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	body.WriteString(row("Total", a.money(total.Income), a.money(total.Expense), a.money(total.Balance), totalStyle))

	return components.ContentCard("Income and Expenses", body.String(), cw)
}
