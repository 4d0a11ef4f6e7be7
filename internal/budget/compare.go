package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

// Compare scores actual spending in txns against tmpl.
//
// A budgeted category with actual spend above its limit increments
// CategoriesWithinBudget (see model.PerformanceSummary). Actual savings
// subtract spending in every category, budgeted or not.
func Compare(tmpl model.BudgetTemplate, txns []model.Transaction) model.BudgetComparison {
	spent := make(map[string]decimal.Decimal)
	income, totalSpent := decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.IsIncome() {
			income = income.Add(t.Amount)
			continue
		}
		cat := t.CategoryOrOther()
		spent[cat] = spent[cat].Add(t.Amount.Abs())
		totalSpent = totalSpent.Add(t.Amount.Abs())
	}

	var (
		rows     = make([]model.CategoryResult, 0, len(tmpl.CategoryLimits))
		exceeded int
	)
	for _, l := range tmpl.CategoryLimits {
		actual := spent[l.Category]
		over := actual.GreaterThan(l.Limit)
		if over {
			exceeded++
		}
		rows = append(rows, model.CategoryResult{
			Category:  l.Category,
			Limit:     l.Limit,
			Actual:    actual.Round(2),
			Remaining: l.Limit.Sub(actual).Round(2),
			Exceeded:  over,
		})
	}

	total := len(tmpl.CategoryLimits)
	rate := decimal.Zero
	if total > 0 {
		rate = decimal.NewFromInt(int64(exceeded)).Div(decimal.NewFromInt(int64(total))).Mul(hundred).Round(2)
	}
	actualSavings := income.Sub(totalSpent)

	return model.BudgetComparison{
		PerformanceSummary: model.PerformanceSummary{
			PerformanceRate:         rate,
			CategoriesWithinBudget:  exceeded,
			CategoriesOverBudget:    total - exceeded,
			TotalCategoriesAnalyzed: total,
		},
		SavingsComparison: model.SavingsComparison{
			ActualSavings:  actualSavings.Round(2),
			PlannedSavings: tmpl.PlannedSavings,
			SavingsGoalMet: actualSavings.GreaterThanOrEqual(tmpl.PlannedSavings),
		},
		Categories: rows,
	}
}
