package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

// Template turns a historical analysis into next month's budget.
// Limits keep the order of analysis.MonthlyAverages.
func (p Planner) Template(analysis model.HistoricalAnalysis, now time.Time) model.BudgetTemplate {
	limits := make([]model.CategoryLimit, 0, len(analysis.MonthlyAverages))
	totalAvg, totalLimits := decimal.Zero, decimal.Zero
	for _, a := range analysis.MonthlyAverages {
		limit := a.Average.Mul(p.LimitFactor).Round(2)
		limits = append(limits, model.CategoryLimit{Category: a.Category, Limit: limit})
		totalAvg = totalAvg.Add(a.Average)
		totalLimits = totalLimits.Add(limit)
	}

	income := totalAvg.Mul(p.IncomeFactor).Round(2)
	return model.BudgetTemplate{
		Period:          NextPeriod(now),
		EstimatedIncome: income,
		CategoryLimits:  limits,
		PlannedSavings:  income.Sub(totalLimits).Round(2),
	}
}

// NextPeriod returns the YYYY-MM key of the calendar month after now.
func NextPeriod(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, 1, 0).Format(model.MonthLayout)
}
