package budget

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

// BalancedMessage is the only recommendation when no category dominates.
const BalancedMessage = "Your spending is balanced"

// Historical averages expenses per category.
//
// Only expenses with a valid date count. The "monthly" average is the pooled
// category total divided by the number of its expense transactions, not by
// the number of months.
func (p Planner) Historical(txns []model.Transaction) model.HistoricalAnalysis {
	type acc struct {
		total decimal.Decimal
		count int64
	}
	byCat := make(map[string]*acc)
	var order []string

	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		if _, ok := t.ParsedDate(); !ok {
			continue
		}
		cat := t.CategoryOrOther()
		a, ok := byCat[cat]
		if !ok {
			a = &acc{total: decimal.Zero}
			byCat[cat] = a
			order = append(order, cat)
		}
		a.total = a.total.Add(t.Amount.Abs())
		a.count++
	}

	averages := make([]model.CategoryAverage, 0, len(order))
	sum := decimal.Zero
	for _, cat := range order {
		a := byCat[cat]
		avg := a.total.Div(decimal.NewFromInt(a.count)).Round(2)
		averages = append(averages, model.CategoryAverage{Category: cat, Average: avg})
		sum = sum.Add(avg)
	}
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average.GreaterThan(averages[j].Average)
	})

	n := min(max(p.TopCategories, 0), len(averages))
	top := make([]model.TopSpending, 0, n)
	for _, a := range averages[:n] {
		pct := decimal.Zero
		if !sum.IsZero() {
			pct = a.Average.Div(sum).Mul(hundred).Round(2)
		}
		top = append(top, model.TopSpending{
			Category:          a.Category,
			AverageMonthly:    a.Average,
			PercentageOfTotal: pct,
		})
	}

	var recs []string
	for _, ts := range top {
		if ts.PercentageOfTotal.GreaterThan(p.RecommendThreshold) {
			recs = append(recs, fmt.Sprintf("Reduce spending in %s (%s%%)", ts.Category, ts.PercentageOfTotal.String()))
		}
	}
	if len(recs) == 0 {
		recs = []string{BalancedMessage}
	}

	return model.HistoricalAnalysis{
		MonthlyAverages:       averages,
		TopSpendingCategories: top,
		Recommendations:       recs,
	}
}
