// Package pipeline loads transactions, categorizes them and aggregates
// report statistics.
package pipeline

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

// topMonthlyCategories is how many expense categories each month lists.
const topMonthlyCategories = 3

// BasicStats computes total income, total expense and balance.
// Zero amounts count towards the transaction count only.
func BasicStats(txns []model.Transaction) model.BasicStats {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return model.BasicStats{
		TotalIncome:       income.Round(2),
		TotalExpense:      expense.Round(2),
		Balance:           income.Sub(expense).Round(2),
		TransactionsCount: len(txns),
	}
}

// ByCategory computes the signed net total, count and expense share of each
// category, ordered from the most negative total up.
func ByCategory(txns []model.Transaction) []model.CategoryStats {
	type acc struct {
		total decimal.Decimal
		count int
	}
	byCat := make(map[string]*acc)
	var order []string
	totalExpense := decimal.Zero

	for _, t := range txns {
		cat := t.CategoryOrOther()
		a, ok := byCat[cat]
		if !ok {
			a = &acc{total: decimal.Zero}
			byCat[cat] = a
			order = append(order, cat)
		}
		a.total = a.total.Add(t.Amount)
		a.count++
		if t.IsExpense() {
			totalExpense = totalExpense.Add(t.Amount.Abs())
		}
	}

	result := make([]model.CategoryStats, 0, len(order))
	for _, cat := range order {
		a := byCat[cat]
		share := decimal.Zero
		if a.total.IsNegative() {
			share = percent(a.total.Abs(), totalExpense)
		}
		result = append(result, model.CategoryStats{
			Category:          cat,
			TotalAmount:       a.total.Round(2),
			TransactionsCount: a.count,
			ExpenseShare:      share,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalAmount.LessThan(result[j].TotalAmount)
	})
	return result
}

// ByTime buckets transactions by YYYY-MM month, skipping records whose date
// is missing or not exactly YYYY-MM-DD. Months are returned in ascending order.
func ByTime(txns []model.Transaction) []model.MonthlyStats {
	type bucket struct {
		income, expense decimal.Decimal
		catSpend        map[string]decimal.Decimal
		catOrder        []string
	}
	months := make(map[string]*bucket)

	for _, t := range txns {
		key, ok := t.Month()
		if !ok {
			continue
		}
		b, ok := months[key]
		if !ok {
			b = &bucket{
				income:   decimal.Zero,
				expense:  decimal.Zero,
				catSpend: make(map[string]decimal.Decimal),
			}
			months[key] = b
		}

		if t.IsIncome() {
			b.income = b.income.Add(t.Amount)
			continue
		}
		b.expense = b.expense.Add(t.Amount.Abs())
		if !t.IsExpense() {
			continue
		}
		cat := t.CategoryOrOther()
		if _, seen := b.catSpend[cat]; !seen {
			b.catOrder = append(b.catOrder, cat)
		}
		b.catSpend[cat] = b.catSpend[cat].Add(t.Amount.Abs())
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]model.MonthlyStats, 0, len(keys))
	for _, k := range keys {
		b := months[k]
		cats := append([]string(nil), b.catOrder...)
		sort.SliceStable(cats, func(i, j int) bool {
			return b.catSpend[cats[i]].GreaterThan(b.catSpend[cats[j]])
		})
		if len(cats) > topMonthlyCategories {
			cats = cats[:topMonthlyCategories]
		}
		if cats == nil {
			cats = []string{}
		}
		result = append(result, model.MonthlyStats{
			Month:         k,
			Income:        b.income.Round(2),
			Expense:       b.expense.Round(2),
			Balance:       b.income.Sub(b.expense).Round(2),
			TopCategories: cats,
		})
	}
	return result
}

// CategoryIncomeExpense splits every category into income and expense,
// sorted by category name, and returns the grand total as a second value.
func CategoryIncomeExpense(txns []model.Transaction) ([]model.CategoryFlow, model.CategoryFlow) {
	flows := make(map[string]*model.CategoryFlow)
	for _, t := range txns {
		cat := t.CategoryOrOther()
		f, ok := flows[cat]
		if !ok {
			f = &model.CategoryFlow{Category: cat, Income: decimal.Zero, Expense: decimal.Zero}
			flows[cat] = f
		}
		if t.IsIncome() {
			f.Income = f.Income.Add(t.Amount)
		} else {
			f.Expense = f.Expense.Add(t.Amount.Abs())
		}
	}

	total := model.CategoryFlow{Category: "total", Income: decimal.Zero, Expense: decimal.Zero}
	result := make([]model.CategoryFlow, 0, len(flows))
	for _, f := range flows {
		total.Income = total.Income.Add(f.Income)
		total.Expense = total.Expense.Add(f.Expense)
		f.Balance = f.Income.Sub(f.Expense).Round(2)
		f.Income = f.Income.Round(2)
		f.Expense = f.Expense.Round(2)
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})

	total.Balance = total.Income.Sub(total.Expense).Round(2)
	total.Income = total.Income.Round(2)
	total.Expense = total.Expense.Round(2)
	return result, total
}

// FilterByMonth returns transactions whose month falls within [from, to]
// (inclusive, YYYY-MM). Empty bounds are open. When any bound is set,
// records without a valid date are dropped.
func FilterByMonth(txns []model.Transaction, from, to string) []model.Transaction {
	if from == "" && to == "" {
		return txns
	}

	var result []model.Transaction
	for _, t := range txns {
		m, ok := t.Month()
		if !ok {
			continue
		}
		if from != "" && m < from {
			continue
		}
		if to != "" && m > to {
			continue
		}
		result = append(result, t)
	}
	return result
}

// FilterByCategory returns categorized transactions in the named category.
func FilterByCategory(txns []model.Transaction, category string) []model.Transaction {
	if category == "" {
		return txns
	}
	var result []model.Transaction
	for _, t := range txns {
		if strings.EqualFold(t.CategoryOrOther(), category) {
			result = append(result, t)
		}
	}
	return result
}
