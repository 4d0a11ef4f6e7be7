package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryCount is a category with its transaction count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ClassificationStats summarizes a categorization pass.
type ClassificationStats struct {
	TotalProcessed   int
	UniqueCategories int
	UnclassifiedRate decimal.Decimal // percent of transactions left in CategoryOther
	Top              []CategoryCount // at most 5, by count descending
}

// TopLabels renders the top categories as "name (N transactions)".
func (s ClassificationStats) TopLabels() []string {
	labels := make([]string, 0, len(s.Top))
	for _, c := range s.Top {
		labels = append(labels, fmt.Sprintf("%s (%d transactions)", c.Category, c.Count))
	}
	return labels
}

// MarshalJSON emits the flat top_1..top_N layout consumers expect.
func (s ClassificationStats) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"total_processed":   s.TotalProcessed,
		"unique_categories": s.UniqueCategories,
		"unclassified_rate": s.UnclassifiedRate,
	}
	for i, label := range s.TopLabels() {
		m[fmt.Sprintf("top_%d", i+1)] = label
	}
	return json.Marshal(m)
}

// BasicStats holds the key indicators over a set of transactions.
type BasicStats struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Balance           decimal.Decimal `json:"balance"`
	TransactionsCount int             `json:"transactions_count"`
}

// CategoryStats holds the net total and expense share for one category.
type CategoryStats struct {
	Category          string          `json:"category"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TransactionsCount int             `json:"transactions_count"`
	ExpenseShare      decimal.Decimal `json:"expense_share_%"`
}

// MonthlyStats holds income and expense for one YYYY-MM month.
type MonthlyStats struct {
	Month         string          `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	TopCategories []string        `json:"top_categories"`
}

// CategoryFlow splits one category's movements into income and expense.
type CategoryFlow struct {
	Category string          `json:"category"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Balance  decimal.Decimal `json:"balance"`
}
