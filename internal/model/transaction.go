// Package model defines domain types for ledgerlens transactions and reports.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryOther is the catch-all category for descriptions no keyword matches.
const CategoryOther = "other"

// DateLayout is the only accepted transaction date format.
const DateLayout = "2006-01-02"

// MonthLayout is the key format for monthly buckets and budget periods.
const MonthLayout = "2006-01"

// Every package that encodes these types imports model, so amounts are
// JSON numbers for the CLI and the HTTP service alike.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one ingested financial record.
// Amount is signed: positive is income, negative is expense.
// Category is empty until the batch categorizer assigns it.
type Transaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
}

// CategoryOrOther returns the assigned category, or CategoryOther when unset.
func (t Transaction) CategoryOrOther() string {
	if t.Category == "" {
		return CategoryOther
	}
	return t.Category
}

// Month returns the YYYY-MM key of the transaction date.
// ok is false when the date is missing or not exactly YYYY-MM-DD.
func (t Transaction) Month() (string, bool) {
	d, ok := t.ParsedDate()
	if !ok {
		return "", false
	}
	return d.Format(MonthLayout), true
}

// ParsedDate parses Date with DateLayout.
func (t Transaction) ParsedDate() (time.Time, bool) {
	if t.Date == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsIncome reports whether the amount is strictly positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the amount is strictly negative.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
