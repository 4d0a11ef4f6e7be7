package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/budget"
	"github.com/theirongolddev/ledgerlens/internal/model"
)

func sample() []model.Transaction {
	mk := func(date, amount, desc string) model.Transaction {
		return model.Transaction{Date: date, Amount: decimal.RequireFromString(amount), Description: desc}
	}
	return []model.Transaction{
		mk("2024-01-01", "3000", "salary"),
		mk("2024-01-03", "-400", "Pyaterochka supermarket"),
		mk("2024-01-05", "-200", "Yandex taxi"),
		mk("2024-02-02", "-600", "Magnit products"),
		mk("2024-02-10", "-100", "pharmacy"),
		mk("not a date", "-50", "bus ticket"),
	}
}

var fixedNow = func() time.Time { return time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC) }

func TestRun(t *testing.T) {
	in := sample()
	r := Run(context.Background(), in, Options{Now: fixedNow})

	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", r.RunID, err)
	}
	if r.Classification.TotalProcessed != len(in) {
		t.Errorf("TotalProcessed = %d, want %d", r.Classification.TotalProcessed, len(in))
	}
	if !r.Basic.TotalIncome.Equal(decimal.NewFromInt(3000)) || !r.Basic.TotalExpense.Equal(decimal.NewFromInt(1350)) {
		t.Errorf("Basic = %+v", r.Basic)
	}
	if len(r.ByTime) != 2 {
		t.Errorf("ByTime months = %d, want 2", len(r.ByTime))
	}
	if r.Template.Period != "2024-03" {
		t.Errorf("Period = %s, want 2024-03", r.Template.Period)
	}
	if got := r.Historical.MonthlyAverages[0]; got.Category != "food" || !got.Average.Equal(decimal.NewFromInt(500)) {
		t.Errorf("top average = %+v, want food 500", got)
	}
	if r.Comparison.PerformanceSummary.TotalCategoriesAnalyzed != len(r.Template.CategoryLimits) {
		t.Errorf("comparison covers %d categories, template has %d",
			r.Comparison.PerformanceSummary.TotalCategoriesAnalyzed, len(r.Template.CategoryLimits))
	}
	for i := range in {
		if in[i].Category != "" {
			t.Fatalf("input[%d] mutated", i)
		}
	}
}

func TestRun_Filters(t *testing.T) {
	r := Run(context.Background(), sample(), Options{Now: fixedNow, From: "2024-02", To: "2024-02"})
	if r.Basic.TransactionsCount != 2 {
		t.Errorf("month filter kept %d, want 2", r.Basic.TransactionsCount)
	}

	r = Run(context.Background(), sample(), Options{Now: fixedNow, Category: "food"})
	if r.Basic.TransactionsCount != 2 || r.Classification.UniqueCategories != 1 {
		t.Errorf("category filter = %+v / %+v", r.Basic, r.Classification)
	}
}

func TestRun_CustomPlanner(t *testing.T) {
	p := budget.NewPlanner(0.5, 2, 1, 99)
	r := Run(context.Background(), sample(), Options{Now: fixedNow, Planner: &p})
	if len(r.Historical.TopSpendingCategories) != 1 {
		t.Errorf("top = %d, want 1", len(r.Historical.TopSpendingCategories))
	}
	if len(r.Template.CategoryLimits) == 0 {
		t.Fatal("no category limits")
	}
	if l := r.Template.CategoryLimits[0]; l.Category != "food" || !l.Limit.Equal(decimal.NewFromInt(250)) {
		t.Errorf("first limit = %s %s, want food 250", l.Category, l.Limit)
	}
}

func TestRun_Empty(t *testing.T) {
	r := Run(context.Background(), nil, Options{Now: fixedNow})
	if r.Basic.TransactionsCount != 0 || len(r.ByCategory) != 0 || len(r.Template.CategoryLimits) != 0 {
		t.Errorf("Run(nil) = %+v", r)
	}
	if !r.Comparison.PerformanceSummary.PerformanceRate.IsZero() {
		t.Errorf("PerformanceRate = %s, want 0", r.Comparison.PerformanceSummary.PerformanceRate)
	}
}

func TestReport_JSONKeys(t *testing.T) {
	r := Run(context.Background(), sample(), Options{Now: fixedNow})
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, key := range []string{
		`"total_processed"`, `"unique_categories"`, `"unclassified_rate"`, `"top_1"`,
		`"total_income"`, `"total_expense"`, `"balance"`, `"transactions_count"`,
		`"total_amount"`, `"expense_share_%"`, `"income"`, `"expense"`, `"top_categories"`,
		`"monthly_averages"`, `"top_spending_categories"`, `"recommendations"`,
		`"period"`, `"estimated_income"`, `"category_limits"`, `"planned_savings"`,
		`"performance_summary"`, `"savings_comparison"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("report JSON missing %s", key)
		}
	}
	if strings.Contains(out, `"Transactions"`) {
		t.Error("report JSON should not embed raw transactions")
	}
}
