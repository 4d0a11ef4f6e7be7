package model

import "github.com/shopspring/decimal"

// CategoryAverage is the historical average spend of one category.
type CategoryAverage struct {
	Category string          `json:"category"`
	Average  decimal.Decimal `json:"average"`
}

// TopSpending is one of the heaviest spending categories.
type TopSpending struct {
	Category          string          `json:"category"`
	AverageMonthly    decimal.Decimal `json:"average_monthly"`
	PercentageOfTotal decimal.Decimal `json:"percentage_of_total"`
}

// HistoricalAnalysis holds per-category averages and derived advice.
type HistoricalAnalysis struct {
	MonthlyAverages       []CategoryAverage `json:"monthly_averages"` // descending by average
	TopSpendingCategories []TopSpending     `json:"top_spending_categories"`
	Recommendations       []string          `json:"recommendations"`
}

// CategoryLimit is a spending cap for one category.
type CategoryLimit struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// BudgetTemplate is the plan for the month after the analysis run.
type BudgetTemplate struct {
	Period          string          `json:"period"`
	EstimatedIncome decimal.Decimal `json:"estimated_income"`
	CategoryLimits  []CategoryLimit `json:"category_limits"`
	PlannedSavings  decimal.Decimal `json:"planned_savings"`
}

// PerformanceSummary counts budgeted categories against their limits.
//
// CategoriesWithinBudget counts categories whose actual spend EXCEEDS the
// limit. The label is kept for compatibility with existing report consumers.
type PerformanceSummary struct {
	PerformanceRate         decimal.Decimal `json:"performance_rate"`
	CategoriesWithinBudget  int             `json:"categories_within_budget"`
	CategoriesOverBudget    int             `json:"categories_over_budget"`
	TotalCategoriesAnalyzed int             `json:"total_categories_analyzed"`
}

// SavingsComparison compares realised and planned savings.
type SavingsComparison struct {
	ActualSavings  decimal.Decimal `json:"actual_savings"`
	PlannedSavings decimal.Decimal `json:"planned_savings"`
	SavingsGoalMet bool            `json:"savings_goal_met"`
}

// CategoryResult is the per-category budget line.
type CategoryResult struct {
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
	Exceeded  bool            `json:"exceeded"`
}

// BudgetComparison is the outcome of comparing a template with actual spend.
type BudgetComparison struct {
	PerformanceSummary PerformanceSummary `json:"performance_summary"`
	SavingsComparison  SavingsComparison  `json:"savings_comparison"`
	Categories         []CategoryResult   `json:"categories"`
}
