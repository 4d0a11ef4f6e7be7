// Package budget derives a next-month budget from historical expenses and
// scores actual spending against it.
package budget

import "github.com/shopspring/decimal"

// Planner holds the heuristics used to build and judge a budget.
type Planner struct {
	// LimitFactor scales each historical average into a category limit.
	LimitFactor decimal.Decimal
	// IncomeFactor scales the summed averages into the estimated income.
	IncomeFactor decimal.Decimal
	// TopCategories is how many of the heaviest categories are ranked.
	TopCategories int
	// RecommendThreshold is the share of total spending, in percent, above
	// which a top category gets a recommendation.
	RecommendThreshold decimal.Decimal
}

// DefaultPlanner returns the stock heuristics: limits at 90% of the average,
// income at 120% of total spending, top 3 categories, 20% threshold.
func DefaultPlanner() Planner {
	return Planner{
		LimitFactor:        decimal.RequireFromString("0.9"),
		IncomeFactor:       decimal.RequireFromString("1.2"),
		TopCategories:      3,
		RecommendThreshold: decimal.NewFromInt(20),
	}
}

// NewPlanner builds a Planner from float settings such as config values.
func NewPlanner(limitFactor, incomeFactor float64, topCategories int, threshold float64) Planner {
	return Planner{
		LimitFactor:        decimal.NewFromFloat(limitFactor),
		IncomeFactor:       decimal.NewFromFloat(incomeFactor),
		TopCategories:      topCategories,
		RecommendThreshold: decimal.NewFromFloat(threshold),
	}
}

var hundred = decimal.NewFromInt(100)
