// Package analysis runs the full categorize, aggregate and budget flow over
// a set of transactions and collects the results into one Report.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/ledgerlens/internal/budget"
	"github.com/theirongolddev/ledgerlens/internal/classify"
	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
)

// Options controls one analysis run. Zero values select defaults.
type Options struct {
	Classifier *classify.Classifier // nil means the built-in keyword table
	Planner    *budget.Planner      // nil means budget.DefaultPlanner()
	Now        func() time.Time     // clock for the budget period
	From, To   string               // inclusive YYYY-MM bounds
	Category   string               // keep only this category
}

// Report is the complete outcome of a run.
type Report struct {
	RunID          string                    `json:"run_id"`
	GeneratedAt    time.Time                 `json:"generated_at"`
	Classification model.ClassificationStats `json:"classification_stats"`
	Basic          model.BasicStats          `json:"basic_stats"`
	ByCategory     []model.CategoryStats     `json:"by_category"`
	ByTime         []model.MonthlyStats      `json:"by_time"`
	Flows          []model.CategoryFlow      `json:"category_flows"`
	FlowTotal      model.CategoryFlow        `json:"category_flow_total"`
	Historical     model.HistoricalAnalysis  `json:"historical_analysis"`
	Template       model.BudgetTemplate      `json:"budget_template"`
	Comparison     model.BudgetComparison    `json:"budget_comparison"`

	// Transactions are the categorized records the report was built from.
	Transactions []model.Transaction `json:"-"`
}

// Run categorizes txns, applies the filters in opts and computes every
// statistic and the budget. The input slice is not modified.
func Run(ctx context.Context, txns []model.Transaction, opts Options) *Report {
	c := opts.Classifier
	if c == nil {
		c = classify.New(nil)
	}
	planner := budget.DefaultPlanner()
	if opts.Planner != nil {
		planner = *opts.Planner
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	categorized := pipeline.CategorizeAll(txns, c)
	categorized = pipeline.FilterByMonth(categorized, opts.From, opts.To)
	categorized = pipeline.FilterByCategory(categorized, opts.Category)

	r := &Report{
		RunID:        uuid.NewString(),
		GeneratedAt:  now(),
		Transactions: categorized,
	}
	r.Classification = pipeline.ClassificationStatsOf(categorized)
	r.Basic = pipeline.BasicStats(categorized)
	r.ByCategory = pipeline.ByCategory(categorized)
	r.ByTime = pipeline.ByTime(categorized)
	r.Flows, r.FlowTotal = pipeline.CategoryIncomeExpense(categorized)
	r.Historical = planner.Historical(categorized)
	r.Template = planner.Template(r.Historical, r.GeneratedAt)
	r.Comparison = budget.Compare(r.Template, categorized)

	log := logger.FromContext(ctx)
	log.Debug().
		Str("run_id", r.RunID).
		Int("input", len(txns)).
		Int("analyzed", len(categorized)).
		Str("unclassified_rate", r.Classification.UnclassifiedRate.String()).
		Msg("analysis complete")

	return r
}
