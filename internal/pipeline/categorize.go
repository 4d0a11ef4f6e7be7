package pipeline

import (
	"runtime"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/classify"
	"github.com/theirongolddev/ledgerlens/internal/model"
)

// topCategoryCount is how many categories ClassificationStatsOf ranks.
const topCategoryCount = 5

// CategorizeAll returns a copy of txns with Category set from each description.
// The input is not modified; output order matches input order.
func CategorizeAll(txns []model.Transaction, c *classify.Classifier) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	if len(txns) == 0 {
		return out
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(txns) {
		numWorkers = len(txns)
	}

	work := make(chan int, len(txns))
	for i := range txns {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				t := txns[idx]
				t.Category = c.Classify(t.Description)
				out[idx] = t
			}
		}()
	}
	wg.Wait()

	return out
}

// Classify categorizes txns and summarizes the result.
func Classify(txns []model.Transaction, c *classify.Classifier) ([]model.Transaction, model.ClassificationStats) {
	categorized := CategorizeAll(txns, c)
	return categorized, ClassificationStatsOf(categorized)
}

// ClassificationStatsOf counts categories over already categorized records.
// Records without a category count as model.CategoryOther.
func ClassificationStatsOf(txns []model.Transaction) model.ClassificationStats {
	stats := model.ClassificationStats{
		TotalProcessed:   len(txns),
		UnclassifiedRate: decimal.Zero,
	}

	counts := make(map[string]int)
	var order []string
	for _, t := range txns {
		cat := t.CategoryOrOther()
		if _, ok := counts[cat]; !ok {
			order = append(order, cat)
		}
		counts[cat]++
	}
	stats.UniqueCategories = len(order)
	stats.UnclassifiedRate = percent(decimal.NewFromInt(int64(counts[model.CategoryOther])),
		decimal.NewFromInt(int64(len(txns))))

	ranked := make([]model.CategoryCount, 0, len(order))
	for _, cat := range order {
		ranked = append(ranked, model.CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	stats.Top = ranked

	return stats
}

// percent returns part/whole*100 rounded to 2 places, or 0 when whole is 0.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

var hundred = decimal.NewFromInt(100)
