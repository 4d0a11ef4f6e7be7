package classify

import (
	"strings"

	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/rules"
)

// CategoryScore is the summed keyword score of one candidate category.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Classifier assigns categories using a fixed keyword table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	table *rules.Table
}

// New returns a Classifier over table. A nil table means rules.Default().
func New(table *rules.Table) *Classifier {
	if table == nil {
		table = rules.Default()
	}
	return &Classifier{table: table}
}

// Table returns the keyword table in use.
func (c *Classifier) Table() *rules.Table {
	return c.table
}

// Classify returns the best category for description, or model.CategoryOther
// when the description is empty or matches nothing.
func (c *Classifier) Classify(description string) string {
	scores := c.Scores(description)
	if len(scores) == 0 {
		return model.CategoryOther
	}
	return PickBest(scores, c.table.Priority)
}

// Scores returns every category with a positive score, in table order.
func (c *Classifier) Scores(description string) []CategoryScore {
	clean := strings.ToLower(strings.TrimSpace(description))
	if clean == "" {
		return nil
	}

	var scores []CategoryScore
	for _, cat := range c.table.Categories {
		total := 0
		for _, kw := range cat.Keywords {
			total += Score(clean, kw)
		}
		if total > 0 {
			scores = append(scores, CategoryScore{Category: cat.Name, Score: total})
		}
	}
	return scores
}

// PickBest selects one category from scored candidates.
//
// The highest score wins. Ties go to the first name in priority that is
// among the tied categories; failing that, to the first tied candidate in
// the order given.
func PickBest(scores []CategoryScore, priority []string) string {
	if len(scores) == 0 {
		return model.CategoryOther
	}

	best := scores[0].Score
	for _, s := range scores[1:] {
		if s.Score > best {
			best = s.Score
		}
	}

	var tied []string
	for _, s := range scores {
		if s.Score == best {
			tied = append(tied, s.Category)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}

	for _, p := range priority {
		for _, name := range tied {
			if name == p {
				return name
			}
		}
	}
	return tied[0]
}
