package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

func TestColorForUsage(t *testing.T) {
	th := theme.Active
	tests := []struct {
		pct  float64
		want string
	}{
		{0, string(th.Income)},
		{0.69, string(th.Income)},
		{0.7, string(th.Warning)},
		{1, string(th.Warning)},
		{1.01, string(th.Over)},
	}
	for _, tt := range tests {
		if got := string(ColorForUsage(tt.pct)); got != tt.want {
			t.Errorf("ColorForUsage(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestBudgetBarShowsOverrun(t *testing.T) {
	got := BudgetBar("food", 1.5, 10, 20)
	if !strings.Contains(got, "150%") {
		t.Errorf("BudgetBar(1.5) = %q, want 150%%", got)
	}
	if !strings.Contains(got, "food") {
		t.Errorf("BudgetBar missing label: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("entertainment", 6); got != "enter…" {
		t.Errorf("truncate = %q, want enter…", got)
	}
	if got := truncate("food", 6); got != "food" {
		t.Errorf("truncate = %q, want food", got)
	}
}
