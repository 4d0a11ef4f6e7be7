package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRenderTable_AlignsUnicode(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Total"},
		Rows: [][]string{
			{"продукты", "10"},
			{"---"},
			{"food", "1,000"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "продукты") || !strings.Contains(out, "1,000") {
		t.Errorf("table missing cells:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(decimal.NewFromInt(5), decimal.Zero, 10); got != "" {
		t.Errorf("zero total = %q, want empty", got)
	}
	got := RenderProgressBar(decimal.NewFromInt(5), decimal.NewFromInt(10), 10)
	if !strings.Contains(got, "█████░░░░░") || !strings.Contains(got, "50.00%") {
		t.Errorf("half bar = %q", got)
	}
	got = RenderProgressBar(decimal.NewFromInt(30), decimal.NewFromInt(10), 4)
	if !strings.Contains(got, "████") || !strings.Contains(got, "300.00%") {
		t.Errorf("overrun bar = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q", got)
	}
	got := []rune(RenderSparkline([]float64{0, 5, 10}))
	if len(got) != 3 || got[0] != '▁' || got[2] != '█' {
		t.Errorf("RenderSparkline = %q", string(got))
	}
}
