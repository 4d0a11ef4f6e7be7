package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/analysis"
	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleReport() *analysis.Report {
	txns := []model.Transaction{
		{Date: "2024-01-05", Amount: decimal.NewFromInt(50000), Description: "salary", Type: "income"},
		{Date: "2024-01-07", Amount: decimal.NewFromInt(-1200), Description: "Pyaterochka groceries"},
		{Date: "2024-02-03", Amount: decimal.NewFromInt(-800), Description: "taxi to airport"},
	}
	now := func() time.Time { return time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC) }
	return analysis.Run(context.Background(), txns, analysis.Options{Now: now})
}

func loadedApp(t *testing.T) App {
	t.Helper()
	a := NewApp(context.Background(), "/tmp/ledger.csv", analysis.Options{}, "rub.")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 60})
	m, _ = m.Update(DataLoadedMsg{
		Report: sampleReport(),
		Result: &pipeline.LoadResult{TotalFiles: 1, ParsedFiles: 1},
	})
	return m.(App)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadingView(t *testing.T) {
	a := NewApp(context.Background(), "/tmp/ledger.csv", analysis.Options{}, "rub.")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if got := m.View(); !strings.Contains(got, "ledger.csv") {
		t.Errorf("loading view should name the file, got %q", got)
	}

	m, _ = m.Update(ProgressMsg{Current: 3, Total: 7})
	if got := m.View(); !strings.Contains(got, "3") || !strings.Contains(got, "7") {
		t.Errorf("loading view should show progress")
	}
}

func TestTabsRender(t *testing.T) {
	a := loadedApp(t)

	tests := []struct {
		key  string
		tab  int
		want string
	}{
		{"o", 0, "Classification"},
		{"c", 1, "Income and Expenses"},
		{"m", 2, "2024-02"},
		{"b", 3, "Plan vs Actual"},
	}
	for _, tt := range tests {
		m, _ := a.Update(key(tt.key))
		got := m.(App)
		if got.activeTab != tt.tab {
			t.Errorf("key %q -> tab %d, want %d", tt.key, got.activeTab, tt.tab)
		}
		if view := got.View(); !strings.Contains(view, tt.want) {
			t.Errorf("tab %d view missing %q", tt.tab, tt.want)
		}
	}
}

func TestTabCycling(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.(App).activeTab; got != 3 {
		t.Errorf("left from first tab = %d, want 3", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.(App).activeTab; got != 0 {
		t.Errorf("right from last tab = %d, want 0", got)
	}
}

func TestScrollResetsOnTabSwitch(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(key("j"))
	m, _ = m.Update(key("j"))
	if got := m.(App).scroll; got != 2 {
		t.Fatalf("scroll = %d, want 2", got)
	}
	m, _ = m.Update(key("k"))
	m, _ = m.Update(key("k"))
	m, _ = m.Update(key("k"))
	if got := m.(App).scroll; got != 0 {
		t.Errorf("scroll = %d, want clamp at 0", got)
	}

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("c"))
	if got := m.(App).scroll; got != 0 {
		t.Errorf("scroll after tab switch = %d, want 0", got)
	}
}

func TestHelpToggle(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(key("?"))
	if !m.(App).showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("? should open help")
	}
	m, _ = m.Update(key("c"))
	if m.(App).showHelp {
		t.Error("any key should close help")
	}
	if m.(App).activeTab != 0 {
		t.Error("closing help should not switch tabs")
	}
}

func TestLoadErrorKeepsPreviousReport(t *testing.T) {
	a := loadedApp(t)
	prev := a.report

	m, _ := a.Update(RefreshDataMsg{Err: errors.New("gone")})
	got := m.(App)
	if got.report != prev || got.loadErr != nil {
		t.Errorf("failed refresh should keep the last report")
	}

	fresh := NewApp(context.Background(), "missing.csv", analysis.Options{}, "rub.")
	m, _ = fresh.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.Update(DataLoadedMsg{Err: errors.New("no such file")})
	if view := m.View(); !strings.Contains(view, "no such file") {
		t.Errorf("error view should show the cause")
	}
}

func TestTooNarrow(t *testing.T) {
	a := loadedApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if view := m.View(); !strings.Contains(view, "too narrow") {
		t.Errorf("narrow view = %q", view)
	}
}

func TestScrollLines(t *testing.T) {
	if got := scrollLines("a\nb\nc", 1); got != "b\nc" {
		t.Errorf("scrollLines = %q, want b\\nc", got)
	}
	if got := scrollLines("a\nb", 10); got != "b" {
		t.Errorf("scrollLines past end = %q, want b", got)
	}
}
