package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut, always the first letter of Name lowercased
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Categories", Key: 'c'},
	{Name: "Monthly", Key: 'm'},
	{Name: "Budget", Key: 'b'},
}

func renderTab(tab Tab, isActive bool) string {
	t := theme.Active
	if isActive {
		return lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	// Shortcut letter highlighted in place.
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	return text.Render(" ") + key.Render(tab.Name[:1]) + text.Render(tab.Name[1:]+" ")
}

// TabVisualWidth returns the rendered width of a tab, used for mouse hit
// testing.
func TabVisualWidth(tab Tab, isActive bool) int {
	return lipgloss.Width(renderTab(tab, isActive))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(strings.Join(parts, sep))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
