package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. source names the data
// path, loadTime is how long the last load took.
func RenderStatusBar(width int, source, loadTime string, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	right := ""
	switch {
	case refreshing:
		right = "Refreshing... "
	case loadTime != "":
		right = fmt.Sprintf("%s  loaded in %s ", source, loadTime)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
