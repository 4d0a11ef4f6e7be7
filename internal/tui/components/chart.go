package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

// Bar is one column of a BarChart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color // empty means the chart color
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// BarChart renders vertical bars with a y-axis. When there is no room for
// bars it falls back to a sparkline.
func BarChart(bars []Bar, color lipgloss.Color, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}
	ceiling := math.Ceil(peak/chartTickStep(peak)) * chartTickStep(peak)

	yLabelW := max(len(formatChartLabel(ceiling))+1, 4)
	chartW := max(width-yLabelW-1, 5)

	n := len(bars)
	barW := 6
	if n > 1 {
		barW = min((chartW-(n-1))/n, 6)
	}
	if barW < 1 {
		return Sparkline(values, color)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatChartLabel(ceiling)
		} else if row == (height+1)/2 {
			label = formatChartLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, bar := range bars {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			c := bar.Color
			if c == "" {
				c = color
			}
			style := lipgloss.NewStyle().Foreground(c).Background(t.Surface)
			switch {
			case bar.Value >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case bar.Value > rowBottom:
				idx := int((bar.Value - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + n - 1
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	// Labels are printed under their bar when they fit.
	labels := make([]rune, axisLen)
	for i := range labels {
		labels[i] = ' '
	}
	lastEnd := -1
	for i, bar := range bars {
		pos := i * (barW + 1)
		lbl := []rune(bar.Label)
		if pos <= lastEnd || pos+len(lbl) > axisLen {
			continue
		}
		copy(labels[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	b.WriteString("\n")
	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(labels), " ")))

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel shortens axis amounts: 1500 -> "1.5k", 2000000 -> "2M".
func formatChartLabel(v float64) string {
	for _, u := range []struct {
		div    float64
		suffix string
	}{{1e9, "B"}, {1e6, "M"}, {1e3, "k"}} {
		if v >= u.div {
			if v == math.Trunc(v/u.div)*u.div {
				return fmt.Sprintf("%.0f%s", v/u.div, u.suffix)
			}
			return fmt.Sprintf("%.1f%s", v/u.div, u.suffix)
		}
	}
	if v >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
