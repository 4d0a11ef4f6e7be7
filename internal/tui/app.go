// Package tui provides the interactive Bubble Tea dashboard for ledgerlens.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/analysis"
	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
	"github.com/theirongolddev/ledgerlens/internal/tui/components"
	"github.com/theirongolddev/ledgerlens/internal/tui/theme"
)

// DataLoadedMsg is sent when the load and analysis finish.
type DataLoadedMsg struct {
	Report   *analysis.Report
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// RefreshDataMsg is sent when a background reload completes.
type RefreshDataMsg DataLoadedMsg

// App is the root Bubble Tea model.
type App struct {
	// Data
	report   *analysis.Report
	result   *pipeline.LoadResult
	loadErr  error
	loaded   bool
	loadTime time.Duration

	refreshing bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	scroll    int // lines scrolled off the top of the active tab

	// Loading, with progress streamed from the loader goroutine
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg

	// Inputs
	ctx      context.Context
	dataPath string
	opts     analysis.Options
	currency string
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5
)

// NewApp creates a new TUI app model. The logger on ctx receives load
// warnings.
func NewApp(ctx context.Context, dataPath string, opts analysis.Options, currency string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ctx:      ctx,
		dataPath: dataPath,
		opts:     opts,
		currency: currency,
		spinner:  sp,
		loadSub:  make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.ctx, a.dataPath, a.opts, a.loadSub),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			a.scrollBy(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.switchTab(tab)
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.loaded = true
		a.applyLoad(msg)
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		a.applyLoad(DataLoadedMsg(msg))
		return a, nil
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.ctx, a.dataPath, a.opts)
		}
	case "left", "shift+tab":
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case "right", "tab":
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
	case "j", "down":
		a.scrollBy(1)
	case "k", "up":
		a.scrollBy(-1)
	case "ctrl+d":
		a.scrollBy(max(a.height/2, 1))
	case "ctrl+u":
		a.scrollBy(-max(a.height/2, 1))
	case "g":
		a.scroll = 0
	default:
		if len(msg.Runes) == 1 {
			if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
				a.switchTab(tab)
			}
		}
	}
	return a, nil
}

// applyLoad keeps the previous report when a reload fails.
func (a *App) applyLoad(msg DataLoadedMsg) {
	a.loadTime = msg.LoadTime
	if msg.Err != nil {
		if a.report == nil {
			a.loadErr = msg.Err
		}
		return
	}
	a.loadErr = nil
	a.report = msg.Report
	a.result = msg.Result
}

func (a *App) switchTab(tab int) {
	if tab != a.activeTab {
		a.activeTab = tab
		a.scroll = 0
	}
}

func (a *App) scrollBy(n int) {
	a.scroll = max(a.scroll+n, 0)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) money(d decimal.Decimal) string {
	return cli.FormatMoney(d, a.currency)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.loadErr != nil {
		return a.viewError()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ledgerlens needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

// centeredCard places body in an accent-bordered card in the middle of the
// screen.
func (a App) centeredCard(body string) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoading() string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ ledgerlens"))
	b.WriteString(subtitleStyle.Render(" · Financial analysis"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := min(max(a.width-30, 20), 40)
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Parsing files\n\n"))
		b.WriteString(components.ProgressBar(float64(a.progress)/float64(a.progressMax), barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(a.spinner.View())
		b.WriteString(subtitleStyle.Render(" Reading " + filepath.Base(a.dataPath) + "..."))
	}

	return a.centeredCard(b.String())
}

func (a App) viewError() string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Over).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := errStyle.Render("Could not load data") + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(a.loadErr.Error()) +
		"\n\n" + dimStyle.Render("[r] retry  [q] quit")
	return a.centeredCard(body)
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o c m b", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Scroll"},
		{"^d ^u", "Half-page scroll"},
		{"g", "Back to top"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.centeredCard(b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + active filters
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	filters := []string{filepath.Base(a.dataPath)}
	if a.opts.From != "" || a.opts.To != "" {
		filters = append(filters, fmt.Sprintf("%s..%s", orDots(a.opts.From), orDots(a.opts.To)))
	}
	if a.opts.Category != "" {
		filters = append(filters, a.opts.Category)
	}
	filterStr := pillStyle.Render(" ")
	for i, f := range filters {
		if i > 0 {
			filterStr += pillStyle.Render(" │ ")
		}
		filterStr += accentStyle.Render(f)
	}

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(filterStr)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, filepath.Base(a.dataPath),
		fmt.Sprintf("%.1fs", a.loadTime.Seconds()), a.refreshing)

	// 3. Content zone
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderCategoriesTab(cw)
	case 2:
		content = a.renderMonthlyTab(cw)
	case 3:
		content = a.renderBudgetTab(cw)
	}

	content = scrollLines(content, a.scroll)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Loading ────────────────────────────────────────────────────

// loadDataCmd starts the load and analysis in a background goroutine.
// It streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(ctx context.Context, path string, opts analysis.Options, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			// Non-blocking send so workers aren't stalled; the next update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}
			sub <- analyze(ctx, path, opts, progressFn)
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// refreshDataCmd reloads in the background without progress UI.
func refreshDataCmd(ctx context.Context, path string, opts analysis.Options) tea.Cmd {
	return func() tea.Msg {
		return RefreshDataMsg(analyze(ctx, path, opts, nil))
	}
}

func analyze(ctx context.Context, path string, opts analysis.Options, progressFn pipeline.ProgressFunc) DataLoadedMsg {
	start := time.Now()
	result, err := pipeline.Load(ctx, path, progressFn)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("path", path).Msg("load failed")
		return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
	}
	return DataLoadedMsg{
		Report:   analysis.Run(ctx, result.Transactions, opts),
		Result:   result,
		LoadTime: time.Since(start),
	}
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // one-column separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func orDots(s string) string {
	if s == "" {
		return "…"
	}
	return s
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func scrollLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		n = len(lines) - 1
	}
	return strings.Join(lines[n:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
