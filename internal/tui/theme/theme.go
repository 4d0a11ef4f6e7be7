// Package theme defines color themes for the ledgerlens TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Loading and help cards
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Active tab, headers
	AccentBright lipgloss.Color
	Income       lipgloss.Color // Positive amounts, within budget
	Expense      lipgloss.Color // Negative amounts
	Warning      lipgloss.Color // Budget close to its limit
	Over         lipgloss.Color // Budget exceeded
	Highlight    lipgloss.Color // Category names, keys
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Income:       lipgloss.Color("#879A39"),
	Expense:      lipgloss.Color("#DA702C"),
	Warning:      lipgloss.Color("#D0A215"),
	Over:         lipgloss.Color("#D14D41"),
	Highlight:    lipgloss.Color("#4385BE"),
}

// CatppuccinMocha is a soothing pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#45475A"),
	BorderAccent: lipgloss.Color("#94E2D5"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#94E2D5"),
	AccentBright: lipgloss.Color("#A6F0E5"),
	Income:       lipgloss.Color("#A6E3A1"),
	Expense:      lipgloss.Color("#FAB387"),
	Warning:      lipgloss.Color("#F9E2AF"),
	Over:         lipgloss.Color("#F38BA8"),
	Highlight:    lipgloss.Color("#89B4FA"),
}

// TokyoNight is a dark theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Border:       lipgloss.Color("#414868"),
	BorderAccent: lipgloss.Color("#7DCFFF"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#9AA5CE"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7DCFFF"),
	AccentBright: lipgloss.Color("#B4F9F8"),
	Income:       lipgloss.Color("#9ECE6A"),
	Expense:      lipgloss.Color("#FF9E64"),
	Warning:      lipgloss.Color("#E0AF68"),
	Over:         lipgloss.Color("#F7768E"),
	Highlight:    lipgloss.Color("#7AA2F7"),
}

// Terminal uses ANSI 16 colors and follows the terminal's own palette.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Income:       lipgloss.Color("2"),
	Expense:      lipgloss.Color("3"),
	Warning:      lipgloss.Color("11"),
	Over:         lipgloss.Color("1"),
	Highlight:    lipgloss.Color("4"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
