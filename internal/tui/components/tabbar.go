package components

import (
	"strings"

	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tab indexes, in display order.
const (
	TabIncome = iota
	TabExpenses
	TabSavings
	TabSummary
	TabSettings
)

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Income", Key: 'i', KeyPos: 0},
	{Name: "Expenses", Key: 'p', KeyPos: 2},
	{Name: "Savings", Key: 'v', KeyPos: 2},
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// RenderTabBar renders a single-row tab bar. Tabs reported by disabled
// are drawn dimmed without a shortcut highlight.
func RenderTabBar(activeIdx int, width int, disabled func(int) bool) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	disabledStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true).
		Underline(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pad := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		var rendered string
		switch {
		case i == activeIdx:
			rendered = activeStyle.Render(tab.Name)
		case disabled != nil && disabled(i):
			rendered = disabledStyle.Render(tab.Name)
		case tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name):
			before := tab.Name[:tab.KeyPos]
			key := string(tab.Name[tab.KeyPos])
			after := tab.Name[tab.KeyPos+1:]
			rendered = pad + inactiveStyle.Render(before) + keyStyle.Render(key) + inactiveStyle.Render(after) + pad
		default:
			rendered = pad + inactiveStyle.Render(tab.Name) +
				dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]") + pad
		}
		parts = append(parts, rendered)
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabVisualWidth returns the rendered width of tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active, disabled bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && !disabled && (tab.KeyPos < 0 || tab.KeyPos >= len(tab.Name)) {
		w += 3
	}
	return w
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
