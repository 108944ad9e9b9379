package components

import (
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusLevel selects the color of the status message.
type StatusLevel int

// Status levels.
const (
	StatusInfo StatusLevel = iota
	StatusOK
	StatusWarn
	StatusError
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the latest status message and the data location on the right.
func RenderStatusBar(width int, hints, message string, level StatusLevel, location string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	msgColor := t.TextMuted
	switch level {
	case StatusOK:
		msgColor = t.GreenBright
	case StatusWarn:
		msgColor = t.Orange
	case StatusError:
		msgColor = t.Red
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface)

	left := base.Render(" [?]help  [q]uit")
	if hints != "" {
		left += hintStyle.Render("  " + hints)
	}

	right := ""
	if message != "" {
		right = msgStyle.Render(message)
	}
	if location != "" {
		if right != "" {
			right += hintStyle.Render(" │ ")
		}
		right += hintStyle.Render(location)
	}
	right += base.Render(" ")

	// Drop the location first, then the hints, when space runs out.
	if lipgloss.Width(left)+lipgloss.Width(right) > width && location != "" {
		right = msgStyle.Render(message) + base.Render(" ")
	}
	if lipgloss.Width(left)+lipgloss.Width(right) > width {
		left = base.Render(" [?]help  [q]uit")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left + lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("") + right
	return lipgloss.NewStyle().Background(t.Surface).MaxWidth(width).Render(bar)
}
