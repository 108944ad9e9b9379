package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	positiveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	negativeStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align amount columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a ratio as a text bar. Ratios above 1 fill
// the bar and are flagged in the warning color.
func RenderProgressBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}

	style := positiveStyle
	if ratio > 1 {
		style = warnStyle
	}
	filled := int(min(ratio, 1) * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", style.Render(bar), FormatPercent(ratio*100))
}

// BarSegment is one colored slice of a stacked bar.
type BarSegment struct {
	Label string
	Value float64
}

// SegmentColors are cycled across stacked bar segments.
var SegmentColors = []lipgloss.Color{ColorBlue, ColorRed, ColorOrange, ColorGreen, ColorYellow}

// RenderStackedBar renders segments proportionally across width cells.
// Cells are assigned by largest remainder so the bar is always full.
func RenderStackedBar(segments []BarSegment, width int) string {
	total := 0.0
	for _, seg := range segments {
		if seg.Value > 0 {
			total += seg.Value
		}
	}
	if total <= 0 || width <= 0 {
		return ""
	}

	cells := make([]int, len(segments))
	fracs := make([]float64, len(segments))
	used := 0
	for i, seg := range segments {
		if seg.Value <= 0 {
			continue
		}
		exact := seg.Value / total * float64(width)
		cells[i] = int(exact)
		fracs[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for used < width {
		best := -1
		for i := range fracs {
			if segments[i].Value > 0 && (best < 0 || fracs[i] > fracs[best]) {
				best = i
			}
		}
		cells[best]++
		fracs[best] = -1
		used++
	}

	var b strings.Builder
	for i, n := range cells {
		if n == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(SegmentColors[i%len(SegmentColors)])
		b.WriteString(style.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// RenderLegend renders one colored key per segment with its share.
func RenderLegend(segments []BarSegment) string {
	total := 0.0
	for _, seg := range segments {
		if seg.Value > 0 {
			total += seg.Value
		}
	}

	var b strings.Builder
	for i, seg := range segments {
		share := 0.0
		if total > 0 && seg.Value > 0 {
			share = seg.Value / total * 100
		}
		style := lipgloss.NewStyle().Foreground(SegmentColors[i%len(SegmentColors)])
		fmt.Fprintf(&b, "  %s %-20s %s\n", style.Render("■"), seg.Label, mutedStyle.Render(FormatPercent(share)))
	}
	return b.String()
}

// RenderBalance colors an amount red when negative and green otherwise.
func RenderBalance(text string, negative bool) string {
	if negative {
		return negativeStyle.Render(text)
	}
	return positiveStyle.Render(text)
}

// RenderWarning renders text in the warning color.
func RenderWarning(text string) string {
	return warnStyle.Render(text)
}

// RenderMuted renders secondary text.
func RenderMuted(text string) string {
	return mutedStyle.Render(text)
}
