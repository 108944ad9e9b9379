package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one labeled value in a chart.
type Segment struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// SeriesColors returns the chart palette for the active theme.
func SeriesColors() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{t.Income, t.Spent, t.Left, t.Saved, t.ToGo, t.Magenta, t.Cyan}
}

// StackedBar renders segments proportionally across width cells.
// Cells go to segments by largest remainder so the bar is always full.
func StackedBar(segs []Segment, width int) string {
	t := theme.Active

	total := 0.0
	for _, s := range segs {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if width <= 0 {
		return ""
	}
	if total <= 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(strings.Repeat("░", width))
	}

	cells := make([]int, len(segs))
	fracs := make([]float64, len(segs))
	used := 0
	for i, s := range segs {
		if s.Value <= 0 {
			fracs[i] = -1
			continue
		}
		exact := s.Value / total * float64(width)
		cells[i] = int(exact)
		fracs[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for used < width {
		best := 0
		for i := range fracs {
			if fracs[i] > fracs[best] {
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
		style := lipgloss.NewStyle().Foreground(segs[i].Color).Background(t.Surface)
		b.WriteString(style.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// Legend renders one colored key per segment with its share of the total,
// packed into as many rows as width requires.
func Legend(segs []Segment, width int) string {
	t := theme.Active

	total := 0.0
	for _, s := range segs {
		if s.Value > 0 {
			total += s.Value
		}
	}

	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface).Render("   ")

	var rows []string
	var row string
	for _, s := range segs {
		share := 0.0
		if total > 0 && s.Value > 0 {
			share = s.Value / total * 100
		}
		item := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■ ") +
			textStyle.Render(s.Label) +
			shareStyle.Render(fmt.Sprintf(" %.0f%%", share))

		if row != "" && lipgloss.Width(row)+lipgloss.Width(gap)+lipgloss.Width(item) > width {
			rows = append(rows, row)
			row = ""
		}
		if row != "" {
			row += gap
		}
		row += item
	}
	if row != "" {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// HBarChart renders one horizontal bar per segment against a shared
// scale, with eighth-block resolution and a tick axis underneath.
// format renders the value shown after each bar.
func HBarChart(segs []Segment, format func(float64) string, width int) string {
	if len(segs) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	labelW := 0
	valueW := 0
	values := make([]string, len(segs))
	for i, s := range segs {
		if s.Value > maxVal {
			maxVal = s.Value
		}
		labelW = max(labelW, lipgloss.Width(s.Label))
		values[i] = format(s.Value)
		valueW = max(valueW, lipgloss.Width(values[i]))
	}

	step := chartTickStep(maxVal)
	ceiling := math.Ceil(maxVal/step) * step
	if ceiling <= 0 {
		ceiling = 1
	}

	barW := width - labelW - valueW - 4
	if barW < 5 {
		barW = 5
	}

	blocks := []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, s := range segs {
		v := math.Max(s.Value, 0)
		eighths := int(math.Round(v / ceiling * float64(barW*8)))
		full := eighths / 8
		part := eighths % 8

		bar := strings.Repeat("█", full)
		if part > 0 {
			bar += string(blocks[part])
		}
		fill := barW - lipgloss.Width(bar)

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)))
		b.WriteString(axisStyle.Render(" │"))
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render(bar))
		b.WriteString(space.Render(strings.Repeat(" ", max(fill, 0)+1)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, values[i])))
		b.WriteString("\n")
	}

	// Axis: tick labels at each step, placed where they fit.
	buf := []rune(strings.Repeat(" ", barW+1))
	lastEnd := -1
	for v := 0.0; v <= ceiling+step/2; v += step {
		pos := int(math.Round(v / ceiling * float64(barW)))
		lbl := []rune(formatChartLabel(v))
		if pos+len(lbl) > len(buf) {
			pos = len(buf) - len(lbl)
		}
		if pos <= lastEnd || pos < 0 {
			continue
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+1) + "└" + strings.Repeat("─", barW)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+1) + strings.TrimRight(string(buf), " ")))

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
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

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
