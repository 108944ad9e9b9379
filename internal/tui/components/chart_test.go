package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestStackedBarFillsWidth(t *testing.T) {
	segs := []Segment{
		{Label: "a", Value: 1, Color: "1"},
		{Label: "b", Value: 1, Color: "2"},
		{Label: "c", Value: 1, Color: "3"},
	}
	for _, w := range []int{1, 10, 31, 80} {
		got := StackedBar(segs, w)
		if gw := lipgloss.Width(got); gw != w {
			t.Errorf("width %d: rendered %d cells", w, gw)
		}
	}
}

func TestStackedBarSkipsNonPositive(t *testing.T) {
	segs := []Segment{
		{Label: "a", Value: 3, Color: "1"},
		{Label: "b", Value: 0, Color: "2"},
		{Label: "c", Value: -4, Color: "3"},
	}
	got := ansi.Strip(StackedBar(segs, 12))
	if strings.Count(got, "█") != 12 {
		t.Errorf("got %q, want 12 filled cells", got)
	}
}

func TestStackedBarEmpty(t *testing.T) {
	got := ansi.Strip(StackedBar([]Segment{{Label: "a"}}, 6))
	if got != "░░░░░░" {
		t.Errorf("got %q", got)
	}
}

func TestHBarChartRows(t *testing.T) {
	segs := []Segment{
		{Label: "Income", Value: 3000, Color: "1"},
		{Label: "Spent", Value: 1500, Color: "2"},
	}
	out := ansi.Strip(HBarChart(segs, func(v float64) string { return fmt.Sprintf("%.0f", v) }, 60))
	lines := strings.Split(out, "\n")
	if len(lines) != len(segs)+2 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(segs)+2, out)
	}
	if !strings.HasSuffix(lines[0], "3000") || !strings.HasPrefix(lines[1], "Spent") {
		t.Errorf("unexpected rows:\n%s", out)
	}
	if full, half := strings.Count(lines[0], "█"), strings.Count(lines[1], "█"); half == 0 || half >= full {
		t.Errorf("bar lengths not proportional: %d vs %d", full, half)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{50, 10},
		{3000, 500},
		{1200, 200},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 200, func(i int) bool { return i == TabSummary && active != TabSummary })
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active, i == TabSummary && active != TabSummary)
		}
		want += len(Tabs) - 1
		row := strings.TrimRight(ansi.Strip(bar), " ")
		if got := lipgloss.Width(row); got != want && got != want-1 {
			t.Errorf("active=%d: rendered %d, want %d", active, got, want)
		}
	}
}
