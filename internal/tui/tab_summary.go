package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/model"
	"github.com/theirongolddev/walletpal/internal/summary"
	"github.com/theirongolddev/walletpal/internal/tui/components"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	stats := summary.Compute(a.ledger)
	var b strings.Builder

	balanceTone := t.GreenBright
	if stats.Overspent() {
		balanceTone = t.Red
	}
	remainingTone := t.TextPrimary
	if stats.RemainingBudget.IsNegative() {
		remainingTone = t.Orange
	}

	// Rows 1-2: metric cards
	top := []components.Metric{
		{Label: "Total Income", Value: cli.FormatMoney(stats.TotalIncome)},
		{Label: "Expense Limits", Value: cli.FormatMoney(stats.TotalExpenseLimits)},
		{Label: "Total Spent", Value: cli.FormatMoney(stats.TotalSpent)},
		{Label: "Net Balance", Value: cli.FormatMoney(stats.NetBalance), Note: "income - spent", Tone: balanceTone},
	}
	bottom := []components.Metric{
		{Label: "Savings Goals", Value: cli.FormatMoney(stats.TotalSavingsGoals)},
		{Label: "Total Saved", Value: cli.FormatMoney(stats.TotalSaved)},
		{Label: "Remaining Budget", Value: cli.FormatMoney(stats.RemainingBudget), Note: "unallocated", Tone: remainingTone},
		{Label: "Utilization", Value: cli.FormatPercent(stats.BudgetUtilization), Note: "of income allocated"},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(top[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(top[2:], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(bottom[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(bottom[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(top, cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(bottom, cw))
	}
	b.WriteString("\n")

	// Row 3: progress bars
	innerW := components.CardInnerWidth(cw)
	labelW := 20
	barW := innerW - labelW - 30
	if barW < 10 {
		barW = 10
	}

	var progress strings.Builder
	util := stats.UtilizationRatio()
	progress.WriteString(components.LabeledBar("Budget utilization", util, components.ColorForPct(util),
		fmt.Sprintf("%s of %s", cli.FormatMoney(stats.TotalExpenseLimits.Add(stats.TotalSavingsGoals)), cli.FormatMoney(stats.TotalIncome)),
		labelW, barW))
	progress.WriteString("\n")
	prog := stats.ProgressRatio()
	progress.WriteString(components.LabeledBar("Savings progress", prog, components.GoalColorForPct(prog),
		fmt.Sprintf("%s of %s", cli.FormatMoney(stats.TotalSaved), cli.FormatMoney(stats.TotalSavingsGoals)),
		labelW, barW))
	b.WriteString(components.ContentCard("Progress", progress.String(), cw))
	b.WriteString("\n")

	// Row 4: series chart
	segs := seriesSegments(stats)
	var chart strings.Builder
	chart.WriteString(components.StackedBar(segs, innerW))
	chart.WriteString("\n")
	chart.WriteString(components.Legend(segs, innerW))
	chart.WriteString("\n\n")
	chart.WriteString(components.HBarChart(segs, func(v float64) string {
		return cli.FormatMoney(decimal.NewFromFloat(v))
	}, innerW))
	b.WriteString(components.ContentCard("Budget Breakdown", chart.String(), cw))

	if stats.Overspent() {
		warn := lipgloss.NewStyle().Foreground(t.Red).Background(t.Background).Bold(true)
		b.WriteString("\n")
		b.WriteString(warn.Render(" Spending exceeds income by " + cli.FormatMoney(stats.NetBalance.Neg())))
	}

	return b.String()
}

// seriesSegments maps the summary series onto chart colors.
func seriesSegments(stats model.Summary) []components.Segment {
	t := theme.Active
	colors := map[string]lipgloss.Color{
		summary.SeriesIncome:           t.Income,
		summary.SeriesExpenseSpent:     t.Spent,
		summary.SeriesExpenseRemaining: t.Left,
		summary.SeriesSavingsSaved:     t.Saved,
		summary.SeriesSavingsRemaining: t.ToGo,
	}

	palette := components.SeriesColors()
	segs := make([]components.Segment, 0, len(stats.Series))
	for i, s := range stats.Series {
		c, ok := colors[s.Label]
		if !ok {
			c = palette[i%len(palette)]
		}
		segs = append(segs, components.Segment{
			Label: s.Label,
			Value: s.Value.InexactFloat64(),
			Color: c,
		})
	}
	return segs
}
