package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/tui/components"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func savingsColumns() []column {
	return []column{
		{title: "#", width: 3},
		{title: "Category", width: 12, flex: 2},
		{title: "Goal", width: 12},
		{title: "Saved", width: 12},
		{title: "More to go", width: 14},
		{title: "Notes", width: 6, flex: 2},
	}
}

func savingsRows(l *ledger.Ledger) []table.Row {
	items := l.Savings()
	rows := make([]table.Row, 0, len(items))
	for i, s := range items {
		more := cli.FormatMoney(s.MoreToGo())
		if s.Reached() {
			more += " done"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			s.Category(),
			cli.FormatMoney(s.Goal()),
			cli.FormatMoney(s.Saved()),
			more,
			s.Notes(),
		})
	}
	return rows
}

func (a App) renderSavingsTab(cw int) string {
	t := theme.Active
	l := a.ledger

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var body strings.Builder
	if len(l.Savings()) == 0 {
		body.WriteString(dimStyle.Render("No savings goals yet. Press [a] to add one."))
	} else {
		body.WriteString(a.lists[components.TabSavings].View())
		body.WriteString("\n\n")
		body.WriteString(labelStyle.Render("Goals: ") + valueStyle.Render(cli.FormatMoney(l.TotalSavingsGoals())))
		body.WriteString(labelStyle.Render("   Saved: ") + valueStyle.Render(cli.FormatMoney(l.TotalSaved())))
	}
	body.WriteString("\n")
	body.WriteString(roomLine(l, labelStyle, valueStyle, warnStyle))
	if l.Policy() == ledger.SavingsReject {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render("Contributions past a goal are rejected (Settings → Savings overage)."))
	}

	title := fmt.Sprintf("Savings (%s)", cli.FormatCount(len(l.Savings()), ledger.MaxSavings))
	return components.ContentCard(title, body.String(), cw)
}
