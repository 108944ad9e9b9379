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

func expenseColumns() []column {
	return []column{
		{title: "#", width: 3},
		{title: "Category", width: 12, flex: 2},
		{title: "Limit", width: 12},
		{title: "Spent", width: 12},
		{title: "Remaining", width: 14},
		{title: "Notes", width: 6, flex: 2},
	}
}

func expenseRows(l *ledger.Ledger) []table.Row {
	items := l.Expenses()
	rows := make([]table.Row, 0, len(items))
	for i, e := range items {
		remaining := cli.FormatMoney(e.Remaining())
		if e.Overspent() {
			remaining += " over"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.Category(),
			cli.FormatMoney(e.Limit()),
			cli.FormatMoney(e.Spent()),
			remaining,
			e.Notes(),
		})
	}
	return rows
}

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	l := a.ledger

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var body strings.Builder
	if len(l.Expenses()) == 0 {
		body.WriteString(dimStyle.Render("No expense categories yet. Press [a] to add one."))
	} else {
		body.WriteString(a.lists[components.TabExpenses].View())
		body.WriteString("\n\n")
		body.WriteString(labelStyle.Render("Limits: ") + valueStyle.Render(cli.FormatMoney(l.TotalExpenseLimits())))
		body.WriteString(labelStyle.Render("   Spent: ") + valueStyle.Render(cli.FormatMoney(l.TotalSpent())))
	}
	body.WriteString("\n")
	body.WriteString(roomLine(l, labelStyle, valueStyle, warnStyle))

	title := fmt.Sprintf("Expenses (%s)", cli.FormatCount(len(l.Expenses()), ledger.MaxExpenses))
	return components.ContentCard(title, body.String(), cw)
}

// roomLine reports how much income is still unallocated, or that adding
// is blocked.
func roomLine(l *ledger.Ledger, label, value, warn lipgloss.Style) string {
	if !l.HasSpendableRoom() {
		return warn.Render("All income is allocated; adding is disabled until income grows or an entry is removed.")
	}
	return label.Render("Available to allocate: ") + value.Render(cli.FormatMoney(l.Available()))
}
