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

func incomeColumns() []column {
	return []column{
		{title: "#", width: 3},
		{title: "Source", width: 12, flex: 2},
		{title: "Amount", width: 14},
		{title: "Notes", width: 8, flex: 3},
	}
}

func incomeRows(l *ledger.Ledger) []table.Row {
	items := l.Incomes()
	rows := make([]table.Row, 0, len(items))
	for i, in := range items {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			in.Source(),
			cli.FormatMoney(in.Amount()),
			in.Notes(),
		})
	}
	return rows
}

func (a App) renderIncomeTab(cw int) string {
	t := theme.Active
	l := a.ledger

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	if len(l.Incomes()) == 0 {
		body.WriteString(dimStyle.Render("No income sources yet. Press [a] to add one."))
		body.WriteString("\n")
		body.WriteString(dimStyle.Render("Expenses, savings and the summary unlock once you do."))
	} else {
		body.WriteString(a.lists[components.TabIncome].View())
		body.WriteString("\n\n")
		body.WriteString(labelStyle.Render("Total income: ") + valueStyle.Render(cli.FormatMoney(l.TotalIncome())))
		body.WriteString(labelStyle.Render("   Unallocated: ") + valueStyle.Render(cli.FormatMoney(l.Available())))
	}

	title := fmt.Sprintf("Income (%s)", cli.FormatCount(len(l.Incomes()), ledger.MaxIncomes))
	return components.ContentCard(title, body.String(), cw)
}
