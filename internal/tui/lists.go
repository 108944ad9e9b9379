package tui

import (
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/tui/components"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// column is a table column before widths are fitted to the screen.
// Flexible columns share whatever the fixed ones leave.
type column struct {
	title string
	width int // fixed width, or minimum width when flex > 0
	flex  int
}

func newList() table.Model {
	km := table.DefaultKeyMap()
	// d deletes; keep half-page scrolling on ctrl.
	km.HalfPageUp.SetKeys("ctrl+u")
	km.HalfPageDown.SetKeys("ctrl+d")

	return table.New(
		table.WithFocused(true),
		table.WithKeyMap(km),
	)
}

func listStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.Accent).
		Background(t.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Surface).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.AccentBright).
		Background(t.SurfaceBright).
		Bold(true)
	return s
}

// fitColumns sizes cols to fill width. Every cell carries one column of
// padding on each side.
func fitColumns(cols []column, width int) []table.Column {
	fixed, flexTotal := 0, 0
	for _, c := range cols {
		fixed += c.width + 2
		flexTotal += c.flex
	}

	spare := width - fixed
	if spare < 0 {
		spare = 0
	}

	out := make([]table.Column, len(cols))
	given := 0
	lastFlex := -1
	for i, c := range cols {
		w := c.width
		if c.flex > 0 && flexTotal > 0 {
			extra := spare * c.flex / flexTotal
			w += extra
			given += extra
			lastFlex = i
		}
		out[i] = table.Column{Title: c.title, Width: w}
	}
	// Integer division leftovers go to the last flexible column.
	if lastFlex >= 0 {
		out[lastFlex].Width += spare - given
	}
	return out
}

// listIndex maps a tab to its table slot.
func listIndex(tab int) (int, bool) {
	switch tab {
	case components.TabIncome, components.TabExpenses, components.TabSavings:
		return tab, true
	}
	return 0, false
}

func tabKind(tab int) ledger.Kind {
	switch tab {
	case components.TabExpenses:
		return ledger.KindExpense
	case components.TabSavings:
		return ledger.KindSavings
	}
	return ledger.KindIncome
}

func (a App) listWidth() int {
	return components.CardInnerWidth(a.contentWidth())
}

func (a App) listHeight() int {
	h := a.height - listChrome
	if h < 3 {
		h = 3
	}
	return h
}

// refreshLists rebuilds every table from the ledger and the current size.
func (a *App) refreshLists() {
	w := a.listWidth()
	styles := listStyles()

	builds := [3]struct {
		cols []column
		rows []table.Row
	}{
		{incomeColumns(), incomeRows(a.ledger)},
		{expenseColumns(), expenseRows(a.ledger)},
		{savingsColumns(), savingsRows(a.ledger)},
	}

	for i, b := range builds {
		m := a.lists[i]
		cursor := m.Cursor()
		m.SetColumns(fitColumns(b.cols, w))
		m.SetRows(b.rows)
		m.SetStyles(styles)
		m.SetWidth(w)
		m.SetHeight(a.listHeight())
		switch {
		case len(b.rows) == 0:
			m.SetCursor(0)
		case cursor >= len(b.rows):
			m.SetCursor(len(b.rows) - 1)
		default:
			m.SetCursor(cursor)
		}
		a.lists[i] = m
	}
}

// selectedID returns the ID of the highlighted row on the active tab.
func (a App) selectedID() (string, bool) {
	i, ok := listIndex(a.activeTab)
	if !ok {
		return "", false
	}
	row := a.lists[i].Cursor()

	switch tabKind(a.activeTab) {
	case ledger.KindIncome:
		if items := a.ledger.Incomes(); row >= 0 && row < len(items) {
			return items[row].ID(), true
		}
	case ledger.KindExpense:
		if items := a.ledger.Expenses(); row >= 0 && row < len(items) {
			return items[row].ID(), true
		}
	case ledger.KindSavings:
		if items := a.ledger.Savings(); row >= 0 && row < len(items) {
			return items[row].ID(), true
		}
	}
	return "", false
}

// updateList handles keys on the Income, Expenses and Savings tabs.
func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return a.startAdd()
	case "e", "enter":
		return a.startEdit()
	case "d", "delete":
		return a.startDelete()
	case "+", "=":
		if a.activeTab != components.TabIncome {
			return a.startAmount()
		}
		return a, nil
	}

	i, _ := listIndex(a.activeTab)
	var cmd tea.Cmd
	a.lists[i], cmd = a.lists[i].Update(msg)
	return a, cmd
}
