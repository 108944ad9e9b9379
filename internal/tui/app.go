// Package tui provides the interactive Bubble Tea interface for WalletPal.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/config"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
	"github.com/theirongolddev/walletpal/internal/store"
	"github.com/theirongolddev/walletpal/internal/tui/components"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SavedMsg is sent when a background save finishes.
type SavedMsg struct {
	Err error
}

// Options configures a new App.
type Options struct {
	Ledger     *ledger.Ledger
	Store      store.Store // nil disables persistence
	Config     config.Config
	ConfigPath string
	Warnings   []ledger.Warning // problems found while loading
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	ledger     *ledger.Ledger
	store      store.Store
	cfg        config.Config
	configPath string
	warnings   []ledger.Warning
	log        *slog.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// One table per list tab, indexed by tab.
	lists [3]table.Model

	// Modal huh form and the values it writes into.
	form    *huh.Form
	pending *pendingForm

	// Blocking error card, dismissed by any key.
	alert string

	status      string
	statusLevel components.StatusLevel

	// Saves run one at a time; a mutation during a save queues another.
	saver  *saver
	saving bool
	dirty  bool

	settings settingsState
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140

	minContentHeight = 5 // minimum content area height
	listChrome       = 9 // tab bar, status bar, card border, title and footer

	saveTimeout = 10 * time.Second
	savedSuffix = " · saved"
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	l := opts.Ledger
	if l == nil {
		l = ledger.New()
	}

	a := App{
		ledger:     l,
		store:      opts.Store,
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		warnings:   opts.Warnings,
		log:        logging.For(logging.ComponentTUI),
		lists: [3]table.Model{
			newList(),
			newList(),
			newList(),
		},
		settings: newSettingsState(),
	}
	if opts.Store != nil {
		a.saver = newSaver(opts.Store)
	}

	if n := len(opts.Warnings); n > 0 {
		a.setStatus(fmt.Sprintf("%d record(s) skipped on load: %s", n, opts.Warnings[0]), components.StatusWarn)
	}

	a.ensureTabEnabled()
	a.refreshLists()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.refreshLists()
		if a.form != nil {
			a.form = a.form.WithWidth(formWidth(a.contentWidth()))
		}
		return a, nil

	case SavedMsg:
		a.saving = false
		if msg.Err != nil {
			a.log.Error("save failed", logging.FieldError, msg.Err)
			a.setStatus("Save failed: "+msg.Err.Error(), components.StatusError)
		} else if a.statusLevel == components.StatusOK && !strings.HasSuffix(a.status, savedSuffix) {
			a.status += savedSuffix
		}
		if a.dirty {
			a.dirty = false
			return a, a.startSave()
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.alert != "" || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Alerts swallow the key that dismisses them.
		if a.alert != "" {
			a.alert = ""
			return a, nil
		}

		if a.form != nil {
			return a.updateForm(msg)
		}

		// Settings text input owns the keyboard while editing.
		if a.activeTab == components.TabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab", "right":
			a.selectTab(a.nextTab(1))
			return a, nil
		case "shift+tab", "left":
			a.selectTab(a.nextTab(-1))
			return a, nil
		case "1", "2", "3", "4", "5":
			a.selectTab(int(key[0] - '1'))
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.selectTab(idx)
				return a, nil
			}
		}

		switch a.activeTab {
		case components.TabIncome, components.TabExpenses, components.TabSavings:
			return a.updateList(msg)
		case components.TabSettings:
			return a.updateSettings(msg)
		}
		return a, nil
	}

	// Cursor blinks and other internal messages belong to the open form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if i, ok := listIndex(a.activeTab); ok {
			a.lists[i].MoveUp(1)
		}
	case tea.MouseButtonWheelDown:
		if i, ok := listIndex(a.activeTab); ok {
			a.lists[i].MoveDown(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.selectTab(tab)
			}
		}
	}
	return a, nil
}

// tabDisabled reports whether tab i is unavailable. Everything past
// Income needs at least one income source.
func (a App) tabDisabled(i int) bool {
	switch i {
	case components.TabExpenses, components.TabSavings, components.TabSummary:
		return !a.ledger.HasAnyIncome()
	}
	return false
}

func (a *App) selectTab(i int) {
	if i < 0 || i >= len(components.Tabs) || i == a.activeTab {
		return
	}
	if a.tabDisabled(i) {
		a.setStatus("Add an income source first", components.StatusWarn)
		return
	}
	a.activeTab = i
	a.settings.saved = false
}

// nextTab returns the next enabled tab in direction dir, wrapping around.
func (a App) nextTab(dir int) int {
	n := len(components.Tabs)
	for step := 1; step < n; step++ {
		i := ((a.activeTab+dir*step)%n + n) % n
		if !a.tabDisabled(i) {
			return i
		}
	}
	return a.activeTab
}

// ensureTabEnabled falls back to Income when the active tab became
// unavailable, e.g. after the last income was removed.
func (a *App) ensureTabEnabled() {
	if a.tabDisabled(a.activeTab) {
		a.activeTab = components.TabIncome
	}
}

func (a *App) setStatus(msg string, level components.StatusLevel) {
	a.status = msg
	a.statusLevel = level
}

// showError opens the alert card for err.
func (a *App) showError(err error) {
	if !ledger.IsUserError(err) {
		a.log.Error("operation failed", logging.FieldError, err)
	}
	a.alert = err.Error()
}

// changed refreshes derived views after a mutation and schedules a save.
func (a *App) changed() tea.Cmd {
	a.ensureTabEnabled()
	a.refreshLists()
	if a.saver == nil {
		return nil
	}
	if a.saving {
		a.dirty = true
		return nil
	}
	return a.startSave()
}

func (a *App) startSave() tea.Cmd {
	a.saving = true
	return a.saver.cmd(a.ledger.Snapshot())
}

// Unsaved reports whether a save was running or queued.
func (a App) Unsaved() bool {
	return a.saving || a.dirty
}

// Flush writes the current ledger once any background save has finished.
// A background save that had not started yet is dropped, so the store is
// left holding this final state.
func (a App) Flush(ctx context.Context) error {
	if a.saver == nil {
		return nil
	}
	return a.saver.flush(ctx, a.ledger.Snapshot())
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.alert != "" {
		return a.viewAlert()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  walletpal needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewAlert() string {
	t := theme.Active
	w := min(a.contentWidth(), 64)

	body := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(components.CardInnerWidth(w)).Render(a.alert) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("Press any key to continue")

	card := components.AlertCard("Error", body, w)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewForm() string {
	t := theme.Active
	w := formWidth(a.contentWidth()) + 4

	title := ""
	if a.pending != nil {
		title = a.pending.title
	}
	card := components.ContentCard(title, a.form.View(), w)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"i p v s x", "Jump to tab"},
		{"1-5", "Jump to tab"},
		{"← → Tab", "Previous / Next tab"},
		{"j k", "Move through lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add an entry"},
		{"e Enter", "Edit the selected entry"},
		{"d", "Delete the selected entry"},
		{"+", "Record spending / savings"},
		{"Esc", "Cancel a form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	header := components.RenderTabBar(a.activeTab, w, a.tabDisabled)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.tabHints(), a.status, a.statusLevel, a.location())

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case components.TabIncome:
		content = a.renderIncomeTab(cw)
	case components.TabExpenses:
		content = a.renderExpensesTab(cw)
	case components.TabSavings:
		content = a.renderSavingsTab(cw)
	case components.TabSummary:
		content = a.renderSummaryTab(cw)
	case components.TabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) tabHints() string {
	switch a.activeTab {
	case components.TabIncome:
		return "[a]dd [e]dit [d]elete"
	case components.TabExpenses:
		return "[a]dd [e]dit [d]elete [+]spend"
	case components.TabSavings:
		return "[a]dd [e]dit [d]elete [+]save"
	case components.TabSettings:
		return "[j/k] move [Enter] change"
	}
	return ""
}

func (a App) location() string {
	if a.store == nil {
		return ""
	}
	loc := a.store.Location()
	if a.isCompactLayout() {
		return cli.Truncate(loc, 24)
	}
	return loc
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		active := i == a.activeTab
		tabW := components.TabVisualWidth(tab, active, !active && a.tabDisabled(i))

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
