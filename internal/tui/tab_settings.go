package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/config"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
	"github.com/theirongolddev/walletpal/internal/tui/components"
	"github.com/theirongolddev/walletpal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldSavingsPolicy
	settingsFieldDataFile
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func newSettingsState() settingsState {
	return settingsState{input: newSettingsInput()}
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 50
	return ti
}

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", " ":
		return a.settingsActivate()
	}
	return a, nil
}

// settingsActivate changes the field under the cursor. Choice fields
// cycle in place; the data file opens a text input.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	a.settings.saved = false

	switch a.settings.cursor {
	case settingsFieldTheme:
		a.cfg.Appearance.Theme = theme.Next(a.cfg.Appearance.Theme)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.refreshLists()
		a.saveSettings()
	case settingsFieldSavingsPolicy:
		next := ledger.SavingsReject
		if a.ledger.Policy() == ledger.SavingsReject {
			next = ledger.SavingsConfirm
		}
		a.ledger.SetPolicy(next)
		a.cfg.Budget.SavingsOverage = string(next)
		a.saveSettings()
	case settingsFieldDataFile:
		ti := newSettingsInput()
		ti.Placeholder = config.DefaultConfig().General.DataFile
		ti.SetValue(a.cfg.General.DataFile)
		ti.Width = max(components.CardInnerWidth(a.contentWidth())-24, 20)
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		return a, textinput.Blink
	}
	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(a.settings.input.Value())
		a.settings.editing = false
		if val == "" {
			a.settings.saveErr = errors.New("data file must not be empty")
			a.settings.saved = false
			return a, nil
		}
		a.cfg.General.DataFile = val
		a.saveSettings()
		if a.settings.saveErr == nil {
			a.setStatus("Data file takes effect on next launch", components.StatusInfo)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// saveSettings writes the current settings to the config file.
func (a *App) saveSettings() {
	a.settings.saveErr = nil
	a.settings.saved = false

	if a.configPath == "" {
		return
	}
	if err := config.SaveTo(a.configPath, a.cfg); err != nil {
		a.log.Error("saving settings failed", logging.FieldPath, a.configPath, logging.FieldError, err)
		a.settings.saveErr = err
		return
	}
	a.settings.saved = true
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	type field struct {
		label string
		value string
		hint  string
	}

	policyHint := "ask before saving past a goal"
	if a.ledger.Policy() == ledger.SavingsReject {
		policyHint = "refuse contributions past a goal"
	}

	fields := []field{
		{"Theme", a.cfg.Appearance.Theme, strings.Join(theme.Names(), ", ")},
		{"Savings overage", string(a.ledger.Policy()), policyHint},
		{"Data file", a.cfg.General.DataFile, "applies on next launch"},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		value := cli.Truncate(f.value, max(innerW-24, 10))
		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			val := selectedStyle.Render(value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(val)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(val)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
			formBody.WriteString("\n")
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("    "))
			formBody.WriteString(dimStyle.Render(f.hint))
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] change  [Esc] cancel"))

	// General info card
	storage := "(not persisted)"
	if a.store != nil {
		storage = a.store.Location()
	}
	configPath := a.configPath
	if configPath == "" {
		configPath = "(none)"
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Backend:         ") + valueStyle.Render(a.cfg.Storage.Backend) + "\n")
	infoBody.WriteString(labelStyle.Render("Storage:         ") + valueStyle.Render(storage) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(configPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Entries:         ") + valueStyle.Render(fmt.Sprintf("%s income, %s expenses, %s savings",
		cli.FormatCount(len(a.ledger.Incomes()), ledger.MaxIncomes),
		cli.FormatCount(len(a.ledger.Expenses()), ledger.MaxExpenses),
		cli.FormatCount(len(a.ledger.Savings()), ledger.MaxSavings))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	if len(a.warnings) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		var wb strings.Builder
		for i, w := range a.warnings {
			if i > 0 {
				wb.WriteString("\n")
			}
			wb.WriteString(warnStyle.Render(cli.Truncate(w.String(), innerW)))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(fmt.Sprintf("Skipped on load (%d)", len(a.warnings)), wb.String(), cw))
	}

	return b.String()
}
