package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formAdd formKind = iota
	formEdit
	formDelete
	formAmount
	formOverage
)

// pendingForm holds the values a huh form writes into. It lives behind a
// pointer so the bindings survive App being copied on every Update.
type pendingForm struct {
	kind   formKind
	entity ledger.Kind
	id     string
	title  string

	label  string
	amount string // amount, limit or goal
	spent  string // spent or saved, edits only
	notes  string

	confirmed bool
	proposal  ledger.Proposal
}

// Field names per collection, used for prompts and validation messages.
func fieldNames(kind ledger.Kind) (label, amount, progress string) {
	switch kind {
	case ledger.KindExpense:
		return "category", "limit", "spent"
	case ledger.KindSavings:
		return "category", "goal", "saved"
	}
	return "source", "amount", ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formWidth(cw int) int {
	return min(max(cw-8, 30), 60)
}

func validateLabel(field string) func(string) error {
	return func(s string) error {
		_, err := ledger.RequireLabel(field, s)
		return err
	}
}

func validateAmount(field string) func(string) error {
	return func(s string) error {
		_, err := ledger.ParseAmount(field, s)
		return err
	}
}

// entryFields builds the inputs shared by the add and edit forms.
func entryFields(p *pendingForm, withProgress bool) []huh.Field {
	labelField, amountField, progressField := fieldNames(p.entity)

	fields := []huh.Field{
		huh.NewInput().
			Title(titleCase(labelField)).
			Value(&p.label).
			Validate(validateLabel(labelField)),
		huh.NewInput().
			Title(titleCase(amountField)).
			Placeholder("0.00").
			Value(&p.amount).
			Validate(validateAmount(amountField)),
	}
	if withProgress && progressField != "" {
		fields = append(fields, huh.NewInput().
			Title(titleCase(progressField)).
			Placeholder("0.00").
			Value(&p.spent).
			Validate(validateAmount(progressField)))
	}
	fields = append(fields, huh.NewInput().
		Title("Notes").
		Value(&p.notes))
	return fields
}

func (a App) openForm(p *pendingForm, fields ...huh.Field) (tea.Model, tea.Cmd) {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithWidth(formWidth(a.contentWidth()))

	a.form = form
	a.pending = p
	return a, form.Init()
}

func (a App) startAdd() (tea.Model, tea.Cmd) {
	kind := tabKind(a.activeTab)

	switch kind {
	case ledger.KindIncome:
		if len(a.ledger.Incomes()) >= ledger.MaxIncomes {
			a.showError(&ledger.CapacityError{Kind: kind, Max: ledger.MaxIncomes})
			return a, nil
		}
	case ledger.KindExpense, ledger.KindSavings:
		if !a.ledger.HasSpendableRoom() {
			a.setStatus(fmt.Sprintf("All income is allocated (%s available)", cli.FormatMoney(a.ledger.Available())), components.StatusWarn)
			return a, nil
		}
	}

	p := &pendingForm{kind: formAdd, entity: kind, title: "Add " + kind.Title()}
	return a.openForm(p, entryFields(p, false)...)
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	id, ok := a.selectedID()
	if !ok {
		return a, nil
	}

	kind := tabKind(a.activeTab)
	p := &pendingForm{kind: formEdit, entity: kind, id: id, title: "Edit " + kind.Title()}

	switch kind {
	case ledger.KindIncome:
		in, _ := a.ledger.IncomeByID(id)
		p.label, p.amount, p.notes = in.Source(), cli.FormatAmount(in.Amount()), in.Notes()
	case ledger.KindExpense:
		e, _ := a.ledger.ExpenseByID(id)
		p.label, p.amount, p.spent, p.notes = e.Category(), cli.FormatAmount(e.Limit()), cli.FormatAmount(e.Spent()), e.Notes()
	case ledger.KindSavings:
		s, _ := a.ledger.SavingsByID(id)
		p.label, p.amount, p.spent, p.notes = s.Category(), cli.FormatAmount(s.Goal()), cli.FormatAmount(s.Saved()), s.Notes()
	}

	return a.openForm(p, entryFields(p, true)...)
}

func (a App) startDelete() (tea.Model, tea.Cmd) {
	id, ok := a.selectedID()
	if !ok {
		return a, nil
	}

	kind := tabKind(a.activeTab)
	p := &pendingForm{kind: formDelete, entity: kind, id: id, title: "Delete " + kind.Title()}

	return a.openForm(p, huh.NewConfirm().
		Title(fmt.Sprintf("Delete %q?", a.labelOf(kind, id))).
		Affirmative("Delete").
		Negative("Keep").
		Value(&p.confirmed))
}

// startAmount opens the spend or save entry for the selected row.
func (a App) startAmount() (tea.Model, tea.Cmd) {
	id, ok := a.selectedID()
	if !ok {
		return a, nil
	}

	kind := tabKind(a.activeTab)
	title := "Record spending"
	if kind == ledger.KindSavings {
		title = "Add to savings"
	}
	p := &pendingForm{kind: formAmount, entity: kind, id: id, title: title}

	return a.openForm(p, huh.NewInput().
		Title(fmt.Sprintf("Amount for %s", a.labelOf(kind, id))).
		Placeholder("0.00").
		Value(&p.amount).
		Validate(validateAmount("amount")))
}

func (a App) labelOf(kind ledger.Kind, id string) string {
	switch kind {
	case ledger.KindIncome:
		if in, ok := a.ledger.IncomeByID(id); ok {
			return in.Source()
		}
	case ledger.KindExpense:
		if e, ok := a.ledger.ExpenseByID(id); ok {
			return e.Category()
		}
	case ledger.KindSavings:
		if s, ok := a.ledger.SavingsByID(id); ok {
			return s.Category()
		}
	}
	return ""
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.form, a.pending = nil, nil
		a.setStatus("Cancelled", components.StatusInfo)
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		p := a.pending
		a.form, a.pending = nil, nil
		return a.applyForm(p)
	case huh.StateAborted:
		a.form, a.pending = nil, nil
		return a, nil
	}

	return a, cmd
}

// applyForm carries out a completed form.
func (a App) applyForm(p *pendingForm) (tea.Model, tea.Cmd) {
	var (
		done string
		err  error
	)

	switch p.kind {
	case formAdd:
		done, err = a.applyAdd(p)
	case formEdit:
		done, err = a.applyEdit(p)
	case formDelete:
		if !p.confirmed {
			return a, nil
		}
		done = a.applyDelete(p)
	case formAmount:
		return a.applyAmount(p)
	case formOverage:
		if !p.confirmed {
			a.setStatus("Not recorded", components.StatusInfo)
			return a, nil
		}
		done = a.applyOverage(p)
	}

	if err != nil {
		a.showError(err)
		return a, nil
	}
	a.setStatus(done, components.StatusOK)
	return a, a.changed()
}

func (a *App) applyAdd(p *pendingForm) (string, error) {
	switch p.entity {
	case ledger.KindIncome:
		in, err := a.ledger.AddIncome(p.label, p.amount, p.notes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added income %s (%s)", in.Source(), cli.FormatMoney(in.Amount())), nil
	case ledger.KindExpense:
		e, err := a.ledger.AddExpense(p.label, p.amount, p.notes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added expense %s (%s)", e.Category(), cli.FormatMoney(e.Limit())), nil
	default:
		s, err := a.ledger.AddSavings(p.label, p.amount, p.notes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added savings goal %s (%s)", s.Category(), cli.FormatMoney(s.Goal())), nil
	}
}

func (a *App) applyEdit(p *pendingForm) (string, error) {
	var err error
	switch p.entity {
	case ledger.KindIncome:
		err = a.ledger.EditIncome(p.id, ledger.IncomeEdit{Source: p.label, Amount: p.amount, Notes: p.notes})
	case ledger.KindExpense:
		err = a.ledger.EditExpense(p.id, ledger.ExpenseEdit{Category: p.label, Limit: p.amount, Spent: p.spent, Notes: p.notes})
	case ledger.KindSavings:
		err = a.ledger.EditSavings(p.id, ledger.SavingsEdit{Category: p.label, Goal: p.amount, Saved: p.spent, Notes: p.notes})
	}
	if err != nil {
		return "", err
	}
	return "Updated " + a.labelOf(p.entity, p.id), nil
}

func (a *App) applyDelete(p *pendingForm) string {
	label := a.labelOf(p.entity, p.id)
	switch p.entity {
	case ledger.KindIncome:
		if in, ok := a.ledger.IncomeByID(p.id); ok {
			a.ledger.RemoveIncome(in)
		}
	case ledger.KindExpense:
		if e, ok := a.ledger.ExpenseByID(p.id); ok {
			a.ledger.RemoveExpense(e)
		}
	case ledger.KindSavings:
		if s, ok := a.ledger.SavingsByID(p.id); ok {
			a.ledger.RemoveSavings(s)
		}
	}
	return "Removed " + label
}

// applyAmount records a spend or save. An overage opens a confirm form
// instead of applying.
func (a App) applyAmount(p *pendingForm) (tea.Model, tea.Cmd) {
	var (
		prop ledger.Proposal
		err  error
	)

	switch p.entity {
	case ledger.KindExpense:
		e, ok := a.ledger.ExpenseByID(p.id)
		if !ok {
			a.showError(ledger.ErrUnknownEntity)
			return a, nil
		}
		prop, err = ledger.RecordSpend(e, p.amount)
	case ledger.KindSavings:
		s, ok := a.ledger.SavingsByID(p.id)
		if !ok {
			a.showError(ledger.ErrUnknownEntity)
			return a, nil
		}
		prop, err = a.ledger.RecordSave(s, p.amount)
	}
	if err != nil {
		a.showError(err)
		return a, nil
	}

	if prop.Applied {
		a.setStatus(a.recordedMessage(p.entity, p.id, prop), components.StatusOK)
		return a, a.changed()
	}

	p.kind = formOverage
	p.proposal = prop
	p.title = "Over budget"
	return a.openForm(p, huh.NewConfirm().
		Title(cli.OverageMessage(p.entity, prop)).
		Description("Do you want to continue?").
		Affirmative("Continue").
		Negative("Cancel").
		Value(&p.confirmed))
}

func (a *App) applyOverage(p *pendingForm) string {
	switch p.entity {
	case ledger.KindExpense:
		if e, ok := a.ledger.ExpenseByID(p.id); ok {
			p.proposal = ledger.ConfirmSpend(e, p.proposal)
		}
	case ledger.KindSavings:
		if s, ok := a.ledger.SavingsByID(p.id); ok {
			p.proposal = ledger.ConfirmSave(s, p.proposal)
		}
	}
	return a.recordedMessage(p.entity, p.id, p.proposal)
}

func (a App) recordedMessage(kind ledger.Kind, id string, p ledger.Proposal) string {
	if kind == ledger.KindSavings {
		return fmt.Sprintf("Saved %s toward %s", cli.FormatMoney(p.Amount), a.labelOf(kind, id))
	}
	return fmt.Sprintf("Spent %s on %s", cli.FormatMoney(p.Amount), a.labelOf(kind, id))
}
