package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/walletpal/internal/cli"
	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var flagYes bool

// errGated is returned when an add is blocked by the income gates.
var errGated = errors.New("not available yet")

// requireRoom blocks adding expenses and savings goals until there is
// income with unallocated room.
func requireRoom(l *ledger.Ledger, kind ledger.Kind) error {
	if !l.HasAnyIncome() {
		return fmt.Errorf("%w: add an income source before adding %s", errGated, plural(kind))
	}
	if !l.HasSpendableRoom() {
		return fmt.Errorf("%w: all income is allocated (%s available)", errGated, cli.FormatMoney(l.Available()))
	}
	return nil
}

func requireIncome(l *ledger.Ledger) error {
	if !l.HasAnyIncome() {
		return fmt.Errorf("%w: add an income source first", errGated)
	}
	return nil
}

func plural(kind ledger.Kind) string {
	switch kind {
	case ledger.KindExpense:
		return "expenses"
	case ledger.KindSavings:
		return "savings goals"
	}
	return string(kind)
}


// confirmOverage asks whether to apply an over-budget amount. --yes
// accepts without asking; --no-input or a non-interactive stdin declines.
func confirmOverage(kind ledger.Kind, p ledger.Proposal) (bool, error) {
	if flagYes {
		return true, nil
	}
	if flagNoInput || !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, nil
	}

	var ok bool
	err := huh.NewConfirm().
		Title(cli.OverageMessage(kind, p)).
		Description("Do you want to continue?").
		Affirmative("Continue").
		Negative("Cancel").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
