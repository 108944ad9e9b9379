package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/model"

	"github.com/agnivade/levenshtein"
)

// resolveIndex interprets arg as a 1-based position when it is a number
// in range.
func resolveIndex(arg string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func findIncome(l *ledger.Ledger, arg string) (*model.Income, error) {
	if in, ok := l.FindIncome(arg); ok {
		return in, nil
	}
	if i, ok := resolveIndex(arg, len(l.Incomes())); ok {
		return l.Incomes()[i], nil
	}
	return nil, notFound(ledger.KindIncome, arg, l.Labels(ledger.KindIncome))
}

func findExpense(l *ledger.Ledger, arg string) (*model.Expense, error) {
	if e, ok := l.FindExpense(arg); ok {
		return e, nil
	}
	if i, ok := resolveIndex(arg, len(l.Expenses())); ok {
		return l.Expenses()[i], nil
	}
	return nil, notFound(ledger.KindExpense, arg, l.Labels(ledger.KindExpense))
}

func findSavings(l *ledger.Ledger, arg string) (*model.Savings, error) {
	if s, ok := l.FindSavings(arg); ok {
		return s, nil
	}
	if i, ok := resolveIndex(arg, len(l.Savings())); ok {
		return l.Savings()[i], nil
	}
	return nil, notFound(ledger.KindSavings, arg, l.Labels(ledger.KindSavings))
}

func notFound(kind ledger.Kind, arg string, labels []string) error {
	if s := suggest(arg, labels); s != "" {
		return fmt.Errorf("no %s named %q (did you mean %q?)", kind, arg, s)
	}
	return fmt.Errorf("no %s named %q", kind, arg)
}

// suggest returns the closest label within a third of its length in
// edits, or "" when nothing is close.
func suggest(arg string, labels []string) string {
	target := strings.ToLower(strings.TrimSpace(arg))
	best, bestDist := "", -1
	for _, label := range labels {
		d := levenshtein.ComputeDistance(target, strings.ToLower(label))
		if bestDist < 0 || d < bestDist {
			best, bestDist = label, d
		}
	}
	if bestDist < 0 || bestDist > max(1, len(best)/3) {
		return ""
	}
	return best
}
