// Package datafile reads and writes the pipe-delimited WalletPal text format.
//
//	WalletPal Data File
//	[INCOMES]
//	<source>|<amount>|<notes>
//	[EXPENSES]
//	<category>|<limit>|<spent>|<notes>
//	[SAVINGS]
//	<category>|<goal>|<saved>|<notes>
//
// Amounts are written with two decimals. The last field on each line is
// notes and may itself contain '|'; a '|' in a label cannot be represented.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultName is the conventional data file name.
const DefaultName = "walletpal_data.txt"

const (
	header          = "WalletPal Data File"
	sectionIncomes  = "[INCOMES]"
	sectionExpenses = "[EXPENSES]"
	sectionSavings  = "[SAVINGS]"
)

type section int

const (
	sectionNone section = iota
	sectionIncome
	sectionExpense
	sectionSaving
)

// Encode writes snap in the text format.
func Encode(w io.Writer, snap ledger.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, sectionIncomes)
	for _, in := range snap.Incomes {
		fmt.Fprintf(bw, "%s|%s|%s\n", in.Source(), in.Amount().StringFixed(ledger.AmountPlaces), in.Notes())
	}
	fmt.Fprintln(bw, sectionExpenses)
	for _, e := range snap.Expenses {
		fmt.Fprintf(bw, "%s|%s|%s|%s\n", e.Category(), e.Limit().StringFixed(ledger.AmountPlaces), e.Spent().StringFixed(ledger.AmountPlaces), e.Notes())
	}
	fmt.Fprintln(bw, sectionSavings)
	for _, s := range snap.Savings {
		fmt.Fprintf(bw, "%s|%s|%s|%s\n", s.Category(), s.Goal().StringFixed(ledger.AmountPlaces), s.Saved().StringFixed(ledger.AmountPlaces), s.Notes())
	}

	return bw.Flush()
}

// Decode parses the text format. Lines that cannot be parsed are
// skipped and reported as warnings; only a read failure is an error.
func Decode(r io.Reader) (ledger.Snapshot, []ledger.Warning, error) {
	var (
		snap     ledger.Snapshot
		warnings []ledger.Warning
		cur      = sectionNone
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case sectionIncomes:
			cur = sectionIncome
			continue
		case sectionExpenses:
			cur = sectionExpense
			continue
		case sectionSavings:
			cur = sectionSaving
			continue
		}
		if strings.HasPrefix(line, "WalletPal") || strings.HasPrefix(line, "[") {
			continue
		}

		warn := func(reason string) {
			warnings = append(warnings, ledger.Warning{Line: lineNo, Text: line, Reason: reason})
		}

		switch cur {
		case sectionIncome:
			in, reason := parseIncome(line)
			if reason != "" {
				warn(reason)
				continue
			}
			snap.Incomes = append(snap.Incomes, in)
		case sectionExpense:
			e, reason := parseExpense(line)
			if reason != "" {
				warn(reason)
				continue
			}
			snap.Expenses = append(snap.Expenses, e)
		case sectionSaving:
			s, reason := parseSavings(line)
			if reason != "" {
				warn(reason)
				continue
			}
			snap.Savings = append(snap.Savings, s)
		default:
			warn("record outside any section")
		}
	}
	if err := scanner.Err(); err != nil {
		return snap, warnings, fmt.Errorf("reading data file: %w", err)
	}

	return snap, warnings, nil
}

func parseIncome(line string) (*model.Income, string) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) < 2 {
		return nil, "too few fields"
	}
	source, err := ledger.RequireLabel("source", parts[0])
	if err != nil {
		return nil, reasonOf(err)
	}
	amount, reason := parseNumber("amount", parts[1])
	if reason != "" {
		return nil, reason
	}
	return model.NewIncome(source, amount, field(parts, 2)), ""
}

func parseExpense(line string) (*model.Expense, string) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) < 3 {
		return nil, "too few fields"
	}
	category, err := ledger.RequireLabel("category", parts[0])
	if err != nil {
		return nil, reasonOf(err)
	}
	limit, reason := parseNumber("limit", parts[1])
	if reason != "" {
		return nil, reason
	}
	spent, reason := parseNumber("spent", parts[2])
	if reason != "" {
		return nil, reason
	}
	return model.RestoreExpense("", category, limit, spent, field(parts, 3)), ""
}

func parseSavings(line string) (*model.Savings, string) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) < 3 {
		return nil, "too few fields"
	}
	category, err := ledger.RequireLabel("category", parts[0])
	if err != nil {
		return nil, reasonOf(err)
	}
	goal, reason := parseNumber("goal", parts[1])
	if reason != "" {
		return nil, reason
	}
	saved, reason := parseNumber("saved", parts[2])
	if reason != "" {
		return nil, reason
	}
	return model.RestoreSavings("", category, goal, saved, field(parts, 3)), ""
}

// parseNumber applies the ledger's amount rules. A value that is not a
// number at all reports "error parsing number".
func parseNumber(name, s string) (decimal.Decimal, string) {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return decimal.Zero, "error parsing number"
	}
	d, err := ledger.ParseAmount(name, s)
	if err != nil {
		return decimal.Zero, reasonOf(err)
	}
	return d, ""
}

func reasonOf(err error) string {
	var ve *ledger.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
