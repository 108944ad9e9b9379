// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with two decimals and thousands separators.
// e.g., 1234.5 -> "$1,234.50", -30 -> "-$30.00"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Too large for int64; skip grouping.
		return sign + "$" + fixed
	}
	if sign == "-" && n == 0 && frac == "00" {
		sign = ""
	}
	return sign + "$" + humanize.Comma(n) + "." + frac
}

// FormatAmount formats an amount with exactly two decimals and no symbol,
// as accepted back by the input parsers.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercent formats a percentage value. e.g., 33.333 -> "33.3%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount formats a count against a cap. e.g., (3, 5) -> "3/5"
func FormatCount(n, limit int) string {
	return fmt.Sprintf("%d/%d", n, limit)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// OverageMessage is the confirmation text for an over-budget spend or save.
func OverageMessage(kind ledger.Kind, p ledger.Proposal) string {
	what := "remaining budget"
	if kind == ledger.KindSavings {
		what = "savings goal"
	}
	return fmt.Sprintf("This will exceed your %s of %s by %s.",
		what, FormatMoney(p.Remaining), FormatMoney(p.Overage))
}
