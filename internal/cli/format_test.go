package cli

import (
	"testing"

	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"9.999", "$10.00"},
		{"-30", "-$30.00"},
		{"-0.001", "$0.00"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(100.0 / 3); got != "33.3%" {
		t.Errorf("FormatPercent = %q, want 33.3%%", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Groceries", 5); got != "Groc…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("Rent", 10); got != "Rent" {
		t.Errorf("Truncate = %q", got)
	}
}

func TestRenderTable_Separator(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Limit"},
		Rows: [][]string{
			{"Rent", "$1,000.00"},
			{"---"},
			{"Total", "$1,000.00"},
		},
	})
	if out == "" {
		t.Fatal("RenderTable returned empty output")
	}
	if n := countRune(out, '┼'); n != 2 {
		t.Errorf("got %d cross joints, want 2 (header + separator)", n)
	}
}

func TestRenderStackedBar_Width(t *testing.T) {
	bar := RenderStackedBar([]BarSegment{
		{Label: "a", Value: 1},
		{Label: "b", Value: 3},
	}, 20)
	if n := countRune(bar, '█'); n != 20 {
		t.Errorf("filled cells = %d, want 20", n)
	}
	if got := RenderStackedBar(nil, 20); got != "" {
		t.Errorf("empty bar = %q, want empty", got)
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestOverageMessage(t *testing.T) {
	p := ledger.Proposal{
		Amount:            decimal.RequireFromString("150"),
		Remaining:         decimal.RequireFromString("100"),
		Overage:           decimal.RequireFromString("50"),
		NeedsConfirmation: true,
	}
	if got, want := OverageMessage(ledger.KindExpense, p), "This will exceed your remaining budget of $100.00 by $50.00."; got != want {
		t.Errorf("expense = %q, want %q", got, want)
	}
	if got, want := OverageMessage(ledger.KindSavings, p), "This will exceed your savings goal of $100.00 by $50.00."; got != want {
		t.Errorf("savings = %q, want %q", got, want)
	}
}
