package datafile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/shopspring/decimal"
)

func buildLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	if _, err := l.AddIncome("Salary", "2500", "monthly"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddIncome("Side gig", "300.5", ""); err != nil {
		t.Fatal(err)
	}
	e, err := l.AddExpense("Rent", "1200", "due on the 1st | autopay")
	if err != nil {
		t.Fatal(err)
	}
	e.AddSpent(decimal.RequireFromString("1250.25"))
	s, err := l.AddSavings("Emergency", "500", "")
	if err != nil {
		t.Fatal(err)
	}
	s.AddSaved(decimal.RequireFromString("120"))
	return l
}

func TestEncode_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, buildLedger(t).Snapshot()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"WalletPal Data File",
		"[INCOMES]",
		"Salary|2500.00|monthly",
		"Side gig|300.50|",
		"[EXPENSES]",
		"Rent|1200.00|1250.25|due on the 1st | autopay",
		"[SAVINGS]",
		"Emergency|500.00|120.00|",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Encode output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := buildLedger(t).Snapshot()

	var buf bytes.Buffer
	if err := Encode(&buf, orig); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, warnings, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	if len(got.Incomes) != 2 || len(got.Expenses) != 1 || len(got.Savings) != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/1", len(got.Incomes), len(got.Expenses), len(got.Savings))
	}
	for i, in := range orig.Incomes {
		if got.Incomes[i].Source() != in.Source() || !got.Incomes[i].Amount().Equal(in.Amount()) || got.Incomes[i].Notes() != in.Notes() {
			t.Errorf("income %d = %+v, want %+v", i, got.Incomes[i], in)
		}
	}

	e := got.Expenses[0]
	if e.Category() != "Rent" || e.Notes() != "due on the 1st | autopay" {
		t.Errorf("expense = %q / %q", e.Category(), e.Notes())
	}
	if !e.Spent().Equal(decimal.RequireFromString("1250.25")) {
		t.Errorf("spent = %s, want 1250.25", e.Spent())
	}
	if !e.Remaining().Equal(decimal.RequireFromString("-50.25")) {
		t.Errorf("remaining = %s, want -50.25", e.Remaining())
	}

	s := got.Savings[0]
	if !s.MoreToGo().Equal(decimal.NewFromInt(380)) {
		t.Errorf("moreToGo = %s, want 380", s.MoreToGo())
	}
}

func TestDecode_SkipsBadLines(t *testing.T) {
	input := `WalletPal Data File

  [INCOMES]
Salary|1000.00|ok
Broken|12,00|bad number
JustLabel
[EXPENSES]
Food|200.00|abc|
Rent|500.00
Utilities|100.00|25.00
[UNKNOWN]
[SAVINGS]
Trip|300.00|50.00|summer
`
	snap, warnings, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(snap.Incomes) != 1 || snap.Incomes[0].Source() != "Salary" {
		t.Errorf("incomes = %d, want only Salary", len(snap.Incomes))
	}
	if len(snap.Expenses) != 1 || snap.Expenses[0].Category() != "Utilities" {
		t.Errorf("expenses = %d, want only Utilities", len(snap.Expenses))
	}
	if snap.Expenses[0].Notes() != "" {
		t.Errorf("notes = %q, want empty", snap.Expenses[0].Notes())
	}
	if len(snap.Savings) != 1 || snap.Savings[0].Notes() != "summer" {
		t.Errorf("savings = %d, want Trip with notes", len(snap.Savings))
	}

	wantLines := []int{5, 6, 8, 9}
	if len(warnings) != len(wantLines) {
		t.Fatalf("warnings = %v, want %d", warnings, len(wantLines))
	}
	for i, w := range warnings {
		if w.Line != wantLines[i] {
			t.Errorf("warning %d line = %d, want %d", i, w.Line, wantLines[i])
		}
	}
	if warnings[0].Reason != "error parsing number" {
		t.Errorf("reason = %q", warnings[0].Reason)
	}
	if warnings[1].Reason != "too few fields" {
		t.Errorf("reason = %q", warnings[1].Reason)
	}
}

func TestDecode_RecordOutsideSection(t *testing.T) {
	_, warnings, err := Decode(strings.NewReader("Salary|100.00|\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Reason != "record outside any section" {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestDecode_Empty(t *testing.T) {
	snap, warnings, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.Len() != 0 || len(warnings) != 0 {
		t.Errorf("got %d records, %d warnings; want none", snap.Len(), len(warnings))
	}
}

func TestDecode_RejectsInvalidRecords(t *testing.T) {
	input := `[INCOMES]
|100.00|
Job|-500.00|
Salary|1000.00|
[EXPENSES]
Rent|-10.00|-5.00|
  |50.00|0.00|
Food|200.00|20.00|
[SAVINGS]
Car|100.00|-1.00|
`
	snap, warnings, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(snap.Incomes) != 1 || snap.Incomes[0].Source() != "Salary" {
		t.Errorf("incomes = %d, want only Salary", len(snap.Incomes))
	}
	if len(snap.Expenses) != 1 || snap.Expenses[0].Category() != "Food" {
		t.Errorf("expenses = %d, want only Food", len(snap.Expenses))
	}
	if len(snap.Savings) != 0 {
		t.Errorf("savings = %d, want none", len(snap.Savings))
	}

	want := []struct {
		line   int
		reason string
	}{
		{2, "please enter a source"},
		{3, "amount cannot be negative"},
		{6, "limit cannot be negative"},
		{7, "please enter a category"},
		{10, "saved cannot be negative"},
	}
	if len(warnings) != len(want) {
		t.Fatalf("warnings = %v, want %d", warnings, len(want))
	}
	for i, w := range want {
		if warnings[i].Line != w.line || warnings[i].Reason != w.reason {
			t.Errorf("warning %d = line %d %q, want line %d %q", i, warnings[i].Line, warnings[i].Reason, w.line, w.reason)
		}
	}
}

func TestRoundTrip_ExtraDecimalsRoundedOnEntry(t *testing.T) {
	l := ledger.New()
	in, err := l.AddIncome("Job", "10.125", "")
	if err != nil {
		t.Fatal(err)
	}
	if !in.Amount().Equal(decimal.RequireFromString("10.13")) {
		t.Fatalf("amount = %s, want 10.13", in.Amount())
	}

	var buf bytes.Buffer
	if err := Encode(&buf, l.Snapshot()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, _, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Incomes) != 1 || !got.Incomes[0].Amount().Equal(in.Amount()) {
		t.Errorf("round trip: in=%s out=%v", in.Amount(), got.Incomes)
	}
}
