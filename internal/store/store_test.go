package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) ledger.Snapshot {
	t.Helper()
	l := ledger.New()
	_, err := l.AddIncome("Salary", "3000", "main job")
	require.NoError(t, err)
	_, err = l.AddIncome("Freelance", "450.75", "")
	require.NoError(t, err)
	rent, err := l.AddExpense("Rent", "1500", "")
	require.NoError(t, err)
	rent.AddSpent(decimal.RequireFromString("1500"))
	food, err := l.AddExpense("Food", "400", "weekly | groceries")
	require.NoError(t, err)
	food.AddSpent(decimal.RequireFromString("87.12"))
	trip, err := l.AddSavings("Trip", "800", "")
	require.NoError(t, err)
	trip.AddSaved(decimal.RequireFromString("200"))
	return l.Snapshot()
}

func assertSameSnapshot(t *testing.T, want, got ledger.Snapshot) {
	t.Helper()
	require.Len(t, got.Incomes, len(want.Incomes))
	require.Len(t, got.Expenses, len(want.Expenses))
	require.Len(t, got.Savings, len(want.Savings))

	for i := range want.Incomes {
		assert.Equal(t, want.Incomes[i].Source(), got.Incomes[i].Source())
		assert.True(t, want.Incomes[i].Amount().Equal(got.Incomes[i].Amount()))
		assert.Equal(t, want.Incomes[i].Notes(), got.Incomes[i].Notes())
	}
	for i := range want.Expenses {
		assert.Equal(t, want.Expenses[i].Category(), got.Expenses[i].Category())
		assert.True(t, want.Expenses[i].Limit().Equal(got.Expenses[i].Limit()))
		assert.True(t, want.Expenses[i].Spent().Equal(got.Expenses[i].Spent()))
		assert.True(t, want.Expenses[i].Remaining().Equal(got.Expenses[i].Remaining()))
		assert.Equal(t, want.Expenses[i].Notes(), got.Expenses[i].Notes())
	}
	for i := range want.Savings {
		assert.Equal(t, want.Savings[i].Category(), got.Savings[i].Category())
		assert.True(t, want.Savings[i].Goal().Equal(got.Savings[i].Goal()))
		assert.True(t, want.Savings[i].Saved().Equal(got.Savings[i].Saved()))
	}
}

func TestTextStore_MissingFile(t *testing.T) {
	s := NewTextStore(filepath.Join(t.TempDir(), "walletpal_data.txt"))

	report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Missing)
	assert.Zero(t, report.Snapshot.Len())
}

func TestTextStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "walletpal_data.txt")
	s := NewTextStore(path)
	want := sampleSnapshot(t)

	require.NoError(t, s.Save(context.Background(), want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Missing)
	assert.Empty(t, report.Warnings)
	assertSameSnapshot(t, want, report.Snapshot)
}

func TestTextStore_ReportsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletpal_data.txt")
	data := "WalletPal Data File\n[INCOMES]\nSalary|abc|\nBonus|100.00|\n[EXPENSES]\n[SAVINGS]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	report, err := NewTextStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 3, report.Warnings[0].Line)
	require.Len(t, report.Snapshot.Incomes, 1)
	assert.Equal(t, "Bonus", report.Snapshot.Incomes[0].Source())
}

func TestTextStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewTextStore(filepath.Join(t.TempDir(), "x.txt"))
	assert.ErrorIs(t, s.Save(ctx, ledger.Snapshot{}), context.Canceled)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletpal.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Missing)

	want := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), want))

	report, err = s.Load(context.Background())
	require.NoError(t, err)
	assertSameSnapshot(t, want, report.Snapshot)
	assert.Equal(t, want.Expenses[1].ID(), report.Snapshot.Expenses[1].ID())

	// Saving a smaller snapshot replaces the previous rows.
	want.Expenses = want.Expenses[:1]
	require.NoError(t, s.Save(context.Background(), want))
	report, err = s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Snapshot.Expenses, 1)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletpal.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	want := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), want))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	report, err := s.Load(context.Background())
	require.NoError(t, err)
	assertSameSnapshot(t, want, report.Snapshot)
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendText, filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.IsType(t, &TextStore{}, s)

	s, err = Open(BackendSQLite, filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("postgres", "x")
	assert.Error(t, err)
}
