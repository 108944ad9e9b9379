package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
	"github.com/theirongolddev/walletpal/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore keeps the ledger in a local SQLite database. Amounts are
// stored as decimal text and read back through the same validation as
// user input, so negative or malformed rows are skipped.
type SQLiteStore struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// OpenSQLite opens or creates the database at dbPath and migrates it.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: dbPath,
		log:  logging.For(logging.ComponentStore).With(logging.FieldPath, dbPath),
	}, nil
}

// Location returns the database path.
func (s *SQLiteStore) Location() string { return s.path }

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces every row with the contents of snap.
func (s *SQLiteStore) Save(ctx context.Context, snap ledger.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"incomes", "expenses", "savings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, in := range snap.Incomes {
		_, err := tx.ExecContext(ctx, `INSERT INTO incomes (id, position, source, amount, notes)
			VALUES (?, ?, ?, ?, ?)`,
			in.ID(), i, in.Source(), in.Amount().String(), in.Notes(),
		)
		if err != nil {
			return fmt.Errorf("saving income %q: %w", in.Source(), err)
		}
	}
	for i, e := range snap.Expenses {
		_, err := tx.ExecContext(ctx, `INSERT INTO expenses (id, position, category, limit_amount, spent, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID(), i, e.Category(), e.Limit().String(), e.Spent().String(), e.Notes(),
		)
		if err != nil {
			return fmt.Errorf("saving expense %q: %w", e.Category(), err)
		}
	}
	for i, sv := range snap.Savings {
		_, err := tx.ExecContext(ctx, `INSERT INTO savings (id, position, category, goal, saved, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			sv.ID(), i, sv.Category(), sv.Goal().String(), sv.Saved().String(), sv.Notes(),
		)
		if err != nil {
			return fmt.Errorf("saving savings goal %q: %w", sv.Category(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	s.log.Debug("saved ledger", logging.FieldCount, snap.Len())
	return nil
}

// Load reads every row in position order. Rows with unparseable amounts
// are skipped and reported.
func (s *SQLiteStore) Load(ctx context.Context) (LoadReport, error) {
	var report LoadReport

	if err := s.loadIncomes(ctx, &report); err != nil {
		return LoadReport{}, err
	}
	if err := s.loadExpenses(ctx, &report); err != nil {
		return LoadReport{}, err
	}
	if err := s.loadSavings(ctx, &report); err != nil {
		return LoadReport{}, err
	}

	report.Missing = report.Snapshot.Len() == 0 && len(report.Warnings) == 0
	logWarnings(s.log, report.Warnings)
	s.log.Info("loaded ledger", logging.FieldCount, report.Snapshot.Len())
	return report, nil
}

func (s *SQLiteStore) loadIncomes(ctx context.Context, report *LoadReport) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, source, amount, notes FROM incomes ORDER BY position")
	if err != nil {
		return fmt.Errorf("querying incomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, source, amount, notes string
		if err := rows.Scan(&id, &source, &amount, &notes); err != nil {
			return fmt.Errorf("scanning income: %w", err)
		}
		amt, err := ledger.ParseAmount("amount", amount)
		if err != nil {
			report.Warnings = append(report.Warnings, badRow("incomes", id))
			continue
		}
		report.Snapshot.Incomes = append(report.Snapshot.Incomes, model.RestoreIncome(id, source, amt, notes))
	}
	return rows.Err()
}

func (s *SQLiteStore) loadExpenses(ctx context.Context, report *LoadReport) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, category, limit_amount, spent, notes FROM expenses ORDER BY position")
	if err != nil {
		return fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, category, limit, spent, notes string
		if err := rows.Scan(&id, &category, &limit, &spent, &notes); err != nil {
			return fmt.Errorf("scanning expense: %w", err)
		}
		lim, err1 := ledger.ParseAmount("limit", limit)
		sp, err2 := ledger.ParseAmount("spent", spent)
		if err1 != nil || err2 != nil {
			report.Warnings = append(report.Warnings, badRow("expenses", id))
			continue
		}
		report.Snapshot.Expenses = append(report.Snapshot.Expenses, model.RestoreExpense(id, category, lim, sp, notes))
	}
	return rows.Err()
}

func (s *SQLiteStore) loadSavings(ctx context.Context, report *LoadReport) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, category, goal, saved, notes FROM savings ORDER BY position")
	if err != nil {
		return fmt.Errorf("querying savings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, category, goal, saved, notes string
		if err := rows.Scan(&id, &category, &goal, &saved, &notes); err != nil {
			return fmt.Errorf("scanning savings goal: %w", err)
		}
		g, err1 := ledger.ParseAmount("goal", goal)
		sv, err2 := ledger.ParseAmount("saved", saved)
		if err1 != nil || err2 != nil {
			report.Warnings = append(report.Warnings, badRow("savings", id))
			continue
		}
		report.Snapshot.Savings = append(report.Snapshot.Savings, model.RestoreSavings(id, category, g, sv, notes))
	}
	return rows.Err()
}

func badRow(table, id string) ledger.Warning {
	return ledger.Warning{Text: table + "/" + id, Reason: "error parsing number"}
}
