// Package store persists ledger snapshots to a text file or a local
// SQLite database.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
)

// Backend names accepted by Open.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Store loads and saves whole ledger snapshots.
type Store interface {
	Load(ctx context.Context) (LoadReport, error)
	Save(ctx context.Context, snap ledger.Snapshot) error
	Location() string
	Close() error
}

// LoadReport is the result of a load. Warnings list records that were
// skipped; they never make the load fail.
type LoadReport struct {
	Snapshot ledger.Snapshot
	Warnings []ledger.Warning
	Missing  bool // no data existed yet
}

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendText:
		return NewTextStore(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}

func logWarnings(log *slog.Logger, warnings []ledger.Warning) {
	for _, w := range warnings {
		log.Warn("skipped record",
			logging.FieldLine, w.Line,
			logging.FieldReason, w.Reason,
			"text", w.Text,
		)
	}
}
