package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/walletpal/internal/datafile"
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/logging"
)

// TextStore keeps the ledger in a single pipe-delimited text file.
type TextStore struct {
	path string
	log  *slog.Logger
}

// NewTextStore returns a store for the text file at path. The file need
// not exist yet.
func NewTextStore(path string) *TextStore {
	return &TextStore{
		path: path,
		log:  logging.For(logging.ComponentDatafile).With(logging.FieldPath, path),
	}
}

// Location returns the file path.
func (s *TextStore) Location() string { return s.path }

// Close is a no-op.
func (s *TextStore) Close() error { return nil }

// Load reads the file. A missing file yields an empty snapshot.
func (s *TextStore) Load(ctx context.Context) (LoadReport, error) {
	if err := ctx.Err(); err != nil {
		return LoadReport{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info("no data file found, starting fresh")
			return LoadReport{Missing: true}, nil
		}
		return LoadReport{}, fmt.Errorf("opening data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	snap, warnings, err := datafile.Decode(f)
	if err != nil {
		return LoadReport{}, err
	}
	logWarnings(s.log, warnings)
	s.log.Info("loaded data file",
		logging.FieldCount, snap.Len(),
		"warnings", len(warnings),
	)

	return LoadReport{Snapshot: snap, Warnings: warnings}, nil
}

// Save rewrites the whole file through a temp file and rename.
func (s *TextStore) Save(ctx context.Context, snap ledger.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".walletpal-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := datafile.Encode(tmp, snap); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("setting data file mode: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}

	s.log.Debug("saved data file", logging.FieldCount, snap.Len())
	return nil
}
