package tui

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// saver writes snapshots one at a time and never lets an older snapshot
// land after a newer one. Each snapshot takes a sequence number when it
// is captured; a write whose number is not above the last written one
// is dropped without touching the store.
type saver struct {
	store store.Store
	seq   atomic.Uint64

	mu      sync.Mutex
	written uint64 // guarded by mu
}

func newSaver(st store.Store) *saver {
	return &saver{store: st}
}

// cmd captures snap now and writes it in the background.
func (s *saver) cmd(snap ledger.Snapshot) tea.Cmd {
	seq := s.seq.Add(1)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return SavedMsg{Err: s.write(ctx, seq, snap)}
	}
}

// flush writes snap synchronously, after any write already in progress.
func (s *saver) flush(ctx context.Context, snap ledger.Snapshot) error {
	return s.write(ctx, s.seq.Add(1), snap)
}

func (s *saver) write(ctx context.Context, seq uint64, snap ledger.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.written {
		return nil
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return err
	}
	s.written = seq
	return nil
}
