package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/store"
)

// gateStore blocks each Save until release is closed, after signalling
// entered. It is safe for concurrent use.
type gateStore struct {
	mu      sync.Mutex
	saves   []ledger.Snapshot
	entered chan struct{}
	release chan struct{}
}

func newGateStore() *gateStore {
	return &gateStore{entered: make(chan struct{}, 4), release: make(chan struct{})}
}

func (g *gateStore) Load(context.Context) (store.LoadReport, error) {
	return store.LoadReport{Missing: true}, nil
}

func (g *gateStore) Save(_ context.Context, snap ledger.Snapshot) error {
	g.entered <- struct{}{}
	<-g.release
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves = append(g.saves, snap)
	return nil
}

func (g *gateStore) Location() string { return "gate" }
func (g *gateStore) Close() error     { return nil }

func (g *gateStore) snapshots() []ledger.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ledger.Snapshot(nil), g.saves...)
}

func TestFlushDropsStaleSave(t *testing.T) {
	a, st := newTestApp(t, fundedLedger(t, "1000"))

	stale := a.changed()
	if stale == nil {
		t.Fatal("expected a save command")
	}
	if _, err := a.ledger.AddIncome("Bonus", "200", ""); err != nil {
		t.Fatal(err)
	}
	a.changed()
	if !a.Unsaved() {
		t.Fatal("queued change not reported as unsaved")
	}

	if err := a.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	// The earlier command runs after the flush, as a goroutine left
	// behind by the program would.
	if msg, ok := stale().(SavedMsg); !ok || msg.Err != nil {
		t.Fatalf("stale save = %+v", msg)
	}

	if len(st.saves) != 1 {
		t.Fatalf("saves = %d, want only the flush", len(st.saves))
	}
	if n := len(st.saves[0].Incomes); n != 2 {
		t.Errorf("flushed incomes = %d, want 2", n)
	}
}

func TestFlushWaitsForRunningSave(t *testing.T) {
	st := newGateStore()
	l := fundedLedger(t, "1000")
	a := NewApp(Options{Ledger: l, Store: st})

	running := a.changed()
	done := make(chan struct{})
	go func() {
		running()
		close(done)
	}()
	<-st.entered

	if _, err := l.AddIncome("Bonus", "200", ""); err != nil {
		t.Fatal(err)
	}
	a.changed()

	flushed := make(chan error, 1)
	go func() { flushed <- a.Flush(context.Background()) }()

	close(st.release)
	<-done
	if err := <-flushed; err != nil {
		t.Fatalf("Flush: %v", err)
	}

	saves := st.snapshots()
	if len(saves) != 2 {
		t.Fatalf("saves = %d, want 2", len(saves))
	}
	if n := len(saves[1].Incomes); n != 2 {
		t.Errorf("last write has %d incomes, want the flushed 2", n)
	}
}

func TestFlushWithoutStore(t *testing.T) {
	a := NewApp(Options{Ledger: ledger.New()})
	if err := a.Flush(context.Background()); err != nil {
		t.Errorf("Flush without store = %v", err)
	}
}
