package statefake

import (
	"context"
	"sync"
	"testing"

	"github.com/goforj/macrostate"
)

// Op identifies a store-level operation for assertions.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpAppend Op = "append"
	OpDelete Op = "delete"
	OpFlush  Op = "flush"
)

// Fake exposes a deterministic in-memory state plus assertion helpers for
// tests. It wraps the memory store so no filesystem access is needed, and
// pins its own epoch so runs are reproducible.
type Fake struct {
	state  *macrostate.State
	counts map[Op]map[string]int
	mu     sync.Mutex
}

// New creates a Fake using an in-memory store under a fixed epoch.
func New() *Fake {
	store := &countingStore{inner: macrostate.NewMemoryStore(context.Background())}
	f := &Fake{
		state:  macrostate.NewStateWithEpoch(store, "fake"),
		counts: make(map[Op]map[string]int),
	}
	store.onCount = f.record
	return f
}

// State returns the state facade to inject into code under test.
func (f *Fake) State() *macrostate.State { return f.state }

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies name was touched by op the expected number of times.
// Names are the resolved storage names; use State().Location to build them.
func (f *Fake) AssertCalled(t *testing.T, op Op, name string, times int) {
	t.Helper()
	if got := f.Count(op, name); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, name, times, got)
	}
}

// AssertNotCalled ensures name was never touched by op.
func (f *Fake) AssertNotCalled(t *testing.T, op Op, name string) {
	t.Helper()
	if got := f.Count(op, name); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, name, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t *testing.T, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+name.
func (f *Fake) Count(op Op, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][name]
}

// Total returns total calls for an op across names.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) record(op Op, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][name]++
}

// countingStore wraps a Store to record calls.
type countingStore struct {
	inner   macrostate.Store
	onCount func(Op, string)
}

func (s *countingStore) Driver() macrostate.Driver { return s.inner.Driver() }

func (s *countingStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	s.bump(OpGet, name)
	return s.inner.Get(ctx, name)
}

func (s *countingStore) Set(ctx context.Context, name string, value []byte) error {
	s.bump(OpSet, name)
	return s.inner.Set(ctx, name, value)
}

func (s *countingStore) Append(ctx context.Context, name string, value []byte) error {
	s.bump(OpAppend, name)
	return s.inner.Append(ctx, name, value)
}

func (s *countingStore) Delete(ctx context.Context, name string) error {
	s.bump(OpDelete, name)
	return s.inner.Delete(ctx, name)
}

func (s *countingStore) Flush(ctx context.Context) error {
	s.bump(OpFlush, "")
	return s.inner.Flush(ctx)
}

func (s *countingStore) bump(op Op, name string) {
	if s.onCount != nil {
		s.onCount(op, name)
	}
}
