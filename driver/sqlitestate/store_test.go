package sqlitestate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goforj/macrostate"
	"github.com/goforj/macrostate/statetest"
)

func newTestStore(t *testing.T) *store {
	t.Helper()
	s, err := New(Config{DSN: "file:" + filepath.Join(t.TempDir(), "state.db")})
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	st := s.(*store)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStoreContract(t *testing.T) {
	store := newTestStore(t)
	statetest.RunStoreContract(t, store, statetest.Options{CaseName: t.Name()})
}

func TestSQLiteStoreBackingState(t *testing.T) {
	store := newTestStore(t)
	s := macrostate.NewStateWithEpoch(store, "9")

	if err := s.Write("k", "value"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.Read("k")
	if err != nil || got != "value" {
		t.Fatalf("read = %q err=%v", got, err)
	}

	for _, item := range []string{"first", "hey\nwhat", "third"} {
		if err := s.Append("list", item); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	items := s.ReadList("list")
	if len(items) != 3 || items[1] != "hey\nwhat" {
		t.Fatalf("read list = %q", items)
	}

	s.Clear("k")
	if s.Has("k") {
		t.Fatalf("expected Has false after clear")
	}
}

func TestSQLiteStoreRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for missing dsn")
	}
	if _, err := New(Config{DSN: "file:x.db", Table: "bad name"}); err == nil {
		t.Fatalf("expected error for invalid table name")
	}
}

func TestSQLiteStoreIsolatesEpochs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run1 := macrostate.NewStateWithEpoch(store, "1111")
	run2 := macrostate.NewStateWithEpoch(store, "2222")
	if err := run1.WriteCtx(ctx, "k", "one"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if run2.Has("k") {
		t.Fatalf("expected epochs isolated")
	}
}
