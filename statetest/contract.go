package statetest

import (
	"context"
	"strings"
	"testing"

	"github.com/goforj/macrostate/statecore"
)

// Options configures shared store contract checks.
type Options struct {
	// CaseName is used to namespace names. Defaults to t.Name().
	CaseName string
	// NullSemantics enables relaxed expectations for the null store.
	NullSemantics bool
	// SkipFlush disables the flush assertion for drivers where it is
	// expensive or unavailable.
	SkipFlush bool
}

// Store is the minimal contract required by RunStoreContract.
type Store = statecore.Store

// RunStoreContract runs a backend-agnostic store contract suite.
func RunStoreContract(t *testing.T, store Store, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}

	ctx := context.Background()
	name := func(s string) string {
		return "macro_state_" + sanitize(caseName) + "_" + s
	}

	// Set/Get round-trip.
	if err := store.Set(ctx, name("alpha"), []byte("value")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, name("alpha"))
	if err != nil {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if opts.NullSemantics {
		if ok {
			t.Fatalf("expected miss for null semantics")
		}
	} else if !ok || string(body) != "value" {
		t.Fatalf("unexpected get result: ok=%v body=%q err=%v", ok, string(body), err)
	}

	// Set overwrites wholesale.
	if err := store.Set(ctx, name("alpha"), []byte("v2")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	body, ok, err = store.Get(ctx, name("alpha"))
	if err != nil {
		t.Fatalf("get after overwrite failed: %v", err)
	}
	if !opts.NullSemantics && (!ok || string(body) != "v2") {
		t.Fatalf("expected overwrite to win: ok=%v body=%q", ok, string(body))
	}

	// Missing name is a miss, not an error.
	if _, ok, err := store.Get(ctx, name("missing")); err != nil || ok {
		t.Fatalf("expected clean miss: ok=%v err=%v", ok, err)
	}

	// Append creates, then extends without truncating.
	if err := store.Append(ctx, name("log"), []byte("a\n")); err != nil {
		t.Fatalf("append create failed: %v", err)
	}
	if err := store.Append(ctx, name("log"), []byte("b\n")); err != nil {
		t.Fatalf("append extend failed: %v", err)
	}
	body, ok, err = store.Get(ctx, name("log"))
	if err != nil {
		t.Fatalf("get appended failed: %v", err)
	}
	if !opts.NullSemantics && (!ok || string(body) != "a\nb\n") {
		t.Fatalf("unexpected appended value: ok=%v body=%q", ok, string(body))
	}

	// Delete, including a missing name.
	if err := store.Delete(ctx, name("alpha")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, name("alpha")); err != nil || ok {
		t.Fatalf("expected name deleted; ok=%v err=%v", ok, err)
	}
	if err := store.Delete(ctx, name("never-written")); err != nil {
		t.Fatalf("delete of missing name failed: %v", err)
	}

	// Flush.
	if !opts.SkipFlush {
		if err := store.Set(ctx, name("flush"), []byte("x")); err != nil {
			t.Fatalf("set flush failed: %v", err)
		}
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}
		if _, ok, err := store.Get(ctx, name("flush")); err != nil || ok {
			t.Fatalf("expected flush to clear name; ok=%v err=%v", ok, err)
		}
	}
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
