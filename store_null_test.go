package macrostate

import (
	"context"
	"testing"
)

func TestNullStoreDiscardsEverything(t *testing.T) {
	store := newNullStore()
	ctx := context.Background()

	if store.Driver() != DriverNull {
		t.Fatalf("driver = %q", store.Driver())
	}
	if err := store.Set(ctx, "macro_state_k_1", []byte("v")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Append(ctx, "macro_state_k_1", []byte("v\n")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, "macro_state_k_1"); err != nil || ok {
		t.Fatalf("expected permanent miss: ok=%v err=%v", ok, err)
	}
	if err := store.Delete(ctx, "macro_state_k_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}
