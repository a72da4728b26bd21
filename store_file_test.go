package macrostate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTempFileStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	return newFileStore(dir), dir
}

func TestFileStoreSetGetDelete(t *testing.T) {
	store, _ := newTempFileStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "macro_state_alpha_1", []byte("hello")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := store.Get(ctx, "macro_state_alpha_1")
	if err != nil || !ok || string(got) != "hello" {
		t.Fatalf("unexpected get: ok=%v err=%v val=%s", ok, err, string(got))
	}

	if err := store.Delete(ctx, "macro_state_alpha_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, ok, err = store.Get(ctx, "macro_state_alpha_1")
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if ok {
		t.Fatalf("expected missing after delete")
	}

	if err := store.Delete(ctx, "macro_state_alpha_1"); err != nil {
		t.Fatalf("expected delete of missing entry to be a no-op: %v", err)
	}
}

func TestFileStoreSetTruncates(t *testing.T) {
	store, _ := newTempFileStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "macro_state_k_1", []byte("a long first value")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "macro_state_k_1", []byte("v2")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := store.Get(ctx, "macro_state_k_1")
	if err != nil || !ok || string(got) != "v2" {
		t.Fatalf("expected truncating overwrite, got ok=%v err=%v val=%q", ok, err, string(got))
	}
}

func TestFileStoreAppendCreatesAndExtends(t *testing.T) {
	store, dir := newTempFileStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "macro_state_log_1", []byte("a\n")); err != nil {
		t.Fatalf("append create failed: %v", err)
	}
	if err := store.Append(ctx, "macro_state_log_1", []byte("b\n")); err != nil {
		t.Fatalf("append extend failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "macro_state_log_1"))
	if err != nil {
		t.Fatalf("read file failed: %v", err)
	}
	if string(data) != "a\nb\n" {
		t.Fatalf("file contents = %q, want %q", data, "a\nb\n")
	}
}

func TestFileStoreMissingDirErrors(t *testing.T) {
	store := newFileStore(filepath.Join(t.TempDir(), "missing"))
	ctx := context.Background()

	if err := store.Set(ctx, "macro_state_k_1", []byte("v")); err == nil {
		t.Fatalf("expected set into missing dir to fail")
	}
	if err := store.Append(ctx, "macro_state_k_1", []byte("v")); err == nil {
		t.Fatalf("expected append into missing dir to fail")
	}
	if _, ok, err := store.Get(ctx, "macro_state_k_1"); err != nil || ok {
		t.Fatalf("expected clean miss from missing dir: ok=%v err=%v", ok, err)
	}
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("expected flush of missing dir to be a no-op: %v", err)
	}
}

func TestFileStoreFlushKeepsUnrelatedFiles(t *testing.T) {
	store, dir := newTempFileStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "macro_state_k_1", []byte("v")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatalf("seed unrelated file: %v", err)
	}
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "macro_state_k_1"); ok {
		t.Fatalf("expected state entry flushed")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatalf("expected unrelated file kept: %v", err)
	}
}
