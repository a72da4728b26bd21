package macrostate

import (
	"context"
	"fmt"
)

// NewStore returns a concrete store for the requested driver.
//
// Example: select driver explicitly
//
//	ctx := context.Background()
//	store := macrostate.NewStore(ctx, macrostate.StoreConfig{
//		Driver: macrostate.DriverFile,
//		Dir:    "target/state",
//	})
//	fmt.Println(store.Driver()) // file
func NewStore(_ context.Context, cfg StoreConfig) Store {
	cfg = cfg.withDefaults()
	switch cfg.Driver {
	case DriverFile:
		return newFileStore(cfg.Dir)
	case DriverMemory:
		return newMemoryStore()
	case DriverNull:
		return newNullStore()
	default:
		return &errorStore{
			driver: cfg.Driver,
			err:    fmt.Errorf("macrostate: unknown driver %q", cfg.Driver),
		}
	}
}

// NewStoreWith builds a store using a driver and a set of functional options.
//
// Example: file store (options)
//
//	ctx := context.Background()
//	store := macrostate.NewStoreWith(ctx, macrostate.DriverFile,
//		macrostate.WithDir("target/state"),
//	)
//	fmt.Println(store.Driver()) // file
func NewStoreWith(ctx context.Context, driver Driver, opts ...StoreOption) Store {
	cfg := StoreConfig{Driver: driver}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewStore(ctx, cfg)
}

// NewFileStore is a convenience for the filesystem-backed store. An empty
// dir falls back to MACRO_STATE_DIR, then a temp directory.
//
// Example: file helper
//
//	ctx := context.Background()
//	store := macrostate.NewFileStore(ctx, "/tmp/my-state")
//	fmt.Println(store.Driver()) // file
func NewFileStore(ctx context.Context, dir string, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverFile, append([]StoreOption{WithDir(dir)}, opts...)...)
}

// NewMemoryStore is a convenience for an in-process store, mainly useful in
// tests and tooling; it loses the cross-invocation durability of the file
// driver.
//
// Example: memory helper
//
//	ctx := context.Background()
//	store := macrostate.NewMemoryStore(ctx)
//	fmt.Println(store.Driver()) // memory
func NewMemoryStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverMemory, opts...)
}

// NewNullStore is a convenience for a store that discards every write and
// reports every key missing.
func NewNullStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverNull, opts...)
}
