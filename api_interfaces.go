package macrostate

import "context"

// CoreAPI exposes basic state metadata.
type CoreAPI interface {
	Driver() Driver
	Epoch() string
	Location(key string) string
}

// ReadAPI exposes read-oriented state operations.
type ReadAPI interface {
	Read(key string) (string, error)
	ReadCtx(ctx context.Context, key string) (string, error)
	Has(key string) bool
	HasCtx(ctx context.Context, key string) bool
	ReadList(key string) []string
	ReadListCtx(ctx context.Context, key string) []string
}

// WriteAPI exposes write and invalidation operations.
type WriteAPI interface {
	Write(key, value string) error
	WriteCtx(ctx context.Context, key, value string) error
	Init(key, defaultValue string) (string, error)
	InitCtx(ctx context.Context, key, defaultValue string) (string, error)
	Append(key, fragment string) error
	AppendCtx(ctx context.Context, key, fragment string) error
	Clear(key string)
	ClearCtx(ctx context.Context, key string)
	Flush() error
	FlushCtx(ctx context.Context) error
}

// StateAPI is the composed application-facing interface for State.
type StateAPI interface {
	CoreAPI
	ReadAPI
	WriteAPI
}

var _ StateAPI = (*State)(nil)
