package statecore

import "context"

// Store is the shared state storage contract.
//
// Names passed to a Store are fully resolved storage names (key plus build
// epoch); a Store never interprets them beyond using them as addresses.
// Get reports a missing entry as ok=false with a nil error; Delete of a
// missing entry is a no-op.
type Store interface {
	Driver() Driver
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, value []byte) error
	Append(ctx context.Context, name string, value []byte) error
	Delete(ctx context.Context, name string) error
	Flush(ctx context.Context) error
}
