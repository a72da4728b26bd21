package macrostate

import (
	"context"
	"time"

	"github.com/goforj/macrostate/statecore"
)

// Observer receives events for state operations.
// It is called from State helpers after each operation completes.
type Observer interface {
	OnStateOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver statecore.Driver)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver statecore.Driver)

// OnStateOp implements Observer.
func (f ObserverFunc) OnStateOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration, driver statecore.Driver) {
	if f == nil {
		return
	}
	f(ctx, op, key, hit, err, dur, driver)
}
