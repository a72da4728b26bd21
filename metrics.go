package macrostate

import (
	"context"
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/goforj/macrostate/statecore"
)

// MetricsObserver publishes per-operation counters and duration histograms
// to a VictoriaMetrics set, for builds that scrape their tooling.
type MetricsObserver struct {
	set *metrics.Set
}

// NewMetricsObserver creates an observer writing into set. A nil set gets
// a fresh one, retrievable via Set.
func NewMetricsObserver(set *metrics.Set) *MetricsObserver {
	if set == nil {
		set = metrics.NewSet()
	}
	return &MetricsObserver{set: set}
}

// Set returns the metrics set the observer writes into.
func (m *MetricsObserver) Set() *metrics.Set {
	return m.set
}

// OnStateOp implements Observer.
func (m *MetricsObserver) OnStateOp(_ context.Context, op, _ string, hit bool, err error, dur time.Duration, driver statecore.Driver) {
	m.set.GetOrCreateCounter(opMetric("macrostate_ops_total", op, driver)).Inc()
	if err != nil {
		m.set.GetOrCreateCounter(opMetric("macrostate_op_errors_total", op, driver)).Inc()
	}
	if hit {
		m.set.GetOrCreateCounter(opMetric("macrostate_op_hits_total", op, driver)).Inc()
	}
	m.set.GetOrCreateHistogram(opMetric("macrostate_op_duration_seconds", op, driver)).Update(dur.Seconds())
}

func opMetric(name, op string, driver statecore.Driver) string {
	return fmt.Sprintf(`%s{op=%q,driver=%q}`, name, op, driver)
}
