package macrostate

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestMetricsObserverPublishesCounters(t *testing.T) {
	obs := NewMetricsObserver(nil)
	s := NewStateWithEpoch(NewMemoryStore(context.Background()), "1").WithObserver(obs)

	_ = s.Write("k", "v")
	_ = s.Write("k", "v2")
	_, _ = s.Read("k")
	_, _ = s.Read("missing")

	var buf bytes.Buffer
	obs.Set().WritePrometheus(&buf)
	out := buf.String()

	for _, want := range []string{
		`macrostate_ops_total{op="write",driver="memory"} 2`,
		`macrostate_ops_total{op="read",driver="memory"} 2`,
		`macrostate_op_hits_total{op="read",driver="memory"} 1`,
		`macrostate_op_errors_total{op="read",driver="memory"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected metrics output to contain %q, got:\n%s", want, out)
		}
	}
}
