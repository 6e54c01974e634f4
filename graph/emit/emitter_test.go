package emit

import (
	"context"
	"testing"

	"github.com/nwidger/depgraph/graph"
)

func TestAttachRecordsRunAndShutdownEvents(t *testing.T) {
	rc := graph.NewContext("test")
	b := NewBufferedEmitter()
	Attach(rc, b)

	n := graph.NewTransient("n").Provides(func(context.Context, ...any) (any, error) { return 1, nil })
	params := []graph.Param{{Key: graph.EXECUTION_ID, Value: "exec-1"}}
	if _, err := graph.Run(context.Background(), n, params, rc); err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	if err := rc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() err = %v", err)
	}

	history := b.History("exec-1")
	if len(history) != 1 {
		t.Fatalf("History(exec-1) has %d entries, want 1 run event", len(history))
	}
	if history[0].Dependency.Name() != "n" {
		t.Errorf("recorded event's node = %q, want n", history[0].Dependency.Name())
	}

	// Lifecycle events carry no execution id, so the shutdown event is
	// recorded under the empty id.
	shutdown := b.History("")
	if len(shutdown) != 1 {
		t.Fatalf("History(\"\") has %d entries, want 1 shutdown event", len(shutdown))
	}
	if shutdown[0].Dependency.Name() != "n" {
		t.Errorf("recorded shutdown event's node = %q, want n", shutdown[0].Dependency.Name())
	}
}
