package emit

import (
	"testing"

	"github.com/nwidger/depgraph/graph"
)

func TestBufferedEmitterGroupsByExecutionID(t *testing.T) {
	b := NewBufferedEmitter()
	b.Emit(graph.Event{ExecutionID: "run-1"})
	b.Emit(graph.Event{ExecutionID: "run-1"})
	b.Emit(graph.Event{ExecutionID: "run-2"})

	if got := len(b.History("run-1")); got != 2 {
		t.Errorf("History(run-1) has %d entries, want 2", got)
	}
	if got := len(b.History("run-2")); got != 1 {
		t.Errorf("History(run-2) has %d entries, want 1", got)
	}
}

func TestBufferedEmitterClearRemovesOneExecution(t *testing.T) {
	b := NewBufferedEmitter()
	b.Emit(graph.Event{ExecutionID: "run-1"})
	b.Emit(graph.Event{ExecutionID: "run-2"})

	b.Clear("run-1")

	if got := len(b.History("run-1")); got != 0 {
		t.Errorf("History(run-1) after Clear has %d entries, want 0", got)
	}
	if got := len(b.History("run-2")); got != 1 {
		t.Errorf("History(run-2) after clearing run-1 has %d entries, want 1", got)
	}
}

func TestNullEmitterDiscardsEverything(t *testing.T) {
	n := NewNullEmitter()
	n.Emit(graph.Event{ExecutionID: "x"}) // must not panic
}
