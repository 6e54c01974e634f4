package history

import (
	"context"
	"testing"
	"time"

	"github.com/nwidger/depgraph/graph"
)

func TestMemStoreSaveAndLoadRoundTrips(t *testing.T) {
	m := NewMemStore()
	n := graph.NewTransient("n")
	start := time.Now()
	end := start.Add(time.Millisecond)

	err := m.SaveExecution(context.Background(), "exec-1", []graph.Timing{
		{Node: n, TimeStart: start, TimeEnd: end},
	})
	if err != nil {
		t.Fatalf("SaveExecution() err = %v", err)
	}

	records := m.Load("exec-1")
	if len(records) != 1 {
		t.Fatalf("Load() returned %d records, want 1", len(records))
	}
	if records[0].Node != "n" {
		t.Errorf("records[0].Node = %q, want n", records[0].Node)
	}
}

func TestMemStoreLoadUnknownExecutionReturnsEmpty(t *testing.T) {
	m := NewMemStore()
	if got := m.Load("missing"); len(got) != 0 {
		t.Errorf("Load(missing) = %v, want empty", got)
	}
}

func TestMemStoreRecordsProviderError(t *testing.T) {
	m := NewMemStore()
	n := graph.NewTransient("n")
	err := m.SaveExecution(context.Background(), "exec-1", []graph.Timing{
		{Node: n, Err: errBoom},
	})
	if err != nil {
		t.Fatalf("SaveExecution() err = %v", err)
	}
	records := m.Load("exec-1")
	if records[0].Err != "boom" {
		t.Errorf("records[0].Err = %q, want boom", records[0].Err)
	}
}

var errBoom = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
