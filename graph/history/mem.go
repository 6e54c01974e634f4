package history

import (
	"context"
	"sync"

	"github.com/nwidger/depgraph/graph"
)

// MemStore is an in-memory graph.HistoryStore, useful for tests and
// short-lived processes that do not need execution history to survive
// a restart.
type MemStore struct {
	mu         sync.RWMutex
	executions map[string][]Record
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{executions: make(map[string][]Record)}
}

// SaveExecution implements graph.HistoryStore.
func (m *MemStore) SaveExecution(_ context.Context, executionID string, timings []graph.Timing) error {
	records := toRecords(timings)
	m.mu.Lock()
	m.executions[executionID] = records
	m.mu.Unlock()
	return nil
}

// Load returns the recorded Timing sequence for executionID, or an empty
// slice if no execution with that id has been saved.
func (m *MemStore) Load(executionID string) []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := m.executions[executionID]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

func toRecords(timings []graph.Timing) []Record {
	out := make([]Record, len(timings))
	for i, t := range timings {
		name := "<root>"
		if t.Node != nil {
			name = t.Node.Name()
		}
		errMsg := ""
		if t.Err != nil {
			errMsg = t.Err.Error()
		}
		out[i] = Record{Node: name, TimeStart: t.TimeStart, TimeEnd: t.TimeEnd, Err: errMsg}
	}
	return out
}
