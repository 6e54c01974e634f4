package emit

import (
	"sync"

	"github.com/nwidger/depgraph/graph"
)

// BufferedEmitter records every event in memory, indexed by execution
// id, for tests and interactive inspection.
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]graph.Event
}

// NewBufferedEmitter creates an empty BufferedEmitter.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{events: make(map[string][]graph.Event)}
}

// Emit implements Emitter.
func (b *BufferedEmitter) Emit(event graph.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[event.ExecutionID] = append(b.events[event.ExecutionID], event)
}

// History returns a copy of the events recorded for executionID, in
// emission order.
func (b *BufferedEmitter) History(executionID string) []graph.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	events := b.events[executionID]
	out := make([]graph.Event, len(events))
	copy(out, events)
	return out
}

// Clear removes recorded events for executionID, or every execution if
// executionID is empty.
func (b *BufferedEmitter) Clear(executionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if executionID == "" {
		b.events = make(map[string][]graph.Event)
		return
	}
	delete(b.events, executionID)
}
