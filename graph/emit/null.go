package emit

import "github.com/nwidger/depgraph/graph"

// NullEmitter discards every event. Useful as a default so production
// code never has a nil-Emitter special case.
type NullEmitter struct{}

// NewNullEmitter creates a NullEmitter.
func NewNullEmitter() *NullEmitter { return &NullEmitter{} }

// Emit implements Emitter by doing nothing.
func (NullEmitter) Emit(graph.Event) {}
