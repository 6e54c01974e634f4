// Package emit provides pluggable observability backends for graph.Context
// lifecycle and execution events.
package emit

import "github.com/nwidger/depgraph/graph"

// Emitter receives graph.Event values and forwards them to a backend —
// logging, tracing, in-memory buffering, or any combination.
//
// Implementations must not panic: a Context recovers panics from event
// handlers itself, but a well-behaved Emitter should never rely on that
// safety net.
type Emitter interface {
	Emit(event graph.Event)
}

// Handler adapts an Emitter into a graph.Handler bound to one EventName.
func Handler(e Emitter) graph.Handler {
	return func(evt graph.Event) { e.Emit(evt) }
}

// allEventNames lists every event a Context can raise, in the order
// they are most likely to occur during a typical run/shutdown cycle.
var allEventNames = []graph.EventName{
	graph.EventSuccessRun,
	graph.EventFailRun,
	graph.EventSuccessShutdown,
	graph.EventFailShutdown,
	graph.EventSuccessReset,
	graph.EventFailReset,
}

// Attach registers e, wrapped as a graph.Handler, for every event name a
// Context can raise. Use this instead of calling Context.On six times.
func Attach(c *graph.Context, e Emitter) {
	h := Handler(e)
	for _, name := range allEventNames {
		c.On(name, h)
	}
}
