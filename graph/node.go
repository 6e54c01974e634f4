package graph

import (
	"context"
	"sync"
)

// Provider is the function a Transient or Resource node invokes to
// produce its value. args holds the resolved values of Edges(), in
// declaration order.
type Provider func(ctx context.Context, args ...any) (any, error)

// Disposer tears down a Resource node's memoized value.
type Disposer func(ctx context.Context, value any) error

// Node is an executable unit in the graph: a Transient node, a
// Resource node, or a Parameter placeholder. It is deliberately sealed
// — the only way to obtain one is NewTransient, NewResource, or the
// string/Symbol shorthand DependsOn accepts — so the engine can rely on
// every Node having been constructed with consistent internal state.
type Node interface {
	// Name returns the node's optional human-readable label.
	Name() string

	// Edges returns the node's declared dependencies, in the order
	// their resolved values are passed to the provider.
	Edges() []Node

	// GateStatus reports the node's current lifecycle status.
	GateStatus() Status

	cacheKey() any
	enrollable() bool
	inverseEdgesSnapshot() []Node
	addInverseEdge(n Node)
	removeInverseEdge(n Node)
	joinContext(c *Context)
	leaveContext(c *Context)
	contextMembershipSize() int
	getValue(ctx context.Context, args []any) (any, error)
	shutdown(ctx context.Context) (bool, error)
	reset(ctx context.Context) (bool, error)
}

// baseNode holds the state shared by Transient and Resource nodes:
// identity, edges, inverse edges, context membership, the lifecycle
// gate, and in-flight provider invocations.
type baseNode struct {
	name string

	edgesMu sync.RWMutex
	edges   []Node

	inverseMu sync.RWMutex
	inverse   map[Node]struct{}

	ctxMu   sync.RWMutex
	members map[*Context]struct{}

	gate     *StatusGate
	inflight *inflightTracker
}

func newBaseNode(name string) baseNode {
	return baseNode{
		name:    name,
		inverse: make(map[Node]struct{}),
		members: make(map[*Context]struct{}),
		gate:    NewStatusGate(StatusReady),
		inflight: newInflightTracker(),
	}
}

func (b *baseNode) Name() string { return b.name }

func (b *baseNode) Edges() []Node {
	b.edgesMu.RLock()
	defer b.edgesMu.RUnlock()
	out := make([]Node, len(b.edges))
	copy(out, b.edges)
	return out
}

func (b *baseNode) GateStatus() Status { return b.gate.Get() }

func (b *baseNode) enrollable() bool { return true }

func (b *baseNode) inverseEdgesSnapshot() []Node {
	b.inverseMu.RLock()
	defer b.inverseMu.RUnlock()
	out := make([]Node, 0, len(b.inverse))
	for n := range b.inverse {
		out = append(out, n)
	}
	return out
}

func (b *baseNode) addInverseEdge(n Node) {
	b.inverseMu.Lock()
	b.inverse[n] = struct{}{}
	b.inverseMu.Unlock()
}

func (b *baseNode) removeInverseEdge(n Node) {
	b.inverseMu.Lock()
	delete(b.inverse, n)
	b.inverseMu.Unlock()
}

func (b *baseNode) joinContext(c *Context) {
	b.ctxMu.Lock()
	b.members[c] = struct{}{}
	b.ctxMu.Unlock()
}

func (b *baseNode) leaveContext(c *Context) {
	b.ctxMu.Lock()
	delete(b.members, c)
	b.ctxMu.Unlock()
}

func (b *baseNode) contextMembershipSize() int {
	b.ctxMu.RLock()
	defer b.ctxMu.RUnlock()
	return len(b.members)
}

// setEdges replaces self's declared dependencies, keeping inverse edges
// symmetric: self is removed from the old edges' inverse sets and
// added to the new ones. Parameter edges are skipped — they track no
// lifecycle and therefore no successors.
func (b *baseNode) setEdges(self Node, newEdges []Node) {
	b.edgesMu.Lock()
	old := b.edges
	b.edges = newEdges
	b.edgesMu.Unlock()

	for _, e := range old {
		if e.enrollable() {
			e.removeInverseEdge(self)
		}
	}
	for _, e := range newEdges {
		if e.enrollable() {
			e.addInverseEdge(self)
		}
	}
}

// normalizeEdge converts a DependsOn argument into a Node: a Node is
// used directly, a string or *Symbol becomes a Parameter placeholder.
// Anything else is a graph-construction error, raised eagerly.
func normalizeEdge(x any) (Node, error) {
	switch v := x.(type) {
	case Node:
		return v, nil
	case string:
		return newParameterNode(v), nil
	case *Symbol:
		return newParameterNode(v), nil
	default:
		return nil, ErrInvalidEdgeType
	}
}

func normalizeEdges(xs []any) []Node {
	resolved := make([]Node, len(xs))
	for i, x := range xs {
		n, err := normalizeEdge(x)
		if err != nil {
			panic(err)
		}
		resolved[i] = n
	}
	return resolved
}
