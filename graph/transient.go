package graph

import "context"

// TransientNode re-runs its provider on every execution that reaches
// it; nothing about its result is remembered across Run calls.
type TransientNode struct {
	baseNode
	provider Provider
}

// NewTransient creates a Transient node. Call DependsOn and Provides
// before running it.
func NewTransient(name string) *TransientNode {
	return &TransientNode{baseNode: newBaseNode(name)}
}

// DependsOn replaces this node's edges. Each argument must be a Node, a
// string, or a *Symbol (the latter two become Parameter placeholders).
// Anything else panics with ErrInvalidEdgeType — invalid graph wiring is
// a construction-time programming error, not a runtime one.
func (n *TransientNode) DependsOn(edges ...any) *TransientNode {
	n.setEdges(n, normalizeEdges(edges))
	return n
}

// Provides sets the function invoked to compute this node's value.
func (n *TransientNode) Provides(fn Provider) *TransientNode {
	n.provider = fn
	return n
}

// Run executes this node as the sole root of a new execution. It is a
// thin façade over the package-level Run function.
func (n *TransientNode) Run(ctx context.Context, params any, rc *Context, opts ...Option) (any, error) {
	return Run(ctx, n, params, rc, opts...)
}

// Shutdown transitions this node to StatusShutdown, as long as no
// Context still holds it.
func (n *TransientNode) Shutdown(ctx context.Context) (bool, error) {
	return n.shutdown(ctx)
}

// Reset transitions this node back to StatusReady.
func (n *TransientNode) Reset(ctx context.Context) (bool, error) {
	return n.reset(ctx)
}

func (n *TransientNode) cacheKey() any { return n }

func (n *TransientNode) getValue(ctx context.Context, args []any) (any, error) {
	if n.gate.Get() == StatusShutdown {
		return nil, ErrShutdown
	}
	end := n.inflight.begin()
	defer end()
	return n.provider(ctx, args...)
}

// shutdown/reset for a Transient node have nothing to memoize or
// dispose: the only work is draining in-flight invocations before the
// gate advances.
func (n *TransientNode) shutdown(ctx context.Context) (bool, error) {
	return n.transition(ctx, StatusShutdown)
}

func (n *TransientNode) reset(ctx context.Context) (bool, error) {
	return n.transition(ctx, StatusReady)
}

func (n *TransientNode) transition(ctx context.Context, target Status) (bool, error) {
	if target == StatusShutdown {
		if n.gate.Get() == StatusShutdown {
			return false, nil
		}
		if n.contextMembershipSize() > 0 {
			return false, nil
		}
	}
	err := n.gate.Change(ctx, target, func(ctx context.Context) error {
		n.inflight.drain(ctx)
		return nil
	})
	return true, err
}
