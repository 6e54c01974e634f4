package graph

import (
	"context"
	"sync"
)

// ResourceNode runs its provider once and memoizes the result for every
// later caller, until Shutdown or Reset clears it. This is the node
// kind intended for long-lived resources — database handles, API
// clients, pools — that are expensive to build and safe to share.
type ResourceNode struct {
	baseNode
	provider Provider
	dispose  Disposer

	memoMu sync.Mutex
	memo   *future
}

// NewResource creates a Resource node. Call DependsOn, Provides, and
// optionally Disposes before running it.
func NewResource(name string) *ResourceNode {
	return &ResourceNode{baseNode: newBaseNode(name)}
}

// DependsOn replaces this node's edges. See TransientNode.DependsOn.
func (n *ResourceNode) DependsOn(edges ...any) *ResourceNode {
	n.setEdges(n, normalizeEdges(edges))
	return n
}

// Provides sets the function invoked — at most once per memoization
// cycle — to build this node's value.
func (n *ResourceNode) Provides(fn Provider) *ResourceNode {
	n.provider = fn
	return n
}

// Disposes registers the teardown function run on Shutdown/Reset, once
// the resource has actually been built and every in-flight invocation
// has drained.
func (n *ResourceNode) Disposes(fn Disposer) *ResourceNode {
	n.dispose = fn
	return n
}

// Run executes this node as the sole root of a new execution.
func (n *ResourceNode) Run(ctx context.Context, params any, rc *Context, opts ...Option) (any, error) {
	return Run(ctx, n, params, rc, opts...)
}

// Shutdown transitions this node to StatusShutdown, disposing its
// memoized value if one exists, as long as no Context still holds it.
func (n *ResourceNode) Shutdown(ctx context.Context) (bool, error) {
	return n.shutdown(ctx)
}

// Reset clears the memoized value (disposing it first) and returns the
// node to StatusReady so the next invocation rebuilds it.
func (n *ResourceNode) Reset(ctx context.Context) (bool, error) {
	return n.reset(ctx)
}

func (n *ResourceNode) cacheKey() any { return n }

// getValue returns the memoized value, building it on first call. A
// build in progress is shared: concurrent callers await the same
// future rather than invoking the provider twice.
func (n *ResourceNode) getValue(ctx context.Context, args []any) (any, error) {
	n.memoMu.Lock()
	if n.memo != nil {
		f := n.memo
		n.memoMu.Unlock()
		return f.await(ctx)
	}
	f := newFuture()
	n.memo = f
	n.memoMu.Unlock()

	if n.gate.Get() == StatusShutdown {
		n.clearMemo()
		f.settle(nil, ErrShutdown)
		return nil, ErrShutdown
	}

	end := n.inflight.begin()
	val, err := n.provider(ctx, args...)
	end()

	if err != nil {
		// A failed build must not be remembered — the next call
		// retries from scratch.
		n.clearMemo()
	}
	f.settle(val, err)
	return val, err
}

func (n *ResourceNode) clearMemo() {
	n.memoMu.Lock()
	n.memo = nil
	n.memoMu.Unlock()
}

func (n *ResourceNode) hasMemo() bool {
	n.memoMu.Lock()
	defer n.memoMu.Unlock()
	return n.memo != nil
}

func (n *ResourceNode) shutdown(ctx context.Context) (bool, error) {
	return n.transition(ctx, StatusShutdown)
}

func (n *ResourceNode) reset(ctx context.Context) (bool, error) {
	return n.transition(ctx, StatusReady)
}

func (n *ResourceNode) transition(ctx context.Context, target Status) (bool, error) {
	if target == StatusShutdown {
		if n.gate.Get() == StatusShutdown {
			return false, nil
		}
		if n.contextMembershipSize() > 0 {
			return false, nil
		}
	}

	if !n.hasMemo() {
		// Never started: the gate still advances on an explicit
		// call, but there is nothing to tear down, so this is
		// reported as "did not transition".
		n.gate.forceSet(target)
		return false, nil
	}

	err := n.gate.Change(ctx, target, func(ctx context.Context) error {
		n.inflight.drain(ctx)

		n.memoMu.Lock()
		val := n.memo
		n.memoMu.Unlock()

		var disposeErr error
		if n.dispose != nil && val != nil {
			v, providerErr := val.await(ctx)
			if providerErr == nil {
				disposeErr = safeDispose(ctx, n.dispose, v)
			}
		}

		n.clearMemo()
		return disposeErr
	})
	return true, err
}

// safeDispose isolates a dispose hook's panics from the caller: a
// misbehaving hook must not crash the lifecycle coordinator walking a
// whole Context — it surfaces as an ordinary error instead.
func safeDispose(ctx context.Context, fn Disposer, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LifecycleError{Message: "dispose panicked", Cause: asError(r)}
		}
	}()
	return fn(ctx, value)
}
