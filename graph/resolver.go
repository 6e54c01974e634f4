package graph

import (
	"context"

	"github.com/google/uuid"
)

// META resolves, via the Cache, to the *timingsSink recording every
// node visited during the current execution.
var META = NewSymbol("META")

// EXECUTION_ID resolves, via the Cache, to the current execution's id.
// A provider may depend on it like any other Parameter to receive the
// id without the caller threading it through explicitly.
var EXECUTION_ID = NewSymbol("EXECUTION_ID") //nolint:revive,stylecheck

// resolver walks a DAG for one execution: one cache, one optional
// Context, one execution id, one timings sink.
type resolver struct {
	cache      *cache
	ctxObj     *Context
	execID     string
	timings    *timingsSink
	overridden map[any]bool
	cfg        *runConfig
}

// visit returns the future for n, creating the work to resolve it if
// this is the first time n has been requested in this execution. The
// cache entry is installed before any recursive work begins, so
// siblings that request the same node concurrently receive the same
// future (at-most-once per run).
func (r *resolver) visit(ctx context.Context, n Node) *future {
	key := n.cacheKey()

	if r.ctxObj != nil && n.enrollable() && !r.overridden[key] {
		r.ctxObj.add(n)
	}

	f, existed := r.cache.loadOrCreate(key)
	if existed {
		if r.cfg != nil && r.cfg.metrics != nil {
			r.cfg.metrics.IncCacheHit()
		}
		return f
	}
	if r.cfg != nil && r.cfg.metrics != nil {
		r.cfg.metrics.IncCacheMiss()
	}

	go r.resolveNode(ctx, n, f)
	return f
}

func (r *resolver) resolveNode(ctx context.Context, n Node, f *future) {
	defer func() {
		if rec := recover(); rec != nil {
			f.settle(nil, asError(rec))
		}
	}()

	edges := n.Edges()
	edgeFutures := make([]*future, len(edges))
	for i, e := range edges {
		edgeFutures[i] = r.visit(ctx, e)
	}

	args := make([]any, len(edgeFutures))
	for i, ef := range edgeFutures {
		v, err := ef.await(ctx)
		if err != nil {
			// A dependency failed: this node's own provider never
			// runs, and no Timing/event is recorded for it — only
			// the dependency that actually failed produced one.
			f.settle(nil, err)
			return
		}
		args[i] = v
	}

	start := nowFunc()
	val, err := n.getValue(ctx, args)
	end := nowFunc()

	r.timings.append(Timing{Node: n, Context: r.ctxObj, TimeStart: start, TimeEnd: end, Err: err})
	if r.cfg != nil && r.cfg.metrics != nil {
		r.cfg.metrics.ObserveProvider(end.Sub(start), err == nil)
	}
	if r.ctxObj != nil {
		name := EventSuccessRun
		if err != nil {
			name = EventFailRun
		}
		r.ctxObj.emit(name, Event{
			Dependency: n, TimeStart: start, TimeEnd: end,
			ExecutionID: r.execID, Err: err,
		})
	}

	f.settle(val, err)
}

// toNode converts a Run/RunMany root argument (Node, string, or
// *Symbol) into a Node.
func toNode(root any) (Node, error) {
	switch v := root.(type) {
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

// seedExecution builds the per-run Cache: it normalizes params,
// assigns (or reuses a caller-supplied) execution id, and seeds META
// and EXECUTION_ID so a provider may depend on either like any other
// Parameter.
func seedExecution(raw any) (*cache, map[any]bool, *timingsSink, string, error) {
	kv, err := normalizeParams(raw)
	if err != nil {
		return nil, nil, nil, "", err
	}

	execID := ""
	for _, p := range kv {
		if p.Key == EXECUTION_ID {
			if s, ok := p.Value.(string); ok {
				execID = s
			}
		}
	}
	if execID == "" {
		execID = uuid.NewString()
	}

	c := newCache()
	timings := newTimingsSink()
	c.set(META, settledFuture(timings))
	c.set(EXECUTION_ID, settledFuture(execID))

	overridden := make(map[any]bool)
	for _, p := range kv {
		if p.Key == META || p.Key == EXECUTION_ID {
			continue
		}
		c.set(p.Key, settledFuture(p.Value))
		if _, isNode := p.Key.(Node); isNode {
			overridden[p.Key] = true
		}
	}

	return c, overridden, timings, execID, nil
}

// Run executes root — a Node, string, or *Symbol — as the sole root of
// a new execution and returns its resolved value.
func Run(ctx context.Context, root any, params any, rc *Context, opts ...Option) (any, error) {
	results, err := RunMany(ctx, []any{root}, params, rc, opts...)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// RunMany executes every entry of roots under one shared Cache and
// Context, preserving input order in the returned slice.
func RunMany(ctx context.Context, roots []any, params any, rc *Context, opts ...Option) ([]any, error) {
	cfg := newRunConfig(opts)

	c, overridden, timings, execID, err := seedExecution(params)
	if err != nil {
		return nil, err
	}

	r := &resolver{cache: c, ctxObj: rc, execID: execID, timings: timings, overridden: overridden, cfg: cfg}

	nodes := make([]Node, len(roots))
	for i, root := range roots {
		n, err := toNode(root)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	futures := make([]*future, len(nodes))
	for i, n := range nodes {
		futures[i] = r.visit(ctx, n)
	}

	results := make([]any, len(nodes))
	var firstErr error
	for i, f := range futures {
		v, err := f.await(ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		results[i] = v
	}

	if cfg.history != nil {
		_ = cfg.history.SaveExecution(ctx, execID, timings.Snapshot())
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// GetAdjacencyList returns the transitive closure over Edges reachable
// from roots — each a Node, string, or *Symbol — including the roots
// themselves.
func GetAdjacencyList(roots ...any) ([]Node, error) {
	nodes := make([]Node, len(roots))
	for i, root := range roots {
		n, err := toNode(root)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return getAdjacencyList(nodes...), nil
}

func getAdjacencyList(roots ...Node) []Node {
	visited := make(map[any]bool)
	var order []Node

	var walk func(n Node)
	walk = func(n Node) {
		key := n.cacheKey()
		if visited[key] {
			return
		}
		visited[key] = true
		order = append(order, n)
		for _, e := range n.Edges() {
			walk(e)
		}
	}
	for _, n := range roots {
		walk(n)
	}
	return order
}
