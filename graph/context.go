package graph

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Context tracks every Node a caller has used under it and owns their
// reverse-topological Shutdown/Reset. A Node may belong to multiple
// Contexts at once; it tears down only once none of them still hold it.
type Context struct {
	name string
	bus  *eventBus

	mu      sync.Mutex
	members map[Node]struct{}
}

// NewContext creates an empty, named Context.
func NewContext(name string) *Context {
	return &Context{
		name:    name,
		bus:     newEventBus(),
		members: make(map[Node]struct{}),
	}
}

// Name returns the Context's human-readable label.
func (c *Context) Name() string { return c.name }

// On registers h as the handler for name, replacing any handler
// previously registered for that event — the latest registration wins.
func (c *Context) On(name EventName, h Handler) {
	c.bus.on(name, h)
}

func (c *Context) emit(name EventName, evt Event) {
	evt.Context = c
	c.bus.emit(name, evt)
}

// add enrolls n in this Context, keeping membership symmetric with
// Node.contextMembership.
func (c *Context) add(n Node) {
	c.mu.Lock()
	if _, ok := c.members[n]; ok {
		c.mu.Unlock()
		return
	}
	c.members[n] = struct{}{}
	c.mu.Unlock()
	n.joinContext(c)
}

// Has reports whether n is currently a member of this Context.
func (c *Context) Has(n Node) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.members[n]
	return ok
}

// Size returns the number of Nodes currently enrolled.
func (c *Context) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.members)
}

func (c *Context) snapshotMembers() []Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Node, 0, len(c.members))
	for n := range c.members {
		out = append(out, n)
	}
	return out
}

// GetAdjacencyList returns the transitive closure over Edges reachable
// from every Node currently enrolled in this Context.
func (c *Context) GetAdjacencyList() []Node {
	return getAdjacencyList(c.snapshotMembers()...)
}

// Shutdown transitions every member of this Context to StatusShutdown,
// in reverse-topological order: a node is transitioned only once every
// node that depends on it, within this Context, already has been.
func (c *Context) Shutdown(ctx context.Context) error {
	return c.drain(ctx, StatusShutdown)
}

// Reset transitions every member of this Context back to StatusReady.
func (c *Context) Reset(ctx context.Context) error {
	return c.drain(ctx, StatusReady)
}

// drain repeatedly picks an arbitrary member and walks it to the sinks
// of its successor chain before transitioning it, until the Context is
// empty. Picking an arbitrary starting member is safe: the recursive
// walk over inverse edges always climbs to true sinks first.
func (c *Context) drain(ctx context.Context, target Status) error {
	for {
		c.mu.Lock()
		var next Node
		for n := range c.members {
			next = n
			break
		}
		c.mu.Unlock()
		if next == nil {
			return nil
		}
		if err := c.transitionNode(ctx, next, target); err != nil {
			return err
		}
	}
}

func (c *Context) transitionNode(ctx context.Context, n Node, target Status) error {
	c.mu.Lock()
	if _, ok := c.members[n]; !ok {
		// Another branch already transitioned this node.
		c.mu.Unlock()
		return nil
	}
	delete(c.members, n)
	c.mu.Unlock()
	n.leaveContext(c)

	g, gctx := errgroup.WithContext(ctx)
	for _, succ := range n.inverseEdgesSnapshot() {
		succ := succ
		g.Go(func() error {
			return c.transitionNode(gctx, succ, target)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	start := time.Now()
	var err error
	if target == StatusShutdown {
		_, err = n.shutdown(ctx)
	} else {
		_, err = n.reset(ctx)
	}
	end := time.Now()

	name := successEventFor(target)
	if err != nil {
		name = failEventFor(target)
	}
	c.emit(name, Event{Dependency: n, TimeStart: start, TimeEnd: end, Err: err})
	return err
}

func successEventFor(target Status) EventName {
	if target == StatusShutdown {
		return EventSuccessShutdown
	}
	return EventSuccessReset
}

func failEventFor(target Status) EventName {
	if target == StatusShutdown {
		return EventFailShutdown
	}
	return EventFailReset
}
