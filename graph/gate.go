package graph

import "context"

// Status is the lifecycle state tracked by a StatusGate.
type Status int

const (
	// StatusReady means the node may be invoked normally.
	StatusReady Status = iota
	// StatusShutdown means new invocations must fail with ErrShutdown.
	StatusShutdown
)

func (s Status) String() string {
	if s == StatusShutdown {
		return "SHUTDOWN"
	}
	return "READY"
}

// StatusGate is a single-slot cooperative state machine that serializes
// lifecycle transitions on a node while permitting concurrent reads.
//
// Get never observes a half-applied transition: if one is pending, Get
// blocks until it completes. Change enqueues a transition behind any
// prior one, runs the caller's work without holding the gate's mutex
// across that suspension, and advances the status whether or not work
// fails — teardown must not leave the gate stuck.
type StatusGate struct {
	mu      chanMutex
	status  Status
	pending chan struct{}
}

// chanMutex is a plain mutex; named for clarity at call sites that
// alternate short critical sections with long unguarded waits.
type chanMutex struct{ c chan struct{} }

func newChanMutex() chanMutex {
	m := chanMutex{c: make(chan struct{}, 1)}
	m.c <- struct{}{}
	return m
}

func (m chanMutex) Lock()   { <-m.c }
func (m chanMutex) Unlock() { m.c <- struct{}{} }

// NewStatusGate creates a gate starting in initial.
func NewStatusGate(initial Status) *StatusGate {
	return &StatusGate{mu: newChanMutex(), status: initial}
}

// Get returns the current status, waiting out any in-flight transition
// first so callers never see a half-applied state change.
func (g *StatusGate) Get() Status {
	g.mu.Lock()
	pending := g.pending
	status := g.status
	g.mu.Unlock()

	if pending == nil {
		return status
	}

	<-pending

	g.mu.Lock()
	status = g.status
	g.mu.Unlock()
	return status
}

// claimPending blocks until no transition is in flight, then installs
// mine as the new pending transition, atomically with respect to other
// claimPending callers.
func (g *StatusGate) claimPending(mine chan struct{}) {
	for {
		g.mu.Lock()
		pending := g.pending
		if pending == nil {
			g.pending = mine
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		<-pending
	}
}

// Change waits for any prior pending transition, then runs work. The
// gate's mutex is never held while work executes, so work may itself
// suspend (awaiting in-flight invocations, calling a dispose hook)
// without blocking concurrent Get calls on unrelated nodes. On return
// — success or failure — status becomes target and the gate clears.
//
// Change always performs the transition once called; callers decide
// beforehand whether a transition is warranted (e.g. a Resource with no
// memoized value skips calling Change entirely).
func (g *StatusGate) Change(ctx context.Context, target Status, work func(context.Context) error) error {
	mine := make(chan struct{})
	g.claimPending(mine)

	err := work(ctx)

	g.mu.Lock()
	g.status = target
	g.pending = nil
	g.mu.Unlock()
	close(mine)

	return err
}

// forceSet advances the status directly, with no associated work. Used
// when a transition is requested but there is nothing to tear down
// (e.g. a Resource node whose provider never ran) — the gate still
// advances even though the transition is reported as a no-op to the
// caller.
func (g *StatusGate) forceSet(target Status) {
	mine := make(chan struct{})
	g.claimPending(mine)
	g.mu.Lock()
	g.status = target
	g.pending = nil
	g.mu.Unlock()
	close(mine)
}
