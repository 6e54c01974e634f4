// Package graph executes a directed acyclic graph of user-supplied
// asynchronous computations with at-most-once semantics per execution,
// parallel fan-out along independent branches, memoized long-lived
// resources, and reverse-topological lifecycle teardown.
//
// Three node kinds share one execution protocol:
//
//   - Transient nodes re-run their provider on every Run.
//   - Resource nodes run their provider once and memoize the result
//     until Shutdown or Reset; they may register a dispose hook.
//   - Parameter nodes are placeholders resolved from the caller-supplied
//     params map; resolving one with no matching entry fails.
//
// A Context tracks which nodes a caller has touched and owns their
// reverse-topological Shutdown/Reset: a node tears down only after every
// node that depends on it (within that Context) has torn down, and only
// once no other Context still references it.
package graph
