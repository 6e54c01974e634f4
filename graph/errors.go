package graph

import (
	"errors"
	"fmt"
)

// ErrShutdown is returned by a node invocation when the node's gate has
// already advanced to StatusShutdown. The message is part of this
// package's stable external contract.
var ErrShutdown = errors.New("The dependency is now shutdown")

// ErrInvalidEdgeType is raised eagerly, at graph-construction time, when
// DependsOn receives something other than a Node, a string, or a *Symbol.
var ErrInvalidEdgeType = errors.New("A function can depend on a dependency or a string/symbol")

// ErrMalformedParams is returned by Run/RunMany when the params argument
// is not one of the accepted shapes (see normalizeParams).
var ErrMalformedParams = errors.New("Must be either a Map, an array of key/value pairs or an object")

// MissingArgumentError is returned when a Parameter node is resolved and
// no matching entry exists in the params supplied to Run.
type MissingArgumentError struct {
	Key any
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Missing argument: %s", keyString(e.Key))
}

// keyString renders a cache/parameter key for error messages: Symbols
// print their name, everything else uses its default formatting.
func keyString(key any) string {
	if sym, ok := key.(*Symbol); ok {
		return sym.String()
	}
	return fmt.Sprintf("%v", key)
}

// LifecycleError wraps a failure from a dispose hook during
// Shutdown/Reset. The gate still advances regardless — see
// ResourceNode.transition — so this error is reported alongside a
// FAIL_SHUTDOWN/FAIL_RESET event rather than left unresolved.
type LifecycleError struct {
	NodeID  any
	Message string
	Cause   error
}

func (e *LifecycleError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *LifecycleError) Unwrap() error { return e.Cause }

// asError normalizes a recover() value into an error.
func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
