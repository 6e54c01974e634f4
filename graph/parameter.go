package graph

import "context"

// parameterNode is a pure placeholder: its cache key is the raw
// parameter key it was built from (a string or a *Symbol), it has no
// edges, no lifecycle, and resolving it with no matching params entry
// fails with MissingArgumentError. The Resolver never actually invokes
// getValue on one whose key is already present in the Cache — that is
// how a supplied parameter "satisfies" the placeholder.
type parameterNode struct {
	key any
}

func newParameterNode(key any) *parameterNode {
	return &parameterNode{key: key}
}

func (p *parameterNode) Name() string               { return keyString(p.key) }
func (p *parameterNode) Edges() []Node               { return nil }
func (p *parameterNode) GateStatus() Status          { return StatusReady }
func (p *parameterNode) cacheKey() any               { return p.key }
func (p *parameterNode) enrollable() bool            { return false }
func (p *parameterNode) inverseEdgesSnapshot() []Node { return nil }
func (p *parameterNode) addInverseEdge(Node)          {}
func (p *parameterNode) removeInverseEdge(Node)       {}
func (p *parameterNode) joinContext(*Context)         {}
func (p *parameterNode) leaveContext(*Context)        {}
func (p *parameterNode) contextMembershipSize() int   { return 0 }

func (p *parameterNode) getValue(ctx context.Context, args []any) (any, error) {
	return nil, &MissingArgumentError{Key: p.key}
}

func (p *parameterNode) shutdown(ctx context.Context) (bool, error) { return false, nil }
func (p *parameterNode) reset(ctx context.Context) (bool, error)    { return false, nil }

var _ Node = (*parameterNode)(nil)
