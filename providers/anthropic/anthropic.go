// Package anthropic wraps the Anthropic SDK client as a memoized
// dependency graph Resource node.
package anthropic

import (
	"context"
	"errors"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/nwidger/depgraph/graph"
)

// NewClientResource returns a Resource node whose provider lazily
// builds an Anthropic client and whose value is that client. Callers
// that need an Anthropic client as a graph dependency should depend on
// this node rather than constructing their own client.
//
// The provider reads the key only from apiKey; it ignores the values of
// any edges later added with DependsOn.
func NewClientResource(name, apiKey string) *graph.ResourceNode {
	return graph.NewResource(name).Provides(func(_ context.Context, _ ...any) (any, error) {
		if apiKey == "" {
			return nil, errors.New("anthropic: API key is required")
		}
		client := anthropicsdk.NewClient(option.WithAPIKey(apiKey))
		return &client, nil
	})
}
