// Package openai wraps the OpenAI SDK client as a memoized dependency
// graph Resource node.
package openai

import (
	"context"
	"errors"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nwidger/depgraph/graph"
)

// NewClientResource returns a Resource node whose provider lazily
// builds an OpenAI client and whose value is that client.
func NewClientResource(name, apiKey string) *graph.ResourceNode {
	return graph.NewResource(name).Provides(func(_ context.Context, _ ...any) (any, error) {
		if apiKey == "" {
			return nil, errors.New("openai: API key is required")
		}
		client := openaisdk.NewClient(option.WithAPIKey(apiKey))
		return &client, nil
	})
}
