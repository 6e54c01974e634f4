// Package google wraps the Google generative-ai SDK client as a
// memoized dependency graph Resource node, complete with a dispose
// hook that closes the underlying connection.
package google

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nwidger/depgraph/graph"
)

// NewClientResource returns a Resource node whose provider lazily
// builds a Gemini client and whose dispose hook closes it. Shutting
// down the returned node (directly, or via a Context it was enrolled
// in) releases the client's connection.
func NewClientResource(name, apiKey string) *graph.ResourceNode {
	return graph.NewResource(name).
		Provides(func(ctx context.Context, _ ...any) (any, error) {
			if apiKey == "" {
				return nil, errors.New("google: API key is required")
			}
			client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
			if err != nil {
				return nil, err
			}
			return client, nil
		}).
		Disposes(func(_ context.Context, value any) error {
			client, ok := value.(*genai.Client)
			if !ok {
				return nil
			}
			return client.Close()
		})
}
