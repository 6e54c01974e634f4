package openai

import (
	"context"
	"testing"

	"github.com/nwidger/depgraph/graph"
)

func TestNewClientResourceRejectsEmptyAPIKey(t *testing.T) {
	r := NewClientResource("openai", "")
	_, err := graph.Run(context.Background(), r, nil, nil)
	if err == nil {
		t.Fatal("Run() err = nil, want API key error")
	}
}
