package graph

import (
	"context"
	"testing"
)

func TestTransientShutdownRejectsFurtherInvocations(t *testing.T) {
	n := NewTransient("n").Provides(func(context.Context, ...any) (any, error) { return 1, nil })
	ctx := context.Background()

	if _, err := n.Run(ctx, nil, nil); err != nil {
		t.Fatalf("Run() err = %v", err)
	}

	if ok, err := n.Shutdown(ctx); !ok || err != nil {
		t.Fatalf("Shutdown() = (%v, %v), want (true, nil)", ok, err)
	}

	_, err := n.Run(ctx, nil, nil)
	if err != ErrShutdown {
		t.Errorf("Run() after Shutdown err = %v, want ErrShutdown", err)
	}
}

func TestTransientResetReturnsToReady(t *testing.T) {
	n := NewTransient("n").Provides(func(context.Context, ...any) (any, error) { return 1, nil })
	ctx := context.Background()

	if _, err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() err = %v", err)
	}
	if _, err := n.Reset(ctx); err != nil {
		t.Fatalf("Reset() err = %v", err)
	}

	if _, err := n.Run(ctx, nil, nil); err != nil {
		t.Errorf("Run() after Reset err = %v, want nil", err)
	}
}

func TestTransientShutdownTwiceIsANoOpSecondTime(t *testing.T) {
	n := NewTransient("n").Provides(func(context.Context, ...any) (any, error) { return 1, nil })
	ctx := context.Background()

	if ok, err := n.Shutdown(ctx); !ok || err != nil {
		t.Fatalf("first Shutdown() = (%v, %v)", ok, err)
	}
	if ok, err := n.Shutdown(ctx); ok || err != nil {
		t.Errorf("second Shutdown() = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestTransientDependsOnRejectsInvalidEdgeType(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("DependsOn(123) did not panic")
		}
		if r != ErrInvalidEdgeType {
			t.Errorf("panic value = %v, want ErrInvalidEdgeType", r)
		}
	}()
	NewTransient("n").DependsOn(123)
}
