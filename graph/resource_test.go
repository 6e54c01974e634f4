package graph

import (
	"context"
	"errors"
	"testing"
)

func TestResourceShutdownDisposesMemoizedValue(t *testing.T) {
	var disposed any
	n := NewResource("n").
		Provides(func(context.Context, ...any) (any, error) { return "built", nil }).
		Disposes(func(_ context.Context, value any) error {
			disposed = value
			return nil
		})
	ctx := context.Background()

	if _, err := n.Run(ctx, nil, nil); err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	if ok, err := n.Shutdown(ctx); !ok || err != nil {
		t.Fatalf("Shutdown() = (%v, %v), want (true, nil)", ok, err)
	}
	if disposed != "built" {
		t.Errorf("disposed value = %v, want built", disposed)
	}
}

func TestResourceShutdownWithoutMemoSkipsDispose(t *testing.T) {
	disposeCalled := false
	n := NewResource("n").
		Provides(func(context.Context, ...any) (any, error) { return "built", nil }).
		Disposes(func(context.Context, any) error {
			disposeCalled = true
			return nil
		})

	ok, err := n.Shutdown(context.Background())
	if ok || err != nil {
		t.Fatalf("Shutdown() = (%v, %v), want (false, nil)", ok, err)
	}
	if disposeCalled {
		t.Error("dispose ran despite no memoized value")
	}
	if n.GateStatus() != StatusShutdown {
		t.Error("gate did not advance even though the transition reported no-op")
	}
}

func TestResourceFailedBuildIsNotMemoized(t *testing.T) {
	var calls int
	wantErr := errors.New("build failed")
	n := NewResource("n").Provides(func(context.Context, ...any) (any, error) {
		calls++
		if calls == 1 {
			return nil, wantErr
		}
		return "built", nil
	})
	ctx := context.Background()

	_, err := n.Run(ctx, nil, nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("first Run() err = %v, want %v", err, wantErr)
	}

	got, err := n.Run(ctx, nil, nil)
	if err != nil {
		t.Fatalf("second Run() err = %v", err)
	}
	if got != "built" {
		t.Errorf("second Run() = %v, want built", got)
	}
	if calls != 2 {
		t.Errorf("provider invoked %d times, want 2 (retry after failure)", calls)
	}
}

func TestResourceResetRebuildsOnNextRun(t *testing.T) {
	var calls int
	n := NewResource("n").Provides(func(context.Context, ...any) (any, error) {
		calls++
		return calls, nil
	})
	ctx := context.Background()

	first, _ := n.Run(ctx, nil, nil)
	if _, err := n.Reset(ctx); err != nil {
		t.Fatalf("Reset() err = %v", err)
	}
	second, _ := n.Run(ctx, nil, nil)

	if first == second {
		t.Error("Resource returned the same value after Reset — it should have rebuilt")
	}
}

func TestResourceDisposePanicBecomesLifecycleError(t *testing.T) {
	n := NewResource("n").
		Provides(func(context.Context, ...any) (any, error) { return "v", nil }).
		Disposes(func(context.Context, any) error { panic("boom") })
	ctx := context.Background()

	if _, err := n.Run(ctx, nil, nil); err != nil {
		t.Fatalf("Run() err = %v", err)
	}

	_, err := n.Shutdown(ctx)
	var lifecycle *LifecycleError
	if !errors.As(err, &lifecycle) {
		t.Fatalf("Shutdown() err = %v, want *LifecycleError", err)
	}
}
