package graph

import (
	"context"
	"testing"
)

func TestCacheLoadOrCreateInstallsOnce(t *testing.T) {
	c := newCache()

	f1, existed1 := c.loadOrCreate("k")
	if existed1 {
		t.Fatal("first loadOrCreate reported an existing entry")
	}
	f2, existed2 := c.loadOrCreate("k")
	if !existed2 {
		t.Fatal("second loadOrCreate did not find the installed entry")
	}
	if f1 != f2 {
		t.Error("loadOrCreate returned different futures for the same key")
	}
}

func TestCacheSetOverwritesExistingEntry(t *testing.T) {
	c := newCache()
	c.set("k", settledFuture(1))
	c.set("k", settledFuture(2))

	f, existed := c.loadOrCreate("k")
	if !existed {
		t.Fatal("expected set entry to already exist")
	}
	val, _ := f.await(context.Background())
	if val != 2 {
		t.Errorf("cached value = %v, want 2", val)
	}
}
