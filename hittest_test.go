package clikit

import (
	"fmt"
	"sync"
	"testing"
)

func TestHitTestZOrder(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "under", X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1})
	r.Register(ComponentBounds{ComponentID: "over", X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 2})

	hit, ok := r.HitTest(5, 5)
	if !ok || hit.ComponentID != "over" {
		t.Errorf("hit = %+v ok=%v, want over", hit, ok)
	}

	r.Unregister("over")
	hit, ok = r.HitTest(5, 5)
	if !ok || hit.ComponentID != "under" {
		t.Errorf("after unregister: hit = %+v ok=%v, want under", hit, ok)
	}
}

func TestHitTestMiss(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "a", X: 5, Y: 5, Width: 2, Height: 2})
	if _, ok := r.HitTest(0, 0); ok {
		t.Error("hit outside all bounds")
	}
	if _, ok := r.HitTest(7, 5); ok {
		t.Error("bounds must be exclusive of x+width")
	}
}

func TestHitTestTieBreaksTowardRecent(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "first", Width: 5, Height: 5, ZIndex: 3})
	r.Register(ComponentBounds{ComponentID: "second", Width: 5, Height: 5, ZIndex: 3})
	hit, _ := r.HitTest(1, 1)
	if hit.ComponentID != "second" {
		t.Errorf("hit = %s, want most recently registered", hit.ComponentID)
	}

	// Re-registering refreshes recency.
	r.Register(ComponentBounds{ComponentID: "first", Width: 5, Height: 5, ZIndex: 3})
	hit, _ = r.HitTest(1, 1)
	if hit.ComponentID != "first" {
		t.Errorf("hit = %s, want re-registered id", hit.ComponentID)
	}
}

func TestHitTestLocalCoordinates(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "panel", X: 10, Y: 4, Width: 20, Height: 10})
	hit, ok := r.HitTest(13, 6)
	if !ok {
		t.Fatal("no hit")
	}
	if hit.LocalX != 3 || hit.LocalY != 2 {
		t.Errorf("local = %d,%d, want 3,2", hit.LocalX, hit.LocalY)
	}
}

func TestHitTestAllBubbleOrder(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "modal", Width: 10, Height: 10, ZIndex: 5})
	r.Register(ComponentBounds{ComponentID: "page", Width: 10, Height: 10, ZIndex: 0})
	r.Register(ComponentBounds{ComponentID: "button", X: 1, Y: 1, Width: 2, Height: 2, ZIndex: 5})
	r.Register(ComponentBounds{ComponentID: "far", X: 50, Y: 50, Width: 2, Height: 2, ZIndex: 9})

	hits := r.HitTestAll(1, 1)
	want := []string{"page", "modal", "button"}
	if len(hits) != len(want) {
		t.Fatalf("hits = %d, want %d", len(hits), len(want))
	}
	for i, id := range want {
		if hits[i].ComponentID != id {
			t.Errorf("hits[%d] = %s, want %s", i, hits[i].ComponentID, id)
		}
	}
}

func TestUnregisterUnknownIsNoop(t *testing.T) {
	r := NewHitTestRegistry()
	r.Unregister("ghost") // must not panic
	r.Register(ComponentBounds{ComponentID: "a", Width: 1, Height: 1})
	r.Unregister("ghost")
	if _, ok := r.HitTest(0, 0); !ok {
		t.Error("unrelated unregister removed a bound")
	}
}

func TestRegisterReplacesBounds(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "w", X: 0, Y: 0, Width: 5, Height: 5})
	r.Register(ComponentBounds{ComponentID: "w", X: 20, Y: 20, Width: 5, Height: 5})
	if _, ok := r.HitTest(2, 2); ok {
		t.Error("stale bounds still registered")
	}
	if _, ok := r.HitTest(22, 22); !ok {
		t.Error("updated bounds not found")
	}
}

func TestClear(t *testing.T) {
	r := NewHitTestRegistry()
	r.Register(ComponentBounds{ComponentID: "a", Width: 5, Height: 5})
	r.Clear()
	if _, ok := r.HitTest(1, 1); ok {
		t.Error("bounds survived Clear")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewHitTestRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("w%d", i)
			for j := 0; j < 100; j++ {
				r.Register(ComponentBounds{ComponentID: id, X: i, Y: i, Width: 2, Height: 2, ZIndex: i})
				r.HitTest(i, i)
				r.HitTestAll(i, i)
				r.Unregister(id)
			}
		}()
	}
	wg.Wait()
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewHitTestRegistry()
	b := NewHitTestRegistry()
	a.Register(ComponentBounds{ComponentID: "only-a", Width: 5, Height: 5})
	if _, ok := b.HitTest(1, 1); ok {
		t.Error("registration leaked across registries")
	}
}
