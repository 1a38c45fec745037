package clikit

import (
	"sort"
	"sync"
)

// ComponentBounds is a rectangle a widget claims on screen for mouse
// routing, in terminal coordinates.
type ComponentBounds struct {
	ComponentID string
	X           int
	Y           int
	Width       int
	Height      int
	ZIndex      int
}

// contains reports whether the point lies inside the bounds.
func (b ComponentBounds) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// HitResult is a matched bound plus the point translated into the
// bound's local coordinates.
type HitResult struct {
	ComponentBounds
	LocalX int
	LocalY int
}

// HitTestRegistry maps terminal coordinates back to component ids. It is
// the engine's only shared mutable state; every method is safe for
// concurrent use. Construct one per UI instance rather than sharing a
// global, so independent UIs (and tests) cannot cross-contaminate.
type HitTestRegistry struct {
	mu     sync.Mutex
	bounds []ComponentBounds // registration order, oldest first
}

// NewHitTestRegistry creates an empty registry.
func NewHitTestRegistry() *HitTestRegistry {
	return &HitTestRegistry{}
}

// Register adds or replaces the bounds for a component id. Re-registering
// an id refreshes its recency for tie-breaking.
func (r *HitTestRegistry) Register(b ComponentBounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(b.ComponentID)
	r.bounds = append(r.bounds, b)
}

// Unregister removes a component's bounds. Unknown ids are a no-op.
func (r *HitTestRegistry) Unregister(componentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(componentID)
}

// removeLocked deletes the entry for an id, preserving order.
func (r *HitTestRegistry) removeLocked(componentID string) {
	for i, b := range r.bounds {
		if b.ComponentID == componentID {
			r.bounds = append(r.bounds[:i], r.bounds[i+1:]...)
			return
		}
	}
}

// Clear removes every registered bound.
func (r *HitTestRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bounds = nil
}

// HitTest returns the bound with the greatest z-index containing the
// point. Ties break toward the most recent registration. The second
// return is false when nothing contains the point.
func (r *HitTestRegistry) HitTest(x, y int) (HitResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best ComponentBounds
	found := false
	for _, b := range r.bounds {
		if !b.contains(x, y) {
			continue
		}
		if !found || b.ZIndex >= best.ZIndex {
			best = b
			found = true
		}
	}
	if !found {
		return HitResult{}, false
	}
	return HitResult{ComponentBounds: best, LocalX: x - best.X, LocalY: y - best.Y}, true
}

// HitTestAll returns every bound containing the point, ordered low to
// high z-index for event bubbling. Equal z-indexes keep registration
// order.
func (r *HitTestRegistry) HitTestAll(x, y int) []HitResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	var hits []HitResult
	for _, b := range r.bounds {
		if b.contains(x, y) {
			hits = append(hits, HitResult{ComponentBounds: b, LocalX: x - b.X, LocalY: y - b.Y})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].ZIndex < hits[j].ZIndex })
	return hits
}
