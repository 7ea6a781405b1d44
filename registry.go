package main

import (
	"sort"
	"sync"
)

// Handle is an opaque top-level window identifier owned by the OS.
// Zero means no window.
type Handle uintptr

// registry is the set of pinned windows.
type registry struct {
	mu      sync.Mutex
	handles map[Handle]struct{}
}

func newRegistry() *registry {
	return &registry{handles: make(map[Handle]struct{})}
}

func (r *registry) Contains(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found := r.handles[h]
	return found
}

func (r *registry) Add(h Handle) {
	r.mu.Lock()
	r.handles[h] = struct{}{}
	r.mu.Unlock()
}

func (r *registry) Remove(h Handle) {
	r.mu.Lock()
	delete(r.handles, h)
	r.mu.Unlock()
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handles)
}

// Snapshot returns a sorted copy that may be iterated without the lock.
func (r *registry) Snapshot() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sorted()
}

// Clear empties the set and returns what it held.
func (r *registry) Clear() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs := r.sorted()
	r.handles = make(map[Handle]struct{})
	return hs
}

func (r *registry) sorted() []Handle {
	hs := make([]Handle, 0, len(r.handles))
	for h := range r.handles {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
