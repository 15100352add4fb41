package api

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// registry tracks cancellation handles for in-flight requests so they
// can be aborted individually (per-request timeout) or en masse
// (CancelAll). A handle never outlives its request: the executor
// removes it on every terminal outcome.
type registry struct {
	mu      sync.Mutex
	handles map[string]context.CancelFunc
	seq     uint64
}

func newRegistry() *registry {
	return &registry{
		handles: make(map[string]context.CancelFunc),
	}
}

// Add registers a cancellation handle and returns its request ID.
// The ID is derived from the method, path, and issue timestamp; a
// sequence number keeps identical operations issued in the same
// nanosecond distinct.
func (r *registry) Add(method, path string, cancel context.CancelFunc) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("%s %s %d-%d", method, path, time.Now().UnixNano(), r.seq)
	r.handles[id] = cancel
	return id
}

// Remove drops the handle for a settled request.
func (r *registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, id)
}

// CancelAll cancels every registered handle and empties the registry.
// Safe to call with no in-flight requests.
func (r *registry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cancel := range r.handles {
		cancel()
	}
	r.handles = make(map[string]context.CancelFunc)
}

// Len reports the number of in-flight requests.
func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}
