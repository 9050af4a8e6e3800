package optimistic

import "sync"

// Registry resolves entity ids to their canonical in-memory record, so a
// parent view and any dialogs opened from it mutate the same instance. The
// browser client got this by passing one object reference through nested
// dialogs; an explicit id lookup removes the fragility of that chain.
type Registry[T any] struct {
	mu      sync.Mutex
	records map[int64]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{records: make(map[int64]T)}
}

// Resolve returns the canonical record for id. The first caller to resolve
// an id registers its record; later callers get that same instance back,
// whatever copy they fetched themselves.
func (r *Registry[T]) Resolve(id int64, rec T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.records[id]; ok {
		return existing
	}
	r.records[id] = rec
	return rec
}

// Get returns the canonical record for id if one is registered.
func (r *Registry[T]) Get(id int64) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	return rec, ok
}

// Drop forgets an id, e.g. after the entity is deleted.
func (r *Registry[T]) Drop(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
}

// Clear empties the registry, e.g. on logout.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[int64]T)
}
