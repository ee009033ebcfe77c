package memory

import (
	"fmt"
	"slices"
	"sync"
)

// maxIDAttempts bounds how often create asks the generator for a fresh id
// before it gives up on a generator that keeps returning taken ids.
const maxIDAttempts = 16

// collection is the storage shared by every repository: a map keyed by id
// plus the insertion order, guarded by one lock. Values are cloned on the
// way in and on the way out so callers never alias stored records.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

// all returns every record in insertion order. The result is never nil.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.items[id]))
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(v), true
}

// find returns the first record, in insertion order, that matches.
func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return c.clone(v), true
		}
	}
	var zero T
	return zero, false
}

// create draws an unused id from newID, builds the record and inserts it.
func (c *collection[T]) create(newID func() string, build func(id string) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := newID()
	for attempt := 1; c.taken(id); attempt++ {
		if attempt >= maxIDAttempts {
			panic(fmt.Sprintf("memory: id generator returned %d taken ids in a row", attempt))
		}
		id = newID()
	}

	v := c.clone(build(id))
	c.items[id] = v
	c.order = append(c.order, id)
	return c.clone(v)
}

func (c *collection[T]) taken(id string) bool {
	_, ok := c.items[id]
	return ok
}

// update replaces the record under id with merge(current).
func (c *collection[T]) update(id string, merge func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	v := c.clone(merge(cur))
	c.items[id] = v
	return c.clone(v), true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}
