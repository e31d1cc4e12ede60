package memory

import "sync"

// Collection is an append-only, ordered list of records of one kind. It backs
// the public content (sessions, talents, contact messages), which is only
// ever added to and listed.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	ids   IDGenerator
	setID func(*T, string)
}

// NewCollection builds a collection that stamps each added record through
// setID with an identifier from gen.
func NewCollection[T any](gen IDGenerator, setID func(*T, string)) *Collection[T] {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	return &Collection[T]{ids: gen, setID: setID}
}

// Add assigns an identifier to item, appends it and returns the stored copy.
func (c *Collection[T]) Add(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setID != nil {
		c.setID(&item, c.ids.NewID())
	}
	c.items = append(c.items, item)
	return item
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
