package memory

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers. Identifiers must never repeat for
// the lifetime of a generator, regardless of deletes.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// CounterGenerator issues "1", "2", "3"... and never reuses a value.
type CounterGenerator struct {
	mu   sync.Mutex
	next int
}

// NewCounterGenerator starts counting after the provided offset.
func NewCounterGenerator(offset int) *CounterGenerator {
	return &CounterGenerator{next: offset}
}

// NewID returns the next decimal identifier.
func (g *CounterGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return strconv.Itoa(g.next)
}
