package ontology

import "sync/atomic"

// Allocator hands out identifier numbers for newly interned names.
//
// Each call to Next must return a value strictly greater than every value it
// returned before. Zero is never returned; the zero IRI means "absent".
type Allocator interface {
	Next() uint64
	Current() uint64
}

// Counter is the default Allocator: a monotonic atomic counter.
//
// Every Ontology owns a private Counter unless WithAllocator is used. Passing
// the same Counter to several ontologies makes identifier numbers unique
// across all of them; the atomic increment keeps that true when those
// ontologies are built from different goroutines.
type Counter struct {
	seq atomic.Uint64
}

// NewCounter creates a counter starting at 0.
// The first call to Next returns 1.
func NewCounter() *Counter {
	return &Counter{}
}

// NewCounterAt creates a counter whose next value is start+1.
func NewCounterAt(start uint64) *Counter {
	c := &Counter{}
	c.seq.Store(start)
	return c
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint64 {
	return c.seq.Add(1)
}

// Current returns the last value handed out, without incrementing.
func (c *Counter) Current() uint64 {
	return c.seq.Load()
}
