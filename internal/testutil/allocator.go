package testutil

import "sync"

// ResettableAllocator is an identifier allocator for tests.
//
// Unlike ontology.Counter it can be rewound with Reset, which lets a test
// hand an ontology numbers it has already issued. It satisfies
// ontology.Allocator.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ResettableAllocator struct {
	mu  sync.Mutex
	seq uint64
}

// NewResettableAllocator creates an allocator starting at 0.
//
// The first call to Next() returns 1.
func NewResettableAllocator() *ResettableAllocator {
	return &ResettableAllocator{}
}

// Next increments and returns the next identifier number.
func (a *ResettableAllocator) Next() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	return a.seq
}

// Current returns the last number handed out without incrementing.
func (a *ResettableAllocator) Current() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seq
}

// Reset rewinds the allocator to 0. After Reset, Next returns 1 again.
func (a *ResettableAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq = 0
}
