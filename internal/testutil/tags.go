package testutil

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

// SequentialTagGenerator produces predictable ontology instance tags:
// 00000000-0000-0000-0000-000000000001, ...02, and so on.
//
// Each generated tag is distinct, so ontologies built from one generator
// still reject each other's IRIs, while log output and error messages stay
// identical across runs.
//
// Thread-safety: SequentialTagGenerator is safe for concurrent use.
type SequentialTagGenerator struct {
	mu   sync.Mutex
	next uint64
}

// NewSequentialTagGenerator creates a generator whose first tag ends in 1.
func NewSequentialTagGenerator() *SequentialTagGenerator {
	return &SequentialTagGenerator{next: 1}
}

// Generate returns the next tag in the sequence.
//
// Implements ontology.InstanceTagGenerator.
func (g *SequentialTagGenerator) Generate() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	var tag uuid.UUID
	binary.BigEndian.PutUint64(tag[8:], g.next)
	g.next++
	return tag
}

// Tag returns the n-th tag the generator produces (1-based) without
// advancing it. Useful for asserting on error messages.
func Tag(n uint64) uuid.UUID {
	var tag uuid.UUID
	binary.BigEndian.PutUint64(tag[8:], n)
	return tag
}
