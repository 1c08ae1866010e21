package ontology

import "github.com/google/uuid"

// InstanceTagGenerator produces the tag that marks every IRI an ontology
// issues. Implemented by UUIDv7Generator (production) and
// testutil.SequentialTagGenerator (tests).
type InstanceTagGenerator interface {
	Generate() uuid.UUID
}

// UUIDv7Generator generates time-sortable UUIDv7 instance tags.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
