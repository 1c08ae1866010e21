package ontology

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()

	assert.Equal(t, uuid.Version(7), a.Version())
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, a.String(), b.String(), "UUIDv7 tags sort by creation time")
}

func TestNew_DefaultTagsAreDistinct(t *testing.T) {
	o1 := newTestOntology(t)
	o2 := newTestOntology(t)

	assert.NotEqual(t, uuid.Nil, o1.Tag())
	assert.NotEqual(t, o1.Tag(), o2.Tag())
}
