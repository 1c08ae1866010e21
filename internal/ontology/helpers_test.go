package ontology

import (
	"io"
	"log/slog"
	"testing"

	"github.com/roach88/ontocore/internal/testutil"
)

// newTestOntology creates an ontology with logs suppressed.
func newTestOntology(t *testing.T, opts ...Option) *Ontology {
	t.Helper()
	base := []Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	return New(append(base, opts...)...)
}

// animals builds the Animal/Dog/Cat fixture used across query tests.
type animals struct {
	o                *Ontology
	animal, dog, cat Class
	hasPart          ObjectProperty
}

func newAnimals(t *testing.T) animals {
	t.Helper()
	o := newTestOntology(t)
	return animals{
		o:       o,
		animal:  o.MustDefineClass(o.Intern("Animal")),
		dog:     o.MustDefineClass(o.Intern("Dog")),
		cat:     o.MustDefineClass(o.Intern("Cat")),
		hasPart: o.MustDefineObjectProperty(o.Intern("hasPart")),
	}
}

func withSequentialTags() Option {
	return WithInstanceTags(testutil.NewSequentialTagGenerator())
}
