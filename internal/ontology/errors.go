package ontology

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrorCode categorizes ontology errors.
type ErrorCode string

const (
	// ErrCodeForeignReference indicates a term references an IRI that is not
	// bound in the ontology it was handed to.
	ErrCodeForeignReference ErrorCode = "FOREIGN_REFERENCE"
)

// ErrNilExpression is returned when a class expression, or any expression
// nested inside one, is a nil interface value.
var ErrNilExpression = errors.New("nil class expression")

// ForeignReferenceError reports a term that reaches an IRI the target
// ontology never issued.
//
// Construction fails before any collection is touched, so receiving this
// error means the ontology is unchanged.
type ForeignReferenceError struct {
	// Code is always ErrCodeForeignReference.
	Code ErrorCode

	// Kind is the entity kind that carried the foreign IRI
	// (class, object_property or iri).
	Kind Kind

	// IRI is the offending identifier.
	IRI IRI

	// Path locates the IRI inside the term, e.g. "subclass.subclass.filler".
	Path string

	// Ontology is the tag of the ontology that rejected the term.
	Ontology uuid.UUID
}

// Error implements the error interface.
func (e *ForeignReferenceError) Error() string {
	msg := fmt.Sprintf("%s: %s %s at %s is not bound in ontology %s",
		e.Code, e.Kind, e.IRI, e.Path, e.Ontology)
	if e.IRI.owner != e.Ontology && e.IRI.owner != uuid.Nil {
		msg += fmt.Sprintf(" (issued by %s)", e.IRI.owner)
	}
	return msg
}

// IsForeignReference returns true if err is, or wraps, a ForeignReferenceError.
func IsForeignReference(err error) bool {
	var fe *ForeignReferenceError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeForeignReference
	}
	return false
}

func newForeignReferenceError(ontology uuid.UUID, kind Kind, iri IRI, path string) *ForeignReferenceError {
	return &ForeignReferenceError{
		Code:     ErrCodeForeignReference,
		Kind:     kind,
		IRI:      iri,
		Path:     path,
		Ontology: ontology,
	}
}
