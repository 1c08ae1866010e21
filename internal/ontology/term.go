package ontology

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind names a term variant. It doubles as the "type" tag of the canonical
// encoding and as the root segment of validation paths.
type Kind string

const (
	KindIRI            Kind = "iri"
	KindClass          Kind = "class"
	KindObjectProperty Kind = "object_property"
	KindSome           Kind = "some"
	KindAnd            Kind = "and"
	KindOr             Kind = "or"
	KindNot            Kind = "not"
	KindSubClass       Kind = "subclass"
)

// Term is a sealed interface over everything an Ontology can validate:
// IRI, Class, ObjectProperty, Some, And, Or, Not and SubClass.
type Term interface {
	Kind() Kind
	term()
}

// ClassExpression is a sealed interface over concept descriptions.
// Only Class, Some, And, Or and Not implement it.
type ClassExpression interface {
	Term
	classExpression()
}

// IRI is an identifier issued by one Ontology.
//
// The number is dense and only meaningful together with the issuing
// instance's tag; IRIs with equal numbers from different ontologies are
// different IRIs. The zero IRI is never issued and means "absent".
type IRI struct {
	owner uuid.UUID
	n     uint64
}

func (IRI) Kind() Kind { return KindIRI }
func (IRI) term()      {}

// Number returns the dense identifier number.
func (i IRI) Number() uint64 { return i.n }

// Owner returns the tag of the ontology that issued the IRI.
func (i IRI) Owner() uuid.UUID { return i.owner }

// IsZero reports whether i is the zero IRI.
func (i IRI) IsZero() bool { return i == IRI{} }

// String formats the IRI as "iri:<n>".
func (i IRI) String() string { return fmt.Sprintf("iri:%d", i.n) }

// Class is a named concept. It is also the atomic class expression.
type Class struct {
	IRI IRI
}

func (Class) Kind() Kind       { return KindClass }
func (Class) term()            {}
func (Class) classExpression() {}

// ObjectProperty is a named binary relation between individuals.
type ObjectProperty struct {
	IRI IRI
}

func (ObjectProperty) Kind() Kind { return KindObjectProperty }
func (ObjectProperty) term()      {}

// Some is an existential restriction: individuals related via Property to
// something satisfying Filler.
type Some struct {
	Property ObjectProperty
	Filler   ClassExpression
}

func (Some) Kind() Kind       { return KindSome }
func (Some) term()            {}
func (Some) classExpression() {}

// And is the conjunction of its operands. Operand order is part of the
// term's identity; an empty And is allowed.
type And struct {
	Operands []ClassExpression
}

func (And) Kind() Kind       { return KindAnd }
func (And) term()            {}
func (And) classExpression() {}

// Or is the disjunction of its operands, with the same ordering rules as And.
type Or struct {
	Operands []ClassExpression
}

func (Or) Kind() Kind       { return KindOr }
func (Or) term()            {}
func (Or) classExpression() {}

// Not is the complement of its operand.
type Not struct {
	Operand ClassExpression
}

func (Not) Kind() Kind       { return KindNot }
func (Not) term()            {}
func (Not) classExpression() {}

// SubClass asserts that Subclass is subsumed by Superclass.
type SubClass struct {
	Superclass ClassExpression
	Subclass   ClassExpression
}

func (SubClass) Kind() Kind { return KindSubClass }
func (SubClass) term()      {}

// Equal reports whether a and b are structurally equal terms.
// A nil term is equal only to another nil term.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case IRI:
		y, ok := b.(IRI)
		return ok && x == y
	case Class:
		y, ok := b.(Class)
		return ok && x == y
	case ObjectProperty:
		y, ok := b.(ObjectProperty)
		return ok && x == y
	case Some:
		y, ok := b.(Some)
		return ok && x.Property == y.Property && equalExpr(x.Filler, y.Filler)
	case And:
		y, ok := b.(And)
		return ok && equalOperands(x.Operands, y.Operands)
	case Or:
		y, ok := b.(Or)
		return ok && equalOperands(x.Operands, y.Operands)
	case Not:
		y, ok := b.(Not)
		return ok && equalExpr(x.Operand, y.Operand)
	case SubClass:
		y, ok := b.(SubClass)
		return ok && equalExpr(x.Superclass, y.Superclass) && equalExpr(x.Subclass, y.Subclass)
	default:
		return false
	}
}

// equalExpr compares two expressions without boxing a nil ClassExpression
// into a non-nil Term.
func equalExpr(a, b ClassExpression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func equalOperands(a, b []ClassExpression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

// cloneExpr deep-copies the operand slices of e so the store and its callers
// never share backing arrays.
func cloneExpr(e ClassExpression) ClassExpression {
	switch x := e.(type) {
	case Some:
		return cloneSome(x)
	case And:
		return And{Operands: cloneOperands(x.Operands)}
	case Or:
		return Or{Operands: cloneOperands(x.Operands)}
	case Not:
		return Not{Operand: cloneExpr(x.Operand)}
	default:
		return e
	}
}

func cloneSome(s Some) Some {
	return Some{Property: s.Property, Filler: cloneExpr(s.Filler)}
}

func cloneSubClass(sc SubClass) SubClass {
	return SubClass{Superclass: cloneExpr(sc.Superclass), Subclass: cloneExpr(sc.Subclass)}
}

func cloneOperands(ops []ClassExpression) []ClassExpression {
	if ops == nil {
		return nil
	}
	out := make([]ClassExpression, len(ops))
	for i, op := range ops {
		out[i] = cloneExpr(op)
	}
	return out
}

// cloneTerm deep-copies any term.
func cloneTerm[T Term](t T) T {
	var v Term = t
	switch x := v.(type) {
	case SubClass:
		v = cloneSubClass(x)
	case ClassExpression:
		v = cloneExpr(x)
	}
	return v.(T)
}
