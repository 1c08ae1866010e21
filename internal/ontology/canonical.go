package ontology

import (
	"fmt"

	"github.com/roach88/ontocore/internal/ir"
)

// lower converts a term to its canonical ir.Value.
//
// IRIs are encoded by number only. Owners are left out because a term is
// lowered only after it has been validated against a single ontology.
func lower(t Term) (ir.Value, error) {
	switch v := t.(type) {
	case nil:
		return nil, ErrNilExpression
	case IRI:
		return ir.Int(v.n), nil
	case Class:
		return leaf(KindClass, v.IRI), nil
	case ObjectProperty:
		return leaf(KindObjectProperty, v.IRI), nil
	case Some:
		filler, err := lowerExpr(v.Filler)
		if err != nil {
			return nil, fmt.Errorf("filler: %w", err)
		}
		return ir.Object{
			"type":     ir.String(KindSome),
			"property": ir.Int(v.Property.IRI.n),
			"filler":   filler,
		}, nil
	case And:
		ops, err := lowerOperands(v.Operands)
		if err != nil {
			return nil, err
		}
		return ir.Object{"type": ir.String(KindAnd), "operands": ops}, nil
	case Or:
		ops, err := lowerOperands(v.Operands)
		if err != nil {
			return nil, err
		}
		return ir.Object{"type": ir.String(KindOr), "operands": ops}, nil
	case Not:
		op, err := lowerExpr(v.Operand)
		if err != nil {
			return nil, fmt.Errorf("operand: %w", err)
		}
		return ir.Object{"type": ir.String(KindNot), "operand": op}, nil
	case SubClass:
		sup, err := lowerExpr(v.Superclass)
		if err != nil {
			return nil, fmt.Errorf("superclass: %w", err)
		}
		sub, err := lowerExpr(v.Subclass)
		if err != nil {
			return nil, fmt.Errorf("subclass: %w", err)
		}
		return ir.Object{
			"type":       ir.String(KindSubClass),
			"superclass": sup,
			"subclass":   sub,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported term type: %T", t)
	}
}

func leaf(kind Kind, iri IRI) ir.Object {
	return ir.Object{"type": ir.String(kind), "iri": ir.Int(iri.n)}
}

func lowerExpr(e ClassExpression) (ir.Value, error) {
	if e == nil {
		return nil, ErrNilExpression
	}
	return lower(e)
}

func lowerOperands(ops []ClassExpression) (ir.Array, error) {
	arr := make(ir.Array, len(ops))
	for i, op := range ops {
		v, err := lowerExpr(op)
		if err != nil {
			return nil, fmt.Errorf("operands[%d]: %w", i, err)
		}
		arr[i] = v
	}
	return arr, nil
}

// domainOf returns the key domain a term kind is stored under.
// All class expression variants share one domain; the "type" tag inside
// the encoding keeps them apart.
func domainOf(k Kind) string {
	switch k {
	case KindClass:
		return ir.DomainClass
	case KindObjectProperty:
		return ir.DomainObjectProperty
	case KindSubClass:
		return ir.DomainSubClass
	default:
		return ir.DomainExpression
	}
}

// termKey computes the structural key of t.
func termKey(t Term) (string, error) {
	if t == nil {
		return "", ErrNilExpression
	}
	v, err := lower(t)
	if err != nil {
		return "", err
	}
	return ir.Key(domainOf(t.Kind()), v)
}
