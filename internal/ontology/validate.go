package ontology

import "fmt"

// Validate checks that every IRI reachable from t was issued by this
// ontology and is bound in its interning table.
//
// The check is depth-first over the closed set of term variants. It returns
// a *ForeignReferenceError for the first foreign IRI found, or an error
// wrapping ErrNilExpression for a nil expression. And/Or with no operands are
// valid.
func (o *Ontology) Validate(t Term) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.validate(t)
}

func (o *Ontology) validate(t Term) error {
	if t == nil {
		return ErrNilExpression
	}
	return o.check(t, string(t.Kind()))
}

// check is the recursive worker behind Validate. Callers must hold o.mu.
func (o *Ontology) check(t Term, path string) error {
	switch v := t.(type) {
	case nil:
		return fmt.Errorf("%s: %w", path, ErrNilExpression)
	case IRI:
		return o.checkIRI(KindIRI, v, path)
	case Class:
		return o.checkIRI(KindClass, v.IRI, path)
	case ObjectProperty:
		return o.checkIRI(KindObjectProperty, v.IRI, path)
	case Some:
		if err := o.checkIRI(KindObjectProperty, v.Property.IRI, path+".property"); err != nil {
			return err
		}
		return o.checkExpr(v.Filler, path+".filler")
	case And:
		return o.checkOperands(v.Operands, path)
	case Or:
		return o.checkOperands(v.Operands, path)
	case Not:
		return o.checkExpr(v.Operand, path+".operand")
	case SubClass:
		if err := o.checkExpr(v.Superclass, path+".superclass"); err != nil {
			return err
		}
		return o.checkExpr(v.Subclass, path+".subclass")
	default:
		return fmt.Errorf("%s: unsupported term type %T", path, t)
	}
}

func (o *Ontology) checkExpr(e ClassExpression, path string) error {
	if e == nil {
		return fmt.Errorf("%s: %w", path, ErrNilExpression)
	}
	return o.check(e, path)
}

func (o *Ontology) checkOperands(ops []ClassExpression, path string) error {
	for i, op := range ops {
		if err := o.checkExpr(op, fmt.Sprintf("%s.operands[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (o *Ontology) checkIRI(kind Kind, iri IRI, path string) error {
	if !o.containsIRI(iri) {
		return newForeignReferenceError(o.tag, kind, iri, path)
	}
	return nil
}
