package ontology

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/ontocore/internal/ir"
)

// Render returns canonical JSON for t with every IRI replaced by its name.
// t must validate against o.
//
// Render is a debugging and testing view, not an interchange format.
func (o *Ontology) Render(t Term) (string, error) {
	v, err := o.RenderValue(t)
	if err != nil {
		return "", err
	}
	data, err := ir.MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", t.Kind(), err)
	}
	return string(data), nil
}

// RenderValue is like Render but returns the tree before encoding, for
// callers that embed terms in larger canonical documents.
func (o *Ontology) RenderValue(t Term) (ir.Value, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if err := o.validate(t); err != nil {
		return nil, err
	}
	return o.render(t), nil
}

// Snapshot returns the whole ontology as canonical JSON: the ontology ID,
// the interned names and every collection, each sorted so that two
// ontologies with the same contents produce identical bytes regardless of
// insertion order or identifier numbering.
func (o *Ontology) Snapshot() ([]byte, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	names := make([]string, 0, len(o.names))
	for _, name := range o.names {
		names = append(names, name)
	}
	slices.SortFunc(names, ir.CompareUTF16)
	nameValues := make(ir.Array, len(names))
	for i, name := range names {
		nameValues[i] = ir.String(name)
	}

	id := ir.Object{}
	if !o.id.IRI.IsZero() {
		id["iri"] = o.renderIRI(o.id.IRI)
	}
	if !o.id.VersionIRI.IsZero() {
		id["version_iri"] = o.renderIRI(o.id.VersionIRI)
	}

	snap := ir.Object{
		"ontology":          id,
		"names":             nameValues,
		"classes":           sortedRender(o, o.classes),
		"object_properties": sortedRender(o, o.objectProperties),
		"subclass_axioms":   sortedRender(o, o.subClasses),
		"some":              sortedRender(o, o.some),
		"and":               sortedRender(o, o.and),
		"or":                sortedRender(o, o.or),
		"not":               sortedRender(o, o.not),
	}
	return ir.MarshalCanonical(snap)
}

// sortedRender renders every term in set and orders them by their
// canonical encoding.
func sortedRender[T Term](o *Ontology, set *termSet[T]) ir.Array {
	type rendered struct {
		key string
		val ir.Value
	}
	var rs []rendered
	set.each(func(t T) {
		v := o.render(t)
		rs = append(rs, rendered{key: string(ir.MustMarshalCanonical(v)), val: v})
	})
	slices.SortFunc(rs, func(a, b rendered) int { return strings.Compare(a.key, b.key) })

	out := make(ir.Array, len(rs))
	for i, r := range rs {
		out[i] = r.val
	}
	return out
}

// render lowers t like the canonical encoding but with names in place of
// IRI numbers. t must already be valid. Callers must hold o.mu.
func (o *Ontology) render(t Term) ir.Value {
	switch v := t.(type) {
	case IRI:
		return o.renderIRI(v)
	case Class:
		return ir.Object{"type": ir.String(KindClass), "iri": o.renderIRI(v.IRI)}
	case ObjectProperty:
		return ir.Object{"type": ir.String(KindObjectProperty), "iri": o.renderIRI(v.IRI)}
	case Some:
		return ir.Object{
			"type":     ir.String(KindSome),
			"property": o.renderIRI(v.Property.IRI),
			"filler":   o.render(v.Filler),
		}
	case And:
		return ir.Object{"type": ir.String(KindAnd), "operands": o.renderOperands(v.Operands)}
	case Or:
		return ir.Object{"type": ir.String(KindOr), "operands": o.renderOperands(v.Operands)}
	case Not:
		return ir.Object{"type": ir.String(KindNot), "operand": o.render(v.Operand)}
	case SubClass:
		return ir.Object{
			"type":       ir.String(KindSubClass),
			"superclass": o.render(v.Superclass),
			"subclass":   o.render(v.Subclass),
		}
	default:
		return ir.String(fmt.Sprintf("%T", t))
	}
}

func (o *Ontology) renderOperands(ops []ClassExpression) ir.Array {
	arr := make(ir.Array, len(ops))
	for i, op := range ops {
		arr[i] = o.render(op)
	}
	return arr
}

func (o *Ontology) renderIRI(iri IRI) ir.Value {
	if name, ok := o.resolve(iri); ok {
		return ir.String(name)
	}
	return ir.String(iri.String())
}

// describe renders t for log output. Callers must hold o.mu.
func (o *Ontology) describe(t Term) string {
	data, err := ir.MarshalCanonical(o.render(t))
	if err != nil {
		return fmt.Sprintf("%v", t)
	}
	return string(data)
}
