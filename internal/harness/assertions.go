package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/ontocore/internal/ontology"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	return buf.String()
}

// collectionSizes maps count collection names to their Stats field.
var collectionSizes = map[string]func(ontology.Stats) int{
	"names":             func(s ontology.Stats) int { return s.Names },
	"classes":           func(s ontology.Stats) int { return s.Classes },
	"object_properties": func(s ontology.Stats) int { return s.ObjectProperties },
	"subclass_axioms":   func(s ontology.Stats) int { return s.SubClassAxioms },
	"some":              func(s ontology.Stats) int { return s.Some },
	"and":               func(s ontology.Stats) int { return s.And },
	"or":                func(s ontology.Stats) int { return s.Or },
	"not":               func(s ontology.Stats) int { return s.Not },
}

// EvaluateAssertions checks every assertion against o and returns the
// failure messages, prefixed with the assertion's index.
func EvaluateAssertions(o *ontology.Ontology, assertions []Assertion) []string {
	r := &resolver{onto: o, foreign: map[string]bool{}}

	var errs []string
	for i, a := range assertions {
		if err := evaluate(o, r, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluate(o *ontology.Ontology, r *resolver, a Assertion) error {
	switch a.Type {
	case AssertDirectSubclasses:
		return assertRelated(o, r, a, o.DirectSubclassesOf)
	case AssertDirectSuperclasses:
		return assertRelated(o, r, a, o.DirectSuperclassesOf)
	case AssertIsDirectSubclass:
		return assertIsDirectSubclass(o, r, a)
	case AssertCount:
		return assertCount(o, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertRelated compares a direct query result with the expected
// expressions as multisets; order is ignored.
func assertRelated(o *ontology.Ontology, r *resolver, a Assertion, query func(ontology.ClassExpression) []ontology.ClassExpression) error {
	if a.Of == nil {
		return fmt.Errorf("%s requires of", a.Type)
	}
	of, err := r.expr(*a.Of)
	if err != nil {
		return err
	}
	want, err := r.operands(a.Expect)
	if err != nil {
		return fmt.Errorf("expect: %w", err)
	}

	got := query(of)
	if !sameMultiset(want, got) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s of %s = %s", a.Type, a.Of, describeAll(o, want)),
			Actual:   describeAll(o, got),
		}
	}
	return nil
}

func assertIsDirectSubclass(o *ontology.Ontology, r *resolver, a Assertion) error {
	if a.Super == nil || a.Sub == nil {
		return fmt.Errorf("%s requires super and sub", a.Type)
	}
	super, err := r.expr(*a.Super)
	if err != nil {
		return err
	}
	sub, err := r.expr(*a.Sub)
	if err != nil {
		return err
	}

	want := a.Holds == nil || *a.Holds
	if got := o.IsDirectSubclassOf(super, sub); got != want {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s is direct subclass of %s: %t", a.Sub, a.Super, want),
			Actual:   fmt.Sprintf("%t", got),
		}
	}
	return nil
}

func assertCount(o *ontology.Ontology, a Assertion) error {
	size, ok := collectionSizes[a.Collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", a.Collection)
	}
	if a.Count == nil {
		return fmt.Errorf("%s requires count", a.Type)
	}

	if got := size(o.Stats()); got != *a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d members in %s", *a.Count, a.Collection),
			Actual:   fmt.Sprintf("%d members", got),
		}
	}
	return nil
}

// sameMultiset reports whether a and b hold the same expressions with the
// same multiplicities.
func sameMultiset(a, b []ontology.ClassExpression) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && ontology.Equal(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func describeAll(o *ontology.Ontology, exprs []ontology.ClassExpression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		s, err := o.Render(e)
		if err != nil {
			s = fmt.Sprintf("<%v>", err)
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
