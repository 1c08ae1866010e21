package harness

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Expression operators.
const (
	OpClass = "class"
	OpSome  = "some"
	OpAnd   = "and"
	OpOr    = "or"
	OpNot   = "not"
)

// Expr is a class expression as written in a scenario.
//
// A scalar names a class. A mapping with exactly one key builds a compound
// expression:
//
//	Dog
//	{some: {property: hasPart, filler: Tail}}
//	{and: [Dog, Pet]}
//	{or: [Dog, Cat]}
//	{not: Cat}
type Expr struct {
	Op       string
	Class    string
	Some     *SomeExpr
	Operands []Expr
	Operand  *Expr
}

// SomeExpr is the body of an existential restriction.
type SomeExpr struct {
	Property string `yaml:"property"`
	Filler   Expr   `yaml:"filler"`
}

// ClassExpr is shorthand for a named class.
func ClassExpr(name string) Expr {
	return Expr{Op: OpClass, Class: name}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			return fmt.Errorf("line %d: class name must be non-empty", value.Line)
		}
		*e = ClassExpr(value.Value)
		return nil

	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: expression must have exactly one of some, and, or, not", value.Line)
		}
		key, body := value.Content[0], value.Content[1]

		switch key.Value {
		case OpSome:
			var s SomeExpr
			if err := s.decode(body); err != nil {
				return err
			}
			*e = Expr{Op: OpSome, Some: &s}
		case OpAnd, OpOr:
			if body.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: %s expects a list of expressions", body.Line, key.Value)
			}
			ops := []Expr{}
			if err := body.Decode(&ops); err != nil {
				return err
			}
			*e = Expr{Op: key.Value, Operands: ops}
		case OpNot:
			var op Expr
			if err := body.Decode(&op); err != nil {
				return err
			}
			*e = Expr{Op: OpNot, Operand: &op}
		default:
			return fmt.Errorf("line %d: unknown expression operator %q", key.Line, key.Value)
		}
		return nil

	default:
		return fmt.Errorf("line %d: expression must be a class name or a mapping", value.Line)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. Unknown keys are rejected.
func (s *SomeExpr) UnmarshalYAML(value *yaml.Node) error {
	return s.decode(value)
}

func (s *SomeExpr) decode(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: some expects a mapping with property and filler", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		switch k.Value {
		case "property", "filler":
		default:
			return fmt.Errorf("line %d: field %s not found in some", k.Line, k.Value)
		}
	}

	// Decode into a plain struct so this method is not re-entered.
	var raw struct {
		Property string `yaml:"property"`
		Filler   Expr   `yaml:"filler"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Property == "" {
		return fmt.Errorf("line %d: some.property is required", node.Line)
	}
	if raw.Filler.Op == "" {
		return fmt.Errorf("line %d: some.filler is required", node.Line)
	}
	*s = SomeExpr{Property: raw.Property, Filler: raw.Filler}
	return nil
}

// String formats e compactly, e.g. "and(Dog, some(hasPart, Tail))".
func (e Expr) String() string {
	switch e.Op {
	case OpClass:
		return e.Class
	case OpSome:
		return fmt.Sprintf("some(%s, %s)", e.Some.Property, e.Some.Filler)
	case OpAnd, OpOr:
		parts := make([]string, len(e.Operands))
		for i, op := range e.Operands {
			parts[i] = op.String()
		}
		return fmt.Sprintf("%s(%s)", e.Op, strings.Join(parts, ", "))
	case OpNot:
		return fmt.Sprintf("not(%s)", *e.Operand)
	default:
		return "<empty>"
	}
}
