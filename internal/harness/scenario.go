package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ontocore/internal/config"
)

// Scenario defines a conformance test scenario: a sequence of construction
// steps against a fresh ontology, followed by assertions on its contents.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names golden files.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config shapes the ontology under test.
	Config config.Config `yaml:"config,omitempty"`

	// Steps run in order. Each names exactly one operation.
	Steps []Step `yaml:"steps"`

	// Assertions are evaluated after all steps.
	// Supported types: direct_subclasses, direct_superclasses,
	// is_direct_subclass, count
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one construction call.
//
// class and object_property intern the name and define the entity. Every
// other operation refers to names that an earlier step bound; referring to
// an unbound name fails the step.
//
// Names listed in Foreign are interned in a scratch ontology instead, so
// the step exercises cross-instance rejection.
type Step struct {
	Class          string        `yaml:"class,omitempty"`
	ObjectProperty string        `yaml:"object_property,omitempty"`
	SubClass       *SubClassStep `yaml:"subclass,omitempty"`
	Some           *SomeExpr     `yaml:"some,omitempty"`
	And            []Expr        `yaml:"and,omitempty"`
	Or             []Expr        `yaml:"or,omitempty"`
	Not            *Expr         `yaml:"not,omitempty"`

	// Foreign lists names resolved in the scratch ontology.
	Foreign []string `yaml:"foreign,omitempty"`

	// ExpectError is the error the step must fail with. Empty means the
	// step must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// SubClassStep asserts Sub is subsumed by Super.
type SubClassStep struct {
	Super Expr `yaml:"super"`
	Sub   Expr `yaml:"sub"`
}

// Step operations, as they appear in traces.
const (
	StepClass          = "class"
	StepObjectProperty = "object_property"
	StepSubClass       = "subclass"
	StepSome           = "some"
	StepAnd            = "and"
	StepOr             = "or"
	StepNot            = "not"
)

// Expected step errors.
const (
	ExpectForeignReference = "foreign_reference"
)

// operations returns the names of every operation set on s.
func (s *Step) operations() []string {
	var ops []string
	if s.Class != "" {
		ops = append(ops, StepClass)
	}
	if s.ObjectProperty != "" {
		ops = append(ops, StepObjectProperty)
	}
	if s.SubClass != nil {
		ops = append(ops, StepSubClass)
	}
	if s.Some != nil {
		ops = append(ops, StepSome)
	}
	if s.And != nil {
		ops = append(ops, StepAnd)
	}
	if s.Or != nil {
		ops = append(ops, StepOr)
	}
	if s.Not != nil {
		ops = append(ops, StepNot)
	}
	return ops
}

// Op returns the step's operation, or "" if it has none or several.
func (s *Step) Op() string {
	ops := s.operations()
	if len(ops) != 1 {
		return ""
	}
	return ops[0]
}

// Assertion validates the ontology after all steps.
type Assertion struct {
	// Type specifies the assertion type:
	// - "direct_subclasses": DirectSubclassesOf(Of) equals Expect as a multiset
	// - "direct_superclasses": DirectSuperclassesOf(Of) equals Expect
	// - "is_direct_subclass": IsDirectSubclassOf(Super, Sub) equals Holds
	// - "count": the named collection has Count members
	Type string `yaml:"type"`

	// Of is the queried expression (direct_subclasses, direct_superclasses).
	Of *Expr `yaml:"of,omitempty"`

	// Expect lists the expected results. Absent means none.
	Expect []Expr `yaml:"expect,omitempty"`

	// Super and Sub are the pair checked by is_direct_subclass.
	Super *Expr `yaml:"super,omitempty"`
	Sub   *Expr `yaml:"sub,omitempty"`

	// Holds is the expected answer of is_direct_subclass. Default true.
	Holds *bool `yaml:"holds,omitempty"`

	// Collection names a Stats field (count): names, classes,
	// object_properties, subclass_axioms, some, and, or, not.
	Collection string `yaml:"collection,omitempty"`

	// Count is the expected size (count).
	Count *int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertDirectSubclasses   = "direct_subclasses"
	AssertDirectSuperclasses = "direct_superclasses"
	AssertIsDirectSubclass   = "is_direct_subclass"
	AssertCount              = "count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if errs := ValidateScenario(&scenario); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("invalid scenario: %w", errors.Join(joined...))
	}

	return &scenario, nil
}
