// Package harness provides conformance testing for the ontology store.
//
// A scenario builds an ontology step by step and then asserts on what the
// store holds. Every step is recorded in a trace, and both the trace and the
// final ontology snapshot can be compared against golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: animals
//	description: "Direct subclass queries over a small taxonomy"
//	config:
//	  ontology_iri: http://example.org/animals
//	steps:
//	  - class: Animal
//	  - class: Dog
//	  - object_property: hasPart
//	  - subclass: {super: Animal, sub: Dog}
//	  - some: {property: hasPart, filler: Dog}
//	  - and: [Dog, {some: {property: hasPart, filler: Dog}}]
//	  - or: [Animal, Dog]
//	  - not: Dog
//	  - class: Alien
//	    foreign: [Alien]
//	    expect_error: foreign_reference
//	assertions:
//	  - type: direct_subclasses
//	    of: Animal
//	    expect: [Dog]
//	  - type: is_direct_subclass
//	    super: Animal
//	    sub: Dog
//	  - type: count
//	    collection: classes
//	    count: 2
//
// class and object_property bind a new name. Every other reference must name
// something an earlier step bound, unless the step lists it under foreign, in
// which case the IRI comes from a scratch ontology and the step is expected
// to be rejected.
//
// # Assertion Types
//
//   - direct_subclasses: DirectSubclassesOf(of) equals expect, ignoring order
//   - direct_superclasses: DirectSuperclassesOf(of) equals expect
//   - is_direct_subclass: IsDirectSubclassOf(super, sub) equals holds (default true)
//   - count: the named collection has exactly count members
//
// # Deterministic Testing
//
// Both ontologies get their instance tags from one
// testutil.SequentialTagGenerator and step sequence numbers come from a
// fresh counter, so traces and snapshots are identical across runs.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/animals.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
