// Package ontology provides an in-memory description-logic knowledge base:
// an identifier interning table plus deduplicated collections of entities,
// class expressions and subclass axioms.
//
// # Identifiers
//
// Intern maps a name to an IRI and back. Each Ontology has its own allocator
// and its own instance tag; every IRI carries the tag of the ontology that
// issued it, so an IRI from one ontology is never accepted by another even
// when the numbers coincide.
//
// # Construction
//
// All mutation goes through the Define and Assert methods, which follow one
// pattern:
//
//  1. Build the candidate term
//  2. Validate it: every reachable IRI must be bound in this ontology
//  3. Return the stored equal term if one exists, otherwise insert it
//
// A failed validation returns a *ForeignReferenceError and leaves every
// collection untouched.
//
// # Equality
//
// Terms compare structurally (Equal). Collections key terms by a
// domain-separated SHA-256 of their canonical encoding (see package ir) and
// confirm every key hit with Equal.
//
// # Queries
//
// DirectSubclassesOf and IsDirectSubclassOf answer from asserted axioms only;
// there is no reasoning and no transitive closure.
package ontology
