package ontology

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// OntologyID is the optional ontology-level identity. A zero IRI means the
// component is absent.
type OntologyID struct {
	IRI        IRI
	VersionIRI IRI
}

// Ontology is the root container and validation authority.
//
// It owns the interning table (a bijection between IRI numbers and names)
// and the deduplicated term collections. Every term stored in a collection
// references only IRIs bound in the same instance's table.
//
// Thread-safety model:
//   - Intern and every Define/Assert method take the write lock, so
//     validation and insertion happen as one step
//   - Resolve, Validate and the query methods take the read lock
//
// The store is append-only: nothing is removed or mutated after insertion.
type Ontology struct {
	mu sync.RWMutex

	tag       uuid.UUID
	alloc     Allocator
	logger    *slog.Logger
	normalize bool

	names map[uint64]string
	ids   map[string]uint64

	id             OntologyID
	pendingIRI     string
	pendingVersion string

	classes          *termSet[Class]
	objectProperties *termSet[ObjectProperty]
	subClasses       *termSet[SubClass]
	some             *termSet[Some]
	and              *termSet[And]
	or               *termSet[Or]
	not              *termSet[Not]
}

// Option configures an Ontology.
type Option func(*Ontology)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Ontology) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAllocator replaces the private identifier counter.
//
// Sharing one allocator between ontologies makes identifier numbers unique
// across them. IRIs still belong to the instance that issued them.
func WithAllocator(a Allocator) Option {
	return func(o *Ontology) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithInstanceTags sets the generator for the instance tag.
// Default: UUIDv7Generator.
func WithInstanceTags(gen InstanceTagGenerator) Option {
	return func(o *Ontology) {
		if gen != nil {
			o.tag = gen.Generate()
		}
	}
}

// WithNameNormalization makes Intern NFC-normalise names, so canonically
// equivalent Unicode spellings share one IRI. Resolve then returns the
// normalised spelling.
func WithNameNormalization() Option {
	return func(o *Ontology) {
		o.normalize = true
	}
}

// WithOntologyIRI interns name and records it as the ontology IRI.
func WithOntologyIRI(name string) Option {
	return func(o *Ontology) {
		o.pendingIRI = name
	}
}

// WithVersionIRI interns name and records it as the version IRI.
func WithVersionIRI(name string) Option {
	return func(o *Ontology) {
		o.pendingVersion = name
	}
}

// New creates an empty ontology.
func New(opts ...Option) *Ontology {
	o := &Ontology{
		alloc:            NewCounter(),
		logger:           slog.Default(),
		names:            make(map[uint64]string),
		ids:              make(map[string]uint64),
		classes:          newTermSet[Class](),
		objectProperties: newTermSet[ObjectProperty](),
		subClasses:       newTermSet[SubClass](),
		some:             newTermSet[Some](),
		and:              newTermSet[And](),
		or:               newTermSet[Or](),
		not:              newTermSet[Not](),
	}

	for _, opt := range opts {
		opt(o)
	}
	if o.tag == uuid.Nil {
		o.tag = UUIDv7Generator{}.Generate()
	}
	o.logger = o.logger.With("ontology", o.tag.String())

	if o.pendingIRI != "" {
		o.id.IRI = o.intern(o.pendingIRI)
	}
	if o.pendingVersion != "" {
		o.id.VersionIRI = o.intern(o.pendingVersion)
	}

	return o
}

// Tag returns the instance tag carried by every IRI this ontology issues.
func (o *Ontology) Tag() uuid.UUID {
	return o.tag
}

// Intern returns the IRI bound to name, allocating one if name is new.
//
// Interning is idempotent: the same name always yields the same IRI.
func (o *Ontology) Intern(name string) IRI {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.intern(name)
}

func (o *Ontology) intern(name string) IRI {
	if o.normalize {
		name = norm.NFC.String(name)
	}
	if n, ok := o.ids[name]; ok {
		return IRI{owner: o.tag, n: n}
	}

	n := o.alloc.Next()
	for o.taken(n) {
		// A restarted allocator handed out a number this instance
		// already uses.
		n = o.alloc.Next()
	}
	o.names[n] = name
	o.ids[name] = n

	o.logger.Debug("iri interned", "iri", n, "name", name)
	return IRI{owner: o.tag, n: n}
}

func (o *Ontology) taken(n uint64) bool {
	_, ok := o.names[n]
	return ok || n == 0
}

// Lookup returns the IRI bound to name without allocating.
func (o *Ontology) Lookup(name string) (IRI, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.normalize {
		name = norm.NFC.String(name)
	}
	n, ok := o.ids[name]
	if !ok {
		return IRI{}, false
	}
	return IRI{owner: o.tag, n: n}, true
}

// Resolve returns the name bound to iri. It returns false if iri was not
// issued by this ontology.
func (o *Ontology) Resolve(iri IRI) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.resolve(iri)
}

func (o *Ontology) resolve(iri IRI) (string, bool) {
	if iri.owner != o.tag {
		return "", false
	}
	name, ok := o.names[iri.n]
	return name, ok
}

// ContainsIRI reports whether iri is bound in this ontology.
func (o *Ontology) ContainsIRI(iri IRI) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.containsIRI(iri)
}

func (o *Ontology) containsIRI(iri IRI) bool {
	_, ok := o.resolve(iri)
	return ok
}

// ContainsName reports whether name has been interned.
func (o *Ontology) ContainsName(name string) bool {
	_, ok := o.Lookup(name)
	return ok
}

// Len returns the number of interned names.
func (o *Ontology) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.names)
}

// ID returns the ontology IRI and version IRI.
func (o *Ontology) ID() OntologyID {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.id
}

// SetID records the ontology IRI and version IRI. Zero IRIs clear the
// corresponding component; non-zero IRIs must be bound in this ontology.
func (o *Ontology) SetID(id OntologyID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !id.IRI.IsZero() {
		if err := o.check(id.IRI, "ontology.iri"); err != nil {
			return err
		}
	}
	if !id.VersionIRI.IsZero() {
		if err := o.check(id.VersionIRI, "ontology.version_iri"); err != nil {
			return err
		}
	}
	o.id = id
	return nil
}

// DefineClass returns the class named by iri, adding it if new.
func (o *Ontology) DefineClass(iri IRI) (Class, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.classes, Class{IRI: iri})
}

// DefineObjectProperty returns the object property named by iri, adding it
// if new.
func (o *Ontology) DefineObjectProperty(iri IRI) (ObjectProperty, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.objectProperties, ObjectProperty{IRI: iri})
}

// AssertSubClass asserts that sub is a subclass of super.
func (o *Ontology) AssertSubClass(super, sub Class) (SubClass, error) {
	return o.AssertSubClassExpr(super, sub)
}

// AssertSubClassExpr asserts that the expression sub is subsumed by super.
func (o *Ontology) AssertSubClassExpr(super, sub ClassExpression) (SubClass, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.subClasses, SubClass{Superclass: super, Subclass: sub})
}

// DefineSome returns the existential restriction of p to the class c.
func (o *Ontology) DefineSome(p ObjectProperty, c Class) (Some, error) {
	return o.DefineSomeExpr(p, c)
}

// DefineSomeExpr returns the existential restriction of p to filler.
func (o *Ontology) DefineSomeExpr(p ObjectProperty, filler ClassExpression) (Some, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.some, Some{Property: p, Filler: filler})
}

// DefineAnd returns the conjunction of operands, in the given order.
func (o *Ontology) DefineAnd(operands ...ClassExpression) (And, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.and, And{Operands: operands})
}

// DefineOr returns the disjunction of operands, in the given order.
// Operands are kept as given; duplicates are not folded.
func (o *Ontology) DefineOr(operands ...ClassExpression) (Or, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.or, Or{Operands: operands})
}

// DefineNot returns the complement of operand.
func (o *Ontology) DefineNot(operand ClassExpression) (Not, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return store(o, o.not, Not{Operand: operand})
}

// store validates v against o and then returns the stored equal term,
// inserting v if none exists. Callers must hold the write lock.
//
// On a validation failure no collection is touched.
func store[T Term](o *Ontology, set *termSet[T], v T) (T, error) {
	var zero T

	if err := o.validate(v); err != nil {
		o.logger.Warn("term rejected", "kind", v.Kind(), "error", err)
		return zero, err
	}

	stored, inserted, err := set.insert(v)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", v.Kind(), err)
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		msg := "term already present"
		if inserted {
			msg = "term inserted"
		}
		o.logger.Debug(msg, "kind", v.Kind(), "term", o.describe(stored))
	}
	return stored, nil
}

// MustDefineClass is like DefineClass but panics on error.
// Use when a foreign IRI is a programming error.
func (o *Ontology) MustDefineClass(iri IRI) Class {
	return must(o.DefineClass(iri))
}

// MustDefineObjectProperty is like DefineObjectProperty but panics on error.
func (o *Ontology) MustDefineObjectProperty(iri IRI) ObjectProperty {
	return must(o.DefineObjectProperty(iri))
}

// MustAssertSubClass is like AssertSubClass but panics on error.
func (o *Ontology) MustAssertSubClass(super, sub Class) SubClass {
	return must(o.AssertSubClass(super, sub))
}

// MustAssertSubClassExpr is like AssertSubClassExpr but panics on error.
func (o *Ontology) MustAssertSubClassExpr(super, sub ClassExpression) SubClass {
	return must(o.AssertSubClassExpr(super, sub))
}

// MustDefineSome is like DefineSome but panics on error.
func (o *Ontology) MustDefineSome(p ObjectProperty, c Class) Some {
	return must(o.DefineSome(p, c))
}

// MustDefineSomeExpr is like DefineSomeExpr but panics on error.
func (o *Ontology) MustDefineSomeExpr(p ObjectProperty, filler ClassExpression) Some {
	return must(o.DefineSomeExpr(p, filler))
}

func (o *Ontology) MustDefineAnd(operands ...ClassExpression) And {
	return must(o.DefineAnd(operands...))
}

func (o *Ontology) MustDefineOr(operands ...ClassExpression) Or {
	return must(o.DefineOr(operands...))
}

func (o *Ontology) MustDefineNot(operand ClassExpression) Not {
	return must(o.DefineNot(operand))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
