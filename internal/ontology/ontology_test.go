package ontology

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ontocore/internal/testutil"
)

func TestDefineClass_Deduplicates(t *testing.T) {
	o := newTestOntology(t)
	iri := o.Intern("Animal")

	c1, err := o.DefineClass(iri)
	require.NoError(t, err)
	c2, err := o.DefineClass(iri)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, []Class{{IRI: iri}}, o.Classes())
	assert.True(t, o.HasClass(c1))
}

func TestDefineObjectProperty_Deduplicates(t *testing.T) {
	o := newTestOntology(t)
	iri := o.Intern("hasPart")

	p1 := o.MustDefineObjectProperty(iri)
	p2 := o.MustDefineObjectProperty(iri)

	assert.Equal(t, p1, p2)
	assert.Len(t, o.ObjectProperties(), 1)
	assert.True(t, o.HasObjectProperty(p1))
}

func TestDefine_SameIRIAsClassAndProperty(t *testing.T) {
	o := newTestOntology(t)
	iri := o.Intern("partOf")

	o.MustDefineClass(iri)
	o.MustDefineObjectProperty(iri)

	stats := o.Stats()
	assert.Equal(t, 1, stats.Classes)
	assert.Equal(t, 1, stats.ObjectProperties, "kinds live in separate collections")
}

func TestAssertSubClass_Deduplicates(t *testing.T) {
	f := newAnimals(t)

	ax1, err := f.o.AssertSubClass(f.animal, f.dog)
	require.NoError(t, err)
	ax2, err := f.o.AssertSubClassExpr(f.animal, f.dog)
	require.NoError(t, err)

	assert.True(t, Equal(ax1, ax2))
	assert.Equal(t, 1, f.o.Stats().SubClassAxioms)
	assert.Equal(t, SubClass{Superclass: f.animal, Subclass: f.dog}, f.o.SubClassAxioms()[0])
}

func TestAssertSubClass_PairIsOrdered(t *testing.T) {
	f := newAnimals(t)

	f.o.MustAssertSubClass(f.animal, f.dog)
	f.o.MustAssertSubClass(f.dog, f.animal)

	assert.Equal(t, 2, f.o.Stats().SubClassAxioms)
}

func TestDefineSome_Deduplicates(t *testing.T) {
	f := newAnimals(t)

	s1, err := f.o.DefineSome(f.hasPart, f.dog)
	require.NoError(t, err)
	s2, err := f.o.DefineSomeExpr(f.hasPart, f.dog)
	require.NoError(t, err)

	assert.True(t, Equal(s1, s2))
	assert.Equal(t, []Some{{Property: f.hasPart, Filler: f.dog}}, f.o.SomeExpressions())
}

func TestDefineSomeExpr_NestedFiller(t *testing.T) {
	f := newAnimals(t)

	inner := f.o.MustDefineSome(f.hasPart, f.cat)
	outer := f.o.MustDefineSomeExpr(f.hasPart, inner)
	again := f.o.MustDefineSomeExpr(f.hasPart, Some{Property: f.hasPart, Filler: f.cat})

	assert.True(t, Equal(outer, again), "structurally equal nested fillers collapse")
	assert.Equal(t, 2, f.o.Stats().Some)
}

func TestDefineAndOr_Deduplicate(t *testing.T) {
	f := newAnimals(t)

	a1 := must(f.o.DefineAnd(f.dog, f.cat))
	a2 := must(f.o.DefineAnd(f.dog, f.cat))
	a3 := must(f.o.DefineAnd(f.cat, f.dog))
	o1 := must(f.o.DefineOr(f.dog, f.cat))

	assert.True(t, Equal(a1, a2))
	assert.False(t, Equal(a1, a3), "operand order is part of identity")
	assert.False(t, Equal(a1, o1), "And and Or never compare equal")

	stats := f.o.Stats()
	assert.Equal(t, 2, stats.And)
	assert.Equal(t, 1, stats.Or)
}

func TestDefineOr_KeepsDuplicateOperands(t *testing.T) {
	f := newAnimals(t)

	or := must(f.o.DefineOr(f.dog, f.dog))
	assert.Len(t, or.Operands, 2)
	assert.False(t, Equal(or, Or{Operands: []ClassExpression{f.dog}}))
}

func TestDefineAnd_EmptyIsVacuouslyValid(t *testing.T) {
	o := newTestOntology(t)

	and, err := o.DefineAnd()
	require.NoError(t, err)
	or, err := o.DefineOr()
	require.NoError(t, err)

	assert.Empty(t, and.Operands)
	assert.Empty(t, or.Operands)
	assert.Equal(t, 1, o.Stats().And)
	assert.Equal(t, 1, o.Stats().Or)

	// nil and empty operand lists are the same term
	_, err = o.DefineAnd([]ClassExpression{}...)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Stats().And)
}

func TestDefineNot(t *testing.T) {
	f := newAnimals(t)

	n1 := must(f.o.DefineNot(f.dog))
	n2 := must(f.o.DefineNot(Class{IRI: f.dog.IRI}))

	assert.True(t, Equal(n1, n2))
	assert.Equal(t, []Not{{Operand: f.dog}}, f.o.NotExpressions())
}

func TestCompoundSubClassAxiom(t *testing.T) {
	f := newAnimals(t)

	some := f.o.MustDefineSome(f.hasPart, f.cat)
	and := must(f.o.DefineAnd(f.dog, some))
	ax := f.o.MustAssertSubClassExpr(f.animal, and)

	assert.True(t, f.o.IsDirectSubclassOf(f.animal, and))
	assert.True(t, f.o.IsDirectSubclassOf(f.animal, And{Operands: []ClassExpression{
		f.dog, Some{Property: f.hasPart, Filler: f.cat},
	}}))
	assert.True(t, Equal(ax.Subclass, and))
}

func TestCrossInstance_Rejected(t *testing.T) {
	gen := testutil.NewSequentialTagGenerator()
	o1 := newTestOntology(t, WithInstanceTags(gen))
	o2 := newTestOntology(t, WithInstanceTags(gen))

	// Same names, same numbers, different ontologies.
	foreign := o1.Intern("Animal")
	local := o2.Intern("Animal")
	require.Equal(t, foreign.Number(), local.Number())

	foreignClass := o1.MustDefineClass(foreign)
	localClass := o2.MustDefineClass(local)
	localProp := o2.MustDefineObjectProperty(o2.Intern("hasPart"))
	before := o2.Stats()

	tests := []struct {
		name string
		call func() error
		kind Kind
		path string
	}{
		{"DefineClass", func() error { _, err := o2.DefineClass(foreign); return err }, KindClass, "class"},
		{"DefineObjectProperty", func() error { _, err := o2.DefineObjectProperty(foreign); return err }, KindObjectProperty, "object_property"},
		{"AssertSubClass superclass", func() error { _, err := o2.AssertSubClass(foreignClass, localClass); return err }, KindClass, "subclass.superclass"},
		{"AssertSubClass subclass", func() error { _, err := o2.AssertSubClass(localClass, foreignClass); return err }, KindClass, "subclass.subclass"},
		{"DefineSome property", func() error {
			_, err := o2.DefineSome(ObjectProperty{IRI: foreign}, localClass)
			return err
		}, KindObjectProperty, "some.property"},
		{"DefineSome filler", func() error { _, err := o2.DefineSome(localProp, foreignClass); return err }, KindClass, "some.filler"},
		{"DefineAnd", func() error { _, err := o2.DefineAnd(localClass, foreignClass); return err }, KindClass, "and.operands[1]"},
		{"DefineOr", func() error { _, err := o2.DefineOr(foreignClass); return err }, KindClass, "or.operands[0]"},
		{"DefineNot", func() error { _, err := o2.DefineNot(foreignClass); return err }, KindClass, "not.operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, IsForeignReference(err))

			var fe *ForeignReferenceError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, ErrCodeForeignReference, fe.Code)
			assert.Equal(t, tt.kind, fe.Kind)
			assert.Equal(t, foreign, fe.IRI)
			assert.Equal(t, tt.path, fe.Path)
			assert.Equal(t, o2.Tag(), fe.Ontology)
			assert.Contains(t, err.Error(), "issued by "+testutil.Tag(1).String())

			assert.Equal(t, before, o2.Stats(), "a rejected term must not alter any collection")
		})
	}
}

func TestRecursiveValidation_ForeignFiller(t *testing.T) {
	o1 := newTestOntology(t)
	o2 := newTestOntology(t)

	prop := o2.MustDefineObjectProperty(o2.Intern("hasPart"))
	local := o2.MustDefineClass(o2.Intern("Dog"))
	foreign := o1.MustDefineClass(o1.Intern("Dog"))

	deep := Some{Property: prop, Filler: And{Operands: []ClassExpression{
		local,
		Not{Operand: Or{Operands: []ClassExpression{local, foreign}}},
	}}}

	_, err := o2.DefineSomeExpr(prop, deep)
	require.Error(t, err)

	var fe *ForeignReferenceError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "some.filler.filler.operands[1].operand.operands[1]", fe.Path)
	assert.Equal(t, 0, o2.Stats().Some)
}

func TestValidate_NilExpressions(t *testing.T) {
	f := newAnimals(t)
	before := f.o.Stats()

	_, err := f.o.AssertSubClassExpr(nil, f.dog)
	assert.ErrorIs(t, err, ErrNilExpression)
	assert.Contains(t, err.Error(), "subclass.superclass")

	_, err = f.o.DefineSomeExpr(f.hasPart, nil)
	assert.ErrorIs(t, err, ErrNilExpression)

	_, err = f.o.DefineAnd(f.dog, nil)
	assert.ErrorIs(t, err, ErrNilExpression)
	assert.Contains(t, err.Error(), "and.operands[1]")

	_, err = f.o.DefineNot(nil)
	assert.ErrorIs(t, err, ErrNilExpression)

	assert.ErrorIs(t, f.o.Validate(nil), ErrNilExpression)
	assert.False(t, IsForeignReference(err))
	assert.Equal(t, before, f.o.Stats())
}

func TestValidate_DirectTerms(t *testing.T) {
	f := newAnimals(t)
	other := newTestOntology(t)
	foreign := other.Intern("Animal")

	assert.NoError(t, f.o.Validate(f.animal.IRI))
	assert.NoError(t, f.o.Validate(f.animal))
	assert.NoError(t, f.o.Validate(f.hasPart))
	assert.NoError(t, f.o.Validate(SubClass{Superclass: f.animal, Subclass: f.dog}),
		"validation does not require the axiom to be stored")
	assert.NoError(t, f.o.Validate(Class{IRI: f.o.Intern("Undefined")}),
		"a bound IRI is valid even if no class was defined for it")

	err := f.o.Validate(foreign)
	require.Error(t, err)
	var fe *ForeignReferenceError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindIRI, fe.Kind)
	assert.Equal(t, "iri", fe.Path)
}

func TestIsForeignReference_Wrapped(t *testing.T) {
	o := newTestOntology(t)
	err := o.Validate(IRI{n: 5})
	require.Error(t, err)

	wrapped := fmt.Errorf("loading axioms: %w", err)
	assert.True(t, IsForeignReference(wrapped))
	assert.False(t, IsForeignReference(errors.New("other")))
	assert.False(t, IsForeignReference(nil))
	assert.NotContains(t, err.Error(), "issued by", "zero owner is not reported")
}

func TestMust_PanicsOnForeignReference(t *testing.T) {
	o1 := newTestOntology(t)
	o2 := newTestOntology(t)
	foreign := o1.Intern("Animal")
	c := o1.MustDefineClass(foreign)
	p := o1.MustDefineObjectProperty(o1.Intern("hasPart"))

	assert.Panics(t, func() { o2.MustDefineClass(foreign) })
	assert.Panics(t, func() { o2.MustDefineObjectProperty(foreign) })
	assert.Panics(t, func() { o2.MustAssertSubClass(c, c) })
	assert.Panics(t, func() { o2.MustAssertSubClassExpr(c, c) })
	assert.Panics(t, func() { o2.MustDefineSome(p, c) })
	assert.Panics(t, func() { o2.MustDefineSomeExpr(p, c) })
	assert.Panics(t, func() { o2.MustDefineAnd(c) })
	assert.Panics(t, func() { o2.MustDefineOr(c) })
	assert.Panics(t, func() { o2.MustDefineNot(c) })
	assert.Equal(t, Stats{}, o2.Stats())

	assert.NotPanics(t, func() { o1.MustDefineNot(o1.MustDefineOr(o1.MustDefineAnd(c))) })
}

func TestStore_CallerCannotMutateStoredTerms(t *testing.T) {
	f := newAnimals(t)

	operands := []ClassExpression{f.dog, f.cat}
	and := must(f.o.DefineAnd(operands...))
	operands[0] = f.animal
	and.Operands[1] = f.animal

	stored := f.o.AndExpressions()
	require.Len(t, stored, 1)
	assert.Equal(t, []ClassExpression{f.dog, f.cat}, stored[0].Operands)

	stored[0].Operands[0] = f.animal
	assert.Equal(t, []ClassExpression{f.dog, f.cat}, f.o.AndExpressions()[0].Operands)
}

func TestStore_ConcurrentDefinitions(t *testing.T) {
	f := newAnimals(t)
	const goroutines = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.o.MustAssertSubClass(f.animal, f.dog)
			f.o.MustDefineSome(f.hasPart, f.cat)
			_ = f.o.DirectSubclassesOf(f.animal)
		}()
	}
	wg.Wait()

	stats := f.o.Stats()
	assert.Equal(t, 1, stats.SubClassAxioms)
	assert.Equal(t, 1, stats.Some)
}
