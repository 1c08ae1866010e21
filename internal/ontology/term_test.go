package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ontocore/internal/testutil"
)

func TestEqual(t *testing.T) {
	a := IRI{owner: testutil.Tag(1), n: 1}
	b := IRI{owner: testutil.Tag(1), n: 2}
	foreignA := IRI{owner: testutil.Tag(99), n: 1}

	ca, cb := Class{IRI: a}, Class{IRI: b}
	p := ObjectProperty{IRI: a}

	tests := []struct {
		name string
		x, y Term
		want bool
	}{
		{"same iri", a, a, true},
		{"different number", a, b, false},
		{"different owner", a, foreignA, false},
		{"class vs property same iri", ca, p, false},
		{"class vs iri", ca, a, false},
		{"some equal", Some{p, ca}, Some{p, Class{IRI: a}}, true},
		{"some filler differs", Some{p, ca}, Some{p, cb}, false},
		{"nested some", Some{p, Some{p, ca}}, Some{p, Some{p, ca}}, true},
		{"and equal", And{[]ClassExpression{ca, cb}}, And{[]ClassExpression{ca, cb}}, true},
		{"and order matters", And{[]ClassExpression{ca, cb}}, And{[]ClassExpression{cb, ca}}, false},
		{"and length", And{[]ClassExpression{ca}}, And{[]ClassExpression{ca, ca}}, false},
		{"and nil vs empty", And{}, And{Operands: []ClassExpression{}}, true},
		{"and vs or", And{[]ClassExpression{ca}}, Or{[]ClassExpression{ca}}, false},
		{"not", Not{ca}, Not{ca}, true},
		{"not vs operand", Not{ca}, ca, false},
		{"subclass", SubClass{ca, cb}, SubClass{ca, cb}, true},
		{"subclass swapped", SubClass{ca, cb}, SubClass{cb, ca}, false},
		{"nil operand", And{[]ClassExpression{nil}}, And{[]ClassExpression{nil}}, true},
		{"nil vs class operand", And{[]ClassExpression{nil}}, And{[]ClassExpression{ca}}, false},
		{"both nil", nil, nil, true},
		{"nil vs term", nil, ca, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.x, tt.y))
			assert.Equal(t, tt.want, Equal(tt.y, tt.x), "Equal must be symmetric")
		})
	}
}

func TestTermKey_MatchesEquality(t *testing.T) {
	f := newAnimals(t)

	k1, err := termKey(And{Operands: []ClassExpression{f.dog, Some{f.hasPart, f.cat}}})
	require.NoError(t, err)
	k2, err := termKey(And{Operands: []ClassExpression{f.dog, Some{f.hasPart, f.cat}}})
	require.NoError(t, err)
	k3, err := termKey(Or{Operands: []ClassExpression{f.dog, Some{f.hasPart, f.cat}}})
	require.NoError(t, err)
	kClass, err := termKey(f.dog)
	require.NoError(t, err)
	kProp, err := termKey(ObjectProperty{IRI: f.dog.IRI})
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, kClass, kProp, "domains separate kinds that share an IRI")
	assert.Len(t, k1, 64)

	_, err = termKey(Not{})
	assert.ErrorIs(t, err, ErrNilExpression)
}

func TestKinds(t *testing.T) {
	tests := []struct {
		term Term
		want Kind
	}{
		{IRI{}, KindIRI},
		{Class{}, KindClass},
		{ObjectProperty{}, KindObjectProperty},
		{Some{}, KindSome},
		{And{}, KindAnd},
		{Or{}, KindOr},
		{Not{}, KindNot},
		{SubClass{}, KindSubClass},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.term.Kind())
	}
}
