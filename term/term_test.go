package term

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermAccessors(t *testing.T) {
	id := LexicalIDTerm(LexicalIRI("http://example.org/a"))
	lit := LexicalLiteralTerm(StringLiteral("hello"))

	require.True(t, id.IsID())
	require.False(t, id.IsLiteral())
	gotID, ok := id.AsID()
	require.True(t, ok)
	assert.Equal(t, LexicalIRI("http://example.org/a"), gotID)
	_, ok = id.AsLiteral()
	assert.False(t, ok)

	require.True(t, lit.IsLiteral())
	gotLit, ok := lit.AsLiteral()
	require.True(t, ok)
	assert.Equal(t, "hello", gotLit.Value())
	_, ok = lit.AsID()
	assert.False(t, ok)
}

func TestTermCompare(t *testing.T) {
	blank := LexicalIDTerm(LexicalBlank("_:b0"))
	iri := LexicalIDTerm(LexicalIRI("http://example.org/a"))
	lit := LexicalLiteralTerm(StringLiteral("a"))

	// total order: blank < IRI < literal
	assert.Negative(t, blank.Compare(iri))
	assert.Negative(t, iri.Compare(lit))
	assert.Negative(t, blank.Compare(lit))
	assert.Positive(t, lit.Compare(blank))
	assert.Zero(t, iri.Compare(iri))
}

func TestTermTransparentHash(t *testing.T) {
	seed := maphash.MakeSeed()
	id := LexicalIRI("http://example.org/a")
	lit := StringLiteral("hello")

	assert.Equal(t, id.Hash(seed), LexicalIDTerm(id).Hash(seed))
	assert.Equal(t, lit.Hash(seed), LexicalLiteralTerm(lit).Hash(seed))
}

func TestTermMapKey(t *testing.T) {
	a := LexicalIDTerm(LexicalIRI("http://example.org/a"))
	b := LexicalLiteralTerm(StringLiteral("hello"))

	counts := map[LexicalTerm]int{a: 1, b: 2}
	assert.Equal(t, 1, counts[LexicalIDTerm(LexicalIRI("http://example.org/a"))])
	assert.Equal(t, 2, counts[LexicalLiteralTerm(StringLiteral("hello"))])
}

func TestMapTerm(t *testing.T) {
	lit := LexicalLiteralTerm(StringLiteral("hello"))
	mapped := MapTerm(lit,
		func(id LexicalID) LexicalID { return id },
		func(l LexicalLiteral) LexicalLiteral { return TypedLiteral(l.Value(), XsdAnyURI) },
	)
	got, ok := mapped.AsLiteral()
	require.True(t, ok)
	datatype, ok := got.Type().DatatypeIRI()
	require.True(t, ok)
	assert.Equal(t, XsdAnyURI, datatype)
}
