package interpretation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

func TestInterpretIRIIsStable(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	a := voc.InsertIRI("http://example.org/a")
	b := voc.InsertIRI("http://example.org/b")

	first := in.InterpretIRI(a)
	second := in.InterpretIRI(a)
	other := in.InterpretIRI(b)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, in.Len())
}

func TestDistinctNamespacesGetDistinctResources(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	iri := in.InterpretIRI(voc.InsertIRI("http://example.org/a"))
	blank := in.InterpretBlank(voc.InsertBlank("_:a"))

	assert.NotEqual(t, iri, blank)
}

func TestAnonymousResource(t *testing.T) {
	in := NewIndexed()

	r := in.AnonymousResource()
	assert.Empty(t, in.IRIsOf(r))
	assert.Empty(t, in.BlanksOf(r))
	assert.Empty(t, in.LiteralsOf(r))
	assert.Equal(t, 1, in.Len())
}

func TestAssignFoldsTermsIntoOneResource(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	canonical := voc.InsertIRI("http://example.org/drone-001")
	alias := voc.InsertIRI("http://example.org/alpha")
	skolem := voc.InsertBlank("_:drone")

	r := in.InterpretIRI(canonical)
	require.True(t, in.AssignIRI(r, alias))
	require.True(t, in.AssignBlank(r, skolem))

	got, ok := in.ResourceOfIRI(alias)
	require.True(t, ok)
	assert.Equal(t, r, got)
	got, ok = in.ResourceOfBlank(skolem)
	require.True(t, ok)
	assert.Equal(t, r, got)

	assert.Equal(t, []vocabulary.IriIndex{canonical, alias}, in.IRIsOf(r))
	assert.Equal(t, []vocabulary.BlankIndex{skolem}, in.BlanksOf(r))
}

func TestAssignRejectsBoundTerm(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	iri := voc.InsertIRI("http://example.org/a")
	r := in.InterpretIRI(iri)
	other := in.AnonymousResource()

	assert.False(t, in.AssignIRI(other, iri))
	assert.False(t, in.AssignIRI(r, iri))

	// the original binding is untouched
	got, ok := in.ResourceOfIRI(iri)
	require.True(t, ok)
	assert.Equal(t, r, got)
	assert.Empty(t, in.IRIsOf(other))
}

func TestReverseEnumerationIsRepeatable(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	r := in.InterpretIRI(voc.InsertIRI("http://example.org/a"))
	in.AssignIRI(r, voc.InsertIRI("http://example.org/b"))
	in.AssignIRI(r, voc.InsertIRI("http://example.org/c"))

	first := in.IRIsOf(r)
	second := in.IRIsOf(r)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)

	// returned slices are copies, mutating one leaves the state alone
	first[0] = vocabulary.IndexedIRI(99)
	assert.Equal(t, second, in.IRIsOf(r))
}

func TestInterpretLiteralSharesResource(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	lit := vocabulary.EmbedLiteral(voc, term.StringLiteral("hello"))

	first := in.InterpretTerm(voc, vocabulary.LiteralTerm(lit))
	second := in.InterpretTerm(voc, vocabulary.LiteralTerm(lit))
	assert.Equal(t, first, second)

	literals := in.LiteralsOf(first)
	require.Len(t, literals, 1)
	resolved, ok := voc.Literal(literals[0])
	require.True(t, ok)
	assert.Equal(t, lit, resolved)
}

func TestInterpretQuad(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	en, err := term.LangLiteral("chair", "en")
	require.NoError(t, err)
	lexical := term.NewQuad(
		term.LexicalIRI("http://example.org/s"),
		term.LexicalIRI(term.RdfType),
		term.LexicalLiteralTerm(en),
		term.LexicalIRI("http://example.org/g"),
	)

	q := in.InterpretQuad(voc, vocabulary.EmbedQuad(voc, lexical))
	graph, ok := q.Graph()
	require.True(t, ok)

	// four distinct terms, four distinct resources
	seen := map[Resource]struct{}{
		q.Subject():   {},
		q.Predicate(): {},
		q.Object():    {},
		graph:         {},
	}
	assert.Len(t, seen, 4)

	// interpreting again yields the identical quad
	assert.Equal(t, q, in.InterpretQuad(voc, vocabulary.EmbedQuad(voc, lexical)))
}

func TestInterpretQuadDefaultGraph(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	tr := term.NewTriple(
		term.LexicalIRI("http://example.org/s"),
		term.LexicalIRI("http://example.org/p"),
		term.LexicalIDTerm(term.LexicalIRI("http://example.org/o")),
	)

	q := in.InterpretQuad(voc, vocabulary.EmbedQuad(voc, tr.IntoDefaultQuad()))
	assert.True(t, q.IsDefaultGraph())
}

func TestResources(t *testing.T) {
	in := NewIndexed()
	voc := vocabulary.New()

	in.InterpretIRI(voc.InsertIRI("http://example.org/a"))
	in.InterpretBlank(voc.InsertBlank("_:b"))

	assert.Equal(t, []Resource{0, 1}, in.Resources())
}

func TestIdentity(t *testing.T) {
	voc := vocabulary.New()
	id := vocabulary.EmbedID(voc, term.LexicalIRI("http://example.org/a"))
	tr := term.NewTriple(id, id, vocabulary.IDTerm(id))

	var in Identity
	assert.Equal(t, id, in.InterpretID(id))
	assert.Equal(t, tr, in.InterpretTriple(tr))

	q := tr.IntoQuad(id)
	assert.Equal(t, q, in.InterpretQuad(q))
}
