package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderID(t *testing.T) {
	assert.Equal(t, "<http://example.org/a>", RenderID(LexicalIRI("http://example.org/a")))
	assert.Equal(t, "_:b0", RenderID(LexicalBlank("_:b0")))
}

func TestRenderLiteral(t *testing.T) {
	en, err := LangLiteral("hello", "en")
	require.NoError(t, err)

	tests := []struct {
		name string
		lit  LexicalLiteral
		want string
	}{
		{name: "plain string", lit: StringLiteral("hello"), want: `"hello"`},
		{name: "typed", lit: TypedLiteral("42", XsdInteger), want: `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{name: "language tagged", lit: en, want: `"hello"@en`},
		{name: "escapes", lit: StringLiteral("a\"b\\c\nd"), want: `"a\"b\\c\nd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderLiteral(tt.lit))
		})
	}
}

func TestRenderTripleAndQuad(t *testing.T) {
	tr := NewTriple(
		LexicalBlank("_:s"),
		LexicalIRI(RdfType),
		LexicalLiteralTerm(StringLiteral("thing")),
	)

	wantTriple := `_:s <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> "thing" .`
	assert.Equal(t, wantTriple, RenderTriple(tr))
	assert.Equal(t, wantTriple, RenderQuad(tr.IntoDefaultQuad()))

	q := tr.IntoQuad(LexicalIRI("http://example.org/g"))
	assert.Equal(t, `_:s <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> "thing" <http://example.org/g> .`, RenderQuad(q))
}
