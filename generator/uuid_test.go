package generator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

func TestUUIDv4Distinct(t *testing.T) {
	g := NewUUIDv4()

	seen := make(map[term.IRI]struct{})
	for i := 0; i < 100; i++ {
		iri := g.NextIRI()
		assert.True(t, strings.HasPrefix(string(iri), "urn:uuid:"), "got %s", iri)
		seen[iri] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestUUIDNameBasedIsDeterministic(t *testing.T) {
	tests := []struct {
		name string
		make func() *UUID
	}{
		{name: "v3", make: func() *UUID { return NewUUIDv3(uuid.NameSpaceURL, "http://example.org/a") }},
		{name: "v5", make: func() *UUID { return NewUUIDv5(uuid.NameSpaceURL, "http://example.org/a") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.make().NextIRI()
			second := tt.make().NextIRI()
			assert.Equal(t, first, second)
			assert.True(t, strings.HasPrefix(string(first), "urn:uuid:"))
		})
	}
}

func TestUUIDv3AndV5Differ(t *testing.T) {
	v3 := NewUUIDv3(uuid.NameSpaceURL, "http://example.org/a").NextIRI()
	v5 := NewUUIDv5(uuid.NameSpaceURL, "http://example.org/a").NextIRI()
	assert.NotEqual(t, v3, v5)
}

func TestUUIDInternsInVocabulary(t *testing.T) {
	g := NewUUIDv5(uuid.NameSpaceURL, "http://example.org/a")
	voc := vocabulary.New()

	id := g.Next(voc)
	require.True(t, id.IsIRI())

	idx, ok := id.AsIRI()
	require.True(t, ok)
	resolved, ok := voc.IRI(idx)
	require.True(t, ok)
	assert.Equal(t, g.NextIRI(), resolved)
}
