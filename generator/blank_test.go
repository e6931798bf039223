package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semterms/errors"
	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

func TestBlankSequence(t *testing.T) {
	g := NewBlankWithPrefix("b")

	var got []term.BlankID
	for i := 0; i < 5; i++ {
		got = append(got, g.NextBlankID())
	}
	assert.Equal(t, []term.BlankID{"_:b0", "_:b1", "_:b2", "_:b3", "_:b4"}, got)
	assert.Equal(t, uint64(5), g.Count())
	assert.Equal(t, "b", g.Prefix())
}

func TestBlankNoPrefix(t *testing.T) {
	g := NewBlank()
	assert.Equal(t, term.BlankID("_:0"), g.NextBlankID())
}

func TestBlankOffset(t *testing.T) {
	g := NewBlankFull("b", 10)
	assert.Equal(t, term.BlankID("_:b10"), g.NextBlankID())
}

func TestBlankProducesValidIdentifiers(t *testing.T) {
	g := NewBlankWithPrefix("node")
	for i := 0; i < 100; i++ {
		id := g.NextBlankID()
		_, err := term.NewBlankID(string(id))
		require.NoError(t, err, "generated %s", id)
	}
}

func TestBlankInternsInVocabulary(t *testing.T) {
	g := NewBlankWithPrefix("b")
	voc := vocabulary.New()

	first := g.Next(voc)
	second := g.Next(voc)
	require.True(t, first.IsBlank())
	assert.NotEqual(t, first, second)

	idx, ok := first.AsBlank()
	require.True(t, ok)
	resolved, ok := voc.Blank(idx)
	require.True(t, ok)
	assert.Equal(t, term.BlankID("_:b0"), resolved)
}

func TestBlankExhaustionPanics(t *testing.T) {
	g := NewBlankWithOffset(math.MaxUint64)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on exhausted counter")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, errors.ErrCounterExhausted)
		assert.True(t, errors.IsFatal(err))
	}()
	g.NextBlankID()
}

func TestBlankUniqueAcrossMany(t *testing.T) {
	g := NewBlank()
	seen := make(map[term.BlankID]struct{})
	for i := 0; i < 1000; i++ {
		id := g.NextBlankID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate %s at %d", id, i)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}
