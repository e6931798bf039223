package generator

import (
	"fmt"
	"math"

	"github.com/c360/semterms/errors"
	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

// NodeVocabulary is the interning capability a generator needs.
type NodeVocabulary interface {
	vocabulary.IriVocabularyMut
	vocabulary.BlankVocabularyMut
}

// Generator produces fresh node identifiers, interned in the given
// vocabulary.
type Generator interface {
	Next(voc NodeVocabulary) vocabulary.ID
}

// Blank generates numbered blank node identifiers with an optional
// prefix. A zero Blank is ready to use and counts from zero.
type Blank struct {
	prefix string
	count  uint64
}

// NewBlank creates a numbered generator with no prefix.
func NewBlank() *Blank {
	return &Blank{}
}

// NewBlankWithPrefix creates a numbered generator with the given
// prefix.
func NewBlankWithPrefix(prefix string) *Blank {
	return &Blank{prefix: prefix}
}

// NewBlankWithOffset creates a numbered generator starting at the
// given offset.
func NewBlankWithOffset(offset uint64) *Blank {
	return &Blank{count: offset}
}

// NewBlankFull creates a numbered generator with a prefix and a
// starting offset.
func NewBlankFull(prefix string, offset uint64) *Blank {
	return &Blank{prefix: prefix, count: offset}
}

// Prefix returns the generator's prefix.
func (g *Blank) Prefix() string {
	return g.prefix
}

// Count returns the number the next identifier will carry.
func (g *Blank) Count() uint64 {
	return g.count
}

// NextBlankID produces the next lexical blank node identifier.
// Exhausting the counter space is unrecoverable and panics.
func (g *Blank) NextBlankID() term.BlankID {
	if g.count == math.MaxUint64 {
		panic(errors.WrapFatal(errors.ErrCounterExhausted, "Generator", "NextBlankID", "identifier generation"))
	}
	id := term.BlankID(fmt.Sprintf("_:%s%d", g.prefix, g.count))
	g.count++
	return id
}

// Next produces the next identifier, interned as a blank node.
func (g *Blank) Next(voc NodeVocabulary) vocabulary.ID {
	return vocabulary.BlankNode(voc.InsertBlank(g.NextBlankID()))
}

var _ Generator = (*Blank)(nil)
