package vocabulary

import (
	"fmt"
	"hash/maphash"

	"github.com/c360/semterms/term"
)

// indexKind discriminates inline identifiers from arena positions.
type indexKind uint8

const (
	inlineKind indexKind = iota
	indexedKind
)

// IriIndex identifies an interned IRI. A well-known IRI is carried
// inline, every other IRI is an arena position. Inline indexes from
// different vocabularies with the same registration agree; arena
// positions are only meaningful to the vocabulary that issued them.
type IriIndex struct {
	kind   indexKind
	inline term.IRI
	pos    uint64
}

// InlineIRI returns the index of a well-known IRI.
func InlineIRI(iri term.IRI) IriIndex {
	return IriIndex{kind: inlineKind, inline: iri}
}

// IndexedIRI returns an arena-position IRI index.
func IndexedIRI(pos uint64) IriIndex {
	return IriIndex{kind: indexedKind, pos: pos}
}

// IsInline reports whether the index carries its IRI inline.
func (i IriIndex) IsInline() bool {
	return i.kind == inlineKind
}

// AsInline unpacks the inline IRI.
func (i IriIndex) AsInline() (term.IRI, bool) {
	if i.kind != inlineKind {
		return "", false
	}
	return i.inline, true
}

// AsPosition unpacks the arena position.
func (i IriIndex) AsPosition() (uint64, bool) {
	if i.kind != indexedKind {
		return 0, false
	}
	return i.pos, true
}

// Compare orders inline indexes before arena positions, then by
// payload.
func (i IriIndex) Compare(other IriIndex) int {
	switch {
	case i.kind == inlineKind && other.kind == inlineKind:
		return i.inline.Compare(other.inline)
	case i.kind == inlineKind:
		return -1
	case other.kind == inlineKind:
		return 1
	case i.pos < other.pos:
		return -1
	case i.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// Hash returns the hash of the payload alone.
func (i IriIndex) Hash(seed maphash.Seed) uint64 {
	if i.kind == inlineKind {
		return i.inline.Hash(seed)
	}
	return term.HashUint64(seed, i.pos)
}

// String returns the inline IRI or the arena position in debug form.
func (i IriIndex) String() string {
	if i.kind == inlineKind {
		return string(i.inline)
	}
	return fmt.Sprintf("iri(%d)", i.pos)
}

// BlankIndex identifies an interned blank node, with the same inline
// or arena-position split as IriIndex.
type BlankIndex struct {
	kind   indexKind
	inline term.BlankID
	pos    uint64
}

// InlineBlank returns the index of a well-known blank node.
func InlineBlank(blank term.BlankID) BlankIndex {
	return BlankIndex{kind: inlineKind, inline: blank}
}

// IndexedBlank returns an arena-position blank node index.
func IndexedBlank(pos uint64) BlankIndex {
	return BlankIndex{kind: indexedKind, pos: pos}
}

// IsInline reports whether the index carries its blank node inline.
func (b BlankIndex) IsInline() bool {
	return b.kind == inlineKind
}

// AsInline unpacks the inline blank node.
func (b BlankIndex) AsInline() (term.BlankID, bool) {
	if b.kind != inlineKind {
		return "", false
	}
	return b.inline, true
}

// AsPosition unpacks the arena position.
func (b BlankIndex) AsPosition() (uint64, bool) {
	if b.kind != indexedKind {
		return 0, false
	}
	return b.pos, true
}

// Compare orders inline indexes before arena positions, then by
// payload.
func (b BlankIndex) Compare(other BlankIndex) int {
	switch {
	case b.kind == inlineKind && other.kind == inlineKind:
		return b.inline.Compare(other.inline)
	case b.kind == inlineKind:
		return -1
	case other.kind == inlineKind:
		return 1
	case b.pos < other.pos:
		return -1
	case b.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// Hash returns the hash of the payload alone.
func (b BlankIndex) Hash(seed maphash.Seed) uint64 {
	if b.kind == inlineKind {
		return b.inline.Hash(seed)
	}
	return term.HashUint64(seed, b.pos)
}

// String returns the inline blank node or the arena position in debug
// form.
func (b BlankIndex) String() string {
	if b.kind == inlineKind {
		return string(b.inline)
	}
	return fmt.Sprintf("blank(%d)", b.pos)
}

// LiteralIndex identifies an interned literal by arena position.
// Literals have no inline form.
type LiteralIndex uint64

// Compare orders literal indexes numerically.
func (l LiteralIndex) Compare(other LiteralIndex) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// Hash returns a seed-keyed hash of the position.
func (l LiteralIndex) Hash(seed maphash.Seed) uint64 {
	return term.HashUint64(seed, uint64(l))
}

// String returns the arena position in debug form.
func (l LiteralIndex) String() string {
	return fmt.Sprintf("literal(%d)", uint64(l))
}
