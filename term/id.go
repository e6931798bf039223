package term

import (
	"hash/maphash"
	"strings"

	"github.com/c360/semterms/errors"
)

// IRI is a lexical Internationalized Resource Identifier.
type IRI string

// Compare orders IRIs lexicographically.
func (i IRI) Compare(other IRI) int {
	return strings.Compare(string(i), string(other))
}

// Hash returns a seed-keyed hash of the IRI.
func (i IRI) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, string(i))
}

// String returns the raw IRI without angle brackets.
func (i IRI) String() string {
	return string(i)
}

// blankPrefix is the lexical marker every blank node identifier starts with.
const blankPrefix = "_:"

// BlankID is a lexical blank node identifier, including the "_:" prefix.
type BlankID string

// NewBlankID validates s as a blank node identifier. The identifier
// must start with "_:" followed by a non-empty name.
func NewBlankID(s string) (BlankID, error) {
	if !strings.HasPrefix(s, blankPrefix) || len(s) == len(blankPrefix) {
		return "", errors.WrapInvalid(errors.ErrInvalidBlankID, "BlankID", "NewBlankID", "validation of "+s)
	}
	return BlankID(s), nil
}

// Name returns the identifier without the "_:" prefix.
func (b BlankID) Name() string {
	return strings.TrimPrefix(string(b), blankPrefix)
}

// Compare orders blank node identifiers lexicographically.
func (b BlankID) Compare(other BlankID) int {
	return strings.Compare(string(b), string(other))
}

// Hash returns a seed-keyed hash of the identifier.
func (b BlankID) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, string(b))
}

// String returns the identifier including the "_:" prefix.
func (b BlankID) String() string {
	return string(b)
}

// IDKind discriminates the two cases of an ID.
type IDKind uint8

const (
	// KindBlank marks an ID holding a blank node identifier.
	KindBlank IDKind = iota
	// KindIRI marks an ID holding an IRI.
	KindIRI
)

// ID is an RDF node identifier: either a blank node identifier or an
// IRI, parameterized over the concrete payload representation.
//
// Hashing is transparent: the hash of an ID equals the hash of its
// payload, with no discriminant mixed in. Ordering is total: every
// blank node identifier precedes every IRI regardless of payload;
// within one case, payload order applies.
type ID[I Value[I], B Value[B]] struct {
	kind  IDKind
	iri   I
	blank B
}

// IRINode wraps an IRI payload as a node identifier.
func IRINode[I Value[I], B Value[B]](iri I) ID[I, B] {
	return ID[I, B]{kind: KindIRI, iri: iri}
}

// BlankNode wraps a blank node payload as a node identifier.
func BlankNode[I Value[I], B Value[B]](blank B) ID[I, B] {
	return ID[I, B]{kind: KindBlank, blank: blank}
}

// Kind returns the discriminant of the identifier.
func (id ID[I, B]) Kind() IDKind {
	return id.kind
}

// IsBlank reports whether the identifier is a blank node identifier.
func (id ID[I, B]) IsBlank() bool {
	return id.kind == KindBlank
}

// IsIRI reports whether the identifier is an IRI.
func (id ID[I, B]) IsIRI() bool {
	return id.kind == KindIRI
}

// AsBlank unpacks the blank node payload.
func (id ID[I, B]) AsBlank() (B, bool) {
	if id.kind != KindBlank {
		var zero B
		return zero, false
	}
	return id.blank, true
}

// AsIRI unpacks the IRI payload.
func (id ID[I, B]) AsIRI() (I, bool) {
	if id.kind != KindIRI {
		var zero I
		return zero, false
	}
	return id.iri, true
}

// Compare orders identifiers: blank node identifiers before IRIs, then
// by payload.
func (id ID[I, B]) Compare(other ID[I, B]) int {
	switch {
	case id.kind == KindBlank && other.kind == KindBlank:
		return id.blank.Compare(other.blank)
	case id.kind == KindBlank:
		return -1
	case other.kind == KindBlank:
		return 1
	default:
		return id.iri.Compare(other.iri)
	}
}

// Hash returns the hash of the payload alone.
func (id ID[I, B]) Hash(seed maphash.Seed) uint64 {
	if id.kind == KindBlank {
		return id.blank.Hash(seed)
	}
	return id.iri.Hash(seed)
}

// String returns the payload's surface form.
func (id ID[I, B]) String() string {
	if id.kind == KindBlank {
		return id.blank.String()
	}
	return id.iri.String()
}

// MapID transforms both possible payloads of an identifier, preserving
// its case: only the function matching the populated case is applied.
func MapID[I Value[I], B Value[B], I2 Value[I2], B2 Value[B2]](
	id ID[I, B],
	iriFn func(I) I2,
	blankFn func(B) B2,
) ID[I2, B2] {
	if id.kind == KindBlank {
		return BlankNode[I2, B2](blankFn(id.blank))
	}
	return IRINode[I2, B2](iriFn(id.iri))
}
