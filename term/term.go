package term

import "hash/maphash"

// TermKind discriminates the two cases of a term.
type TermKind uint8

const (
	// KindID marks a term holding a node identifier.
	KindID TermKind = iota
	// KindLiteral marks a term holding a literal.
	KindLiteral
)

// Term is either a node identifier or a literal, parameterized over
// both representations. Identifiers occupy subject and predicate
// positions; literals appear only as objects.
type Term[N Value[N], L Value[L]] struct {
	kind    TermKind
	id      N
	literal L
}

// TermID wraps a node identifier as a term.
func TermID[N Value[N], L Value[L]](id N) Term[N, L] {
	return Term[N, L]{kind: KindID, id: id}
}

// TermLiteral wraps a literal as a term.
func TermLiteral[N Value[N], L Value[L]](lit L) Term[N, L] {
	return Term[N, L]{kind: KindLiteral, literal: lit}
}

// Kind returns the discriminant of the term.
func (t Term[N, L]) Kind() TermKind {
	return t.kind
}

// IsID reports whether the term is a node identifier.
func (t Term[N, L]) IsID() bool {
	return t.kind == KindID
}

// IsLiteral reports whether the term is a literal.
func (t Term[N, L]) IsLiteral() bool {
	return t.kind == KindLiteral
}

// AsID unpacks the node identifier.
func (t Term[N, L]) AsID() (N, bool) {
	if t.kind != KindID {
		var zero N
		return zero, false
	}
	return t.id, true
}

// AsLiteral unpacks the literal.
func (t Term[N, L]) AsLiteral() (L, bool) {
	if t.kind != KindLiteral {
		var zero L
		return zero, false
	}
	return t.literal, true
}

// Compare orders terms: identifiers before literals, then by payload.
func (t Term[N, L]) Compare(other Term[N, L]) int {
	switch {
	case t.kind == KindID && other.kind == KindID:
		return t.id.Compare(other.id)
	case t.kind == KindID:
		return -1
	case other.kind == KindID:
		return 1
	default:
		return t.literal.Compare(other.literal)
	}
}

// Hash returns the hash of the payload alone, so a wrapped identifier
// hashes identically to the identifier itself.
func (t Term[N, L]) Hash(seed maphash.Seed) uint64 {
	if t.kind == KindLiteral {
		return t.literal.Hash(seed)
	}
	return t.id.Hash(seed)
}

// String returns the payload's surface form.
func (t Term[N, L]) String() string {
	if t.kind == KindLiteral {
		return t.literal.String()
	}
	return t.id.String()
}

// MapTerm transforms both payload representations of a term.
func MapTerm[N Value[N], L Value[L], N2 Value[N2], L2 Value[L2]](t Term[N, L], idFn func(N) N2, litFn func(L) L2) Term[N2, L2] {
	if t.kind == KindLiteral {
		return TermLiteral[N2, L2](litFn(t.literal))
	}
	return TermID[N2, L2](idFn(t.id))
}
