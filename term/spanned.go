package term

import (
	"fmt"
	"hash/maphash"
)

// Span is a half-open byte range [Start, End) into a source document.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a span from byte offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns the range in start..end form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a value with the source span it was parsed from.
// Comparison and hashing strip the span: two occurrences of the same
// term at different positions compare equal, so spanned terms can key
// maps and sort alongside unspanned ones.
type Spanned[T Value[T]] struct {
	value T
	span  Span
}

// WithSpan attaches a source span to a value.
func WithSpan[T Value[T]](value T, span Span) Spanned[T] {
	return Spanned[T]{value: value, span: span}
}

// Value returns the wrapped value.
func (s Spanned[T]) Value() T {
	return s.value
}

// Span returns the source location.
func (s Spanned[T]) Span() Span {
	return s.span
}

// Strip discards the span.
func (s Spanned[T]) Strip() T {
	return s.value
}

// Compare orders by the wrapped value only.
func (s Spanned[T]) Compare(other Spanned[T]) int {
	return s.value.Compare(other.value)
}

// Hash returns the hash of the wrapped value only.
func (s Spanned[T]) Hash(seed maphash.Seed) uint64 {
	return s.value.Hash(seed)
}

// String returns the wrapped value's surface form.
func (s Spanned[T]) String() string {
	return s.value.String()
}

// MapSpanned transforms the wrapped value, keeping the span.
func MapSpanned[T Value[T], T2 Value[T2]](s Spanned[T], fn func(T) T2) Spanned[T2] {
	return Spanned[T2]{value: fn(s.value), span: s.span}
}

// StripTriple discards the spans from every position of a triple.
func StripTriple[S Value[S], P Value[P], O Value[O]](tr Triple[Spanned[S], Spanned[P], Spanned[O]]) Triple[S, P, O] {
	return MapTriple(tr, Spanned[S].Strip, Spanned[P].Strip, Spanned[O].Strip)
}

// StripQuad discards the spans from every position of a quad.
func StripQuad[S Value[S], P Value[P], O Value[O], G Value[G]](q Quad[Spanned[S], Spanned[P], Spanned[O], Spanned[G]]) Quad[S, P, O, G] {
	return MapQuad(q, Spanned[S].Strip, Spanned[P].Strip, Spanned[O].Strip, Spanned[G].Strip)
}
