package term

import (
	"fmt"
	"hash/maphash"
)

// Triple is an RDF statement: subject, predicate, object. The three
// positions are independently parameterized so lexical, interned, and
// interpreted statements share one shape.
type Triple[S Value[S], P Value[P], O Value[O]] struct {
	subject   S
	predicate P
	object    O
}

// NewTriple assembles a triple from its three components.
func NewTriple[S Value[S], P Value[P], O Value[O]](s S, p P, o O) Triple[S, P, O] {
	return Triple[S, P, O]{subject: s, predicate: p, object: o}
}

// Subject returns the subject component.
func (t Triple[S, P, O]) Subject() S {
	return t.subject
}

// Predicate returns the predicate component.
func (t Triple[S, P, O]) Predicate() P {
	return t.predicate
}

// Object returns the object component.
func (t Triple[S, P, O]) Object() O {
	return t.object
}

// IntoQuad places the triple in the given named graph.
func (t Triple[S, P, O]) IntoQuad(graph S) Quad[S, P, O, S] {
	return NewQuad(t.subject, t.predicate, t.object, graph)
}

// IntoDefaultQuad places the triple in the default graph.
func (t Triple[S, P, O]) IntoDefaultQuad() Quad[S, P, O, S] {
	return NewDefaultQuad[S, P, O, S](t.subject, t.predicate, t.object)
}

// Compare orders triples by subject, then predicate, then object.
func (t Triple[S, P, O]) Compare(other Triple[S, P, O]) int {
	if c := t.subject.Compare(other.subject); c != 0 {
		return c
	}
	if c := t.predicate.Compare(other.predicate); c != 0 {
		return c
	}
	return t.object.Compare(other.object)
}

// Hash returns a product hash over the three components.
func (t Triple[S, P, O]) Hash(seed maphash.Seed) uint64 {
	return CombineHashes(seed,
		t.subject.Hash(seed),
		t.predicate.Hash(seed),
		t.object.Hash(seed),
	)
}

// String returns the statement in subject predicate object form.
func (t Triple[S, P, O]) String() string {
	return fmt.Sprintf("%s %s %s", t.subject, t.predicate, t.object)
}

// MapTriple transforms each component of a triple independently.
func MapTriple[S Value[S], P Value[P], O Value[O], S2 Value[S2], P2 Value[P2], O2 Value[O2]](
	t Triple[S, P, O],
	sFn func(S) S2,
	pFn func(P) P2,
	oFn func(O) O2,
) Triple[S2, P2, O2] {
	return NewTriple(sFn(t.subject), pFn(t.predicate), oFn(t.object))
}
