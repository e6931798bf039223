package term

import (
	"fmt"
	"hash/maphash"
)

// Quad is a triple plus an optional graph label. An absent graph
// places the statement in the default graph. The graph is stored by
// value with a presence flag so quads stay comparable; the payload is
// zeroed whenever the flag is down, keeping == consistent with
// Compare.
type Quad[S Value[S], P Value[P], O Value[O], G Value[G]] struct {
	subject   S
	predicate P
	object    O
	graph     G
	hasGraph  bool
}

// NewQuad assembles a quad in the given named graph.
func NewQuad[S Value[S], P Value[P], O Value[O], G Value[G]](s S, p P, o O, g G) Quad[S, P, O, G] {
	return Quad[S, P, O, G]{subject: s, predicate: p, object: o, graph: g, hasGraph: true}
}

// NewDefaultQuad assembles a quad in the default graph.
func NewDefaultQuad[S Value[S], P Value[P], O Value[O], G Value[G]](s S, p P, o O) Quad[S, P, O, G] {
	return Quad[S, P, O, G]{subject: s, predicate: p, object: o}
}

// Subject returns the subject component.
func (q Quad[S, P, O, G]) Subject() S {
	return q.subject
}

// Predicate returns the predicate component.
func (q Quad[S, P, O, G]) Predicate() P {
	return q.predicate
}

// Object returns the object component.
func (q Quad[S, P, O, G]) Object() O {
	return q.object
}

// Graph unpacks the graph label; absent means the default graph.
func (q Quad[S, P, O, G]) Graph() (G, bool) {
	if !q.hasGraph {
		var zero G
		return zero, false
	}
	return q.graph, true
}

// IsDefaultGraph reports whether the quad sits in the default graph.
func (q Quad[S, P, O, G]) IsDefaultGraph() bool {
	return !q.hasGraph
}

// IntoTriple drops the graph label.
func (q Quad[S, P, O, G]) IntoTriple() Triple[S, P, O] {
	return NewTriple(q.subject, q.predicate, q.object)
}

// Compare orders quads by subject, predicate, object, then graph,
// with the default graph before every named graph.
func (q Quad[S, P, O, G]) Compare(other Quad[S, P, O, G]) int {
	if c := q.subject.Compare(other.subject); c != 0 {
		return c
	}
	if c := q.predicate.Compare(other.predicate); c != 0 {
		return c
	}
	if c := q.object.Compare(other.object); c != 0 {
		return c
	}
	switch {
	case !q.hasGraph && !other.hasGraph:
		return 0
	case !q.hasGraph:
		return -1
	case !other.hasGraph:
		return 1
	default:
		return q.graph.Compare(other.graph)
	}
}

// Hash returns a product hash over all four positions. Graph presence
// participates so a default-graph quad never collides structurally
// with its named-graph twin.
func (q Quad[S, P, O, G]) Hash(seed maphash.Seed) uint64 {
	if !q.hasGraph {
		return CombineHashes(seed,
			q.subject.Hash(seed),
			q.predicate.Hash(seed),
			q.object.Hash(seed),
		)
	}
	return CombineHashes(seed,
		q.subject.Hash(seed),
		q.predicate.Hash(seed),
		q.object.Hash(seed),
		q.graph.Hash(seed),
	)
}

// String returns the statement with the graph label appended when
// present.
func (q Quad[S, P, O, G]) String() string {
	if !q.hasGraph {
		return fmt.Sprintf("%s %s %s", q.subject, q.predicate, q.object)
	}
	return fmt.Sprintf("%s %s %s %s", q.subject, q.predicate, q.object, q.graph)
}

// MapQuad transforms each position of a quad independently. The graph
// function runs only when a graph label is present.
func MapQuad[S Value[S], P Value[P], O Value[O], G Value[G], S2 Value[S2], P2 Value[P2], O2 Value[O2], G2 Value[G2]](
	q Quad[S, P, O, G],
	sFn func(S) S2,
	pFn func(P) P2,
	oFn func(O) O2,
	gFn func(G) G2,
) Quad[S2, P2, O2, G2] {
	if !q.hasGraph {
		return NewDefaultQuad[S2, P2, O2, G2](sFn(q.subject), pFn(q.predicate), oFn(q.object))
	}
	return NewQuad(sFn(q.subject), pFn(q.predicate), oFn(q.object), gFn(q.graph))
}
