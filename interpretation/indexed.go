package interpretation

import (
	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

// Indexed assigns dense resource indexes to vocabulary terms and
// keeps the reverse maps. Interpreting the same term twice returns
// the same resource; Assign* folds additional terms into an existing
// resource. Not safe for concurrent use.
type Indexed struct {
	next Resource

	byIRI     map[vocabulary.IriIndex]Resource
	byBlank   map[vocabulary.BlankIndex]Resource
	byLiteral map[vocabulary.LiteralIndex]Resource

	// reverse maps keep assignment order so enumeration is
	// deterministic and repeatable
	irisOf     map[Resource][]vocabulary.IriIndex
	blanksOf   map[Resource][]vocabulary.BlankIndex
	literalsOf map[Resource][]vocabulary.LiteralIndex
}

// NewIndexed creates an empty interpretation.
func NewIndexed() *Indexed {
	return &Indexed{
		byIRI:      make(map[vocabulary.IriIndex]Resource),
		byBlank:    make(map[vocabulary.BlankIndex]Resource),
		byLiteral:  make(map[vocabulary.LiteralIndex]Resource),
		irisOf:     make(map[Resource][]vocabulary.IriIndex),
		blanksOf:   make(map[Resource][]vocabulary.BlankIndex),
		literalsOf: make(map[Resource][]vocabulary.LiteralIndex),
	}
}

// AnonymousResource issues a fresh resource with no terms assigned.
func (in *Indexed) AnonymousResource() Resource {
	r := in.next
	in.next++
	return r
}

// Len returns the number of issued resources.
func (in *Indexed) Len() int {
	return int(in.next)
}

// Resources returns every issued resource in creation order.
func (in *Indexed) Resources() []Resource {
	out := make([]Resource, in.next)
	for i := range out {
		out[i] = Resource(i)
	}
	return out
}

// InterpretIRI returns the resource denoted by an IRI, issuing a
// fresh one on first sight.
func (in *Indexed) InterpretIRI(i vocabulary.IriIndex) Resource {
	if r, ok := in.byIRI[i]; ok {
		return r
	}
	r := in.AnonymousResource()
	in.byIRI[i] = r
	in.irisOf[r] = append(in.irisOf[r], i)
	return r
}

// InterpretBlank returns the resource denoted by a blank node,
// issuing a fresh one on first sight.
func (in *Indexed) InterpretBlank(b vocabulary.BlankIndex) Resource {
	if r, ok := in.byBlank[b]; ok {
		return r
	}
	r := in.AnonymousResource()
	in.byBlank[b] = r
	in.blanksOf[r] = append(in.blanksOf[r], b)
	return r
}

// InterpretLiteral returns the resource denoted by a literal, issuing
// a fresh one on first sight.
func (in *Indexed) InterpretLiteral(l vocabulary.LiteralIndex) Resource {
	if r, ok := in.byLiteral[l]; ok {
		return r
	}
	r := in.AnonymousResource()
	in.byLiteral[l] = r
	in.literalsOf[r] = append(in.literalsOf[r], l)
	return r
}

// AssignIRI folds an IRI into an existing resource. It reports false
// when the IRI is already assigned, to this or any other resource.
func (in *Indexed) AssignIRI(r Resource, i vocabulary.IriIndex) bool {
	if _, ok := in.byIRI[i]; ok {
		return false
	}
	in.byIRI[i] = r
	in.irisOf[r] = append(in.irisOf[r], i)
	return true
}

// AssignBlank folds a blank node into an existing resource. It
// reports false when the blank node is already assigned.
func (in *Indexed) AssignBlank(r Resource, b vocabulary.BlankIndex) bool {
	if _, ok := in.byBlank[b]; ok {
		return false
	}
	in.byBlank[b] = r
	in.blanksOf[r] = append(in.blanksOf[r], b)
	return true
}

// AssignLiteral folds a literal into an existing resource. It reports
// false when the literal is already assigned.
func (in *Indexed) AssignLiteral(r Resource, l vocabulary.LiteralIndex) bool {
	if _, ok := in.byLiteral[l]; ok {
		return false
	}
	in.byLiteral[l] = r
	in.literalsOf[r] = append(in.literalsOf[r], l)
	return true
}

// ResourceOfIRI looks up the resource an IRI denotes.
func (in *Indexed) ResourceOfIRI(i vocabulary.IriIndex) (Resource, bool) {
	r, ok := in.byIRI[i]
	return r, ok
}

// ResourceOfBlank looks up the resource a blank node denotes.
func (in *Indexed) ResourceOfBlank(b vocabulary.BlankIndex) (Resource, bool) {
	r, ok := in.byBlank[b]
	return r, ok
}

// ResourceOfLiteral looks up the resource a literal denotes.
func (in *Indexed) ResourceOfLiteral(l vocabulary.LiteralIndex) (Resource, bool) {
	r, ok := in.byLiteral[l]
	return r, ok
}

// IRIsOf returns the IRIs assigned to a resource, in assignment
// order. The slice is a copy; callers may keep it across further
// assignments.
func (in *Indexed) IRIsOf(r Resource) []vocabulary.IriIndex {
	iris := in.irisOf[r]
	out := make([]vocabulary.IriIndex, len(iris))
	copy(out, iris)
	return out
}

// BlanksOf returns the blank nodes assigned to a resource, in
// assignment order, as a copy.
func (in *Indexed) BlanksOf(r Resource) []vocabulary.BlankIndex {
	blanks := in.blanksOf[r]
	out := make([]vocabulary.BlankIndex, len(blanks))
	copy(out, blanks)
	return out
}

// LiteralsOf returns the literals assigned to a resource, in
// assignment order, as a copy.
func (in *Indexed) LiteralsOf(r Resource) []vocabulary.LiteralIndex {
	literals := in.literalsOf[r]
	out := make([]vocabulary.LiteralIndex, len(literals))
	copy(out, literals)
	return out
}

// InterpretID returns the resource denoted by an identifier.
func (in *Indexed) InterpretID(id vocabulary.ID) Resource {
	if blank, ok := id.AsBlank(); ok {
		return in.InterpretBlank(blank)
	}
	iri, _ := id.AsIRI()
	return in.InterpretIRI(iri)
}

// InterpretTerm returns the resource denoted by a term. Literal terms
// are interned through voc so equal literals share a resource.
func (in *Indexed) InterpretTerm(voc vocabulary.LiteralVocabularyMut, t vocabulary.Term) Resource {
	if lit, ok := t.AsLiteral(); ok {
		return in.InterpretLiteral(voc.InsertLiteral(lit))
	}
	id, _ := t.AsID()
	return in.InterpretID(id)
}

// InterpretTriple interprets every position of an indexed triple.
func (in *Indexed) InterpretTriple(voc vocabulary.LiteralVocabularyMut, tr vocabulary.Triple) Triple {
	return term.NewTriple(
		in.InterpretID(tr.Subject()),
		in.InterpretID(tr.Predicate()),
		in.InterpretTerm(voc, tr.Object()),
	)
}

// InterpretQuad interprets every position of an indexed quad. Graph
// absence is preserved.
func (in *Indexed) InterpretQuad(voc vocabulary.LiteralVocabularyMut, q vocabulary.Quad) Quad {
	subject := in.InterpretID(q.Subject())
	predicate := in.InterpretID(q.Predicate())
	object := in.InterpretTerm(voc, q.Object())
	graph, ok := q.Graph()
	if !ok {
		return term.NewDefaultQuad[Resource, Resource, Resource, Resource](subject, predicate, object)
	}
	return term.NewQuad(subject, predicate, object, in.InterpretID(graph))
}
