package interpretation

import "github.com/c360/semterms/vocabulary"

// Identity is the interpretation under which every term denotes
// itself. It keeps no state: two identity-interpreted terms denote
// the same resource exactly when they are the same term.
type Identity struct{}

// InterpretID returns the identifier unchanged.
func (Identity) InterpretID(id vocabulary.ID) vocabulary.ID {
	return id
}

// InterpretTerm returns the term unchanged.
func (Identity) InterpretTerm(t vocabulary.Term) vocabulary.Term {
	return t
}

// InterpretTriple returns the triple unchanged.
func (Identity) InterpretTriple(tr vocabulary.Triple) vocabulary.Triple {
	return tr
}

// InterpretQuad returns the quad unchanged.
func (Identity) InterpretQuad(q vocabulary.Quad) vocabulary.Quad {
	return q
}
