package vocabulary

import "github.com/c360/semterms/term"

// Index-backed instantiations of the term algebra. These mirror the
// lexical aliases in the term package with every string swapped for
// its vocabulary index.

// ID is a node identifier over vocabulary indexes.
type ID = term.ID[IriIndex, BlankIndex]

// Literal is a literal whose datatype is a vocabulary index.
type Literal = term.Literal[IriIndex]

// Term is a term over indexed identifiers and literals.
type Term = term.Term[ID, Literal]

// Triple is an indexed statement.
type Triple = term.Triple[ID, ID, Term]

// Quad is an indexed statement with an optional identifier graph
// label.
type Quad = term.Quad[ID, ID, Term, ID]

// IRINode wraps an IRI index as an identifier.
func IRINode(i IriIndex) ID {
	return term.IRINode[IriIndex, BlankIndex](i)
}

// BlankNode wraps a blank node index as an identifier.
func BlankNode(b BlankIndex) ID {
	return term.BlankNode[IriIndex, BlankIndex](b)
}

// IDTerm wraps an indexed identifier as a term.
func IDTerm(id ID) Term {
	return term.TermID[ID, Literal](id)
}

// LiteralTerm wraps an indexed literal as a term.
func LiteralTerm(lit Literal) Term {
	return term.TermLiteral[ID, Literal](lit)
}

// IriVocabulary resolves IRI indexes back to their lexical form.
type IriVocabulary interface {
	// IRI resolves an index. It reports false for indexes this
	// vocabulary never issued.
	IRI(i IriIndex) (term.IRI, bool)

	// GetIRI looks up the index of an already-interned IRI without
	// interning it.
	GetIRI(iri term.IRI) (IriIndex, bool)
}

// IriVocabularyMut additionally interns IRIs.
type IriVocabularyMut interface {
	IriVocabulary

	// InsertIRI interns an IRI. Inserting the same IRI twice returns
	// the same index.
	InsertIRI(iri term.IRI) IriIndex
}

// BlankVocabulary resolves blank node indexes back to their lexical
// form.
type BlankVocabulary interface {
	// Blank resolves an index. It reports false for indexes this
	// vocabulary never issued.
	Blank(b BlankIndex) (term.BlankID, bool)

	// GetBlank looks up the index of an already-interned blank node
	// without interning it.
	GetBlank(blank term.BlankID) (BlankIndex, bool)
}

// BlankVocabularyMut additionally interns blank nodes.
type BlankVocabularyMut interface {
	BlankVocabulary

	// InsertBlank interns a blank node. Inserting the same blank node
	// twice returns the same index.
	InsertBlank(blank term.BlankID) BlankIndex
}

// LiteralVocabulary resolves literal indexes. Stored literals carry
// their datatype as an IriIndex, so full lexical resolution also
// needs the IRI side.
type LiteralVocabulary interface {
	// Literal resolves an index. It reports false for indexes this
	// vocabulary never issued.
	Literal(l LiteralIndex) (Literal, bool)

	// GetLiteral looks up the index of an already-interned literal
	// without interning it.
	GetLiteral(lit Literal) (LiteralIndex, bool)
}

// LiteralVocabularyMut additionally interns literals.
type LiteralVocabularyMut interface {
	LiteralVocabulary

	// InsertLiteral interns a literal. Inserting the same literal
	// twice returns the same index.
	InsertLiteral(lit Literal) LiteralIndex
}

// Vocabulary is the full read capability over all three namespaces.
type Vocabulary interface {
	IriVocabulary
	BlankVocabulary
	LiteralVocabulary
}

// VocabularyMut is the full interning capability over all three
// namespaces.
type VocabularyMut interface {
	IriVocabularyMut
	BlankVocabularyMut
	LiteralVocabularyMut
}
