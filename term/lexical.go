package term

// Lexical instantiations fix every position to its surface string
// form. They are the entry point for parsers and the exit point for
// serializers; the vocabulary layer swaps them for index-backed
// instantiations without changing shape.

// LexicalID is a node identifier over surface strings.
type LexicalID = ID[IRI, BlankID]

// LexicalLiteral is a literal whose datatype is a surface IRI.
type LexicalLiteral = Literal[IRI]

// LexicalTerm is a term over surface identifiers and literals.
type LexicalTerm = Term[LexicalID, LexicalLiteral]

// LexicalTriple is a statement in the standard RDF positions:
// identifier subject and predicate, term object.
type LexicalTriple = Triple[LexicalID, LexicalID, LexicalTerm]

// LexicalQuad is a lexical triple with an optional identifier graph
// label.
type LexicalQuad = Quad[LexicalID, LexicalID, LexicalTerm, LexicalID]

// LexicalIRI wraps a surface IRI as a lexical identifier.
func LexicalIRI(iri IRI) LexicalID {
	return IRINode[IRI, BlankID](iri)
}

// LexicalBlank wraps a surface blank node as a lexical identifier.
func LexicalBlank(blank BlankID) LexicalID {
	return BlankNode[IRI, BlankID](blank)
}

// LexicalIDTerm wraps a lexical identifier as a term.
func LexicalIDTerm(id LexicalID) LexicalTerm {
	return TermID[LexicalID, LexicalLiteral](id)
}

// LexicalLiteralTerm wraps a lexical literal as a term.
func LexicalLiteralTerm(lit LexicalLiteral) LexicalTerm {
	return TermLiteral[LexicalID, LexicalLiteral](lit)
}
