package vocabulary

import (
	"fmt"

	"github.com/c360/semterms/errors"
	"github.com/c360/semterms/term"
)

// Embedding interns a lexical value into a vocabulary; it is total.
// Exporting resolves an indexed value back to its lexical form; it is
// partial, failing on indexes the vocabulary never issued.

// EmbedID interns a lexical identifier.
func EmbedID(voc VocabularyMut, id term.LexicalID) ID {
	if blank, ok := id.AsBlank(); ok {
		return BlankNode(voc.InsertBlank(blank))
	}
	iri, _ := id.AsIRI()
	return IRINode(voc.InsertIRI(iri))
}

// EmbedLiteral interns the datatype of a lexical literal, returning
// an indexed literal. The value and any language tag pass through
// untouched.
func EmbedLiteral(voc VocabularyMut, lit term.LexicalLiteral) Literal {
	return term.MapLiteral(lit, voc.InsertIRI)
}

// EmbedTerm interns a lexical term.
func EmbedTerm(voc VocabularyMut, t term.LexicalTerm) Term {
	return term.MapTerm(t,
		func(id term.LexicalID) ID { return EmbedID(voc, id) },
		func(lit term.LexicalLiteral) Literal { return EmbedLiteral(voc, lit) },
	)
}

// EmbedTriple interns every position of a lexical triple.
func EmbedTriple(voc VocabularyMut, tr term.LexicalTriple) Triple {
	embed := func(id term.LexicalID) ID { return EmbedID(voc, id) }
	return term.MapTriple(tr, embed, embed,
		func(o term.LexicalTerm) Term { return EmbedTerm(voc, o) },
	)
}

// EmbedQuad interns every position of a lexical quad. Graph absence
// is preserved.
func EmbedQuad(voc VocabularyMut, q term.LexicalQuad) Quad {
	embed := func(id term.LexicalID) ID { return EmbedID(voc, id) }
	return term.MapQuad(q, embed, embed,
		func(o term.LexicalTerm) Term { return EmbedTerm(voc, o) },
		embed,
	)
}

// ForeignIDError reports an identifier index the vocabulary never
// issued.
type ForeignIDError struct {
	ID ID
}

func (e *ForeignIDError) Error() string {
	return fmt.Sprintf("%v: %s", errors.ErrForeignID, e.ID)
}

func (e *ForeignIDError) Unwrap() error {
	return errors.ErrForeignID
}

// UnknownTypeError reports a literal datatype index the vocabulary
// never issued.
type UnknownTypeError struct {
	Type IriIndex
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%v: %s", errors.ErrUnknownLiteralType, e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return errors.ErrUnknownLiteralType
}

// Position names the statement position where an export failed.
type Position int

const (
	PositionSubject Position = iota
	PositionPredicate
	PositionObject
	PositionGraph
)

// String returns the position name in lowercase.
func (p Position) String() string {
	switch p {
	case PositionSubject:
		return "subject"
	case PositionPredicate:
		return "predicate"
	case PositionObject:
		return "object"
	case PositionGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// StatementExportError wraps the failure of one position of a triple
// or quad export.
type StatementExportError struct {
	Position Position
	Err      error
}

func (e *StatementExportError) Error() string {
	return fmt.Sprintf("exporting %s: %v", e.Position, e.Err)
}

func (e *StatementExportError) Unwrap() error {
	return e.Err
}

// ExportID resolves an indexed identifier back to its lexical form.
func ExportID(voc Vocabulary, id ID) (term.LexicalID, error) {
	if blank, ok := id.AsBlank(); ok {
		lexical, known := voc.Blank(blank)
		if !known {
			return term.LexicalID{}, &ForeignIDError{ID: id}
		}
		return term.LexicalBlank(lexical), nil
	}
	iri, _ := id.AsIRI()
	lexical, known := voc.IRI(iri)
	if !known {
		return term.LexicalID{}, &ForeignIDError{ID: id}
	}
	return term.LexicalIRI(lexical), nil
}

// ExportLiteral resolves an indexed literal's datatype back to its
// lexical form.
func ExportLiteral(voc Vocabulary, lit Literal) (term.LexicalLiteral, error) {
	if tag, ok := lit.LangTag(); ok {
		out, err := term.LangLiteral(lit.Value(), tag)
		if err != nil {
			return term.LexicalLiteral{}, err
		}
		return out, nil
	}
	datatype, _ := lit.Type().DatatypeIRI()
	iri, known := voc.IRI(datatype)
	if !known {
		return term.LexicalLiteral{}, &UnknownTypeError{Type: datatype}
	}
	return term.TypedLiteral(lit.Value(), iri), nil
}

// ExportLiteralIndex resolves a literal index all the way to its
// lexical form.
func ExportLiteralIndex(voc Vocabulary, l LiteralIndex) (term.LexicalLiteral, error) {
	lit, known := voc.Literal(l)
	if !known {
		return term.LexicalLiteral{}, errors.WrapInvalid(errors.ErrForeignID, "Vocabulary", "ExportLiteralIndex", "literal index resolution")
	}
	return ExportLiteral(voc, lit)
}

// ExportTerm resolves an indexed term back to its lexical form.
func ExportTerm(voc Vocabulary, t Term) (term.LexicalTerm, error) {
	if lit, ok := t.AsLiteral(); ok {
		lexical, err := ExportLiteral(voc, lit)
		if err != nil {
			return term.LexicalTerm{}, err
		}
		return term.LexicalLiteralTerm(lexical), nil
	}
	id, _ := t.AsID()
	lexical, err := ExportID(voc, id)
	if err != nil {
		return term.LexicalTerm{}, err
	}
	return term.LexicalIDTerm(lexical), nil
}

// ExportTriple resolves every position of an indexed triple,
// reporting the first position that fails.
func ExportTriple(voc Vocabulary, tr Triple) (term.LexicalTriple, error) {
	subject, err := ExportID(voc, tr.Subject())
	if err != nil {
		return term.LexicalTriple{}, &StatementExportError{Position: PositionSubject, Err: err}
	}
	predicate, err := ExportID(voc, tr.Predicate())
	if err != nil {
		return term.LexicalTriple{}, &StatementExportError{Position: PositionPredicate, Err: err}
	}
	object, err := ExportTerm(voc, tr.Object())
	if err != nil {
		return term.LexicalTriple{}, &StatementExportError{Position: PositionObject, Err: err}
	}
	return term.NewTriple(subject, predicate, object), nil
}

// ExportQuad resolves every position of an indexed quad, reporting
// the first position that fails. Graph absence is preserved.
func ExportQuad(voc Vocabulary, q Quad) (term.LexicalQuad, error) {
	subject, err := ExportID(voc, q.Subject())
	if err != nil {
		return term.LexicalQuad{}, &StatementExportError{Position: PositionSubject, Err: err}
	}
	predicate, err := ExportID(voc, q.Predicate())
	if err != nil {
		return term.LexicalQuad{}, &StatementExportError{Position: PositionPredicate, Err: err}
	}
	object, err := ExportTerm(voc, q.Object())
	if err != nil {
		return term.LexicalQuad{}, &StatementExportError{Position: PositionObject, Err: err}
	}
	graph, ok := q.Graph()
	if !ok {
		return term.NewDefaultQuad[term.LexicalID, term.LexicalID, term.LexicalTerm, term.LexicalID](subject, predicate, object), nil
	}
	lexicalGraph, err := ExportID(voc, graph)
	if err != nil {
		return term.LexicalQuad{}, &StatementExportError{Position: PositionGraph, Err: err}
	}
	return term.NewQuad(subject, predicate, object, lexicalGraph), nil
}
