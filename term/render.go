package term

import "strings"

// RenderIRI returns the N-Triples form of an IRI, wrapped in angle
// brackets.
func RenderIRI(iri IRI) string {
	return "<" + string(iri) + ">"
}

// RenderID returns the N-Triples form of a lexical identifier. Blank
// nodes already carry their "_:" marker.
func RenderID(id LexicalID) string {
	if blank, ok := id.AsBlank(); ok {
		return string(blank)
	}
	iri, _ := id.AsIRI()
	return RenderIRI(iri)
}

// RenderLiteral returns the N-Triples form of a lexical literal. The
// xsd:string datatype is implicit and never rendered.
func RenderLiteral(lit LexicalLiteral) string {
	var b strings.Builder
	b.WriteByte('"')
	escapeLiteral(&b, lit.Value())
	b.WriteByte('"')
	if tag, ok := lit.LangTag(); ok {
		b.WriteByte('@')
		b.WriteString(string(tag))
		return b.String()
	}
	datatype, _ := lit.Type().DatatypeIRI()
	if datatype != XsdString {
		b.WriteString("^^")
		b.WriteString(RenderIRI(datatype))
	}
	return b.String()
}

// RenderTerm returns the N-Triples form of a lexical term.
func RenderTerm(t LexicalTerm) string {
	if lit, ok := t.AsLiteral(); ok {
		return RenderLiteral(lit)
	}
	id, _ := t.AsID()
	return RenderID(id)
}

// RenderTriple returns the N-Triples line for a lexical statement,
// terminated with " .".
func RenderTriple(t LexicalTriple) string {
	return RenderID(t.Subject()) + " " + RenderID(t.Predicate()) + " " + RenderTerm(t.Object()) + " ."
}

// RenderQuad returns the N-Quads line for a lexical statement. A
// default-graph quad renders identically to its triple.
func RenderQuad(q LexicalQuad) string {
	line := RenderID(q.Subject()) + " " + RenderID(q.Predicate()) + " " + RenderTerm(q.Object())
	if graph, ok := q.Graph(); ok {
		line += " " + RenderID(graph)
	}
	return line + " ."
}

// escapeLiteral writes s with the N-Triples string escapes applied.
func escapeLiteral(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
}
