// Package term provides the generic RDF term algebra: node identifiers,
// literals, terms, triples, and quads, parameterized over the concrete
// identifier and literal representation.
//
// # Representation
//
// Each container is a tagged value with exhaustive case analysis rather
// than an interface hierarchy: callers switch on the discriminant and
// unpack the payload. The containers are plain comparable structs, so
// every instantiation is directly usable as a map key.
//
// Two instantiations matter in practice. The lexical instantiation
// (LexicalID, LexicalTerm, LexicalTriple, LexicalQuad) carries owned
// strings and is what parsers produce and serializers consume. The
// vocabulary instantiation carries compact interned identifiers and is
// what graph algorithms operate on; see the vocabulary package for the
// conversions between the two.
//
// # Transparent hashing and ordering
//
// Hashing and comparing a wrapping variant equals hashing and comparing
// the unwrapped payload: the hash of an ID holding an IRI is the hash
// of the IRI alone, and the hash of a Term holding an ID is the hash of
// the ID alone. This lets identifier maps be reused interchangeably as
// term maps. Ordering is total: blank node identifiers precede IRIs,
// and node identifiers precede literals.
//
// # Payload contract
//
// Payload types implement the Value constraint: comparable, plus
// Compare, Hash, and String methods. The lexical payloads IRI, BlankID,
// and LanguageTag are defined here; the vocabulary package contributes
// the interned index payloads.
package term
