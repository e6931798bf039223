// Package semterms provides the interning and resource-identity layer
// underlying an RDF term model: it converts lexical graph terms (IRIs,
// blank node identifiers, literals) into compact, comparable identifier
// values, and optionally maps those identifiers onto abstract resource
// identities used for semantic reasoning.
//
// # Architecture
//
// SemTerms is a three-layer library. Data flows lexical form →
// vocabulary identifier → interpreted resource, and the reverse path
// resource → identifier set → lexical forms:
//
//	┌─────────────────────────────────────┐
//	│         Interpretation              │  semantic identity
//	│  (interpretation.Identity/Indexed)  │  fold forms onto resources
//	└─────────────────────────────────────┘
//	           ↑ interprets
//	┌─────────────────────────────────────┐
//	│          Vocabulary                 │  lexical ↔ identifier
//	│   (vocabulary.IndexVocabulary)      │  interning engine
//	└─────────────────────────────────────┘
//	           ↑ embeds / exports
//	┌─────────────────────────────────────┐
//	│          Term Algebra               │  IDs, literals, terms,
//	│  (term.ID/Literal/Term/Triple/Quad) │  triples, quads
//	└─────────────────────────────────────┘
//
// # Layer 1 - Term Algebra
//
// The term package defines generic containers parameterized over the
// concrete identifier and literal representation: a node identifier is
// blank-or-IRI, a term is identifier-or-literal, triples and quads are
// plain component tuples. The same container types carry owned lexical
// strings (the Lexical* aliases) or compact vocabulary identifiers, so
// identifier maps are reusable interchangeably as term maps: hashing
// and ordering are transparent across nested representations.
//
// # Layer 2 - Vocabulary
//
// The vocabulary package is a bidirectional store mapping lexical IRIs
// and blank node identifiers to vocabulary-local identifier values.
// Identifiers mix statically known inline values (well-known vocabulary
// terms, a zero-allocation fast path) with dense indices allocated by
// the interning engine. The arena is append-only: entries are never
// removed or renumbered, so existing identifiers stay valid for the
// lifetime of the vocabulary.
//
// # Layer 3 - Interpretation
//
// The interpretation package decouples lexical identity from semantic
// identity: two differently spelled literals or blank nodes may denote
// one resource. The trivial identity interpretation leaves every term
// unchanged; the indexed interpretation folds vocabulary identifiers
// onto dense resources with explicit assignment, and enumerates every
// lexical form a resource is known by.
//
// # Generators
//
// The generator package mints fresh node identifiers already registered
// in a vocabulary: a sequential blank node counter with optional prefix,
// and a UUID-backed generator (random and name-based variants).
//
// # Concurrency
//
// SemTerms is single-threaded by design. Vocabularies and
// interpretations are ordinary mutable state threaded explicitly
// through call arguments; no operation blocks, suspends, or takes a
// context. Because arenas are append-only and indices are never
// invalidated, single-writer/multi-reader access is safe when callers
// serialize writers externally.
//
// # Scope
//
// SemTerms deliberately contains no RDF syntax parsers or serializers,
// no persistence formats, and no graph-level reasoning (no entailment,
// no canonical blank node relabeling). It supplies the identity
// primitives such systems build upon.
package semterms
