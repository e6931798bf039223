// Package vocabulary interns lexical RDF terms into compact indexed
// identifiers and resolves them back.
//
// # Architecture
//
// The vocabulary sits between the lexical term algebra and any
// consumer that wants cheap term identity:
//
//	┌──────────────┐   InsertIRI / InsertLiteral   ┌──────────────────┐
//	│ lexical term │ ────────────────────────────▶ │ IndexVocabulary  │
//	│  (strings)   │ ◀──────────────────────────── │ arena + reverse  │
//	└──────────────┘        IRI / Literal          │      map         │
//	                                               └──────────────────┘
//
// Each namespace (IRIs, blank nodes, literals) owns an append-only
// arena plus a reverse map from lexical form to arena position.
// Inserting an already-known value returns the existing index, so
// index equality is lexical equality for the lifetime of the
// vocabulary.
//
// # Well-Known Terms
//
// IRIs and blank nodes registered up front are classified inline:
// their index carries the value itself and never touches the arena.
// Classification runs before the arena lookup on every insert, which
// keeps hot vocabulary terms (rdf:type, xsd:string) allocation-free.
//
// # Capability Interfaces
//
// Consumers depend on the narrowest capability they use: IriVocabulary
// for lookup, IriVocabularyMut for interning, and likewise for blank
// nodes and literals. IndexVocabulary implements all six.
//
// # Statistics and Metrics
//
// Statistics (arena sizes, hit and miss counts) are always collected.
// Prometheus export is optional and enabled with WithMetrics.
//
// # Concurrency
//
// IndexVocabulary is not safe for concurrent use. Callers that share
// one across goroutines must serialize access.
package vocabulary
