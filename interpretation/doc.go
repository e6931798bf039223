// Package interpretation maps interned vocabulary terms to semantic
// resources.
//
// A resource is the entity a term denotes. Distinct terms can denote
// the same resource (an IRI and the blank node it was skolemized
// from), and interpretation is where that folding happens:
//
//	┌────────────────┐   Interpret* / Assign*   ┌───────────────┐
//	│ vocabulary ids │ ───────────────────────▶ │   Resource    │
//	│ iri blank lit  │ ◀─────────────────────── │ (dense index) │
//	└────────────────┘   IRIsOf / BlanksOf / …  └───────────────┘
//
// Indexed issues dense resource indexes on demand and keeps the
// reverse maps: every term assigned to a resource can be enumerated
// back, in assignment order, as often as needed.
//
// Identity is the degenerate interpretation where every term denotes
// itself and no state is kept.
//
// Like the vocabulary layer, interpretations are not safe for
// concurrent use.
package interpretation
