// Package generator produces fresh node identifiers.
//
// Generators intern what they produce: Next takes the vocabulary the
// identifier should live in and returns the interned identifier. Use
// the lexical methods (NextBlankID, NextIRI) when no vocabulary is
// involved.
//
// Two families are provided. Blank counts upward, producing numbered
// blank node identifiers with an optional prefix. UUID produces
// urn:uuid IRIs, either random (version 4) or name-derived (versions
// 3 and 5).
package generator
