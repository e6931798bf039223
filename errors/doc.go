// Package errors provides standardized error handling patterns for SemTerms.
//
// # Overview
//
// The errors package implements a two-class error classification system
// for an identity library: Invalid (bad input or a lookup against the
// wrong vocabulary, reported to the caller through a typed result) and
// Fatal (programmer error such as identifier-space exhaustion, not a
// normal-operation failure).
//
// The classification integrates with Go's standard error handling:
// errors.Is(), errors.As(), and wrapping chains all work through the
// types defined here.
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	if _, ok := vocab.IRI(id); !ok {
//	    return errors.ErrForeignID
//	}
//
// Wrap errors with context for debugging:
//
//	if err := validate(tag); err != nil {
//	    return errors.WrapInvalid(err, "Literal", "NewLangLiteral", "language tag validation")
//	}
//
// Check classification at the boundary:
//
//	if errors.IsFatal(err) {
//	    // Programmer error: do not attempt recovery.
//	    panic(err)
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging. The Wrap
// family of functions applies the pattern while attaching the error
// class through the chain.
//
// # Propagation Policy
//
// Every fallible conversion in SemTerms returns a typed result the
// caller must inspect; nothing is silently swallowed. Only
// identifier-space exhaustion and vocabulary-ownership violations are
// permitted to be fatal, since both indicate programmer error rather
// than normal-operation failure.
package errors
