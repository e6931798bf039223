package term

import (
	"hash/maphash"
	"strconv"
	"strings"

	"github.com/c360/semterms/errors"
)

// LanguageTag is a BCP 47 language tag such as "en" or "fr-CA".
type LanguageTag string

// Compare orders language tags lexicographically.
func (t LanguageTag) Compare(other LanguageTag) int {
	return strings.Compare(string(t), string(other))
}

// Hash returns a seed-keyed hash of the tag.
func (t LanguageTag) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, string(t))
}

// String returns the tag without the "@" marker.
func (t LanguageTag) String() string {
	return string(t)
}

// LiteralTypeKind discriminates the two cases of a literal type.
type LiteralTypeKind uint8

const (
	// KindDatatype marks a literal typed by a datatype IRI.
	KindDatatype LiteralTypeKind = iota
	// KindLangString marks a language-tagged string literal.
	KindLangString
)

// LiteralType is the type component of a literal: either a datatype
// IRI or a language tag. A language-tagged type always carries a
// non-empty tag; IsLangString is exactly this discriminant.
type LiteralType[I Value[I]] struct {
	kind     LiteralTypeKind
	datatype I
	lang     LanguageTag
}

// Datatype returns a literal type carrying a datatype IRI.
func Datatype[I Value[I]](iri I) LiteralType[I] {
	return LiteralType[I]{kind: KindDatatype, datatype: iri}
}

// LangString returns a language-tagged literal type. The tag must be
// non-empty; an empty tag is a contract violation and fails loudly.
// Use LangLiteral to validate untrusted input instead.
func LangString[I Value[I]](tag LanguageTag) LiteralType[I] {
	if tag == "" {
		panic(errors.ErrEmptyLanguageTag)
	}
	return LiteralType[I]{kind: KindLangString, lang: tag}
}

// Kind returns the discriminant of the literal type.
func (t LiteralType[I]) Kind() LiteralTypeKind {
	return t.kind
}

// IsLangString reports whether the type is a language tag.
func (t LiteralType[I]) IsLangString() bool {
	return t.kind == KindLangString
}

// LangTag unpacks the language tag.
func (t LiteralType[I]) LangTag() (LanguageTag, bool) {
	if t.kind != KindLangString {
		return "", false
	}
	return t.lang, true
}

// DatatypeIRI unpacks the datatype IRI.
func (t LiteralType[I]) DatatypeIRI() (I, bool) {
	if t.kind != KindDatatype {
		var zero I
		return zero, false
	}
	return t.datatype, true
}

// Compare orders literal types: datatype IRIs before language tags,
// then by payload.
func (t LiteralType[I]) Compare(other LiteralType[I]) int {
	switch {
	case t.kind == KindDatatype && other.kind == KindDatatype:
		return t.datatype.Compare(other.datatype)
	case t.kind == KindDatatype:
		return -1
	case other.kind == KindDatatype:
		return 1
	default:
		return t.lang.Compare(other.lang)
	}
}

// Hash returns the hash of the payload alone.
func (t LiteralType[I]) Hash(seed maphash.Seed) uint64 {
	if t.kind == KindLangString {
		return t.lang.Hash(seed)
	}
	return t.datatype.Hash(seed)
}

// String returns the payload's surface form.
func (t LiteralType[I]) String() string {
	if t.kind == KindLangString {
		return "@" + string(t.lang)
	}
	return t.datatype.String()
}

// MapLiteralType transforms the datatype IRI of a literal type; a
// language-tagged type is returned unchanged.
func MapLiteralType[I Value[I], I2 Value[I2]](t LiteralType[I], fn func(I) I2) LiteralType[I2] {
	if t.kind == KindLangString {
		return LiteralType[I2]{kind: KindLangString, lang: t.lang}
	}
	return Datatype(fn(t.datatype))
}

// Literal is an RDF literal: a lexical value paired with its type,
// parameterized over the datatype IRI representation.
type Literal[I Value[I]] struct {
	value string
	typ   LiteralType[I]
}

// NewLiteral pairs a lexical value with its type.
func NewLiteral[I Value[I]](value string, typ LiteralType[I]) Literal[I] {
	return Literal[I]{value: value, typ: typ}
}

// Value returns the lexical value of the literal.
func (l Literal[I]) Value() string {
	return l.value
}

// Type returns the type component of the literal.
func (l Literal[I]) Type() LiteralType[I] {
	return l.typ
}

// IsLangString reports whether the literal is language tagged.
func (l Literal[I]) IsLangString() bool {
	return l.typ.IsLangString()
}

// LangTag unpacks the literal's language tag.
func (l Literal[I]) LangTag() (LanguageTag, bool) {
	return l.typ.LangTag()
}

// Compare orders literals by lexical value, then by type.
func (l Literal[I]) Compare(other Literal[I]) int {
	if c := strings.Compare(l.value, other.value); c != 0 {
		return c
	}
	return l.typ.Compare(other.typ)
}

// Hash returns a product hash over the value and the type.
func (l Literal[I]) Hash(seed maphash.Seed) uint64 {
	return CombineHashes(seed, maphash.String(seed, l.value), l.typ.Hash(seed))
}

// String returns a debug form: the quoted value followed by its type.
func (l Literal[I]) String() string {
	quoted := strconv.Quote(l.value)
	if l.typ.IsLangString() {
		return quoted + l.typ.String()
	}
	return quoted + "^^" + l.typ.String()
}

// MapLiteral transforms the literal's datatype IRI, leaving the value
// and any language tag untouched.
func MapLiteral[I Value[I], I2 Value[I2]](l Literal[I], fn func(I) I2) Literal[I2] {
	return Literal[I2]{value: l.value, typ: MapLiteralType(l.typ, fn)}
}

// StringLiteral returns a lexical xsd:string literal.
func StringLiteral(value string) LexicalLiteral {
	return NewLiteral(value, Datatype(XsdString))
}

// TypedLiteral returns a lexical literal with the given datatype IRI.
func TypedLiteral(value string, datatype IRI) LexicalLiteral {
	return NewLiteral(value, Datatype(datatype))
}

// LangLiteral returns a lexical language-tagged literal, validating
// that the tag is non-empty.
func LangLiteral(value string, tag LanguageTag) (LexicalLiteral, error) {
	if tag == "" {
		return LexicalLiteral{}, errors.WrapInvalid(errors.ErrEmptyLanguageTag, "Literal", "LangLiteral", "language tag validation")
	}
	return NewLiteral(value, LangString[IRI](tag)), nil
}
