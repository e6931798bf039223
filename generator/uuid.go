package generator

import (
	"github.com/google/uuid"

	"github.com/c360/semterms/term"
	"github.com/c360/semterms/vocabulary"
)

// uuidVersion selects the UUID algorithm.
type uuidVersion uint8

const (
	uuidV3 uuidVersion = 3
	uuidV4 uuidVersion = 4
	uuidV5 uuidVersion = 5
)

// UUID generates urn:uuid node identifiers. Version 4 identifiers
// are random; versions 3 and 5 are derived from a namespace and a
// name, so they repeat for the same inputs.
type UUID struct {
	version   uuidVersion
	namespace uuid.UUID
	name      string
}

// NewUUIDv4 creates a random identifier generator.
func NewUUIDv4() *UUID {
	return &UUID{version: uuidV4}
}

// NewUUIDv3 creates an MD5 name-based identifier generator.
func NewUUIDv3(namespace uuid.UUID, name string) *UUID {
	return &UUID{version: uuidV3, namespace: namespace, name: name}
}

// NewUUIDv5 creates a SHA-1 name-based identifier generator.
func NewUUIDv5(namespace uuid.UUID, name string) *UUID {
	return &UUID{version: uuidV5, namespace: namespace, name: name}
}

// NextUUID produces the next raw UUID.
func (g *UUID) NextUUID() uuid.UUID {
	switch g.version {
	case uuidV3:
		return uuid.NewMD5(g.namespace, []byte(g.name))
	case uuidV5:
		return uuid.NewSHA1(g.namespace, []byte(g.name))
	default:
		return uuid.New()
	}
}

// NextIRI produces the next lexical urn:uuid IRI.
func (g *UUID) NextIRI() term.IRI {
	return term.IRI(g.NextUUID().URN())
}

// Next produces the next identifier, interned as an IRI.
func (g *UUID) Next(voc NodeVocabulary) vocabulary.ID {
	return vocabulary.IRINode(voc.InsertIRI(g.NextIRI()))
}

var _ Generator = (*UUID)(nil)
