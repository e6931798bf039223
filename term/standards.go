package term

// Standard Vocabulary IRIs
//
// XSD and RDF datatype IRIs that the term and vocabulary layers treat
// specially: plain literals default to xsd:string, language-tagged
// literals carry rdf:langString, and well-known datatypes are interned
// inline without arena lookups.
//
// References:
// - XSD: https://www.w3.org/TR/xmlschema11-2/
// - RDF: https://www.w3.org/TR/rdf11-concepts/

// XSD (XML Schema Definition) datatype IRIs
const (
	// XsdString is the datatype of plain string literals.
	XsdString IRI = "http://www.w3.org/2001/XMLSchema#string"

	// XsdBoolean is the boolean datatype
	XsdBoolean IRI = "http://www.w3.org/2001/XMLSchema#boolean"

	// XsdInteger is the arbitrary-precision integer datatype
	XsdInteger IRI = "http://www.w3.org/2001/XMLSchema#integer"

	// XsdDecimal is the arbitrary-precision decimal datatype
	XsdDecimal IRI = "http://www.w3.org/2001/XMLSchema#decimal"

	// XsdDouble is the IEEE 754 double datatype
	XsdDouble IRI = "http://www.w3.org/2001/XMLSchema#double"

	// XsdDateTime is the timezone-optional timestamp datatype
	XsdDateTime IRI = "http://www.w3.org/2001/XMLSchema#dateTime"

	// XsdAnyURI is the IRI-valued literal datatype
	XsdAnyURI IRI = "http://www.w3.org/2001/XMLSchema#anyURI"
)

// RDF core vocabulary IRIs
const (
	// RdfLangString is the datatype of language-tagged literals.
	// Literals never carry it explicitly; the language tag implies it.
	RdfLangString IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

	// RdfType links a resource to its class
	RdfType IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RdfFirst is the head accessor of an RDF collection
	RdfFirst IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"

	// RdfRest is the tail accessor of an RDF collection
	RdfRest IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"

	// RdfNil terminates an RDF collection
	RdfNil IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
)
