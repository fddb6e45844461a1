package rdf

import "strings"

// Format identifies the target serialization format.
type Format string

const (
	// FormatTurtle selects the Turtle writer. This is the default.
	FormatTurtle Format = "turtle"
	// FormatRDFXML selects the RDF/XML writer.
	FormatRDFXML Format = "rdf-xml"
	// FormatJSONLD selects JSON-LD output, delegated to json-gold; see
	// WriteJSONLD. Serialize does not accept this value directly.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat normalizes a format name into a Format.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "rdf-xml", "rdfxml", "rdf", "xml":
		return FormatRDFXML, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// StringDataTypePolicy controls whether xsd:string datatypes are written
// explicitly.
type StringDataTypePolicy string

const (
	// StringDataTypeImplicit omits the xsd:string datatype (the default).
	StringDataTypeImplicit StringDataTypePolicy = "implicit"
	// StringDataTypeExplicit always writes the xsd:string datatype.
	StringDataTypeExplicit StringDataTypePolicy = "explicit"
)

// ShortIRIPriority decides which short form wins when both a base-relative
// IRI and a prefix-qualified QName are available. Turtle-only; RDF/XML
// always uses QNames.
type ShortIRIPriority string

const (
	// ShortIRIPriorityPrefix prefers the prefix-qualified form (default).
	ShortIRIPriorityPrefix ShortIRIPriority = "prefix"
	// ShortIRIPriorityBaseIRI prefers the base-relative form.
	ShortIRIPriorityBaseIRI ShortIRIPriority = "base-iri"
)
