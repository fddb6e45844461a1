package rdf

// Config configures a single call to Serialize. Zero values select the
// documented defaults: Turtle output, one-tab indent, "\n" line endings,
// implicit xsd:string, prefix-priority short IRIs, and generated prefixes
// enabled.
type Config struct {
	// TargetFormat selects the output syntax. Defaults to FormatTurtle.
	TargetFormat Format

	// BaseIRI is the explicit base IRI for relativization. Takes priority
	// over InferBaseIRI.
	BaseIRI string
	// InferBaseIRI adopts the first owl:Ontology subject (in sorted order)
	// as the base IRI when BaseIRI is empty.
	InferBaseIRI bool

	// Indent is the indent unit. Defaults to one tab.
	Indent string
	// LineEnd is the line terminator. Defaults to "\n".
	LineEnd string

	// InlineBlankNodes renders blank nodes inline ([ ... ] in Turtle,
	// nested elements in RDF/XML) instead of by reference. Forbidden when
	// the graph has a blank-node cycle or a blank-node subject that is
	// never an object; Serialize returns an InputDefectError in that case.
	InlineBlankNodes bool

	// UseDTDSubset (RDF/XML only) emits a DTD entity declaration per
	// namespace and uses entity references for IRI-valued attributes.
	UseDTDSubset bool

	// StringDataType controls whether the xsd:string datatype is written
	// explicitly. Defaults to StringDataTypeImplicit.
	StringDataType StringDataTypePolicy
	// OverrideStringLanguage, if set, is applied to every plain-string
	// literal (xsd:string or untyped). Literals that already carry a
	// language tag are never touched.
	OverrideStringLanguage string

	// ShortIRIPriority decides which short form wins when both a
	// base-relative and a prefix-qualified form are available. Turtle
	// only; RDF/XML always uses QNames. Defaults to
	// ShortIRIPriorityPrefix.
	ShortIRIPriority ShortIRIPriority

	// LeadingComments and TrailingComments are emitted verbatim, once
	// each, at the top and bottom of the document.
	LeadingComments  []string
	TrailingComments []string

	// GeneratePrefixes enables synthesizing "ns<k>" prefixes for IRIs with
	// no registered prefix. Defaults to true. RDF/XML effectively requires
	// this to stay true, since every predicate must resolve to a QName.
	GeneratePrefixes *bool
}

func (c Config) indent() string {
	if c.Indent != "" {
		return c.Indent
	}
	return "\t"
}

func (c Config) lineEnd() string {
	if c.LineEnd != "" {
		return c.LineEnd
	}
	return "\n"
}

func (c Config) stringDataType() StringDataTypePolicy {
	if c.StringDataType != "" {
		return c.StringDataType
	}
	return StringDataTypeImplicit
}

func (c Config) shortIRIPriority() ShortIRIPriority {
	if c.ShortIRIPriority != "" {
		return c.ShortIRIPriority
	}
	return ShortIRIPriorityPrefix
}

func (c Config) generatePrefixes() bool {
	if c.GeneratePrefixes == nil {
		return true
	}
	return *c.GeneratePrefixes
}

func (c Config) targetFormat() Format {
	if c.TargetFormat != "" {
		return c.TargetFormat
	}
	return FormatTurtle
}

// validate checks for conflicting configuration combinations and returns a
// *ConfigError before any output is produced.
func (c Config) validate() error {
	switch c.targetFormat() {
	case FormatTurtle, FormatRDFXML:
	default:
		return &ConfigError{Option: "TargetFormat", Reason: "must be FormatTurtle or FormatRDFXML"}
	}
	switch c.stringDataType() {
	case StringDataTypeImplicit, StringDataTypeExplicit:
	default:
		return &ConfigError{Option: "StringDataType", Reason: "must be \"implicit\" or \"explicit\""}
	}
	switch c.shortIRIPriority() {
	case ShortIRIPriorityPrefix, ShortIRIPriorityBaseIRI:
	default:
		return &ConfigError{Option: "ShortIRIPriority", Reason: "must be \"prefix\" or \"base-iri\""}
	}
	if c.UseDTDSubset && c.targetFormat() != FormatRDFXML {
		return &ConfigError{Option: "UseDTDSubset", Reason: "only valid for FormatRDFXML"}
	}
	return nil
}
