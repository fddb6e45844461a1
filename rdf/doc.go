// Package rdf serializes a parsed RDF graph into a canonical, byte-stable
// textual form suitable for line-oriented version control.
//
// The package does not parse RDF. Callers supply a fully materialized
// Graph (statements plus a prefix table, typically produced by an external
// RDF parser) and a Config, and Serialize writes bytes that are a pure
// function of the graph's abstract content: the same graph, with
// statements in any order and blank nodes under any labeling, always
// serializes to the same bytes.
//
// Two output formats are supported:
//
//   - Turtle (Config.TargetFormat = FormatTurtle, the default)
//   - RDF/XML (Config.TargetFormat = FormatRDFXML)
//
// JSON-LD output is delegated to github.com/piprate/json-gold; see
// WriteJSONLD.
//
// Example:
//
//	g := rdf.Graph{
//	    Statements: []rdf.Statement{
//	        {Subject: rdf.IRI{Value: "http://ex/a"}, Predicate: rdf.IRI{Value: rdf.RDFType}, Object: rdf.IRI{Value: "http://ex/C"}},
//	    },
//	    Prefixes: rdf.NewPrefixTable(map[string]string{"ex": "http://ex/"}),
//	}
//	var buf bytes.Buffer
//	if err := rdf.Serialize(&buf, g, rdf.Config{TargetFormat: rdf.FormatTurtle}); err != nil {
//	    // handle error
//	}
package rdf
