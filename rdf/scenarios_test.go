package rdf

import (
	"bytes"
	"strings"
	"testing"
)

// fixtureGraph parses an N-Triples fixture document into a Graph with no
// declared prefixes, as input for the scenario tests below. Serialize's
// Turtle/RDF-XML output is not parsed back anywhere in this package.
func fixtureGraph(t *testing.T, doc string) Graph {
	t.Helper()
	statements, err := readFixtureStatements(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("readFixtureStatements: %v", err)
	}
	return Graph{Statements: statements}
}

// TestScenarioSimpleOntology exercises a small ontology-like graph: an
// owl:Ontology subject plus a typed individual, serialized to both
// supported formats.
func TestScenarioSimpleOntology(t *testing.T) {
	doc := `
<http://example.org/onto> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Ontology> .
<http://example.org/onto> <http://www.w3.org/2000/01/rdf-schema#label> "Example Ontology" .
<http://example.org/alice> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#NamedIndividual> .
<http://example.org/alice> <http://www.w3.org/2000/01/rdf-schema#label> "Alice" .
`
	g := fixtureGraph(t, doc)

	for _, format := range []Format{FormatTurtle, FormatRDFXML} {
		var buf bytes.Buffer
		if err := Serialize(&buf, g, Config{TargetFormat: format}); err != nil {
			t.Fatalf("Serialize(%s): %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Serialize(%s) produced no output", format)
		}
	}
}

// TestScenarioBaseIRIInference checks that InferBaseIRI picks up the
// sorted-first owl:Ontology subject when no explicit BaseIRI is given,
// and that the ontology's own IRI then renders as "<>".
func TestScenarioBaseIRIInference(t *testing.T) {
	doc := `
<http://example.org/onto> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Ontology> .
<http://example.org/onto> <http://www.w3.org/2000/01/rdf-schema#comment> "root" .
`
	g := fixtureGraph(t, doc)
	var buf bytes.Buffer
	cfg := Config{InferBaseIRI: true, ShortIRIPriority: ShortIRIPriorityBaseIRI}
	if err := Serialize(&buf, g, cfg); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "@base <http://example.org/onto>") {
		t.Errorf("expected inferred @base, got:\n%s", out)
	}
	if !strings.Contains(out, "<>\n") {
		t.Errorf("expected the ontology subject to relativize to <>, got:\n%s", out)
	}
}

// TestScenarioCollectionRoundTripsThroughBothFormats builds a graph with
// an rdf:first/rdf:rest collection and checks both writers handle it
// without error and, under InlineBlankNodes, never surface the
// collection's cells as standalone subjects.
func TestScenarioCollectionRoundTripsThroughBothFormats(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/items"}
	head, listStatements := buildList(
		IRI{Value: "http://example.org/item1"},
		IRI{Value: "http://example.org/item2"},
	)
	g := Graph{Statements: append([]Statement{{Subject: s, Predicate: p, Object: head}}, listStatements...)}

	for _, format := range []Format{FormatTurtle, FormatRDFXML} {
		var buf bytes.Buffer
		if err := Serialize(&buf, g, Config{TargetFormat: format, InlineBlankNodes: true}); err != nil {
			t.Fatalf("Serialize(%s): %v", format, err)
		}
		out := buf.String()
		if strings.Count(out, "item1") != 1 {
			t.Errorf("Serialize(%s): expected item1 to appear exactly once, got:\n%s", format, out)
		}
	}
}

// TestScenarioCollectionWithoutInlineWritesCellsAsSubjects checks that the
// same collection, serialized without InlineBlankNodes, falls back to the
// list primitives: each cell is written out as an ordinary blank-node
// subject with its own rdf:first/rdf:rest statements rather than collapsed
// to the collection short form.
func TestScenarioCollectionWithoutInlineWritesCellsAsSubjects(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/items"}
	head, listStatements := buildList(
		IRI{Value: "http://example.org/item1"},
		IRI{Value: "http://example.org/item2"},
	)
	g := Graph{Statements: append([]Statement{{Subject: s, Predicate: p, Object: head}}, listStatements...)}

	for _, format := range []Format{FormatTurtle, FormatRDFXML} {
		var buf bytes.Buffer
		if err := Serialize(&buf, g, Config{TargetFormat: format}); err != nil {
			t.Fatalf("Serialize(%s): %v", format, err)
		}
		out := buf.String()
		if strings.Contains(out, "(") && strings.Contains(out, "item1") && strings.Contains(out, ")") {
			t.Errorf("Serialize(%s): did not expect Turtle collection short form, got:\n%s", format, out)
		}
		if strings.Contains(out, `parseType="Collection"`) {
			t.Errorf("Serialize(%s): did not expect parseType=Collection, got:\n%s", format, out)
		}
		if strings.Count(out, "item1") != 1 {
			t.Errorf("Serialize(%s): expected item1 to appear exactly once, got:\n%s", format, out)
		}
	}
}

// TestScenarioDanglingBlankSubjectRejectedUnderInline checks the
// InputDefectError path for a blank-node subject that never appears as an
// object, when InlineBlankNodes is requested.
func TestScenarioDanglingBlankSubjectRejectedUnderInline(t *testing.T) {
	g := Graph{Statements: []Statement{
		{Subject: BlankNode{ID: "orphan"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("v")},
	}}
	err := Serialize(&bytes.Buffer{}, g, Config{InlineBlankNodes: true})
	if err == nil {
		t.Fatal("expected an error for a dangling blank-node subject under InlineBlankNodes")
	}
	if Code(err) != ErrCodeInputDefect {
		t.Errorf("Code(err) = %v, want ErrCodeInputDefect", Code(err))
	}
}

// TestScenarioDanglingBlankSubjectAllowedWithoutInline checks the same
// graph serializes fine when InlineBlankNodes is not requested (the
// blank node is just written as a reference).
func TestScenarioDanglingBlankSubjectAllowedWithoutInline(t *testing.T) {
	g := Graph{Statements: []Statement{
		{Subject: BlankNode{ID: "orphan"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("v")},
	}}
	if err := Serialize(&bytes.Buffer{}, g, Config{}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
}

// TestScenarioExplicitStringDataType checks StringDataTypeExplicit adds
// the ^^xsd:string suffix that the implicit default omits.
func TestScenarioExplicitStringDataType(t *testing.T) {
	g := Graph{Statements: []Statement{
		{Subject: IRI{Value: "http://example.org/s"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("v")},
	}}
	var implicit, explicit bytes.Buffer
	if err := Serialize(&implicit, g, Config{}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if err := Serialize(&explicit, g, Config{StringDataType: StringDataTypeExplicit}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if strings.Contains(implicit.String(), "^^") {
		t.Errorf("implicit mode should omit xsd:string, got:\n%s", implicit.String())
	}
	if !strings.Contains(explicit.String(), "^^") {
		t.Errorf("explicit mode should emit xsd:string, got:\n%s", explicit.String())
	}
}

// TestScenarioLeadingAndTrailingComments checks both comment lists are
// emitted, once each, in Turtle output.
func TestScenarioLeadingAndTrailingComments(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	cfg := Config{LeadingComments: []string{"generated"}, TrailingComments: []string{"end of file"}}
	if err := Serialize(&buf, g, cfg); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# generated") {
		t.Errorf("expected leading comment, got:\n%s", out)
	}
	if !strings.Contains(out, "# end of file") {
		t.Errorf("expected trailing comment, got:\n%s", out)
	}
}
