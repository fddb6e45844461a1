package rdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestSerializeRDFXMLPreferredTypeNamesElement(t *testing.T) {
	s := IRI{Value: "http://example.org/alice"}
	g := Graph{
		Statements: []Statement{
			{Subject: s, Predicate: IRI{Value: RDFType}, Object: IRI{Value: "http://www.w3.org/2002/07/owl#Thing"}},
			{Subject: s, Predicate: IRI{Value: RDFType}, Object: IRI{Value: "http://www.w3.org/2002/07/owl#NamedIndividual"}},
		},
		Prefixes: NewPrefixTable(map[string]string{"owl": "http://www.w3.org/2002/07/owl#"}),
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, g, Config{TargetFormat: FormatRDFXML}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<owl:NamedIndividual") {
		t.Errorf("expected the preferred type to name the element, got:\n%s", out)
	}
	if strings.Contains(out, "owl:Thing") {
		t.Errorf("owl:Thing should never appear in output (neither as element name nor child), got:\n%s", out)
	}
	if strings.Contains(out, "<rdf:Description") {
		t.Errorf("a preferred type was available, rdf:Description should not be used, got:\n%s", out)
	}
}

func TestSerializeRDFXMLFallsBackToDescriptionWithNoPreferredType(t *testing.T) {
	s := IRI{Value: "http://example.org/alice"}
	g := Graph{
		Statements: []Statement{
			{Subject: s, Predicate: IRI{Value: "http://example.org/name"}, Object: NewStringLiteral("Alice")},
		},
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, g, Config{TargetFormat: FormatRDFXML}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(buf.String(), "<rdf:Description") {
		t.Errorf("expected rdf:Description fallback, got:\n%s", buf.String())
	}
}

func TestSerializeRDFXMLUseDTDSubsetEmitsEntitiesAndRefs(t *testing.T) {
	s := IRI{Value: "http://example.org/alice"}
	g := Graph{
		Statements: []Statement{
			{Subject: s, Predicate: IRI{Value: "http://example.org/knows"}, Object: IRI{Value: "http://example.org/bob"}},
		},
		Prefixes: NewPrefixTable(map[string]string{"ex": "http://example.org/"}),
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, g, Config{TargetFormat: FormatRDFXML, UseDTDSubset: true}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<!DOCTYPE rdf:RDF [") {
		t.Errorf("expected a DOCTYPE internal subset, got:\n%s", out)
	}
	if !strings.Contains(out, `<!ENTITY ex "http://example.org/">`) {
		t.Errorf("expected an ENTITY declaration for the ex namespace, got:\n%s", out)
	}
	if !strings.Contains(out, `rdf:about="&ex;alice"`) {
		t.Errorf("expected rdf:about to use the entity reference, got:\n%s", out)
	}
	if !strings.Contains(out, `rdf:resource="&ex;bob"`) {
		t.Errorf("expected rdf:resource to use the entity reference, got:\n%s", out)
	}
}

func TestSerializeRDFXMLUnresolvablePredicateIsInputDefect(t *testing.T) {
	g := Graph{
		Statements: []Statement{
			{Subject: IRI{Value: "http://example.org/s"}, Predicate: IRI{Value: "http://example.org/"}, Object: NewStringLiteral("v")},
		},
	}
	err := Serialize(&bytes.Buffer{}, g, Config{TargetFormat: FormatRDFXML})
	if err == nil {
		t.Fatal("expected an error for a predicate IRI with no local name")
	}
	if Code(err) != ErrCodeInputDefect {
		t.Errorf("Code(err) = %v, want ErrCodeInputDefect", Code(err))
	}
}

func TestSerializeRDFXMLOntologySubjectWritesFirst(t *testing.T) {
	onto := IRI{Value: "http://example.org/onto"}
	other := IRI{Value: "http://example.org/aaa-comes-first-alphabetically"}
	g := Graph{
		Statements: []Statement{
			{Subject: other, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("v")},
			{Subject: onto, Predicate: IRI{Value: RDFType}, Object: IRI{Value: OWLOntology}},
		},
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, g, Config{TargetFormat: FormatRDFXML}); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	ontoPos := strings.Index(out, "onto")
	otherPos := strings.Index(out, "aaa-comes-first-alphabetically")
	if ontoPos < 0 || otherPos < 0 || ontoPos > otherPos {
		t.Errorf("expected the owl:Ontology subject to be written first despite sorting after alphabetically, got:\n%s", out)
	}
}
