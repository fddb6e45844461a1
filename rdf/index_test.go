package rdf

import "testing"

func TestBuildSortedIndexOrdersSubjectsAndPredicates(t *testing.T) {
	a := IRI{Value: "http://example.org/b"}
	b := IRI{Value: "http://example.org/a"}
	p := IRI{Value: "http://example.org/p"}
	statements := []Statement{
		{Subject: a, Predicate: p, Object: NewStringLiteral("1")},
		{Subject: b, Predicate: p, Object: NewStringLiteral("2")},
		{Subject: a, Predicate: IRI{Value: RDFType}, Object: IRI{Value: "http://example.org/Type"}},
	}
	idx := BuildSortedIndex(statements)

	if len(idx.SortedSubjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(idx.SortedSubjects))
	}
	if idx.SortedSubjects[0].(IRI).Value != b.Value {
		t.Errorf("subjects should sort lexically: got %v first, want %v", idx.SortedSubjects[0], b)
	}

	predsA := idx.PredicatesFor(a)
	if len(predsA) != 2 {
		t.Fatalf("expected 2 predicates for subject a, got %d", len(predsA))
	}
	if predsA[0].Value != RDFType {
		t.Errorf("rdf:type must always be the first predicate, got %v", predsA[0])
	}
}

func TestBuildSortedIndexTracksOntologies(t *testing.T) {
	ont := IRI{Value: "http://example.org/onto"}
	statements := []Statement{
		{Subject: ont, Predicate: IRI{Value: RDFType}, Object: IRI{Value: OWLOntology}},
	}
	idx := BuildSortedIndex(statements)
	if len(idx.SortedOntologies) != 1 {
		t.Fatalf("expected 1 ontology subject, got %d", len(idx.SortedOntologies))
	}
	if idx.SortedOntologies[0].(IRI).Value != ont.Value {
		t.Errorf("ontology subject = %v, want %v", idx.SortedOntologies[0], ont)
	}
}

func TestBuildSortedIndexTracksBlankNodes(t *testing.T) {
	bn := BlankNode{ID: "x"}
	statements := []Statement{
		{Subject: IRI{Value: "http://example.org/s"}, Predicate: IRI{Value: "http://example.org/p"}, Object: bn},
	}
	idx := BuildSortedIndex(statements)
	if len(idx.SortedBlankNodes) != 1 {
		t.Fatalf("expected 1 blank node tracked, got %d", len(idx.SortedBlankNodes))
	}
}

func TestObjectsForReturnsSortedObjects(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	statements := []Statement{
		{Subject: s, Predicate: p, Object: NewStringLiteral("z")},
		{Subject: s, Predicate: p, Object: NewStringLiteral("a")},
	}
	idx := BuildSortedIndex(statements)
	objs := idx.ObjectsFor(s, p.Value)
	if len(objs) != 2 || objs[0].(Literal).Lexical != "a" {
		t.Errorf("ObjectsFor should return sorted objects, got %v", objs)
	}
}
