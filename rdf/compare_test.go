package rdf

import "testing"

func TestCompareTermsVariantRank(t *testing.T) {
	ctx := NewCompareContext(nil)
	iri := IRI{Value: "http://example.org/a"}
	bn := BlankNode{ID: "x"}
	lit := NewStringLiteral("a")

	if CompareTerms(iri, bn, ctx) >= 0 {
		t.Errorf("IRI should sort before BlankNode")
	}
	if CompareTerms(bn, lit, ctx) >= 0 {
		t.Errorf("BlankNode should sort before Literal")
	}
	if CompareTerms(iri, lit, ctx) >= 0 {
		t.Errorf("IRI should sort before Literal")
	}
}

func TestCompareLiteralsOrdering(t *testing.T) {
	ctx := NewCompareContext(nil)
	plain := NewStringLiteral("a")
	lang := NewLangLiteral("a", "en")
	if CompareTerms(plain, lang, ctx) >= 0 {
		t.Errorf("an untagged literal should sort before a language-tagged one with the same lexical form")
	}

	earlier := NewStringLiteral("a")
	later := NewStringLiteral("b")
	if CompareTerms(earlier, later, ctx) >= 0 {
		t.Errorf("lexical ordering should apply before datatype/lang")
	}
}

func TestCompareBlankNodesStructural(t *testing.T) {
	statements := []Statement{
		{Subject: BlankNode{ID: "b1"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("x")},
		{Subject: BlankNode{ID: "b2"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("y")},
	}
	ctx := NewCompareContext(statements)
	b1 := BlankNode{ID: "b1"}
	b2 := BlankNode{ID: "b2"}
	if CompareTerms(b1, b2, ctx) >= 0 {
		t.Errorf("b1 (object x) should sort before b2 (object y) by structural content")
	}
	// Comparing a node against itself is always zero regardless of content.
	if CompareTerms(b1, b1, ctx) != 0 {
		t.Errorf("a blank node must compare equal to itself")
	}
}

func TestCompareBlankNodesUsesCanonicalLabelOnceAssigned(t *testing.T) {
	statements := []Statement{
		{Subject: BlankNode{ID: "b1"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("same")},
		{Subject: BlankNode{ID: "b2"}, Predicate: IRI{Value: "http://example.org/p"}, Object: NewStringLiteral("same")},
	}
	ctx := NewCompareContext(statements)
	ctx.Labels["b1"] = "a0"
	ctx.Labels["b2"] = "a1"
	b1 := BlankNode{ID: "b1"}
	b2 := BlankNode{ID: "b2"}
	if CompareTerms(b1, b2, ctx) >= 0 {
		t.Errorf("with identical structural content, canonical label should break the tie")
	}
}

func TestFirstPredicateRankPutsRDFTypeFirst(t *testing.T) {
	if firstPredicateRank(RDFType) != 0 {
		t.Errorf("rdf:type should have rank 0")
	}
	if firstPredicateRank("http://example.org/unrelated") != -1 {
		t.Errorf("unrelated predicate should not be ranked")
	}
}
