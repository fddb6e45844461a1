package rdf

import "strings"

// firstPredicates renders before all other predicates under a subject, in
// this order. rdf:type is always first.
var firstPredicates = []string{
	RDFType,
	"http://www.w3.org/2000/01/rdf-schema#subClassOf",
	"http://www.w3.org/2000/01/rdf-schema#subPropertyOf",
	"http://www.w3.org/2002/07/owl#equivalentClass",
	"http://www.w3.org/2002/07/owl#equivalentProperty",
	"http://www.w3.org/2000/01/rdf-schema#domain",
	"http://www.w3.org/2000/01/rdf-schema#range",
	"http://www.w3.org/2000/01/rdf-schema#label",
	"http://www.w3.org/2000/01/rdf-schema#comment",
}

// preferredRDFTypes picks which rdf:type value names the enclosing element
// in RDF/XML (and the order non-preferred types are emitted afterward).
var preferredRDFTypes = []string{
	"http://www.w3.org/2002/07/owl#NamedIndividual",
	"http://www.w3.org/2002/07/owl#Class",
	"http://www.w3.org/2002/07/owl#ObjectProperty",
	"http://www.w3.org/2002/07/owl#DatatypeProperty",
	"http://www.w3.org/2002/07/owl#AnnotationProperty",
	OWLOntology,
}

func firstPredicateRank(iri string) int {
	for i, p := range firstPredicates {
		if p == iri {
			return i
		}
	}
	return -1
}

func preferredTypeRank(iri string) int {
	for i, p := range preferredRDFTypes {
		if p == iri {
			return i
		}
	}
	return -1
}

// CompareContext carries the rendering decisions that affect how terms
// compare: the blank-node canonical label map (built incrementally by the
// relabeler) and the unsorted triple map (needed to compare blank nodes by
// their outbound content). It is threaded through every comparison.
type CompareContext struct {
	// Unsorted is subject -> predicate -> objects, built directly from the
	// input graph before any sorting.
	Unsorted map[string]map[string][]Term
	// Labels maps a blank node ID to its canonical "a<k>" label (written
	// as "_:a<k>" by the writers), once assigned by the relabeler. Comparisons that reach an already-labeled
	// blank node use the label instead of recursing, which is what
	// guarantees termination (§9).
	Labels map[string]string

	signatureCache map[string]string
}

// NewCompareContext builds a CompareContext from a graph's statements.
func NewCompareContext(statements []Statement) *CompareContext {
	unsorted := make(map[string]map[string][]Term)
	for _, st := range statements {
		skey := subjectKey(st.Subject)
		byPred, ok := unsorted[skey]
		if !ok {
			byPred = make(map[string][]Term)
			unsorted[skey] = byPred
		}
		byPred[st.Predicate.Value] = append(byPred[st.Predicate.Value], st.Object)
	}
	return &CompareContext{
		Unsorted:       unsorted,
		Labels:         make(map[string]string),
		signatureCache: make(map[string]string),
	}
}

func subjectKey(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "i:" + v.Value
	case BlankNode:
		return "b:" + v.ID
	default:
		return t.String()
	}
}

// CompareTerms implements the total order of §4.2: variant rank first
// (IRI < BlankNode < Literal), then a per-kind comparison.
func CompareTerms(a, b Term, ctx *CompareContext) int {
	ra, rb := variantRank(a), variantRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 0:
		return strings.Compare(a.(IRI).Value, b.(IRI).Value)
	case 1:
		return compareBlankNodes(a.(BlankNode), b.(BlankNode), ctx)
	default:
		return compareLiterals(a.(Literal), b.(Literal))
	}
}

func variantRank(t Term) int {
	switch t.(type) {
	case IRI:
		return 0
	case BlankNode:
		return 1
	default:
		return 2
	}
}

func compareLiterals(a, b Literal) int {
	if c := strings.Compare(a.Lexical, b.Lexical); c != 0 {
		return c
	}
	if a.Lang == "" && b.Lang != "" {
		return -1
	}
	if a.Lang != "" && b.Lang == "" {
		return 1
	}
	if c := strings.Compare(a.Lang, b.Lang); c != 0 {
		return c
	}
	return strings.Compare(a.Datatype.Value, b.Datatype.Value)
}

// compareBlankNodes implements the structural comparator: two blank nodes
// compare by their outbound predicate/object content, recursively, falling
// back to their canonical label once assigned (§9, termination note).
func compareBlankNodes(a, b BlankNode, ctx *CompareContext) int {
	if a.ID == b.ID {
		return 0
	}
	la, haveA := ctx.Labels[a.ID]
	lb, haveB := ctx.Labels[b.ID]
	if haveA && haveB {
		return strings.Compare(la, lb)
	}
	sa := structuralSignature(a, ctx, make(map[string]bool))
	sb := structuralSignature(b, ctx, make(map[string]bool))
	if c := strings.Compare(sa, sb); c != 0 {
		return c
	}
	// Identical outbound content: tie-break on canonical label if either is
	// assigned, else on ID as a last-resort stable tie-break (the
	// relabeler assigns both labels from this same order immediately
	// afterward, so this path only matters transiently during relabeling).
	if haveA {
		return -1
	}
	if haveB {
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

// structuralSignature builds a deterministic string describing a blank
// node's outbound predicate/object map, memoized per node and guarded
// against cycles (a cycle makes the signature fall back to the node's own
// ID once revisited, which keeps the computation finite; actual cycle
// detection for InlineBlankNodes is a separate, explicit DFS in writer.go).
func structuralSignature(b BlankNode, ctx *CompareContext, visiting map[string]bool) string {
	if sig, ok := ctx.signatureCache[b.ID]; ok {
		return sig
	}
	if visiting[b.ID] {
		return "#cycle:" + b.ID
	}
	visiting[b.ID] = true
	defer delete(visiting, b.ID)
	// Placeholder until the real signature is cached below: the object sort
	// re-enters through compareBlankNodes with a fresh visiting set, and
	// must see this node as a cycle rather than recurse into it again.
	ctx.signatureCache[b.ID] = "#cycle:" + b.ID

	byPred := ctx.Unsorted[subjectKey(b)]
	preds := make([]string, 0, len(byPred))
	for p := range byPred {
		preds = append(preds, p)
	}
	sortStrings(preds)

	var sb strings.Builder
	for _, p := range preds {
		objs := append([]Term(nil), byPred[p]...)
		sortTerms(objs, ctx)
		sb.WriteString(p)
		sb.WriteByte('=')
		for _, o := range objs {
			switch v := o.(type) {
			case BlankNode:
				sb.WriteString("_bn:")
				sb.WriteString(structuralSignature(v, ctx, visiting))
			default:
				sb.WriteString(o.String())
			}
			sb.WriteByte(',')
		}
		sb.WriteByte(';')
	}
	sig := sb.String()
	ctx.signatureCache[b.ID] = sig
	return sig
}

func sortStrings(s []string) {
	// insertion sort is fine: predicate lists per subject are small, and
	// this keeps the comparator self-contained without importing sort
	// solely for this helper used inside a recursive hot path.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// sortTerms sorts a slice of terms using CompareTerms.
func sortTerms(terms []Term, ctx *CompareContext) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && CompareTerms(terms[j-1], terms[j], ctx) > 0; j-- {
			terms[j-1], terms[j] = terms[j], terms[j-1]
		}
	}
}
