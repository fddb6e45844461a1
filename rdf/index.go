package rdf

// SortedIndex is the sorted view of a graph built once, up front, and
// reused by every writer. It mirrors the lifecycle of the Java original's
// endRDF: accumulate unsorted maps while reading, then sort everything in
// one pass before any output is produced.
type SortedIndex struct {
	Ctx *CompareContext

	// SortedSubjects lists every distinct subject, sorted.
	SortedSubjects []Term
	// SortedPredicates maps a subject key to its predicates, sorted.
	SortedPredicates map[string][]IRI
	// Objects maps subject key + predicate IRI to its objects, sorted.
	Objects map[string]map[string][]Term

	// SortedOntologies lists subjects with an rdf:type owl:Ontology
	// statement, sorted. Used to infer a base IRI and to emit the
	// ontology header first in RDF/XML.
	SortedOntologies []Term
	// SortedBlankNodes lists every blank-node subject or object, sorted
	// (by structural content, then canonical label once assigned).
	SortedBlankNodes []BlankNode

	// Anomalies collects non-fatal SortAnomalyError diagnostics gathered
	// while building the index. Serialization still proceeds.
	Anomalies []*SortAnomalyError
}

// BuildSortedIndex constructs the sorted index from a graph's statements.
func BuildSortedIndex(statements []Statement) *SortedIndex {
	ctx := NewCompareContext(statements)
	idx := &SortedIndex{
		Ctx:              ctx,
		SortedPredicates: make(map[string][]IRI),
		Objects:          make(map[string]map[string][]Term),
	}

	subjectsSeen := make(map[string]Term)
	subjectSightingOrder := make([]string, 0)
	predicatesSeen := make(map[string]map[string]IRI)
	blankSeen := make(map[string]BlankNode)
	ontologySeen := make(map[string]Term)

	for _, st := range statements {
		skey := subjectKey(st.Subject)
		if _, ok := subjectsSeen[skey]; !ok {
			subjectsSeen[skey] = st.Subject
			subjectSightingOrder = append(subjectSightingOrder, skey)
			predicatesSeen[skey] = make(map[string]IRI)
		}
		predicatesSeen[skey][st.Predicate.Value] = st.Predicate

		byPred, ok := idx.Objects[skey]
		if !ok {
			byPred = make(map[string][]Term)
			idx.Objects[skey] = byPred
		}
		byPred[st.Predicate.Value] = append(byPred[st.Predicate.Value], st.Object)

		if bn, ok := st.Subject.(BlankNode); ok {
			blankSeen[bn.ID] = bn
		}
		if bn, ok := st.Object.(BlankNode); ok {
			blankSeen[bn.ID] = bn
		}
		if st.Predicate.Value == RDFType {
			if iri, ok := st.Object.(IRI); ok && iri.Value == OWLOntology {
				ontologySeen[skey] = st.Subject
			}
		}
	}

	unsortedSubjectCount := len(subjectSightingOrder)
	sortedSubjects := make([]Term, 0, len(subjectSightingOrder))
	for _, skey := range subjectSightingOrder {
		sortedSubjects = append(sortedSubjects, subjectsSeen[skey])
	}
	sortTerms(sortedSubjects, ctx)
	if len(sortedSubjects) != unsortedSubjectCount {
		idx.Anomalies = append(idx.Anomalies, &SortAnomalyError{
			Stage:        "subjects",
			SortedSize:   len(sortedSubjects),
			UnsortedSize: unsortedSubjectCount,
		})
	}
	idx.SortedSubjects = sortedSubjects

	for skey, predMap := range predicatesSeen {
		preds := make([]IRI, 0, len(predMap))
		for _, p := range predMap {
			preds = append(preds, p)
		}
		sortPredicates(preds)
		idx.SortedPredicates[skey] = preds

		byPred := idx.Objects[skey]
		for pred, objs := range byPred {
			sorted := append([]Term(nil), objs...)
			sortTerms(sorted, ctx)
			if len(sorted) != len(objs) {
				idx.Anomalies = append(idx.Anomalies, &SortAnomalyError{
					Stage:        "objects:" + skey + ":" + pred,
					SortedSize:   len(sorted),
					UnsortedSize: len(objs),
				})
			}
			byPred[pred] = sorted
		}
	}

	sortedOntologies := make([]Term, 0, len(ontologySeen))
	for _, t := range ontologySeen {
		sortedOntologies = append(sortedOntologies, t)
	}
	sortTerms(sortedOntologies, ctx)
	idx.SortedOntologies = sortedOntologies

	sortedBlanks := make([]BlankNode, 0, len(blankSeen))
	for _, bn := range blankSeen {
		sortedBlanks = append(sortedBlanks, bn)
	}
	sortBlankNodes(sortedBlanks, ctx)
	idx.SortedBlankNodes = sortedBlanks

	return idx
}

// sortPredicates orders predicates using firstPredicates rank first (with
// rdf:type always leading), then lexicographically by IRI.
func sortPredicates(preds []IRI) {
	rank := func(p IRI) int {
		r := firstPredicateRank(p.Value)
		if r < 0 {
			return len(firstPredicates)
		}
		return r
	}
	for i := 1; i < len(preds); i++ {
		for j := i; j > 0; j-- {
			a, b := preds[j-1], preds[j]
			ra, rb := rank(a), rank(b)
			less := ra > rb || (ra == rb && a.Value > b.Value)
			if !less {
				break
			}
			preds[j-1], preds[j] = preds[j], preds[j-1]
		}
	}
}

func sortBlankNodes(nodes []BlankNode, ctx *CompareContext) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && compareBlankNodes(nodes[j-1], nodes[j], ctx) > 0; j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

// ObjectsFor returns the sorted objects for a subject/predicate pair.
func (idx *SortedIndex) ObjectsFor(subject Term, predicate string) []Term {
	byPred, ok := idx.Objects[subjectKey(subject)]
	if !ok {
		return nil
	}
	return byPred[predicate]
}

// PredicatesFor returns the sorted predicates for a subject.
func (idx *SortedIndex) PredicatesFor(subject Term) []IRI {
	return idx.SortedPredicates[subjectKey(subject)]
}
