package rdf

// collectionMembers walks the rdf:first/rdf:rest chain rooted at head and
// returns its members in list order, or ok=false if head is not the head of
// a well-formed collection: every node on the chain must have exactly one
// rdf:first and one rdf:rest, no other predicates, and the chain must
// terminate at rdf:nil without revisiting a node (cycle guard).
func collectionMembers(head Term, idx *SortedIndex) (members []Term, ok bool) {
	bn, isBlank := head.(BlankNode)
	if !isBlank {
		if iri, isIRI := head.(IRI); isIRI && iri.Value == RDFNil {
			return nil, true
		}
		return nil, false
	}
	visited := make(map[string]bool)
	cur := Term(bn)
	for {
		if iri, isIRI := cur.(IRI); isIRI {
			if iri.Value == RDFNil {
				return members, true
			}
			return nil, false
		}
		curBN, isBN := cur.(BlankNode)
		if !isBN {
			return nil, false
		}
		if visited[curBN.ID] {
			return nil, false
		}
		visited[curBN.ID] = true

		preds := idx.PredicatesFor(curBN)
		if len(preds) != 2 {
			return nil, false
		}
		var predSet [2]bool // [0]=first, [1]=rest
		for _, p := range preds {
			switch p.Value {
			case RDFFirst:
				predSet[0] = true
			case RDFRest:
				predSet[1] = true
			default:
				return nil, false
			}
		}
		if !predSet[0] || !predSet[1] {
			return nil, false
		}
		firsts := idx.ObjectsFor(curBN, RDFFirst)
		rests := idx.ObjectsFor(curBN, RDFRest)
		if len(firsts) != 1 || len(rests) != 1 {
			return nil, false
		}
		members = append(members, firsts[0])
		cur = rests[0]
	}
}

// collectionMembersResourceOnly is collectionMembers restricted to members
// that are themselves IRIs or blank nodes (never literals). RDF/XML's
// parseType="Collection" construct cannot represent a collection with a
// literal member, so the writer falls back to explicit rdf:first/rdf:rest
// triples in that case.
func collectionMembersResourceOnly(head Term, idx *SortedIndex) (members []Term, ok bool) {
	members, ok = collectionMembers(head, idx)
	if !ok {
		return nil, false
	}
	for _, m := range members {
		if m.Kind() == KindLiteral {
			return nil, false
		}
	}
	return members, true
}
