package rdf

// AssignCanonicalLabels walks idx.SortedSubjects and their sorted objects
// and, for each blank node encountered for the first time (as a subject or
// as an object), assigns the next "a<k>" label (written "_:a<k>") in
// sighting order, then recurses into that blank node's sorted objects so
// that nested blank nodes are labeled in the same depth-first order the
// Turtle and RDF/XML writers traverse. Labels already present in idx.Ctx.Labels are
// left untouched, which makes this safe to call once per Serialize.
func AssignCanonicalLabels(idx *SortedIndex) {
	next := 0
	visited := make(map[string]bool)

	var visit func(t Term)
	visit = func(t Term) {
		bn, ok := t.(BlankNode)
		if !ok {
			return
		}
		if visited[bn.ID] {
			return
		}
		visited[bn.ID] = true
		if _, labeled := idx.Ctx.Labels[bn.ID]; !labeled {
			idx.Ctx.Labels[bn.ID] = canonicalLabel(next)
			next++
		}
		for _, pred := range idx.PredicatesFor(bn) {
			for _, obj := range idx.ObjectsFor(bn, pred.Value) {
				visit(obj)
			}
		}
	}

	for _, subj := range idx.SortedSubjects {
		if _, isBlank := subj.(BlankNode); isBlank {
			visit(subj)
			continue
		}
		for _, pred := range idx.PredicatesFor(subj) {
			for _, obj := range idx.ObjectsFor(subj, pred.Value) {
				visit(obj)
			}
		}
	}
	// Every blank node is a subject or an object of some subject, so the
	// walk above already reaches all of them; this pass over
	// idx.SortedBlankNodes only labels any that were left unvisited.
	for _, bn := range idx.SortedBlankNodes {
		visit(bn)
	}
}

func canonicalLabel(k int) string {
	return "a" + itoaBase36(k)
}

// itoaBase36 renders k in base 36 (0-9a-z), matching the compact canonical
// labels used by the sorted writers; k is always non-negative here.
func itoaBase36(k int) string {
	if k == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [16]byte
	i := len(buf)
	for k > 0 {
		i--
		buf[i] = digits[k%36]
		k /= 36
	}
	return string(buf[i:])
}
