package rdf

import (
	"bufio"
	"bytes"
	"io"
)

// formatHooks is implemented once per target format (turtleHooks,
// rdfxmlHooks) and driven by Serialize through the same nine-step
// lifecycle regardless of format: validate config, build the index, assign
// blank-node labels, check inline eligibility, resolve the base IRI,
// prepare namespaces, write the header, write each subject in order, write
// the footer.
type formatHooks interface {
	// prepareNamespaces resolves every IRI the format will need a QName
	// for, populating s.ns (including any generated prefixes) before a
	// single byte is written, so the header's prefix declarations are
	// complete.
	prepareNamespaces(s *writerState)
	writeHeader(s *writerState) error
	writeSubject(s *writerState, subject Term, isFirst bool) error
	writeFooter(s *writerState) error
}

// writerState carries everything a formatHooks implementation needs for
// one Serialize call. It is never reused across calls.
type writerState struct {
	w   *bufio.Writer
	cfg Config
	idx *SortedIndex
	ns  *NamespaceTable

	// xml is populated by rdfxmlHooks.writeHeader; unused by turtleHooks.
	xml *xmlStream

	// dtdEntities maps a namespace IRI to its DTD entity name, populated by
	// rdfxmlHooks.writeHeader when Config.UseDTDSubset is set; unused
	// otherwise.
	dtdEntities map[string]string

	baseIRI string

	// inlineEligible is set when Config.InlineBlankNodes was requested and
	// validated (no cycle, no dangling subject). Writers consult it before
	// choosing inline rendering over a reference.
	inlineEligible bool
}

// Serialize writes g to w in cfg.TargetFormat, applying cfg's options. It
// returns a *ConfigError for invalid configuration (before any bytes are
// written), an *InputDefectError for a graph defect incompatible with the
// requested options, or an I/O error from w.
func Serialize(w io.Writer, g Graph, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	idx := BuildSortedIndex(g.Statements)
	AssignCanonicalLabels(idx)

	inlineEligible := false
	if cfg.InlineBlankNodes {
		if err := checkInlineEligibility(idx); err != nil {
			return err
		}
		inlineEligible = true
	}

	ns := NewNamespaceTable(g.Prefixes, cfg.generatePrefixes())

	baseIRI := cfg.BaseIRI
	if baseIRI == "" && cfg.InferBaseIRI && len(idx.SortedOntologies) > 0 {
		if iri, ok := idx.SortedOntologies[0].(IRI); ok {
			baseIRI = iri.Value
		}
	}

	var hooks formatHooks
	switch cfg.targetFormat() {
	case FormatTurtle:
		hooks = &turtleHooks{}
	case FormatRDFXML:
		hooks = &rdfxmlHooks{}
	default:
		return ErrUnsupportedFormat
	}

	// The document is built in memory and copied to w only once every hook
	// has succeeded, so an error part-way through leaves w untouched.
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)
	s := &writerState{
		w:              bw,
		cfg:            cfg,
		idx:            idx,
		ns:             ns,
		baseIRI:        baseIRI,
		inlineEligible: inlineEligible,
	}

	hooks.prepareNamespaces(s)

	if err := hooks.writeHeader(s); err != nil {
		return err
	}
	written := 0
	for _, subject := range subjectOrder(idx, cfg.targetFormat()) {
		if inlineEligible && isCollectionNode(subject, idx) {
			// Collection cells are only absorbed into their enclosing
			// collection's short form when inlining is active; otherwise
			// they are written out as ordinary rdf:first/rdf:rest subjects.
			continue
		}
		if _, isBlank := subject.(BlankNode); isBlank && inlineEligible {
			// Every blank-node subject is guaranteed (by
			// checkInlineEligibility) to appear as an object elsewhere, so
			// it is written inline at that point of reference instead.
			continue
		}
		if err := hooks.writeSubject(s, subject, written == 0); err != nil {
			return err
		}
		written++
	}
	if err := hooks.writeFooter(s); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	_, err := out.WriteTo(w)
	return err
}

// SerializeTurtle is a convenience wrapper equivalent to Serialize with
// cfg.TargetFormat forced to FormatTurtle.
func SerializeTurtle(w io.Writer, g Graph, cfg Config) error {
	cfg.TargetFormat = FormatTurtle
	return Serialize(w, g, cfg)
}

// SerializeRDFXML is a convenience wrapper equivalent to Serialize with
// cfg.TargetFormat forced to FormatRDFXML.
func SerializeRDFXML(w io.Writer, g Graph, cfg Config) error {
	cfg.TargetFormat = FormatRDFXML
	return Serialize(w, g, cfg)
}

// subjectOrder returns the order Serialize visits subjects in. RDF/XML
// puts owl:Ontology subjects first, matching the original writer's
// two-phase endRDF (ontology header block, then everything else); Turtle
// has no such convention and uses the plain sorted order.
func subjectOrder(idx *SortedIndex, format Format) []Term {
	if format != FormatRDFXML || len(idx.SortedOntologies) == 0 {
		return idx.SortedSubjects
	}
	isOntology := make(map[string]bool, len(idx.SortedOntologies))
	for _, t := range idx.SortedOntologies {
		isOntology[subjectKey(t)] = true
	}
	out := make([]Term, 0, len(idx.SortedSubjects))
	out = append(out, idx.SortedOntologies...)
	for _, t := range idx.SortedSubjects {
		if !isOntology[subjectKey(t)] {
			out = append(out, t)
		}
	}
	return out
}

// isCollectionNode reports whether subject is a blank node whose only
// predicates are rdf:first and rdf:rest, i.e. a list cell. It does not walk
// the rest of the chain or check that anything references the cell. Such
// subjects are rendered as part of the collection's short form at their
// point of reference rather than as a standalone top-level subject, but
// only when the caller has confirmed inlining is active: the caller must
// gate the use of this result on inlineEligible.
func isCollectionNode(subject Term, idx *SortedIndex) bool {
	bn, ok := subject.(BlankNode)
	if !ok {
		return false
	}
	preds := idx.PredicatesFor(bn)
	if len(preds) != 2 {
		return false
	}
	hasFirst, hasRest := false, false
	for _, p := range preds {
		switch p.Value {
		case RDFFirst:
			hasFirst = true
		case RDFRest:
			hasRest = true
		}
	}
	return hasFirst && hasRest
}

// checkInlineEligibility walks every blank-node subject looking for a
// cycle (a blank node reachable from itself through blank-node objects) or
// a dangling subject (a blank-node subject that never appears as an
// object anywhere in the graph, so it has no point of reference to inline
// at). Either defect makes InlineBlankNodes unsatisfiable.
func checkInlineEligibility(idx *SortedIndex) error {
	referencedAsObject := make(map[string]bool)
	for _, byPred := range idx.Objects {
		for _, objs := range byPred {
			for _, o := range objs {
				if bn, ok := o.(BlankNode); ok {
					referencedAsObject[bn.ID] = true
				}
			}
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)

	var visit func(bn BlankNode) error
	visit = func(bn BlankNode) error {
		switch color[bn.ID] {
		case gray:
			return &InputDefectError{Err: ErrBlankNodeCycle, Term: bn}
		case black:
			return nil
		}
		color[bn.ID] = gray
		for _, pred := range idx.PredicatesFor(bn) {
			for _, obj := range idx.ObjectsFor(bn, pred.Value) {
				if child, ok := obj.(BlankNode); ok {
					if err := visit(child); err != nil {
						return err
					}
				}
			}
		}
		color[bn.ID] = black
		return nil
	}

	for _, subj := range idx.SortedSubjects {
		bn, ok := subj.(BlankNode)
		if !ok {
			continue
		}
		if !referencedAsObject[bn.ID] {
			return &InputDefectError{Err: ErrDanglingBlankSubject, Term: bn}
		}
		if err := visit(bn); err != nil {
			return err
		}
	}
	return nil
}
