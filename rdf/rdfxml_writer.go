package rdf

import "strings"

const rdfNamespaceIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// rdfxmlHooks implements formatHooks for RDF/XML, grounded on the striped
// rdf:Description-per-subject shape of the original Java writer: a
// subject's best-matching preferred rdf:type (if any, excluding
// owl:Thing, which carries no information and is always discarded) names
// the element instead of rdf:Description, and that type is not repeated
// as a child.
type rdfxmlHooks struct{}

func (h *rdfxmlHooks) prepareNamespaces(s *writerState) {
	s.ns.register("rdf", rdfNamespaceIRI)
	for _, subject := range s.idx.SortedSubjects {
		h.touchTerm(s, subject)
		for _, pred := range s.idx.PredicatesFor(subject) {
			s.ns.QName(pred)
			for _, obj := range s.idx.ObjectsFor(subject, pred.Value) {
				h.touchTerm(s, obj)
			}
		}
	}
}

func (h *rdfxmlHooks) touchTerm(s *writerState, t Term) {
	switch v := t.(type) {
	case IRI:
		s.ns.QName(v)
	case Literal:
		if v.Datatype.Value != "" {
			s.ns.QName(v.Datatype)
		}
	case BlankNode:
		if s.cfg.InlineBlankNodes && s.inlineEligible {
			if members, ok := collectionMembersResourceOnly(v, s.idx); ok {
				for _, m := range members {
					h.touchTerm(s, m)
				}
				return
			}
			for _, pred := range s.idx.PredicatesFor(v) {
				s.ns.QName(pred)
				for _, obj := range s.idx.ObjectsFor(v, pred.Value) {
					h.touchTerm(s, obj)
				}
			}
		}
	}
}

func (h *rdfxmlHooks) writeHeader(s *writerState) error {
	le := s.cfg.lineEnd()
	s.w.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	s.w.WriteString(le)

	decls := s.ns.Declarations()
	if s.cfg.UseDTDSubset && len(decls) > 0 {
		s.w.WriteString("<!DOCTYPE rdf:RDF [")
		s.w.WriteString(le)
		s.dtdEntities = make(map[string]string, len(decls))
		dtd := newXMLStream(s.w, s.cfg.indent(), le)
		for _, d := range decls {
			if d.Prefix == "rdf" {
				continue
			}
			name := d.Prefix
			if name == "" {
				name = "default"
			}
			s.w.WriteString("  ")
			dtd.DTDEntity(name, d.Namespace)
			s.dtdEntities[d.Namespace] = name
		}
		s.w.WriteString("]>")
		s.w.WriteString(le)
	}

	xs := newXMLStream(s.w, s.cfg.indent(), le)
	s.xml = xs

	xs.StartElement("rdf:RDF")
	xs.Attribute("xmlns:rdf", rdfNamespaceIRI)
	for _, d := range decls {
		if d.Prefix == "rdf" {
			continue
		}
		attrName := "xmlns:" + d.Prefix
		if d.Prefix == "" {
			attrName = "xmlns"
		}
		xs.Attribute(attrName, d.Namespace)
	}
	if s.baseIRI != "" {
		h.writeIRIAttribute(s, "xml:base", s.baseIRI)
	}
	for _, c := range s.cfg.LeadingComments {
		xs.Comment(c)
	}
	return s.w.Flush()
}

// writeIRIAttribute writes an IRI-valued attribute, splitting it at its
// namespace boundary and substituting a DTD entity reference for the
// namespace portion when UseDTDSubset registered one for it; otherwise
// falls back to a plain escaped attribute.
func (h *rdfxmlHooks) writeIRIAttribute(s *writerState, name, value string) {
	xs := s.xml
	if s.dtdEntities != nil {
		if ns, local, ok := splitIRI(value); ok {
			if entity, registered := s.dtdEntities[ns]; registered {
				xs.StartAttribute(name)
				xs.AttributeEntityRef(entity)
				xs.AttributeCharacters(local)
				xs.EndAttribute()
				return
			}
		}
	}
	xs.Attribute(name, value)
}

func (h *rdfxmlHooks) writeFooter(s *writerState) error {
	for _, c := range s.cfg.TrailingComments {
		s.xml.Comment(c)
	}
	s.xml.EndElement("rdf:RDF")
	return s.w.Flush()
}

func (h *rdfxmlHooks) writeSubject(s *writerState, subject Term, isFirst bool) error {
	if err := h.writeDescription(s, subject); err != nil {
		return err
	}
	return s.w.Flush()
}

// writeDescription writes one element for subject: its element name
// (resolved from a preferred rdf:type, or rdf:Description), its identity
// attribute (rdf:about or rdf:nodeID), and one child element per
// predicate/object pair other than the type absorbed into the element
// name. Returns an *InputDefectError wrapping ErrUnresolvableIRI if a
// predicate cannot be resolved to a QName, since a raw IRI is not a valid
// XML element name.
func (h *rdfxmlHooks) writeDescription(s *writerState, subject Term) error {
	xs := s.xml
	types := s.idx.ObjectsFor(subject, RDFType)
	elementName, absorbedType := h.chooseElementName(s, types)

	xs.StartElement(elementName)
	switch v := subject.(type) {
	case IRI:
		h.writeIRIAttribute(s, "rdf:about", h.resolveIRI(s, v))
	case BlankNode:
		label := s.idx.Ctx.Labels[v.ID]
		if label == "" {
			label = v.ID
		}
		xs.Attribute("rdf:nodeID", label)
	}

	for _, pred := range s.idx.PredicatesFor(subject) {
		objs := s.idx.ObjectsFor(subject, pred.Value)
		if pred.Value == RDFType {
			for _, obj := range objs {
				iri, ok := obj.(IRI)
				if !ok || iri.Value == OWLThing || iri.Value == absorbedType {
					continue
				}
				h.writeTypeChild(s, iri)
			}
			continue
		}
		qname, ok := s.ns.QName(pred)
		if !ok {
			return &InputDefectError{Err: ErrUnresolvableIRI, Term: pred}
		}
		for _, obj := range objs {
			if err := h.writeObjectChild(s, qname, obj); err != nil {
				return err
			}
		}
	}
	xs.EndElement(elementName)
	return nil
}

func (h *rdfxmlHooks) chooseElementName(s *writerState, types []Term) (elementName string, absorbedType string) {
	bestRank := -1
	var best IRI
	found := false
	for _, t := range types {
		iri, ok := t.(IRI)
		if !ok || iri.Value == OWLThing {
			continue
		}
		r := preferredTypeRank(iri.Value)
		if r < 0 {
			continue
		}
		if !found || r < bestRank {
			bestRank = r
			best = iri
			found = true
		}
	}
	if !found {
		return "rdf:Description", ""
	}
	qname, ok := s.ns.QName(best)
	if !ok {
		return "rdf:Description", ""
	}
	return qname, best.Value
}

func (h *rdfxmlHooks) writeTypeChild(s *writerState, typeIRI IRI) {
	xs := s.xml
	xs.StartElement("rdf:type")
	h.writeIRIAttribute(s, "rdf:resource", h.resolveIRI(s, typeIRI))
	xs.EndElement("rdf:type")
}

func (h *rdfxmlHooks) writeObjectChild(s *writerState, qname string, obj Term) error {
	xs := s.xml
	switch v := obj.(type) {
	case IRI:
		xs.StartElement(qname)
		h.writeIRIAttribute(s, "rdf:resource", h.resolveIRI(s, v))
		xs.EndElement(qname)
	case Literal:
		xs.StartElement(qname)
		h.writeLiteralAttrsAndText(s, v)
		xs.EndElement(qname)
	case BlankNode:
		return h.writeBlankObject(s, qname, v)
	}
	return nil
}

// writeLiteralAttrsAndText writes a literal's language/datatype attribute
// (if any) and its text content. The text is trimmed of leading/trailing
// whitespace, matching the Java original's writeCharacters(value.trim())
// call: lossy for a literal with meaningful surrounding whitespace, but
// required for byte-for-byte agreement with it.
func (h *rdfxmlHooks) writeLiteralAttrsAndText(s *writerState, lit Literal) {
	xs := s.xml
	text := strings.TrimSpace(lit.Lexical)
	if lit.Lang == "" && s.cfg.OverrideStringLanguage != "" && lit.IsPlainString() {
		xs.Attribute("xml:lang", s.cfg.OverrideStringLanguage)
		xs.Characters(text)
		return
	}
	if lit.Lang != "" {
		xs.Attribute("xml:lang", lit.Lang)
		xs.Characters(text)
		return
	}
	if lit.Datatype.Value == "" || lit.Datatype.Value == XSDString {
		if s.cfg.stringDataType() == StringDataTypeExplicit {
			xs.Attribute("rdf:datatype", XSDString)
		}
		xs.Characters(text)
		return
	}
	xs.Attribute("rdf:datatype", lit.Datatype.Value)
	xs.Characters(text)
}

func (h *rdfxmlHooks) writeBlankObject(s *writerState, qname string, bn BlankNode) error {
	xs := s.xml
	if s.cfg.InlineBlankNodes && s.inlineEligible {
		if members, ok := collectionMembersResourceOnly(bn, s.idx); ok {
			xs.StartElement(qname)
			xs.Attribute("rdf:parseType", "Collection")
			for _, m := range members {
				switch mv := m.(type) {
				case IRI:
					xs.StartElement("rdf:Description")
					h.writeIRIAttribute(s, "rdf:about", h.resolveIRI(s, mv))
					xs.EndElement("rdf:Description")
				case BlankNode:
					if err := h.writeDescription(s, mv); err != nil {
						return err
					}
				}
			}
			xs.EndElement(qname)
			return nil
		}

		xs.StartElement(qname)
		if err := h.writeDescription(s, bn); err != nil {
			return err
		}
		xs.EndElement(qname)
		return nil
	}

	xs.StartElement(qname)
	label := s.idx.Ctx.Labels[bn.ID]
	if label == "" {
		label = bn.ID
	}
	xs.Attribute("rdf:nodeID", label)
	xs.EndElement(qname)
	return nil
}

func (h *rdfxmlHooks) resolveIRI(s *writerState, iri IRI) string {
	if s.baseIRI != "" {
		if rel, ok := relativize(s.baseIRI, iri.Value); ok {
			return rel
		}
	}
	return iri.Value
}
