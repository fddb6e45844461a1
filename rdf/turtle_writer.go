package rdf

import (
	"strconv"
	"strings"
)

// turtleHooks implements formatHooks for Turtle. Each subject is rendered
// as one block: the subject term, then its predicates in sorted order
// (rdf:type abbreviated to "a"), each followed by its sorted object list,
// separated by ";" and terminated by ".".
type turtleHooks struct{}

func (h *turtleHooks) prepareNamespaces(s *writerState) {
	for _, subject := range s.idx.SortedSubjects {
		h.touchTerm(s, subject)
		for _, pred := range s.idx.PredicatesFor(subject) {
			if pred.Value != RDFType {
				s.ns.QName(pred)
			}
			for _, obj := range s.idx.ObjectsFor(subject, pred.Value) {
				h.touchTerm(s, obj)
			}
		}
	}
}

// touchTerm resolves whatever QNames a term's rendering will need,
// recursing into inline blank nodes and collection members so every
// namespace they reference is registered before the header is written.
func (h *turtleHooks) touchTerm(s *writerState, t Term) {
	switch v := t.(type) {
	case IRI:
		s.ns.QName(v)
	case Literal:
		if v.Datatype.Value != "" {
			s.ns.QName(v.Datatype)
		}
	case BlankNode:
		if s.cfg.InlineBlankNodes && s.inlineEligible {
			if members, ok := collectionMembers(v, s.idx); ok {
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

func (h *turtleHooks) writeHeader(s *writerState) error {
	for _, c := range s.cfg.LeadingComments {
		s.w.WriteString("# ")
		s.w.WriteString(c)
		s.w.WriteString(s.cfg.lineEnd())
	}
	if s.baseIRI != "" {
		s.w.WriteString("@base <")
		s.w.WriteString(escapeTurtleIRI(s.baseIRI))
		s.w.WriteString("> .")
		s.w.WriteString(s.cfg.lineEnd())
	}
	for _, decl := range s.ns.Declarations() {
		label := decl.Prefix + ":"
		if decl.Prefix == "" {
			label = ":"
		}
		s.w.WriteString("@prefix ")
		s.w.WriteString(label)
		s.w.WriteString(" <")
		s.w.WriteString(escapeTurtleIRI(decl.Namespace))
		s.w.WriteString("> .")
		s.w.WriteString(s.cfg.lineEnd())
	}
	return s.w.Flush()
}

func (h *turtleHooks) writeFooter(s *writerState) error {
	for _, c := range s.cfg.TrailingComments {
		s.w.WriteString("# ")
		s.w.WriteString(c)
		s.w.WriteString(s.cfg.lineEnd())
	}
	return s.w.Flush()
}

func (h *turtleHooks) writeSubject(s *writerState, subject Term, isFirst bool) error {
	if !isFirst {
		s.w.WriteString(s.cfg.lineEnd())
	}
	s.w.WriteString(h.renderTerm(s, subject, 0))

	preds := s.idx.PredicatesFor(subject)
	if len(preds) == 0 {
		s.w.WriteString(" .")
		s.w.WriteString(s.cfg.lineEnd())
		return s.w.Flush()
	}
	s.w.WriteString(s.cfg.lineEnd())

	for i, pred := range preds {
		s.w.WriteString(s.cfg.indent())
		if pred.Value == RDFType {
			s.w.WriteString("a")
		} else {
			s.w.WriteString(h.renderIRI(s, pred))
		}
		s.w.WriteString(" ")

		objs := s.idx.ObjectsFor(subject, pred.Value)
		for j, obj := range objs {
			if j > 0 {
				s.w.WriteString(", ")
			}
			s.w.WriteString(h.renderTerm(s, obj, 1))
		}
		if i == len(preds)-1 {
			s.w.WriteString(" .")
		} else {
			s.w.WriteString(" ;")
		}
		s.w.WriteString(s.cfg.lineEnd())
	}
	return s.w.Flush()
}

func (h *turtleHooks) renderTerm(s *writerState, t Term, depth int) string {
	switch v := t.(type) {
	case IRI:
		return h.renderIRI(s, v)
	case Literal:
		return h.renderLiteral(s, v)
	case BlankNode:
		return h.renderBlankNode(s, v, depth)
	default:
		return ""
	}
}

func (h *turtleHooks) renderIRI(s *writerState, iri IRI) string {
	relative, hasRelative := relativize(s.baseIRI, iri.Value)
	qname, hasQName := s.ns.QName(iri)

	useRelative := hasRelative && (s.cfg.shortIRIPriority() == ShortIRIPriorityBaseIRI || !hasQName)
	if useRelative {
		return "<" + escapeTurtleIRI(relative) + ">"
	}
	if hasQName {
		if !strings.Contains(qname, ":") {
			// QName returns a bare local name for the default prefix,
			// which Turtle writes as ":local".
			return ":" + qname
		}
		return qname
	}
	if hasRelative {
		return "<" + escapeTurtleIRI(relative) + ">"
	}
	return "<" + escapeTurtleIRI(iri.Value) + ">"
}

func (h *turtleHooks) renderLiteral(s *writerState, lit Literal) string {
	quoted := `"` + escapeTurtleString(lit.Lexical) + `"`
	if strings.Contains(lit.Lexical, "\n") {
		long := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", `\r`).Replace(lit.Lexical)
		quoted = `"""` + long + `"""`
	}

	if lit.Lang == "" && s.cfg.OverrideStringLanguage != "" && lit.IsPlainString() {
		return quoted + "@" + s.cfg.OverrideStringLanguage
	}
	if lit.Lang != "" {
		return quoted + "@" + lit.Lang
	}
	if lit.Datatype.Value == "" || lit.Datatype.Value == XSDString {
		if s.cfg.stringDataType() == StringDataTypeExplicit {
			return quoted + "^^" + h.renderIRI(s, IRI{Value: XSDString})
		}
		return quoted
	}
	return quoted + "^^" + h.renderIRI(s, lit.Datatype)
}

func (h *turtleHooks) renderBlankNode(s *writerState, bn BlankNode, depth int) string {
	if s.cfg.InlineBlankNodes && s.inlineEligible {
		if members, ok := collectionMembers(bn, s.idx); ok {
			parts := make([]string, len(members))
			for i, m := range members {
				parts[i] = h.renderTerm(s, m, depth+1)
			}
			return "(" + strings.Join(parts, " ") + ")"
		}
		return h.renderInline(s, bn, depth)
	}

	label := s.idx.Ctx.Labels[bn.ID]
	if label == "" {
		label = bn.ID
	}
	return "_:" + label
}

func (h *turtleHooks) renderInline(s *writerState, bn BlankNode, depth int) string {
	preds := s.idx.PredicatesFor(bn)
	if len(preds) == 0 {
		return "[]"
	}
	indent := strings.Repeat(s.cfg.indent(), depth+1)
	closeIndent := strings.Repeat(s.cfg.indent(), depth)
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(s.cfg.lineEnd())
	for i, pred := range preds {
		sb.WriteString(indent)
		if pred.Value == RDFType {
			sb.WriteString("a")
		} else {
			sb.WriteString(h.renderIRI(s, pred))
		}
		sb.WriteString(" ")
		objs := s.idx.ObjectsFor(bn, pred.Value)
		for j, obj := range objs {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(h.renderTerm(s, obj, depth+1))
		}
		if i == len(preds)-1 {
			sb.WriteString(s.cfg.lineEnd())
		} else {
			sb.WriteString(" ;")
			sb.WriteString(s.cfg.lineEnd())
		}
	}
	sb.WriteString(closeIndent)
	sb.WriteString("]")
	return sb.String()
}

// relativize strips baseIRI as a prefix of iri, returning the suffix. ok is
// false when baseIRI is empty or not a prefix of iri.
func relativize(baseIRI, iri string) (string, bool) {
	if baseIRI == "" || !strings.HasPrefix(iri, baseIRI) {
		return "", false
	}
	return iri[len(baseIRI):], true
}

func escapeTurtleString(value string) string {
	var sb strings.Builder
	for _, r := range value {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func escapeTurtleIRI(value string) string {
	var sb strings.Builder
	for _, r := range value {
		switch {
		case r == '>' || r == '\\':
			sb.WriteString(`\u`)
			sb.WriteString(padHex(r))
		case r <= 0x20:
			sb.WriteString(`\u`)
			sb.WriteString(padHex(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func padHex(r rune) string {
	h := strconv.FormatInt(int64(r), 16)
	for len(h) < 4 {
		h = "0" + h
	}
	return h
}
