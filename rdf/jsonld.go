package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// WriteJSONLD serializes g as JSON-LD by rendering it to N-Quads in
// canonical sorted order and delegating the N-Quads-to-JSON-LD conversion
// to json-gold, rather than reimplementing JSON-LD expansion/compaction.
// context, if non-nil, is passed to json-gold's Compact step; if nil the
// expanded (context-free) form is returned. Comments, base-IRI
// relativization, StringDataType and OverrideStringLanguage are Turtle/
// RDF-XML-only options and are not applied here.
func WriteJSONLD(w io.Writer, g Graph, context interface{}) error {
	idx := BuildSortedIndex(g.Statements)
	AssignCanonicalLabels(idx)

	var nquads strings.Builder
	for _, subject := range idx.SortedSubjects {
		for _, pred := range idx.PredicatesFor(subject) {
			for _, obj := range idx.ObjectsFor(subject, pred.Value) {
				line, err := renderNQuad(subject, pred, obj, idx)
				if err != nil {
					return err
				}
				nquads.WriteString(line)
			}
		}
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"

	expanded, err := proc.FromRDF(nquads.String(), opts)
	if err != nil {
		return fmt.Errorf("rdf: jsonld conversion: %w", err)
	}

	result := expanded
	if context != nil {
		compacted, err := proc.Compact(expanded, context, opts)
		if err != nil {
			return fmt.Errorf("rdf: jsonld compaction: %w", err)
		}
		result = compacted
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderNQuad(subject Term, pred IRI, obj Term, idx *SortedIndex) (string, error) {
	var sb strings.Builder
	if err := writeNQuadTerm(&sb, subject, idx); err != nil {
		return "", err
	}
	sb.WriteByte(' ')
	sb.WriteString("<" + escapeNQuadIRI(pred.Value) + ">")
	sb.WriteByte(' ')
	if err := writeNQuadTerm(&sb, obj, idx); err != nil {
		return "", err
	}
	sb.WriteString(" .\n")
	return sb.String(), nil
}

func writeNQuadTerm(sb *strings.Builder, t Term, idx *SortedIndex) error {
	switch v := t.(type) {
	case IRI:
		sb.WriteString("<" + escapeNQuadIRI(v.Value) + ">")
	case BlankNode:
		label := idx.Ctx.Labels[v.ID]
		if label == "" {
			label = v.ID
		}
		sb.WriteString("_:" + label)
	case Literal:
		sb.WriteString(`"` + escapeTurtleString(v.Lexical) + `"`)
		switch {
		case v.Lang != "":
			sb.WriteString("@" + v.Lang)
		case v.Datatype.Value != "" && v.Datatype.Value != XSDString:
			sb.WriteString("^^<" + escapeNQuadIRI(v.Datatype.Value) + ">")
		}
	default:
		return fmt.Errorf("rdf: unsupported term kind in jsonld delegation")
	}
	return nil
}

func escapeNQuadIRI(value string) string {
	return escapeTurtleIRI(value)
}
