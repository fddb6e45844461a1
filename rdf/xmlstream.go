package rdf

import (
	"bufio"
	"strings"
)

// xmlStream is a small indenting XML emitter, tracking element nesting
// depth and writing the indent/line-end configured on a writerState
// before every start and end tag. It supports two ways to write an
// attribute: Attribute (one-shot, value known up front) and the
// StartAttribute/AttributeEntityRef/AttributeCharacters/EndAttribute
// sequence (used when an attribute's value mixes literal text and DTD
// entity references, as RDF/XML's UseDTDSubset mode requires).
type xmlStream struct {
	w       *bufio.Writer
	indent  string
	lineEnd string
	depth   int

	// openTag is true between StartElement and the point its ">" is
	// written, so attributes can still be appended.
	openTag      bool
	inAttr       bool
	pendingChild bool
	textWritten  bool
}

func newXMLStream(w *bufio.Writer, indent, lineEnd string) *xmlStream {
	return &xmlStream{w: w, indent: indent, lineEnd: lineEnd}
}

func (x *xmlStream) writeIndent() {
	for i := 0; i < x.depth; i++ {
		x.w.WriteString(x.indent)
	}
}

// StartElement opens name's start tag. Attributes may follow; the tag is
// closed (with ">") by the next call to StartElement, EndElement,
// Characters, or Comment.
func (x *xmlStream) StartElement(name string) {
	x.closeOpenTag(true)
	x.writeIndent()
	x.w.WriteByte('<')
	x.w.WriteString(name)
	x.openTag = true
	x.pendingChild = false
	x.textWritten = false
	x.depth++
}

// EndElement closes name's element: a self-closing tag if nothing was
// written since StartElement, otherwise a full end tag on its own
// indented line.
func (x *xmlStream) EndElement(name string) {
	x.depth--
	if x.openTag {
		x.w.WriteString("/>")
		x.w.WriteString(x.lineEnd)
		x.openTag = false
		return
	}
	if !x.textWritten {
		x.writeIndent()
	}
	x.w.WriteString("</")
	x.w.WriteString(name)
	x.w.WriteByte('>')
	x.w.WriteString(x.lineEnd)
	x.textWritten = false
}

// Attribute writes a complete name="value" pair into the currently open
// start tag, escaping value.
func (x *xmlStream) Attribute(name, value string) {
	x.w.WriteByte(' ')
	x.w.WriteString(name)
	x.w.WriteString(`="`)
	x.w.WriteString(escapeXMLAttr(value))
	x.w.WriteByte('"')
}

// StartAttribute begins name="..." without closing the quote, so
// AttributeEntityRef/AttributeCharacters calls can interleave literal text
// and entity references before EndAttribute closes it.
func (x *xmlStream) StartAttribute(name string) {
	x.w.WriteByte(' ')
	x.w.WriteString(name)
	x.w.WriteString(`="`)
	x.inAttr = true
}

// AttributeCharacters appends escaped literal text to an attribute opened
// with StartAttribute.
func (x *xmlStream) AttributeCharacters(value string) {
	x.w.WriteString(escapeXMLAttr(value))
}

// AttributeEntityRef appends a DTD entity reference ("&name;") to an
// attribute opened with StartAttribute.
func (x *xmlStream) AttributeEntityRef(name string) {
	x.w.WriteByte('&')
	x.w.WriteString(name)
	x.w.WriteByte(';')
}

// EndAttribute closes an attribute opened with StartAttribute.
func (x *xmlStream) EndAttribute() {
	x.w.WriteByte('"')
	x.inAttr = false
}

// Characters closes the currently open start tag (if any) and writes
// escaped text content with no surrounding indentation or line breaks.
func (x *xmlStream) Characters(value string) {
	x.closeOpenTag(false)
	x.w.WriteString(escapeXMLText(value))
	x.textWritten = true
}

// Comment closes the currently open start tag (if any) and writes an
// indented XML comment, escaping any "--" sequence so the comment stays
// well-formed.
func (x *xmlStream) Comment(text string) {
	x.closeOpenTag(true)
	x.writeIndent()
	x.w.WriteString("<!--")
	x.w.WriteString(escapeXMLComment(text))
	x.w.WriteString("-->")
	x.w.WriteString(x.lineEnd)
}

// DTDEntity writes one "<!ENTITY name \"value\">" declaration, for a DTD
// internal subset built up before the document's root element.
func (x *xmlStream) DTDEntity(name, value string) {
	x.w.WriteString("<!ENTITY ")
	x.w.WriteString(name)
	x.w.WriteString(" \"")
	x.w.WriteString(escapeXMLAttr(value))
	x.w.WriteString("\">")
	x.w.WriteString(x.lineEnd)
}

// Raw writes value unescaped and unindented, for pre-rendered content such
// as a DOCTYPE line assembled by the caller.
func (x *xmlStream) Raw(value string) {
	x.w.WriteString(value)
}

func (x *xmlStream) closeOpenTag(newline bool) {
	if !x.openTag {
		return
	}
	x.w.WriteByte('>')
	if newline {
		x.w.WriteString(x.lineEnd)
	}
	x.openTag = false
	x.pendingChild = true
}

func escapeXMLText(value string) string {
	replacer := strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
	)
	return replacer.Replace(value)
}

func escapeXMLAttr(value string) string {
	replacer := strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(value)
}

func escapeXMLComment(value string) string {
	return strings.ReplaceAll(value, "--", "&#x2D;&#x2D;")
}
