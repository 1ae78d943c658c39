package xml

import (
	"fmt"
)

// Value represents a single XML element being written: its start tag is
// written when the Value is created, its end tag when the Value is closed.
type Value struct {
	w writer

	startElement StartElement
}

// newWrappedValue writes the start element xml tag and returns a Value
// for the element's contents.
func newWrappedValue(w writer, startElement StartElement) Value {
	writeStartElement(w, startElement)
	return Value{w: w, startElement: startElement}
}

// writeStartElement takes in a start element and writes it.
// It handles namespace, attributes in start element.
func writeStartElement(w writer, el StartElement) error {
	if el.isZero() {
		return fmt.Errorf("xml start element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)

	for _, attr := range el.Attr {
		w.WriteRune(' ')
		buildAttribute(w, &attr)
	}

	w.WriteRune(rightAngleBracket)

	return nil
}

// buildAttribute writes an attribute from a provided Attribute
// For a namespace attribute, the attr.Name.Space must be defined as "xmlns".
// https://www.w3.org/TR/REC-xml-names/#NT-DefaultAttName
func buildAttribute(w writer, attr *Attr) {
	// if local, space both are not empty
	if len(attr.Name.Space) != 0 && len(attr.Name.Local) != 0 {
		w.WriteString(attr.Name.Space)
		w.WriteRune(colon)
	}

	// if prefix is empty, the default `xmlns` space should be used as prefix.
	if len(attr.Name.Local) == 0 {
		attr.Name.Local = attr.Name.Space
	}

	w.WriteString(attr.Name.Local)
	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeString(w, attr.Value)
	w.WriteRune(quote)
}

// writeEndElement takes in a end element and writes it.
func writeEndElement(w writer, el EndElement) error {
	if el.isZero() {
		return fmt.Errorf("xml end element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)
	w.WriteRune(rightAngleBracket)

	return nil
}

// String encodes v as escaped XML text content.
// It will auto close the parent xml element tag.
func (xv Value) String(v string) {
	escapeString(xv.w, v)
	xv.Close()
}

// Write writes v directly to the xml document.
// if escapeXMLText is set to true, write will escape text.
// It will auto close the parent xml element tag.
func (xv Value) Write(v []byte, escapeXMLText bool) {
	// escape and write xml text
	if escapeXMLText {
		escapeText(xv.w, v)
	} else {
		// write xml directly
		xv.w.Write(v)
	}

	xv.Close()
}

// WriteRaw writes an already-rendered XML fragment as a child of the element
// without closing it. The fragment must be well-formed.
func (xv Value) WriteRaw(v []byte) {
	xv.w.Write(v)
}

// MemberElement writes the child element's start tag using the provided
// start element, and returns a Value for the child. The value returned by
// MemberElement must be closed.
func (xv Value) MemberElement(element StartElement) Value {
	return newWrappedValue(xv.w, element)
}

// Close closes the value
func (xv Value) Close() {
	writeEndElement(xv.w, xv.startElement.End())
}
