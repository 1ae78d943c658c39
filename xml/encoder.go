package xml

import (
	"bytes"
	"fmt"
)

// Encoder is an XML encoder that supports construction of XML values
// using methods.
type Encoder struct {
	w *bytes.Buffer
}

// NewEncoder returns an XML encoder writing to an in-memory buffer.
func NewEncoder() *Encoder {
	return &Encoder{w: bytes.NewBuffer(nil)}
}

// WriteDeclaration writes an XML declaration naming the document's charset.
func (e *Encoder) WriteDeclaration(charset string) {
	fmt.Fprintf(e.w, "<?xml version=\"1.0\" encoding=\"%s\"?>", charset)
}

// RootElement writes the document root's start tag and returns a Value for
// its contents. The returned Value must be closed.
func (e *Encoder) RootElement(element StartElement) Value {
	return newWrappedValue(e.w, element)
}

// String returns the string output of the XML encoder
func (e Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the XML encoder
func (e Encoder) Bytes() []byte {
	return e.w.Bytes()
}
