package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

const (
	// AtomNamespace is the Atom 1.0 namespace carried by every document root.
	AtomNamespace = "http://www.w3.org/2005/Atom"

	// XHTMLNamespace is forced onto the wrapper element of embedded xhtml
	// content.
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"

	// AtomContentType is the media type attached to auto-wrapped self links.
	AtomContentType = "application/atom+xml"
)

// element is implemented by every Atom construct. renderAtom appends the
// construct, with all of its children, to parent.
type element interface {
	renderAtom(parent xml.Value)
}

func startElement(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func xmlnsAttr(uri string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: "xmlns"}, Value: uri}
}
