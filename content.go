package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// ContentOptions configures NewContent. Body carries inline content; Src
// points at remote content instead. Setting both is a construction error.
// Type defaults to "text" and may also be a media type when Src is used.
type ContentOptions struct {
	Body string
	Type string
	Src  string
}

// Content carries or references the content of an entry.
type Content struct {
	body string
	typ  string
	src  string
}

func NewContent(options ContentOptions) (*Content, error) {
	if len(options.Body) != 0 && len(options.Src) != 0 {
		return nil, newError("content: cannot have both src and body defined")
	}

	typ := options.Type
	if len(typ) == 0 {
		typ = string(TypeText)
	}
	if typ == string(TypeXHTML) {
		if err := xml.ValidateFragment("<div>" + options.Body + "</div>"); err != nil {
			return nil, wrapError(err, "content: xhtml body must be a well-formed fragment")
		}
	}

	return &Content{body: options.Body, typ: typ, src: options.Src}, nil
}

// Body returns the inline content, if any.
func (c *Content) Body() string {
	return c.body
}

// Type returns the content's type.
func (c *Content) Type() string {
	return c.typ
}

// Src returns the remote content reference, if any.
func (c *Content) Src() string {
	return c.src
}

func (c *Content) renderAtom(parent xml.Value) {
	attrs := []xml.Attr{attr("type", c.typ)}
	if len(c.src) != 0 {
		attrs = append(attrs, attr("src", c.src))
	}

	v := parent.MemberElement(startElement("content", attrs...))
	if c.typ == string(TypeXHTML) {
		renderXHTMLDiv(v, c.body)
		v.Close()
		return
	}
	v.String(c.body)
}
