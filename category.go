package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// Category conveys the category or genre of a feed, entry or source. Term is
// required; scheme and label are optional. All three render as attributes.
type Category struct {
	Term   string
	Scheme string
	Label  string
}

func NewCategory(term, scheme, label string) (*Category, error) {
	if len(term) == 0 {
		return nil, newError("category: term must be defined")
	}
	return &Category{Term: term, Scheme: scheme, Label: label}, nil
}

func (c *Category) renderAtom(parent xml.Value) {
	attrs := []xml.Attr{attr("term", c.Term)}
	if len(c.Scheme) != 0 {
		attrs = append(attrs, attr("scheme", c.Scheme))
	}
	if len(c.Label) != 0 {
		attrs = append(attrs, attr("label", c.Label))
	}
	parent.MemberElement(startElement("category", attrs...)).Close()
}
