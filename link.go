package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// Link is a reference from a feed, entry or source to a web resource. Href is
// required; everything else is optional. All fields render as attributes.
type Link struct {
	Href     string
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   string
}

// NewLink validates and returns a copy of link.
func NewLink(link Link) (*Link, error) {
	if len(link.Href) == 0 {
		return nil, newError("link: href must be defined")
	}
	return &link, nil
}

func (l *Link) renderAtom(parent xml.Value) {
	attrs := []xml.Attr{attr("href", l.Href)}
	if len(l.Rel) != 0 {
		attrs = append(attrs, attr("rel", l.Rel))
	}
	if len(l.Type) != 0 {
		attrs = append(attrs, attr("type", l.Type))
	}
	if len(l.HrefLang) != 0 {
		attrs = append(attrs, attr("hreflang", l.HrefLang))
	}
	if len(l.Title) != 0 {
		attrs = append(attrs, attr("title", l.Title))
	}
	if len(l.Length) != 0 {
		attrs = append(attrs, attr("length", l.Length))
	}
	parent.MemberElement(startElement("link", attrs...)).Close()
}
