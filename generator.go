package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// Generator identifies the agent used to produce a feed or source. The name
// is the element's text; version and uri render as attributes.
type Generator struct {
	Name    string
	Version string
	URI     string
}

func NewGenerator(name, version, uri string) (*Generator, error) {
	if len(name) == 0 {
		return nil, newError("generator: name must be defined")
	}
	return &Generator{Name: name, Version: version, URI: uri}, nil
}

func (g *Generator) renderAtom(parent xml.Value) {
	var attrs []xml.Attr
	if len(g.Version) != 0 {
		attrs = append(attrs, attr("version", g.Version))
	}
	if len(g.URI) != 0 {
		attrs = append(attrs, attr("uri", g.URI))
	}
	parent.MemberElement(startElement("generator", attrs...)).String(g.Name)
}
