package atomize

import (
	"github.com/google/uuid"

	"github.com/atomize/atomize-go/xml"
)

// uriElement backs the Icon, ID and Logo constructs. The value is treated as
// an opaque URI reference.
type uriElement struct {
	uri string
}

func newURIElement(kind, uri string) (uriElement, error) {
	if len(uri) == 0 {
		return uriElement{}, newError("%s: uri must be defined", kind)
	}
	return uriElement{uri: uri}, nil
}

// String returns the URI value.
func (u uriElement) String() string {
	return u.uri
}

func (u uriElement) renderInto(parent xml.Value, tag string) {
	parent.MemberElement(startElement(tag)).String(u.uri)
}

// ID is the permanent, universally unique identifier of a feed or entry.
type ID struct {
	uriElement
}

func NewID(uri string) (*ID, error) {
	u, err := newURIElement("id", uri)
	if err != nil {
		return nil, err
	}
	return &ID{u}, nil
}

// NewUUIDID mints an ID carrying a fresh urn:uuid value, the identifier form
// RFC 4287 recommends for feeds and entries.
func NewUUIDID() *ID {
	return &ID{uriElement{uri: "urn:uuid:" + uuid.NewString()}}
}

func (i *ID) renderAtom(parent xml.Value) {
	i.renderInto(parent, "id")
}

// Icon references an icon image for a feed or source.
type Icon struct {
	uriElement
}

func NewIcon(uri string) (*Icon, error) {
	u, err := newURIElement("icon", uri)
	if err != nil {
		return nil, err
	}
	return &Icon{u}, nil
}

func (i *Icon) renderAtom(parent xml.Value) {
	i.renderInto(parent, "icon")
}

// Logo references a logo image for a feed or source.
type Logo struct {
	uriElement
}

func NewLogo(uri string) (*Logo, error) {
	u, err := newURIElement("logo", uri)
	if err != nil {
		return nil, err
	}
	return &Logo{u}, nil
}

func (l *Logo) renderAtom(parent xml.Value) {
	l.renderInto(parent, "logo")
}
