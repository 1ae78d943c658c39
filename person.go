package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// Person is the RFC 4287 person construct backing Author and Contributor: a
// required name with optional uri and email.
type Person struct {
	Name  string
	URI   string
	Email string
}

func newPerson(kind, name, uri, email string) (Person, error) {
	if len(name) == 0 {
		return Person{}, newError("%s: name must be defined", kind)
	}
	return Person{Name: name, URI: uri, Email: email}, nil
}

func (p Person) renderInto(parent xml.Value, tag string) {
	v := parent.MemberElement(startElement(tag))
	v.MemberElement(startElement("name")).String(p.Name)
	if len(p.URI) != 0 {
		v.MemberElement(startElement("uri")).String(p.URI)
	}
	if len(p.Email) != 0 {
		v.MemberElement(startElement("email")).String(p.Email)
	}
	v.Close()
}

// Author identifies the author of a feed, entry or source.
type Author struct {
	Person
}

func NewAuthor(name, uri, email string) (*Author, error) {
	p, err := newPerson("author", name, uri, email)
	if err != nil {
		return nil, err
	}
	return &Author{p}, nil
}

func (a *Author) renderAtom(parent xml.Value) {
	a.renderInto(parent, "author")
}

// Contributor identifies a person or other entity who contributed to a feed,
// entry or source.
type Contributor struct {
	Person
}

func NewContributor(name, uri, email string) (*Contributor, error) {
	p, err := newPerson("contributor", name, uri, email)
	if err != nil {
		return nil, err
	}
	return &Contributor{p}, nil
}

func (c *Contributor) renderAtom(parent xml.Value) {
	c.renderInto(parent, "contributor")
}
