package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// TextType identifies how the content of a text construct is to be read.
type TextType string

const (
	TypeText  TextType = "text"
	TypeHTML  TextType = "html"
	TypeXHTML TextType = "xhtml"
)

// Text is the RFC 4287 text construct backing Title, Subtitle, Summary and
// Rights. Plain and html content is escaped when rendered; xhtml content is
// validated at construction and rendered inside a div carrying the XHTML
// namespace.
type Text struct {
	Type    TextType
	content string
}

// Content returns the construct's content as supplied at construction. For
// xhtml the wrapping div is not part of it.
func (t Text) Content() string {
	return t.content
}

func newText(kind, content string, typ TextType) (Text, error) {
	switch typ {
	case "":
		typ = TypeText
	case TypeText, TypeHTML:
	case TypeXHTML:
		if err := xml.ValidateFragment("<div>" + content + "</div>"); err != nil {
			return Text{}, wrapError(err, "%s: xhtml content must be a well-formed fragment", kind)
		}
	default:
		return Text{}, newError("%s: content type must be %q, %q or %q", kind, TypeText, TypeHTML, TypeXHTML)
	}

	return Text{Type: typ, content: content}, nil
}

func (t Text) renderInto(parent xml.Value, tag string) {
	v := parent.MemberElement(startElement(tag, attr("type", string(t.Type))))
	if t.Type == TypeXHTML {
		renderXHTMLDiv(v, t.content)
		v.Close()
		return
	}
	v.String(t.content)
}

// renderXHTMLDiv writes the content's wrapping div with the XHTML namespace
// forced onto it. The inner markup was validated at construction and is
// written as-is.
func renderXHTMLDiv(v xml.Value, inner string) {
	div := v.MemberElement(startElement("div", xmlnsAttr(XHTMLNamespace)))
	div.Write([]byte(inner), false)
}

// Title is the title of a feed, entry or source.
type Title struct {
	Text
}

func NewTitle(content string, typ TextType) (*Title, error) {
	t, err := newText("title", content, typ)
	if err != nil {
		return nil, err
	}
	return &Title{t}, nil
}

func (t *Title) renderAtom(parent xml.Value) {
	t.renderInto(parent, "title")
}

// Subtitle is a subtitle for a feed or source.
type Subtitle struct {
	Text
}

func NewSubtitle(content string, typ TextType) (*Subtitle, error) {
	t, err := newText("subtitle", content, typ)
	if err != nil {
		return nil, err
	}
	return &Subtitle{t}, nil
}

func (s *Subtitle) renderAtom(parent xml.Value) {
	s.renderInto(parent, "subtitle")
}

// Summary is a short summary or extract of an entry. It should not duplicate
// the entry's Content.
type Summary struct {
	Text
}

func NewSummary(content string, typ TextType) (*Summary, error) {
	t, err := newText("summary", content, typ)
	if err != nil {
		return nil, err
	}
	return &Summary{t}, nil
}

func (s *Summary) renderAtom(parent xml.Value) {
	s.renderInto(parent, "summary")
}

// Rights declares copyright information for a feed, entry or source.
type Rights struct {
	Text
}

func NewRights(content string, typ TextType) (*Rights, error) {
	t, err := newText("rights", content, typ)
	if err != nil {
		return nil, err
	}
	return &Rights{t}, nil
}

func (r *Rights) renderAtom(parent xml.Value) {
	r.renderInto(parent, "rights")
}
