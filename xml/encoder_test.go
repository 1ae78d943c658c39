package xml_test

import (
	"bytes"
	"testing"

	"github.com/atomize/atomize-go/xml"
)

func TestEncoder(t *testing.T) {
	encoder := xml.NewEncoder()

	root := encoder.RootElement(xml.StartElement{Name: xml.Name{Local: "feed"}})
	root.MemberElement(xml.StartElement{Name: xml.Name{Local: "title"}}).String("a feed")

	entry := root.MemberElement(xml.StartElement{Name: xml.Name{Local: "entry"}})
	entry.MemberElement(xml.StartElement{Name: xml.Name{Local: "id"}}).String("urn:x")
	entry.Close()

	root.Close()

	e := []byte(`<feed><title>a feed</title><entry><id>urn:x</id></entry></feed>`)
	verify(t, encoder, e)
}

func TestEncodeAttribute(t *testing.T) {
	encoder := xml.NewEncoder()

	root := encoder.RootElement(xml.StartElement{
		Name: xml.Name{Local: "link"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "href"}, Value: "https://example.com/?a=1&b=2"},
			{Name: xml.Name{Local: "rel"}, Value: "self"},
		},
	})
	root.Close()

	e := []byte(`<link href="https://example.com/?a=1&amp;b=2" rel="self"></link>`)
	verify(t, encoder, e)
}

func TestEncodeNamespaceAttribute(t *testing.T) {
	encoder := xml.NewEncoder()

	root := encoder.RootElement(xml.StartElement{
		Name: xml.Name{Local: "feed"},
		Attr: []xml.Attr{
			{Name: xml.Name{Space: "xmlns"}, Value: "http://www.w3.org/2005/Atom"},
		},
	})
	root.Close()

	e := []byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	verify(t, encoder, e)
}

func TestEncodeEscapedText(t *testing.T) {
	encoder := xml.NewEncoder()

	root := encoder.RootElement(xml.StartElement{Name: xml.Name{Local: "title"}})
	root.String(`1 < 2 & "three"`)

	e := []byte(`<title>1 &lt; 2 &amp; &#34;three&#34;</title>`)
	verify(t, encoder, e)
}

func TestEncodeRawFragment(t *testing.T) {
	encoder := xml.NewEncoder()

	root := encoder.RootElement(xml.StartElement{Name: xml.Name{Local: "content"}})
	root.Write([]byte(`<div><span>hi</span></div>`), false)

	e := []byte(`<content><div><span>hi</span></div></content>`)
	verify(t, encoder, e)
}

func TestWriteDeclaration(t *testing.T) {
	encoder := xml.NewEncoder()

	encoder.WriteDeclaration("UTF-8")
	root := encoder.RootElement(xml.StartElement{Name: xml.Name{Local: "feed"}})
	root.Close()

	e := []byte(`<?xml version="1.0" encoding="UTF-8"?><feed></feed>`)
	verify(t, encoder, e)
}

func verify(t *testing.T, encoder *xml.Encoder, e []byte) {
	t.Helper()

	if a := encoder.Bytes(); !bytes.Equal(e, a) {
		t.Errorf("expected %+q, but got %+q", e, a)
	}

	if a := encoder.String(); string(e) != a {
		t.Errorf("expected %s, but got %s", e, a)
	}
}
