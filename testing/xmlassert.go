package testing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// node is a comparable view of an XML element: attributes sorted by name,
// character data merged and trimmed, children in document order.
type node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []node
}

func parse(doc []byte) (node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))

	var stack []*node
	var root *node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return node{}, fmt.Errorf("failed to parse xml document, %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			attrs := make([]xml.Attr, len(t.Attr))
			copy(attrs, t.Attr)
			sort.Slice(attrs, func(i, j int) bool {
				if attrs[i].Name.Space != attrs[j].Name.Space {
					return attrs[i].Name.Space < attrs[j].Name.Space
				}
				return attrs[i].Name.Local < attrs[j].Name.Local
			})
			stack = append(stack, &node{Name: t.Name, Attrs: attrs})
		case xml.EndElement:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n.Text = strings.TrimSpace(n.Text)
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, *n)
			}
		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return node{}, fmt.Errorf("failed to parse xml document, no root element")
	}

	return *root, nil
}

// XMLEqual compares two XML documents and identifies if the documents contain
// the same element structure, attributes and text. Attribute order is ignored.
// Returns an error if the two documents are not equal.
func XMLEqual(expectBytes, actualBytes []byte) error {
	expect, err := parse(expectBytes)
	if err != nil {
		return fmt.Errorf("failed to parse expected bytes, %v", err)
	}

	actual, err := parse(actualBytes)
	if err != nil {
		return fmt.Errorf("failed to parse actual bytes, %v", err)
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML equal, %v", err)
		return false
	}

	return true
}
