package testing

import (
	"testing"
)

func TestXMLEqual(t *testing.T) {
	cases := map[string]struct {
		expectDoc string
		actualDoc string
		equal     bool
	}{
		"identical documents": {
			expectDoc: `<feed><title>T</title></feed>`,
			actualDoc: `<feed><title>T</title></feed>`,
			equal:     true,
		},
		"attribute order ignored": {
			expectDoc: `<link rel="self" href="https://example.com/"></link>`,
			actualDoc: `<link href="https://example.com/" rel="self"></link>`,
			equal:     true,
		},
		"surrounding whitespace ignored": {
			expectDoc: "<feed><title>\nT\n</title></feed>",
			actualDoc: `<feed><title>T</title></feed>`,
			equal:     true,
		},
		"different text": {
			expectDoc: `<feed><title>T</title></feed>`,
			actualDoc: `<feed><title>U</title></feed>`,
			equal:     false,
		},
		"different element order": {
			expectDoc: `<feed><title>T</title><id>urn:x</id></feed>`,
			actualDoc: `<feed><id>urn:x</id><title>T</title></feed>`,
			equal:     false,
		},
		"missing attribute": {
			expectDoc: `<link href="https://example.com/" rel="self"></link>`,
			actualDoc: `<link href="https://example.com/"></link>`,
			equal:     false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := XMLEqual([]byte(c.expectDoc), []byte(c.actualDoc))
			if c.equal && err != nil {
				t.Errorf("expect documents equal, got %v", err)
			}
			if !c.equal && err == nil {
				t.Errorf("expect documents to differ, got equal")
			}
		})
	}
}
