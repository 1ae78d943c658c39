package xml

import (
	stdxml "encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ValidateFragment checks that s is a well-formed XML fragment carrying a
// single root element with no markup or text outside it. It is used to vet
// embedded xhtml content and extension elements before they are written
// verbatim into a document.
func ValidateFragment(s string) error {
	decoder := stdxml.NewDecoder(strings.NewReader(s))

	depth := 0
	roots := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed xml fragment: %w", err)
		}

		switch t := token.(type) {
		case stdxml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case stdxml.EndElement:
			depth--
		case stdxml.CharData:
			if depth == 0 && len(strings.TrimSpace(string(t))) != 0 {
				return fmt.Errorf("malformed xml fragment: text outside the root element")
			}
		}
	}

	if roots == 0 {
		return fmt.Errorf("malformed xml fragment: no root element")
	}
	if roots > 1 {
		return fmt.Errorf("malformed xml fragment: %d root elements, expected one", roots)
	}

	return nil
}
