package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// Extension is a pre-rendered XML element appended verbatim to its
// container. It is the escape hatch for elements the model does not
// enumerate, such as foreign-namespace extensions. The fragment is checked
// for well-formedness at construction; no escaping is applied when it is
// written.
type Extension struct {
	fragment string
}

func NewExtension(fragment string) (*Extension, error) {
	if err := xml.ValidateFragment(fragment); err != nil {
		return nil, wrapError(err, "extension: fragment must be a single well-formed element")
	}
	return &Extension{fragment: fragment}, nil
}

// Fragment returns the raw fragment.
func (e *Extension) Fragment() string {
	return e.fragment
}

func (e *Extension) renderAtom(parent xml.Value) {
	parent.WriteRaw([]byte(e.fragment))
}
