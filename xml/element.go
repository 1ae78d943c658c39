package xml

// A Name represents an XML name (Local) annotated
// with a name space prefix (Space).
type Name struct {
	Space, Local string
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// A StartElement represents an XML start element.
type StartElement struct {
	Name Name
	Attr []Attr
}

// End returns the corresponding XML end element.
func (e StartElement) End() EndElement {
	return EndElement{e.Name}
}

func (e StartElement) isZero() bool {
	return len(e.Name.Local) == 0
}

// An EndElement represents an XML end element.
type EndElement struct {
	Name Name
}

func (e EndElement) isZero() bool {
	return len(e.Name.Local) == 0
}
