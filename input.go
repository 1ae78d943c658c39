package atomize

import (
	"time"
)

// Tagged inputs replace loose any-typed parameters: each container field
// takes either a raw primitive or a pre-built construct, chosen explicitly
// through the helper constructors below. The zero value of every input means
// the field is absent.

// TitleInput supplies a feed, entry or source title.
type TitleInput struct {
	raw       string
	construct *Title
	isRaw     bool
}

// TitleString supplies a title as a plain-text string.
func TitleString(v string) TitleInput {
	return TitleInput{raw: v, isRaw: true}
}

// TitleConstruct supplies a pre-built Title.
func TitleConstruct(v *Title) TitleInput {
	return TitleInput{construct: v}
}

func (in TitleInput) absent() bool {
	return !in.isRaw && in.construct == nil
}

func (in TitleInput) resolve(scope string) (*Title, error) {
	if in.isRaw {
		return NewTitle(in.raw, TypeText)
	}
	if in.construct != nil {
		return in.construct, nil
	}
	return nil, newError("%s: title must be defined", scope)
}

// IDInput supplies the permanent identifier of a feed, entry or source.
type IDInput struct {
	raw       string
	construct *ID
	isRaw     bool
}

// IDString supplies an id as a raw URI string.
func IDString(v string) IDInput {
	return IDInput{raw: v, isRaw: true}
}

// IDConstruct supplies a pre-built ID.
func IDConstruct(v *ID) IDInput {
	return IDInput{construct: v}
}

func (in IDInput) absent() bool {
	return !in.isRaw && in.construct == nil
}

func (in IDInput) resolve(scope string) (*ID, error) {
	if in.isRaw {
		id, err := NewID(in.raw)
		if err != nil {
			return nil, newError("%s: guid must be defined", scope)
		}
		return id, nil
	}
	if in.construct != nil {
		return in.construct, nil
	}
	return nil, newError("%s: guid must be defined", scope)
}

// UpdatedInput supplies the last-modification timestamp of a feed, entry or
// source.
type UpdatedInput struct {
	raw       time.Time
	construct *Updated
	isRaw     bool
}

// UpdatedTime supplies an updated timestamp as a raw time.Time.
func UpdatedTime(v time.Time) UpdatedInput {
	return UpdatedInput{raw: v, isRaw: true}
}

// UpdatedConstruct supplies a pre-built Updated.
func UpdatedConstruct(v *Updated) UpdatedInput {
	return UpdatedInput{construct: v}
}

func (in UpdatedInput) absent() bool {
	return !in.isRaw && in.construct == nil
}

func (in UpdatedInput) resolve(scope string) (*Updated, error) {
	if in.isRaw {
		return NewUpdated(in.raw), nil
	}
	if in.construct != nil {
		return in.construct, nil
	}
	return nil, newError("%s: updated must be defined", scope)
}

// AuthorInput supplies the author or authors of a feed, entry or source.
type AuthorInput struct {
	name string
	one  *Author
	list []*Author
	kind authorInputKind
}

type authorInputKind int

const (
	authorAbsent authorInputKind = iota
	authorByName
	authorSingle
	authorMany
)

// AuthorName supplies a single author by name.
func AuthorName(v string) AuthorInput {
	return AuthorInput{name: v, kind: authorByName}
}

// AuthorConstruct supplies a single pre-built Author.
func AuthorConstruct(v *Author) AuthorInput {
	return AuthorInput{one: v, kind: authorSingle}
}

// AuthorList supplies any number of pre-built Authors.
func AuthorList(v ...*Author) AuthorInput {
	return AuthorInput{list: v, kind: authorMany}
}

func (in AuthorInput) resolve(scope string) ([]*Author, error) {
	switch in.kind {
	case authorAbsent:
		return nil, nil
	case authorByName:
		author, err := NewAuthor(in.name, "", "")
		if err != nil {
			return nil, newError("%s: author name must be defined", scope)
		}
		return []*Author{author}, nil
	case authorSingle:
		if in.one == nil {
			return nil, newError("%s: author must be defined", scope)
		}
		return []*Author{in.one}, nil
	default:
		for _, author := range in.list {
			if author == nil {
				return nil, newError("%s: author list must not contain nil authors", scope)
			}
		}
		return in.list, nil
	}
}

// SelfLinkInput supplies the preferred URI for retrieving the feed document.
type SelfLinkInput struct {
	url       string
	construct *Link
	isRaw     bool
}

// SelfLinkURL supplies a self link as a raw URI string; it is wrapped in a
// Link with rel "self" and the Atom media type.
func SelfLinkURL(v string) SelfLinkInput {
	return SelfLinkInput{url: v, isRaw: true}
}

// SelfLinkConstruct supplies a pre-built Link, which must already carry a
// rel attribute of "self".
func SelfLinkConstruct(v *Link) SelfLinkInput {
	return SelfLinkInput{construct: v}
}

func (in SelfLinkInput) absent() bool {
	return !in.isRaw && in.construct == nil
}

func (in SelfLinkInput) resolve() (*Link, error) {
	if in.isRaw {
		return NewLink(Link{Href: in.url, Rel: "self", Type: AtomContentType})
	}
	if in.construct.Rel != "self" {
		return nil, newError(`feed: self link must carry a rel attribute of "self"`)
	}
	return in.construct, nil
}
