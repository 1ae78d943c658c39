package atomize

import (
	"github.com/atomize/atomize-go/xml"
)

// EntryOptions configures NewEntry. Title, ID and Updated are required.
// Author may be omitted only when the containing feed defines at least one
// feed-level author; NewFeed enforces that rule.
type EntryOptions struct {
	Title   TitleInput
	ID      IDInput
	Updated UpdatedInput
	Author  AuthorInput

	// Singleton optional elements. At most one of each, which the types
	// themselves enforce.
	Content   *Content
	Published *Published
	Source    *Source
	Rights    *Rights
	Summary   *Summary

	// List-valued optional elements.
	Contributors []*Contributor
	Categories   []*Category
	Links        []*Link

	// Extensions are appended verbatim after the enumerated elements.
	Extensions []*Extension
}

// Entry is a single entry (article, post) delivered by a feed.
type Entry struct {
	title   *Title
	id      *ID
	updated *Updated
	authors []*Author

	content   *Content
	published *Published
	source    *Source
	rights    *Rights
	summary   *Summary

	contributors []*Contributor
	categories   []*Category
	links        []*Link
	extensions   []*Extension
}

func NewEntry(options EntryOptions) (*Entry, error) {
	title, err := options.Title.resolve("entry")
	if err != nil {
		return nil, err
	}

	id, err := options.ID.resolve("entry")
	if err != nil {
		return nil, err
	}

	updated, err := options.Updated.resolve("entry")
	if err != nil {
		return nil, err
	}

	authors, err := options.Author.resolve("entry")
	if err != nil {
		return nil, err
	}

	return &Entry{
		title:   title,
		id:      id,
		updated: updated,
		authors: authors,

		content:   options.Content,
		published: options.Published,
		source:    options.Source,
		rights:    options.Rights,
		summary:   options.Summary,

		contributors: copySlice(options.Contributors),
		categories:   copySlice(options.Categories),
		links:        copySlice(options.Links),
		extensions:   copySlice(options.Extensions),
	}, nil
}

// HasAuthor reports whether the entry defines at least one author of its own.
func (e *Entry) HasAuthor() bool {
	return len(e.authors) > 0
}

func (e *Entry) renderAtom(parent xml.Value) {
	v := parent.MemberElement(startElement("entry"))

	e.title.renderAtom(v)
	e.id.renderAtom(v)
	e.updated.renderAtom(v)
	for _, author := range e.authors {
		author.renderAtom(v)
	}
	for _, contributor := range e.contributors {
		contributor.renderAtom(v)
	}
	for _, category := range e.categories {
		category.renderAtom(v)
	}
	for _, link := range e.links {
		link.renderAtom(v)
	}
	if e.content != nil {
		e.content.renderAtom(v)
	}
	if e.published != nil {
		e.published.renderAtom(v)
	}
	if e.source != nil {
		e.source.renderAtom(v)
	}
	if e.rights != nil {
		e.rights.renderAtom(v)
	}
	if e.summary != nil {
		e.summary.renderAtom(v)
	}
	for _, extension := range e.extensions {
		extension.renderAtom(v)
	}

	v.Close()
}

// copySlice detaches a caller-supplied element slice so later mutation of
// the caller's slice cannot change a constructed container.
func copySlice[E any](v []E) []E {
	if len(v) == 0 {
		return nil
	}
	out := make([]E, len(v))
	copy(out, v)
	return out
}
