package atomize

import (
	"os"

	"github.com/atomize/atomize-go/logging"
	"github.com/atomize/atomize-go/xml"
)

// SourceOptions configures NewSource. A source echoes metadata of the feed an
// entry was copied from, so unlike EntryOptions every field is optional:
// missing title, id or updated only logs a warning on the diagnostics
// logger.
type SourceOptions struct {
	Title   TitleInput
	ID      IDInput
	Updated UpdatedInput
	Author  AuthorInput

	Generator *Generator
	Icon      *Icon
	Logo      *Logo
	Rights    *Rights
	Subtitle  *Subtitle

	Contributors []*Contributor
	Categories   []*Category
	Links        []*Link
	Extensions   []*Extension

	// Logger receives warning diagnostics. When nil, warnings go to a
	// standard logger on os.Stderr.
	Logger logging.Logger
}

// Source carries metadata about the feed an entry was copied from.
type Source struct {
	title   *Title
	id      *ID
	updated *Updated
	authors []*Author

	generator *Generator
	icon      *Icon
	logo      *Logo
	rights    *Rights
	subtitle  *Subtitle

	contributors []*Contributor
	categories   []*Category
	links        []*Link
	extensions   []*Extension
}

func NewSource(options SourceOptions) (*Source, error) {
	logger := options.Logger
	if logger == nil {
		logger = logging.NewStandardLogger(os.Stderr)
	}

	if options.Title.absent() || options.ID.absent() || options.Updated.absent() {
		logger.Logf(logging.Warn, "source: it is recommended to define a title, guid and updated for a source")
	}

	source := &Source{
		generator: options.Generator,
		icon:      options.Icon,
		logo:      options.Logo,
		rights:    options.Rights,
		subtitle:  options.Subtitle,

		contributors: copySlice(options.Contributors),
		categories:   copySlice(options.Categories),
		links:        copySlice(options.Links),
		extensions:   copySlice(options.Extensions),
	}

	var err error
	if !options.Title.absent() {
		if source.title, err = options.Title.resolve("source"); err != nil {
			return nil, err
		}
	}
	if !options.ID.absent() {
		if source.id, err = options.ID.resolve("source"); err != nil {
			return nil, err
		}
	}
	if !options.Updated.absent() {
		if source.updated, err = options.Updated.resolve("source"); err != nil {
			return nil, err
		}
	}
	if source.authors, err = options.Author.resolve("source"); err != nil {
		return nil, err
	}

	return source, nil
}

func (s *Source) renderAtom(parent xml.Value) {
	v := parent.MemberElement(startElement("source"))

	if s.title != nil {
		s.title.renderAtom(v)
	}
	if s.id != nil {
		s.id.renderAtom(v)
	}
	if s.updated != nil {
		s.updated.renderAtom(v)
	}
	for _, author := range s.authors {
		author.renderAtom(v)
	}
	for _, contributor := range s.contributors {
		contributor.renderAtom(v)
	}
	for _, category := range s.categories {
		category.renderAtom(v)
	}
	for _, link := range s.links {
		link.renderAtom(v)
	}
	if s.generator != nil {
		s.generator.renderAtom(v)
	}
	if s.icon != nil {
		s.icon.renderAtom(v)
	}
	if s.logo != nil {
		s.logo.renderAtom(v)
	}
	if s.rights != nil {
		s.rights.renderAtom(v)
	}
	if s.subtitle != nil {
		s.subtitle.renderAtom(v)
	}
	for _, extension := range s.extensions {
		extension.renderAtom(v)
	}

	v.Close()
}
