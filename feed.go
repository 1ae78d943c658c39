package atomize

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/atomize/atomize-go/logging"
	"github.com/atomize/atomize-go/xml"
)

// FeedOptions configures NewFeed. Title, ID and Updated are required. Author
// may be omitted only when every entry carries its own author(s). SelfLink
// is optional but omitting it logs a warning.
type FeedOptions struct {
	Title   TitleInput
	ID      IDInput
	Updated UpdatedInput
	Author  AuthorInput

	SelfLink SelfLinkInput

	// Entries are delivered in the order given, which is the document order.
	Entries []*Entry

	Icon     *Icon
	Logo     *Logo
	Rights   *Rights
	Subtitle *Subtitle

	// Generator is ignored: the feed always identifies this library as its
	// generator. A supplied value logs a warning.
	Generator *Generator

	Contributors []*Contributor
	Categories   []*Category
	Links        []*Link
	Extensions   []*Extension

	// Logger receives warning diagnostics. When nil, warnings go to a
	// standard logger on os.Stderr.
	Logger logging.Logger
}

// Feed is an Atom feed document ready to be serialized.
type Feed struct {
	title   *Title
	id      *ID
	updated *Updated
	authors []*Author

	selfLink  *Link
	generator *Generator

	icon     *Icon
	logo     *Logo
	rights   *Rights
	subtitle *Subtitle

	contributors []*Contributor
	categories   []*Category
	links        []*Link
	extensions   []*Extension

	entries []*Entry
}

func NewFeed(options FeedOptions) (*Feed, error) {
	logger := options.Logger
	if logger == nil {
		logger = logging.NewStandardLogger(os.Stderr)
	}

	title, err := options.Title.resolve("feed")
	if err != nil {
		return nil, err
	}

	id, err := options.ID.resolve("feed")
	if err != nil {
		return nil, err
	}

	updated, err := options.Updated.resolve("feed")
	if err != nil {
		return nil, err
	}

	authors, err := options.Author.resolve("feed")
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		if len(options.Entries) == 0 {
			return nil, newError("feed: no entries defined and no authors defined for feed")
		}
		for _, entry := range options.Entries {
			if entry == nil || !entry.HasAuthor() {
				return nil, newError("feed: not all entries have an author, but no authors are defined for feed")
			}
		}
	}

	var selfLink *Link
	if options.SelfLink.absent() {
		logger.Logf(logging.Warn, "feed defined without a self link")
	} else {
		if selfLink, err = options.SelfLink.resolve(); err != nil {
			return nil, err
		}
	}

	if options.Generator != nil {
		logger.Logf(logging.Warn, "feed: the supplied generator is ignored, feeds always identify %s as their generator", PackageName)
	}

	return &Feed{
		title:   title,
		id:      id,
		updated: updated,
		authors: authors,

		selfLink:  selfLink,
		generator: &Generator{Name: PackageName, Version: PackageVersion},

		icon:     options.Icon,
		logo:     options.Logo,
		rights:   options.Rights,
		subtitle: options.Subtitle,

		contributors: copySlice(options.Contributors),
		categories:   copySlice(options.Categories),
		links:        copySlice(options.Links),
		extensions:   copySlice(options.Extensions),

		entries: copySlice(options.Entries),
	}, nil
}

// Entries returns the feed's entries in document order.
func (f *Feed) Entries() []*Entry {
	return copySlice(f.entries)
}

// document builds the full XML document with charset named in the
// declaration. The element order is fixed, so repeated renders of the same
// feed are byte-identical.
func (f *Feed) document(charset string) []byte {
	encoder := xml.NewEncoder()
	encoder.WriteDeclaration(charset)

	root := encoder.RootElement(startElement("feed", xmlnsAttr(AtomNamespace)))

	f.title.renderAtom(root)
	f.id.renderAtom(root)
	f.updated.renderAtom(root)
	for _, author := range f.authors {
		author.renderAtom(root)
	}
	if f.selfLink != nil {
		f.selfLink.renderAtom(root)
	}
	for _, link := range f.links {
		link.renderAtom(root)
	}
	for _, contributor := range f.contributors {
		contributor.renderAtom(root)
	}
	for _, category := range f.categories {
		category.renderAtom(root)
	}
	if f.icon != nil {
		f.icon.renderAtom(root)
	}
	if f.logo != nil {
		f.logo.renderAtom(root)
	}
	if f.rights != nil {
		f.rights.renderAtom(root)
	}
	if f.subtitle != nil {
		f.subtitle.renderAtom(root)
	}
	f.generator.renderAtom(root)
	for _, extension := range f.extensions {
		extension.renderAtom(root)
	}
	for _, entry := range f.entries {
		entry.renderAtom(root)
	}

	root.Close()

	return encoder.Bytes()
}

// Render serializes the feed with an XML declaration. An empty charset means
// UTF-8; any other value must name a charset known to the IANA index, and
// the returned bytes are encoded in it.
func (f *Feed) Render(charset string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf, charset); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the feed to w. An empty charset means UTF-8.
func (f *Feed) Write(w io.Writer, charset string) error {
	if len(charset) == 0 {
		_, err := w.Write(f.document("UTF-8"))
		return err
	}

	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return wrapError(err, "feed: unknown charset %q", charset)
	}
	if enc == nil {
		return newError("feed: unsupported charset %q", charset)
	}
	name, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return wrapError(err, "feed: unknown charset %q", charset)
	}

	encoded, _, err := transform.Bytes(enc.NewEncoder(), f.document(name))
	if err != nil {
		return wrapError(err, "feed: encoding document as %q", name)
	}

	_, err = w.Write(encoded)
	return err
}

// WriteFile renders the feed and writes it to path, creating or truncating
// the file. The file is closed on every exit path.
func (f *Feed) WriteFile(path, charset string) error {
	file, err := os.Create(path)
	if err != nil {
		return wrapError(err, "feed: creating %s", path)
	}

	if err := f.Write(file, charset); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
