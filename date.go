package atomize

import (
	"time"

	atomtime "github.com/atomize/atomize-go/time"
	"github.com/atomize/atomize-go/xml"
)

// Date is the RFC 4287 date construct backing Updated and Published. The
// timestamp is converted to UTC and truncated to whole seconds at
// construction; it always renders with a literal Z offset.
type Date struct {
	t time.Time
}

func newDate(value time.Time) Date {
	return Date{t: value.UTC().Truncate(time.Second)}
}

// Time returns the normalized timestamp.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) renderInto(parent xml.Value, tag string) {
	parent.MemberElement(startElement(tag)).String(atomtime.FormatDateTime(d.t))
}

// Updated records when a feed, entry or source was last modified.
type Updated struct {
	Date
}

func NewUpdated(value time.Time) *Updated {
	return &Updated{newDate(value)}
}

func (u *Updated) renderAtom(parent xml.Value) {
	u.renderInto(parent, "updated")
}

// Published records an early date in an entry's life, such as its initial
// publication.
type Published struct {
	Date
}

func NewPublished(value time.Time) *Published {
	return &Published{newDate(value)}
}

func (p *Published) renderAtom(parent xml.Value) {
	p.renderInto(parent, "published")
}
