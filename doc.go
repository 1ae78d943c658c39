// Package atomize constructs and serializes Atom Syndication Format
// (RFC 4287) feed documents.
//
// A feed is assembled bottom up: leaf constructs (text, person, date, link,
// category and friends) are built first, or supplied as raw primitives
// through the tagged input helpers, and passed into NewEntry and NewFeed,
// which validate required fields and cardinality at construction. A built
// Feed renders to UTF-8 XML with Render, or to a writer or file in a
// caller-chosen charset with Write and WriteFile.
//
// The package is write-only: it does not parse feeds, fetch anything, or
// hold state beyond the values the caller builds. All values are immutable
// once constructed and safe for concurrent reads.
package atomize
