// Package xml writes XML documents through an explicit element writer.
//
// Value is responsible for writing the start and end tags of a single
// element. A Value obtained from MemberElement must be closed, either with
// Close or implicitly through String or Write, which close after writing
// their content. The close should ideally happen before any sibling element
// is started.
package xml
