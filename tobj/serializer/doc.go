// File: doc.go
// Title: Package Documentation for TOBJ Serializer
// Description: Provides package-level documentation for the TOBJ
//              serializer with usage examples and output conventions.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial package documentation

/*
Package serializer renders Document trees as TOBJ text.

The serializer produces one canonical form: every object that carries
properties (or is an empty leaf) becomes a section headed by its full
dotted path, properties are written one per line in insertion order,
and lists always use the multi-line dash form. Objects that merely
group children emit no section of their own because their paths are
implied by their descendants.

Key output rules:

• Sections are separated by a blank line

• Property and list lines are indented (two spaces by default)

• Strings are written bare when they re-parse as the same single
  identifier, quoted otherwise

• Quoted strings escape backslash, quote, newline and tab

• Floats always carry a decimal point so they re-parse as floats

Basic usage:

	s, err := serializer.New(serializer.Options{})
	if err != nil {
		return err
	}
	text := s.Serialize(doc)

Or with the package-level convenience function:

	text := serializer.Serialize(doc)

Serialization never fails: any well-formed Document has a textual
form. Parsing the output with the parser package yields a document
equal to the input, with one documented exception: an empty list has
no item lines, so its property degrades to null on re-parse.
*/
package serializer
