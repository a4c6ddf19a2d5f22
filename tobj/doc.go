// File: doc.go
// Title: Tiny Object Notation (TOBJ) Package Documentation
// Description: Implements the Tiny Object Notation parser, document
//              model, serializer and format bridges. TOBJ is a
//              line-oriented notation for nested objects with typed
//              properties, built for hand-written configuration and
//              object interchange.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial TOBJ implementation

/*
Package tobj implements the Tiny Object Notation parser and
serialization engine.

Key Features:
  • Sigil-driven syntax (* object, > property, - list item)
  • Nested objects through dotted paths (*config.server.http)
  • Typed scalar values: strings, integers, floats, booleans, nothing
  • Flat lists of scalars with multi-line and inline forms
  • Line comments (# and //) and the discardable ... marker
  • Positioned parse errors with source excerpt and caret
  • Canonical serialization that round-trips any document
  • Bridges to TOML, YAML and JSON in the convert package

# TOBJ Notation Overview

A TOBJ document is a sequence of object declarations, each followed by
its properties:

	# A server configuration
	*server
	  > host "localhost"
	  > port 8080
	  > debug true

	*server.tls
	  > enabled false
	  > cert nothing

Declarations open an object; dotted paths create and re-open nested
objects. Properties bind a key to a scalar or a list:

	*sensor
	  > unit celsius
	  > readings
	  - 10
	  - 20
	  - 30.5

Whitespace and line breaks carry no grammatical meaning, so the same
document can be written in one line:

	*sensor > unit celsius > readings - 10 - 20 - 30.5

Bare words are strings, quoted strings may use the escape sequences
\n, \t, \" and \\, numbers follow the usual integer and decimal
forms, and the keywords true, false and nothing (the null value) are
matched case-sensitively. A property with no value holds nothing. The
three-character marker ... is discarded wherever it appears, which
keeps hand-edited fragments and generated templates valid.

# Basic Usage Examples

Parse, inspect and serialize:

	import "github.com/tobj-format/tobj-go/tobj"

	doc, err := tobj.Parse(`*server > host "localhost" > port 8080`)
	if err != nil {
		log.Fatal(err)
	}

	server, _ := doc.Get("server")
	port, _ := server.Property("port")
	n, _ := port.AsInt()
	fmt.Println(n) // 8080

	fmt.Print(tobj.Serialize(doc))
	// *server
	//   > host localhost
	//   > port 8080

Work with files and custom options:

	engine, err := tobj.NewEngine(tobj.Options{
		MaxInputLength: 64 * 1024,
	})
	if err != nil {
		log.Fatal(err)
	}

	doc, err := engine.LoadFile("config.tobj")
	if err != nil {
		log.Fatal(err)
	}

	doc.Ensure("server").SetProperty("port", document.Int(9090))
	if err := engine.DumpFile(doc, "config.tobj"); err != nil {
		log.Fatal(err)
	}

# Error Handling

Parse failures are structured errors carrying a notation code, and the
positioned ParseError stays reachable:

	_, err := tobj.Parse("> orphan 1")
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			fmt.Println(parseErr.Report())
			// context error: property declared before any object (line 1, column 1)
			// > orphan 1
			// ^
		}
	}

The codes distinguish syntax errors (malformed tokens or unexpected
input), context errors (valid tokens in an invalid place, like a list
item before any property) and path errors (malformed dotted paths).

# Architecture Components

The packages form a small pipeline:

	Text → parser (lexer + recursive descent) → document tree
	Document tree → serializer → canonical text
	Document tree ↔ convert (TOML / YAML / JSON)

## Document Model (tobj/document)

Ordered objects with ordered properties. Values are immutable scalar
wrappers with kind-checked accessors; visitors cover traversal,
validation and stringification.

## Parser (tobj/parser)

Byte-cursor lexer producing positioned tokens, recursive descent
parser building the document, ParseError with source excerpt and
caret rendering.

## Serializer (tobj/serializer)

One canonical output form: full dotted paths in insertion order,
multi-line lists, minimal quoting. Parsing the output reproduces the
document.

## Conversion (tobj/convert)

Strict bridges exchanging documents with the neighboring formats,
preserving member order where the target format allows it.

# Performance Characteristics

Parsing is a single forward pass without backtracking; the lexer works
on bytes and allocates only for decoded string values. Serialization
walks the tree once into a single builder. Parse and serialize are
pure functions over in-memory buffers, and every parse call owns its
own cursor and document under construction, so engines and the
package-level functions are safe for concurrent use.

For comprehensive examples see the examples directory and the
package-level tests.
*/
package tobj
