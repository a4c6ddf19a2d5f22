// Package examples provides TOBJ (Tiny Object Notation) syntax
// examples and demonstrations for the tobj library.
//
// Package: examples
// Title: TOBJ Examples and Demonstrations
// Description: This package contains a curated catalog of TOBJ
//              notation snippets covering every construct the parser
//              accepts, together with a set of snippets it rejects.
//              The catalog doubles as learning material and as test
//              input for the parser and serializer.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// The examples package serves three purposes:
//
// 1. **Educational Resource**: Runnable demonstrations of TOBJ syntax
//    from single-object declarations to compact one-line documents.
//
// 2. **Reference Catalog**: Every snippet in the valid set parses, and
//    every snippet in the invalid set fails with a positioned error.
//    The package tests hold both promises in place.
//
// 3. **Test Corpus**: The snippet sets feed round-trip and error
//    reporting tests elsewhere in the library.
//
// ## Demonstration Areas
//
// ### Basic Syntax Examples (basic_syntax.go)
//
// Fundamental TOBJ notation patterns:
//   - Object declarations (*server, *config.server.http)
//   - Typed properties (> port 8080, > ratio 0.75, > cert nothing)
//   - Lists in multi-line and inline form (- 10 - 20 - 30.5)
//   - Bare and quoted strings with escape sequences
//   - Comments (#, //) and the discardable ... marker
//   - Compact one-line documents
//   - Input the parser rejects, by error category
//
// Example usage:
//
//	demo := NewBasicSyntaxDemo()
//	demo.RunAllDemonstrations()
//	valid := demo.GetAllSnippets()
//	rejected := demo.GetInvalidSnippets()
//
// Each valid snippet is a complete document: parsing it yields a
// document tree, and serializing that tree yields canonical TOBJ text
// that parses back to an equal document.
package examples
