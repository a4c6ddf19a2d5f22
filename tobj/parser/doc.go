// File: doc.go
// Title: TOBJ Parser Package Documentation
// Description: Implements the lexical analyzer and parser for TOBJ
//              notation. Converts TOBJ text into Document trees with
//              positioned error reporting and caret diagnostics.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for TOBJ notation.

This package implements a recursive descent parser that converts TOBJ
text into Document trees. It includes:

  • Lexical analyzer (tokenizer) for TOBJ syntax
  • Recursive descent parser for the sigil-driven grammar
  • Positioned error reporting with source excerpts and caret lines
  • Dotted-path resolution and list-continuation handling

Whitespace and line breaks carry no grammatical meaning in TOBJ; the
sigils *, > and - alone drive the grammar, so a one-line document and
its multi-line equivalent produce identical trees. Parse errors are
returned as *ParseError values that render human-readable diagnostics
through their Report method.
*/
package parser
