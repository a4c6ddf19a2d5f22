// File: errors.go
// Title: TOBJ Parse Error Reporting
// Description: Defines the ParseError type shared by the lexer and
//              parser. A ParseError carries the error kind, message,
//              source position, and offending source line, and can
//              render a multi-line diagnostic with a caret that points
//              at the error column.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial error reporting implementation

package parser

import (
	"fmt"
	"strings"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// ErrorKind categorizes parse errors
type ErrorKind int

const (
	// SyntaxError reports malformed input: stray characters,
	// unterminated strings, unusable tokens
	SyntaxError ErrorKind = iota

	// ContextError reports structurally valid tokens in an invalid
	// place, such as a property before any object declaration
	ContextError

	// PathError reports malformed dotted object paths
	PathError
)

// String returns a string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case ContextError:
		return "context error"
	case PathError:
		return "path error"
	default:
		return "parse error"
	}
}

// ParseError describes a failure to parse TOBJ input. Position fields
// are 0-based; rendering converts them to 1-based for display.
type ParseError struct {
	Kind       ErrorKind             // Error category
	Message    string                // Human-readable description
	Pos        tobjdocument.Position // Position of the offending character
	SourceLine string                // Text of the offending line
	Filename   string                // Optional source name for reports
}

// Error returns a one-line description with 1-based line and column
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Message, e.Pos.Line+1, e.Pos.Column+1)
}

// Report renders a multi-line diagnostic: the error line, an optional
// file reference, and the offending source line with a caret under the
// error column. Tabs in the source line are widened to single spaces
// so the caret stays aligned with the lexer's column counting.
func (e *ParseError) Report() string {
	var b strings.Builder

	b.WriteString(e.Error())

	if e.Filename != "" {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "File %s, line %d", e.Filename, e.Pos.Line+1)
	}

	if e.SourceLine != "" {
		b.WriteByte('\n')
		b.WriteString(strings.ReplaceAll(e.SourceLine, "\t", " "))
		b.WriteByte('\n')
		b.WriteString(tobjstringx.PadLeft("^", e.Pos.Column+1, ' '))
	}

	return b.String()
}

// Code maps the error kind to its structured error code
func (e *ParseError) Code() tobjerror.Code {
	switch e.Kind {
	case SyntaxError:
		return tobjerror.CodeTOBJSyntax
	case ContextError:
		return tobjerror.CodeTOBJContext
	case PathError:
		return tobjerror.CodeTOBJPath
	default:
		return tobjerror.CodeUnknown
	}
}
