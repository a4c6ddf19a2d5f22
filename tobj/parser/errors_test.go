// File: errors_test.go
// Title: TOBJ Parse Error Tests
// Description: Unit tests for ParseError formatting. Tests cover the
//              one-line error form, the multi-line report with caret
//              positioning, filename handling, and error code mapping.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial error formatting tests

package parser

import (
	"testing"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{SyntaxError, "syntax error"},
		{ContextError, "context error"},
		{PathError, "path error"},
		{ErrorKind(99), "parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Kind:    SyntaxError,
		Message: "unterminated string",
		Pos:     tobjdocument.Position{Line: 2, Column: 4, Offset: 20},
	}

	expected := "syntax error: unterminated string (line 3, column 5)"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestParseError_Report(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "Full report with filename",
			err: &ParseError{
				Kind:       ContextError,
				Message:    "property declared before any object",
				Pos:        tobjdocument.Position{Line: 0, Column: 0, Offset: 0},
				SourceLine: "> name Alice",
				Filename:   "config.tobj",
			},
			expected: "context error: property declared before any object (line 1, column 1)\n" +
				"File config.tobj, line 1\n" +
				"> name Alice\n" +
				"^",
		},
		{
			name: "Caret under the error column",
			err: &ParseError{
				Kind:       SyntaxError,
				Message:    "unterminated string (missing closing quote)",
				Pos:        tobjdocument.Position{Line: 1, Column: 4, Offset: 11},
				SourceLine: "> s \"x",
			},
			expected: "syntax error: unterminated string (missing closing quote) (line 2, column 5)\n" +
				"> s \"x\n" +
				"    ^",
		},
		{
			name: "Without source line",
			err: &ParseError{
				Kind:    PathError,
				Message: "empty segment in object path",
				Pos:     tobjdocument.Position{Line: 2, Column: 7, Offset: 31},
			},
			expected: "path error: empty segment in object path (line 3, column 8)",
		},
		{
			name: "Tabs widened to keep the caret aligned",
			err: &ParseError{
				Kind:       ContextError,
				Message:    "list item without a preceding property",
				Pos:        tobjdocument.Position{Line: 0, Column: 1, Offset: 1},
				SourceLine: "\t- 1",
			},
			expected: "context error: list item without a preceding property (line 1, column 2)\n" +
				" - 1\n" +
				" ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Report(); got != tt.expected {
				t.Errorf("Report mismatch:\nexpected:\n%s\ngot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestParseError_Code(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected tobjerror.Code
	}{
		{SyntaxError, tobjerror.CodeTOBJSyntax},
		{ContextError, tobjerror.CodeTOBJContext},
		{PathError, tobjerror.CodeTOBJPath},
		{ErrorKind(99), tobjerror.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			err := &ParseError{Kind: tt.kind}
			if got := err.Code(); got != tt.expected {
				t.Errorf("Expected code %v, got %v", tt.expected, got)
			}
		})
	}
}
