// File: examples_test.go
// Package: examples
// Title: TOBJ Example Catalog Tests
// Description: Verifies the example catalog's promises: every valid
//              snippet parses and survives a serialization round trip,
//              and every invalid snippet fails with a positioned error.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18

package examples

import (
	"errors"
	"testing"

	"github.com/tobj-format/tobj-go/tobj"
	tobjparser "github.com/tobj-format/tobj-go/tobj/parser"
)

func TestValidSnippetsParse(t *testing.T) {
	demo := NewBasicSyntaxDemo()
	demo.ObjectDeclarationSyntax()
	demo.PropertyDeclarationSyntax()
	demo.ListDeclarationSyntax()
	demo.StringQuotingSyntax()
	demo.CommentSyntax()
	demo.CompactDocumentSyntax()

	snippets := demo.GetAllSnippets()
	if len(snippets) == 0 {
		t.Fatalf("Expected demonstration snippets")
	}

	for _, snippet := range snippets {
		doc, err := tobj.Parse(snippet)
		if err != nil {
			t.Errorf("Snippet failed to parse: %q: %v", snippet, err)
			continue
		}

		// Canonical output must parse back to an equal document
		text := tobj.Serialize(doc)
		reparsed, err := tobj.Parse(text)
		if err != nil {
			t.Errorf("Canonical form failed to re-parse for %q:\n%s\n%v", snippet, text, err)
			continue
		}
		if !doc.Equal(reparsed) {
			t.Errorf("Round trip changed the document for %q:\n%s", snippet, text)
		}
	}
}

func TestInvalidSnippetsFail(t *testing.T) {
	demo := NewBasicSyntaxDemo()
	demo.InvalidSnippetExamples()

	snippets := demo.GetInvalidSnippets()
	if len(snippets) == 0 {
		t.Fatalf("Expected rejected snippets")
	}

	for _, snippet := range snippets {
		_, err := tobj.Parse(snippet)
		if err == nil {
			t.Errorf("Snippet parsed but should have failed: %q", snippet)
			continue
		}

		// Every failure carries a positioned parse error
		var parseErr *tobjparser.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Expected parse error in chain for %q, got %T", snippet, err)
		}
	}
}

func TestSnippetSetsAreDisjoint(t *testing.T) {
	demo := NewBasicSyntaxDemo()
	demo.RunAllDemonstrations()

	seen := make(map[string]bool, len(demo.GetAllSnippets()))
	for _, snippet := range demo.GetAllSnippets() {
		seen[snippet] = true
	}
	for _, snippet := range demo.GetInvalidSnippets() {
		if seen[snippet] {
			t.Errorf("Snippet listed as both valid and invalid: %q", snippet)
		}
	}
}
