// File: basic_syntax.go
// Package: examples
// Title: TOBJ Basic Syntax Examples
// Description: Demonstrates fundamental TOBJ notation patterns: object
//              declarations, typed properties, lists, strings, comments,
//              and the compact one-line document form.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18

package examples

import (
	"fmt"
)

// TOBJBasicSyntaxDemo demonstrates fundamental TOBJ notation patterns
type TOBJBasicSyntaxDemo struct {
	snippets []string
	invalid  []string
}

// NewBasicSyntaxDemo creates a new demonstration instance
func NewBasicSyntaxDemo() *TOBJBasicSyntaxDemo {
	return &TOBJBasicSyntaxDemo{
		snippets: make([]string, 0),
		invalid:  make([]string, 0),
	}
}

// ObjectDeclarationSyntax demonstrates the core *object pattern
func (demo *TOBJBasicSyntaxDemo) ObjectDeclarationSyntax() []string {
	examples := []string{
		// Single objects
		"*server",
		"*customer",
		"*backup_config",

		// Nested objects through dotted paths
		"*config.server",
		"*config.server.http",
		"*app.db.pool",

		// Re-declaring a path re-opens the object
		"*server > host localhost *server > port 8080",

		// Several objects in one document
		"*server > port 8080 *client > retries 3",

		// Keywords and numbers are usable as path segments
		"*true > note keyword_named_object",
		"*v1.2 > stable true",
	}

	demo.logExamples("Object Declarations", examples)
	return examples
}

// PropertyDeclarationSyntax demonstrates the > key value pattern
func (demo *TOBJBasicSyntaxDemo) PropertyDeclarationSyntax() []string {
	examples := []string{
		// Typed scalar values
		"*server > host localhost",
		`*server > dsn "postgres://db.example.com:5432"`,
		"*server > port 8080",
		"*metrics > ratio 0.75",
		"*server > debug true",
		"*server > cert nothing",

		// Negative numbers (no space after the minus sign)
		"*limits > floor -10 > offset -2.5",

		// A property without a value holds nothing
		"*server > cert *server > port 8080",

		// Quoted keys allow spaces and reserved words
		`*job > "start time" 9 > "nothing" still_a_key`,

		// Re-declaring a key overwrites the previous value
		"*server > port 8080 > port 9090",
	}

	demo.logExamples("Property Declarations", examples)
	return examples
}

// ListDeclarationSyntax demonstrates the - item pattern
func (demo *TOBJBasicSyntaxDemo) ListDeclarationSyntax() []string {
	examples := []string{
		// Multi-line list under a property
		"*sensor\n  > readings\n  - 10\n  - 20\n  - 30.5",

		// The same list inline
		"*sensor > readings - 10 - 20 - 30.5",

		// Mixed item types
		"*batch > values - 1 - two - 3.0 - true - nothing",

		// Appending to a scalar promotes it to a two-item list
		"*sensor > unit celsius - fahrenheit",

		// Appending to an explicit nothing keeps it as the first item
		"*sensor > reading nothing - 42",

		// Items keep arriving after other text lines
		"*a\n  > xs\n  - 1\n  # still the same list\n  - 2",
	}

	demo.logExamples("List Declarations", examples)
	return examples
}

// StringQuotingSyntax demonstrates bare and quoted string forms
func (demo *TOBJBasicSyntaxDemo) StringQuotingSyntax() []string {
	examples := []string{
		// Bare words are strings
		"*user > name Alice > city Berlin",

		// Identifiers may carry most punctuation
		`*paths > backup C:\backup > unit µs`,

		// Quoting is needed for spaces and reserved characters
		`*user > name "Alice Smith"`,
		`*note > text "ends with a sigil: *"`,
		`*filter > expr "a-b"`,

		// Escape sequences inside quotes
		`*doc > body "line1\nline2"`,
		`*doc > cell "a\tb"`,
		`*doc > quoted "say \"hi\""`,
		`*doc > path "C:\\njet"`,

		// Keywords must be quoted to stay strings
		`*flags > literal "true" > missing "nothing"`,
	}

	demo.logExamples("String Forms", examples)
	return examples
}

// CommentSyntax demonstrates comments and the discardable marker
func (demo *TOBJBasicSyntaxDemo) CommentSyntax() []string {
	examples := []string{
		// Hash comments run to the end of the line
		"# deployment settings\n*server > port 8080",

		// Double-slash comments work the same way
		"// generated file, do not edit\n*server > port 8080",

		// Comments may trail any line
		"*server > port 8080  # the public port",

		// A document of nothing but comments is valid and empty
		"# heading\n// note",

		// The ... marker is discarded wherever it appears
		"*a > x 1 ... > y 2",
		"... *a > x 1",
		"*template > host ... > port ...",
	}

	demo.logExamples("Comments and Discardable Marker", examples)
	return examples
}

// CompactDocumentSyntax demonstrates the one-line document form
func (demo *TOBJBasicSyntaxDemo) CompactDocumentSyntax() []string {
	examples := []string{
		// Line breaks carry no meaning, so whole documents fit one line
		"*server > host localhost > port 8080 > debug true",

		// Nested configuration in one line
		"*app > name demo *app.db > dsn local *app.db.pool > size 10",

		// Indentation is free-form
		"*a\n\t\t> x 1\n      > y 2",

		// Everything crammed together still tokenizes
		"*a>x 1>y 2",
	}

	demo.logExamples("Compact Documents", examples)
	return examples
}

// InvalidSnippetExamples demonstrates input the parser rejects
func (demo *TOBJBasicSyntaxDemo) InvalidSnippetExamples() []string {
	examples := []string{
		// Context errors: valid tokens in an invalid place
		"> orphan 1",
		"- 1",
		"*a - 1",

		// Path errors: malformed dotted paths
		"*",
		"*.a",
		"*a..b > x 1",
		"*a. > x 1",

		// Syntax errors: malformed tokens and stray input
		`*a > s "unterminated`,
		"*a > true 1",
		"*a > > b",
		"stray_word",
	}

	demo.logInvalid("Rejected Input", examples)
	return examples
}

// logExamples logs examples with proper formatting
func (demo *TOBJBasicSyntaxDemo) logExamples(title string, examples []string) {
	fmt.Printf("\n=== %s ===\n", title)
	for i, example := range examples {
		fmt.Printf("%2d. %s\n", i+1, example)
	}
	demo.snippets = append(demo.snippets, examples...)
}

// logInvalid logs rejected examples without adding them to the valid set
func (demo *TOBJBasicSyntaxDemo) logInvalid(title string, examples []string) {
	fmt.Printf("\n=== %s ===\n", title)
	for i, example := range examples {
		fmt.Printf("%2d. %s\n", i+1, example)
	}
	demo.invalid = append(demo.invalid, examples...)
}

// GetAllSnippets returns all valid demonstration snippets
func (demo *TOBJBasicSyntaxDemo) GetAllSnippets() []string {
	return demo.snippets
}

// GetInvalidSnippets returns all demonstration snippets the parser rejects
func (demo *TOBJBasicSyntaxDemo) GetInvalidSnippets() []string {
	return demo.invalid
}

// RunAllDemonstrations executes all syntax demonstrations
func (demo *TOBJBasicSyntaxDemo) RunAllDemonstrations() {
	fmt.Println("TOBJ Basic Syntax Demonstration")
	fmt.Println("===============================")

	demo.ObjectDeclarationSyntax()
	demo.PropertyDeclarationSyntax()
	demo.ListDeclarationSyntax()
	demo.StringQuotingSyntax()
	demo.CommentSyntax()
	demo.CompactDocumentSyntax()
	demo.InvalidSnippetExamples()

	fmt.Printf("\nTotal snippets demonstrated: %d valid, %d rejected\n",
		len(demo.snippets), len(demo.invalid))
}
