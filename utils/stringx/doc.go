// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              tobj library, offering Unicode-safe string manipulation and
//              commonly needed utilities that extend Go's standard library.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with core string utilities

// Package stringx provides extended string operations for the tobj library.
//
// Package: stringx
// Title: Extended String Operations
// Description: This package provides essential string utilities that extend
//              the Go standard library with commonly needed operations.
//              Focus on Unicode safety, performance, and developer ergonomics.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Overview
//
// The stringx package extends Go's standard strings package with the small
// set of utilities the tobj library needs for input validation, diagnostics
// rendering, and line handling. All operations are Unicode-aware and safe
// for production use.
//
// Key capabilities include:
//   - Safe empty/blank checking for input validation
//   - Unicode-safe string truncation for log previews
//   - Left padding for aligned diagnostics output
//   - Line splitting that handles \n, \r\n, and \r endings
//   - Default-value chains via FirstNonEmpty and FirstNonBlank
//
// Usage Examples
//
// Basic string operations:
//
//	// Safe empty/blank checking
//	if stringx.IsBlank("  \t\n  ") {
//	    fmt.Println("String contains only whitespace")
//	}
//
//	// Unicode-aware truncation
//	long := "Hello, 世界! This is a long string"
//	short := stringx.Truncate(long, 10, "...")
//	// Result: "Hello, 世..."
//
//	// Line splitting with mixed endings
//	lines := stringx.SplitLines("a\nb\r\nc")
//	// Result: []string{"a", "b", "c"}
//
// Diagnostics rendering:
//
//	// Position a caret under column 12 of a source line
//	caret := stringx.PadLeft("^", 13, ' ')
//
// Best Practices
//
// Use IsBlank() instead of checking len() for user input:
//
//	// Good - handles whitespace
//	if stringx.IsBlank(userInput) {
//	    return errors.New("input required")
//	}
//
// Use Unicode-aware functions for international text:
//
//	// Good - handles Unicode correctly
//	truncated := stringx.Truncate(text, 50, "...")
//
//	// Bad - may split Unicode characters
//	truncated := text[:50] + "..."
//
// Thread Safety
//
// All exported functions are pure and thread-safe; they can be called
// concurrently without synchronization.
//
// See Also
//
//   - strings: Go standard library string functions
//   - unicode: Unicode character classification
//
package stringx
