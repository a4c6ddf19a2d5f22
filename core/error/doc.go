// Package error provides structured error handling capabilities for the tobj library.
//
// Package: error
// Title: tobj Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with logging.
//              It provides a foundation for consistent error handling across all
//              tobj packages, from parsing through format conversion and file I/O.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Integration with the log package via severity levels
// - Error severity levels and categorization
//
// Usage:
//   import "github.com/tobj-format/tobj-go/core/error"
//
//   // Create a new error with context
//   err := error.New("input exceeds maximum length").
//     WithCode(error.CodeInvalidLength).
//     WithDetail("length", 5000000).
//     WithSeverity(error.SeverityLow)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to parse document").
//     WithCode(error.CodeTOBJSyntax).
//     WithDetail("filename", "config.tobj")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeTOBJSyntax) {
//     // Handle notation errors specifically
//   }
package error
