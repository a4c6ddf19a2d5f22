// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the tobj error handling system.
//              These examples demonstrate common use cases and best practices.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with comprehensive examples

package error

import (
	"errors"
	"fmt"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("unterminated string literal").
		WithCode(CodeTOBJSyntax).
		WithDetail("line", 4).
		WithDetail("column", 12).
		WithSeverity(SeverityLow)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: unterminated string literal
	// Code: TOBJ_SYNTAX
	// Severity: low
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	// Simulate a low-level read error
	readErr := errors.New("read: connection reset")

	// Wrap with document context
	err := Wrap(readErr, "failed to load document").
		WithCode(CodeIOError).
		WithDetail("path", "config.tobj").
		WithOperation("tobj.LoadFile")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: failed to load document: read: connection reset
	// Code: IO_ERROR
}

// ExampleError_WithDetails demonstrates adding multiple details to an error
func ExampleError_WithDetails() {
	details := map[string]interface{}{
		"object":   "User.profile",
		"property": "age",
		"line":     7,
		"column":   3,
		"filename": "users.tobj",
	}

	err := New("property redeclared with incompatible value").
		WithCode(CodeValidationFailed).
		WithDetails(details).
		WithSeverity(SeverityLow)

	fmt.Println("Error:", err.Error())
	fmt.Println("Details count:", len(err.Details()))
	fmt.Println("Object:", err.Details()["object"])

	// Output:
	// Error: property redeclared with incompatible value
	// Details count: 5
	// Object: User.profile
}

// ExampleError_WithContext demonstrates adding context information
func ExampleError_WithContext() {
	err := New("validation failed").
		WithCode(CodeValidationFailed).
		WithContext("tobj-engine").
		WithOperation("convert.FromYAML").
		WithDetail("field", "readings").
		WithDetail("reason", "nested list")

	fmt.Println("Context:", err.Context())
	fmt.Println("Operation:", err.Operation())

	// Output:
	// Context: tobj-engine
	// Operation: convert.FromYAML
}

// ExampleHasCode demonstrates checking for specific error codes
func ExampleHasCode() {
	err := New("property declared outside any object").
		WithCode(CodeTOBJContext)

	if HasCode(err, CodeTOBJContext) {
		fmt.Println("This is a context error")
	}

	if HasCode(err, CodeTOBJSyntax) {
		fmt.Println("This is a syntax error")
	} else {
		fmt.Println("This is not a syntax error")
	}

	// Output:
	// This is a context error
	// This is not a syntax error
}

// ExampleGetSeverityFromCode demonstrates automatic severity assignment
func ExampleGetSeverityFromCode() {
	codes := []Code{
		CodeInternal,
		CodeIOError,
		CodeConvertError,
		CodeTOBJSyntax,
	}

	for _, code := range codes {
		severity := GetSeverityFromCode(code)
		fmt.Printf("Code: %s -> Severity: %s (Should Alert: %t)\n",
			code, severity, severity.ShouldAlert())
	}

	// Output:
	// Code: INTERNAL -> Severity: high (Should Alert: true)
	// Code: IO_ERROR -> Severity: high (Should Alert: true)
	// Code: CONVERT_ERROR -> Severity: medium (Should Alert: false)
	// Code: TOBJ_SYNTAX -> Severity: low (Should Alert: false)
}

// ExampleError_RootCause demonstrates finding the root cause of error chains
func ExampleError_RootCause() {
	// Create an error chain
	original := New("no such file or directory").WithCode(CodeNotFound)
	middle := Wrap(original, "reading document failed")
	top := Wrap(middle, "load failed")

	fmt.Println("Top error:", top.Error())
	fmt.Println("Root cause:", top.RootCause().Error())
	fmt.Println("Root cause code:", GetCode(top.RootCause()))

	// Output:
	// Top error: load failed: reading document failed: no such file or directory
	// Root cause: no such file or directory
	// Root cause code: NOT_FOUND
}

// ExampleError_MarshalJSON demonstrates JSON serialization for logging
func ExampleError_MarshalJSON() {
	err := New("format conversion failed").
		WithCode(CodeConvertError).
		WithContext("format-bridge").
		WithDetail("format", "yaml").
		WithSeverity(SeverityMedium)

	// This would typically be used with a JSON logger
	data, _ := err.MarshalJSON()
	fmt.Println("Prefix:", string(data)[:24])

	// Output:
	// Prefix: {"code":"CONVERT_ERROR",
}

// Example_parseFailure demonstrates error handling around document parsing
func Example_parseFailure() {
	// Simulate a guard that rejects oversized inputs before parsing
	checkInput := func(input string, limit int) error {
		if len(input) > limit {
			return New("input exceeds maximum length").
				WithCode(CodeInvalidLength).
				WithDetail("length", len(input)).
				WithDetail("limit", limit)
		}
		return nil
	}

	err := checkInput("*User\n> name Alice\n", 8)
	if err != nil {
		fmt.Println("Rejected:", err.Error())
		fmt.Println("Error code:", GetCode(err))
		fmt.Println("Category:", GetCode(err).Category())
	}

	// Output:
	// Rejected: input exceeds maximum length
	// Error code: INVALID_LENGTH
	// Category: validation
}
