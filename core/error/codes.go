// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the tobj library. These codes enable structured error handling,
//              diagnostics routing, and error monitoring.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the tobj library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// TOBJ notation specific
	CodeTOBJSyntax  Code = "TOBJ_SYNTAX"
	CodeTOBJContext Code = "TOBJ_CONTEXT"
	CodeTOBJPath    Code = "TOBJ_PATH"

	// Format conversion
	CodeConvertError      Code = "CONVERT_ERROR"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// File input and output
	CodeIOError Code = "IO_ERROR"

	// Configuration loading
	CodeConfigError Code = "CONFIG_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTOBJSyntax, CodeTOBJContext, CodeTOBJPath,
		CodeConvertError, CodeUnsupportedFormat,
		CodeIOError, CodeConfigError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTOBJSyntax, CodeTOBJContext, CodeTOBJPath:
		return "notation"
	case CodeConvertError, CodeUnsupportedFormat:
		return "conversion"
	case CodeIOError:
		return "io"
	case CodeConfigError:
		return "config"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}
