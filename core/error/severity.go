// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels help callers decide how
//              to log and respond to different kinds of failures.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed user input, a value that fails validation
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a failed format conversion, an unsupported file extension
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: file read/write failures, internal invariant violations
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	// Examples: corrupted internal state, unrecoverable failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInternal, CodeIOError:
		return SeverityHigh

	// Medium severity errors
	case CodeConvertError, CodeUnsupportedFormat:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound,
		CodeTOBJSyntax, CodeTOBJContext, CodeTOBJPath,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
