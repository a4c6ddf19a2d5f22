// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Comprehensive unit tests for the core string utility functions
//              in the stringx package. Tests cover edge cases, Unicode handling,
//              and expected behavior for all public functions.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"multiple spaces", "   ", true},
		{"tab and spaces", " \t ", true},
		{"newline", "\n", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", false},
		{"single space", " ", true},
		{"normal string", "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsNotEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNotBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", false},
		{"single space", " ", false},
		{"multiple spaces", "   ", false},
		{"string with content", "hello", true},
		{"string with spaces around", " hello ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"short string no truncation", "hello", 10, "...", "hello"},
		{"exact length no truncation", "hello", 5, "...", "hello"},
		{"basic truncation", "hello world", 8, "...", "hello..."},
		{"unicode truncation", "こんにちは世界", 4, "...", "こ..."},
		{"zero length", "hello", 0, "...", ""},
		{"negative length", "hello", -1, "...", ""},
		{"ellipsis longer than maxLen", "hello", 2, "...", "he"},
		{"empty ellipsis", "hello world", 5, "", "hello"},
		{"custom ellipsis", "hello world", 8, " more", "hel more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen, tt.ellipsis)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		pad      rune
		expected string
	}{
		{"pad with spaces", "hello", 10, ' ', "     hello"},
		{"pad with zeros", "123", 5, '0', "00123"},
		{"no padding needed", "hello", 3, ' ', "hello"},
		{"exact width", "hello", 5, ' ', "hello"},
		{"caret positioning", "^", 5, ' ', "    ^"},
		{"unicode input", "こんにちは", 7, '*', "**こんにちは"},
		{"unicode pad", "test", 6, '★', "★★test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadLeft(tt.input, tt.width, tt.pad)
			if result != tt.expected {
				t.Errorf("PadLeft(%q, %d, %q) = %q; want %q", tt.input, tt.width, tt.pad, result, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"unix line endings", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"windows line endings", "line1\r\nline2\r\nline3", []string{"line1", "line2", "line3"}},
		{"mac line endings", "line1\rline2\rline3", []string{"line1", "line2", "line3"}},
		{"mixed line endings", "line1\nline2\r\nline3\rline4", []string{"line1", "line2", "line3", "line4"}},
		{"trailing newline", "line1\nline2\n", []string{"line1", "line2", ""}},
		{"blank lines preserved", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("SplitLines(%q) returned %d lines; want %d", tt.input, len(result), len(tt.expected))
			}
			for i, line := range tt.expected {
				if result[i] != line {
					t.Errorf("SplitLines(%q)[%d] = %q; want %q", tt.input, i, result[i], line)
				}
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected string
	}{
		{"first is non-empty", []string{"a", "b"}, "a"},
		{"skip empty", []string{"", "b", "c"}, "b"},
		{"whitespace counts as non-empty", []string{"", "  ", "c"}, "  "},
		{"all empty", []string{"", "", ""}, ""},
		{"no arguments", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstNonEmpty(tt.inputs...)
			if result != tt.expected {
				t.Errorf("FirstNonEmpty(%v) = %q; want %q", tt.inputs, result, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected string
	}{
		{"first is non-blank", []string{"a", "b"}, "a"},
		{"skip blank", []string{"", "  ", "c"}, "c"},
		{"skip tabs and newlines", []string{"\t", "\n", "value"}, "value"},
		{"all blank", []string{"", " ", "\t"}, ""},
		{"no arguments", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstNonBlank(tt.inputs...)
			if result != tt.expected {
				t.Errorf("FirstNonBlank(%v) = %q; want %q", tt.inputs, result, tt.expected)
			}
		})
	}
}
