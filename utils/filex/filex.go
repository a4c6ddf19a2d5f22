// File: filex.go
// Title: Core File Utilities
// Description: Implements file system helpers for loading and saving
//              documents, including existence checks, size inspection,
//              whole-file read/write operations, and path manipulation
//              used by the file-based entry points of the tobj library.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with file helpers for document I/O

package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Size returns the size of a file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get size of %s: %w", path, err)
	}
	return info.Size(), nil
}

// ===============================
// File Reading Operations
// ===============================

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ===============================
// File Writing Operations
// ===============================

// WriteFile writes data to a file, creating it if necessary
func WriteFile(path string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(path, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteString writes a string to a file
func WriteString(path, content string, perm os.FileMode) error {
	return WriteFile(path, []byte(content), perm)
}

// ===============================
// Directory Operations
// ===============================

// MkdirAll creates a directory and all necessary parent directories
func MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ===============================
// Path Manipulation
// ===============================

// Dir returns the directory containing the file
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of the path
func Base(path string) string {
	return filepath.Base(path)
}

// Ext returns the file extension
func Ext(path string) string {
	return filepath.Ext(path)
}

// Join joins path elements with the appropriate separator
func Join(elements ...string) string {
	return filepath.Join(elements...)
}
