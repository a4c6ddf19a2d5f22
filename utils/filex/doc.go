// Package filex implements file operation utilities for the tobj library.
//
// Package: filex
// Title: File Operations for Document I/O
// Description: This package provides the file system helpers used by the
//              file-based entry points of the tobj library: existence and
//              type checks, size inspection before reading, whole-file
//              read/write operations, parent directory creation, and path
//              manipulation for extension-based format detection.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with file helpers for document I/O
//
// # Package Overview
//
// The filex package groups its functions into four categories:
//
// File existence and information:
//   - Exists: Check if file or directory exists
//   - IsFile/IsDir: Check file type
//   - Size: File size in bytes, used to bound reads before they happen
//
// File reading:
//   - ReadFile: Read entire file as bytes
//   - ReadString: Read entire file as string
//
// File writing:
//   - WriteFile/WriteString: Write content to files
//   - MkdirAll: Create parent directories for output paths
//
// Path manipulation:
//   - Dir/Base/Ext: Path component extraction
//   - Join: Cross-platform path joining
//
// # Usage Examples
//
// Loading a document from disk:
//
//	if !filex.IsFile(path) {
//		return fmt.Errorf("not a regular file: %s", path)
//	}
//
//	size, err := filex.Size(path)
//	if err != nil {
//		return err
//	}
//	if size > maxInputLength {
//		return fmt.Errorf("file too large: %d bytes", size)
//	}
//
//	content, err := filex.ReadString(path)
//	if err != nil {
//		return err
//	}
//
// Saving a document, creating parent directories as needed:
//
//	dir := filex.Dir(path)
//	if dir != "." && !filex.Exists(dir) {
//		if err := filex.MkdirAll(dir, 0755); err != nil {
//			return err
//		}
//	}
//
//	return filex.WriteString(path, text, 0644)
//
// Detecting a format from a file extension:
//
//	switch filex.Ext(path) {
//	case ".tobj":
//		// native format
//	case ".yaml", ".yml":
//		// YAML conversion
//	}
//
// # Error Handling
//
// Operations that can fail return descriptive errors wrapping the underlying
// os error, so callers can use errors.Is with os.ErrNotExist and friends.
// Predicate functions (Exists, IsFile, IsDir) do not return errors: IsFile
// and IsDir report false when the path cannot be inspected, and Exists only
// reports false when the path definitely does not exist.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. Coordinating
// concurrent access to the same file is the caller's responsibility.
//
// # Related Packages
//
//   - stringx: String manipulation for file content
//   - core/log: Structured logging of file operations
package filex
