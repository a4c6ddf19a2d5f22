// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic helpers for working with maps
//              in Go, covering key and value extraction, merging, cloning,
//              and membership checks.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with generic map helpers

// Package mapx provides generic helpers for working with maps in Go.
//
// Package: mapx
// Title: Map Utilities for Go
// Description: This package provides a small set of type-safe, generic map
//              operations used throughout the tobj library: key and value
//              extraction for deterministic iteration, merging with
//              last-wins conflict resolution, shallow cloning, and
//              membership and equality checks.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// # Overview
//
// Go maps iterate in random order and offer no built-in merge or clone.
// This package fills those gaps with generic functions that work with any
// comparable key type, handle nil maps gracefully, and never modify their
// inputs.
//
// The document conversion layer is the primary consumer: building a
// document from a plain map requires a deterministic key order
// (Keys plus a sort), flattening dotted object paths into nested maps
// requires merging (Merge), and format registries are queried for
// membership (HasKey) and enumerated for error messages (Values).
//
// # Usage Examples
//
// Deterministic iteration over a map:
//
//	fields := map[string]interface{}{"host": "db1", "port": 5432}
//	keys := mapx.Keys(fields)
//	sort.Strings(keys)
//	for _, k := range keys {
//		fmt.Println(k, fields[k])
//	}
//
// Merging with later maps taking precedence:
//
//	merged := mapx.Merge(defaults, overrides)
//
// Guarding against empty input:
//
//	if mapx.IsEmpty(input) {
//		return document.New(), nil
//	}
//
// # Behavior Guarantees
//
// All functions follow consistent patterns:
//   - Input maps are never modified (immutable operations)
//   - New maps are returned for transformations
//   - Nil inputs are handled gracefully
//   - Generic type parameters maintain type safety
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use on maps that are not
// concurrently written by other goroutines.
package mapx
