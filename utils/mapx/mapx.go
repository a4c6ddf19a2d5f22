// File: mapx.go
// Title: Core Map Utilities
// Description: Implements generic map helpers for key extraction, merging,
//              cloning, and membership checks used by the document model and
//              the format conversion layer of the tobj library.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with generic map helpers

package mapx

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a slice of all values from the map
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	if len(maps) == 0 {
		return make(map[K]V)
	}

	// Calculate total capacity
	totalSize := 0
	for _, m := range maps {
		if m != nil {
			totalSize += len(m)
		}
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// HasKey checks if the map contains the specified key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	if m == nil {
		return false
	}
	_, exists := m[key]
	return exists
}

// IsEmpty checks if the map is empty or nil
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return m == nil || len(m) == 0
}

// Equal checks if two maps are equal (same keys with same values)
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if m1 == nil && m2 == nil {
		return true
	}
	if m1 == nil || m2 == nil {
		return false
	}
	if len(m1) != len(m2) {
		return false
	}

	for k, v1 := range m1 {
		if v2, exists := m2[k]; !exists || v1 != v2 {
			return false
		}
	}
	return true
}
