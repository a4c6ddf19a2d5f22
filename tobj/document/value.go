// File: value.go
// Title: TOBJ Value Type
// Description: Defines the closed tagged union over the scalar kinds a
//              property can hold (string, integer, float, boolean, null)
//              plus lists of scalars, with constructors, kind-checked
//              accessors, structural equality, and validation.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial value union implementation

package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds
type ValueKind int

const (
	// KindNull is the absence of a value, written "nothing" in the notation.
	// It is first so that the zero Value is Null.
	KindNull ValueKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
)

// String returns string representation of ValueKind
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union over the kinds a property can hold.
// Values are immutable once constructed; the zero Value is Null.
// Lists hold scalar Values only, never another list.
type Value struct {
	kind  ValueKind
	str   string
	i     int64
	f     float64
	b     bool
	items []Value
}

// String creates a string Value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int creates an integer Value
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float creates a float Value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Bool creates a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Null creates a null Value
func Null() Value {
	return Value{kind: KindNull}
}

// List creates a list Value from the given items. The items are copied,
// so later changes to the argument slice do not affect the Value.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, items: copied}
}

// Kind returns the variant this Value holds
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull returns true if this Value is the null marker
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string content, or an error for any other kind
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("cannot read %s value as string", v.kind)
	}
	return v.str, nil
}

// AsInt returns the integer content, or an error for any other kind
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("cannot read %s value as integer", v.kind)
	}
	return v.i, nil
}

// AsFloat returns the float content. Integer Values convert, so callers
// reading numeric properties do not need to distinguish the two kinds.
// Any other kind is an error.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, fmt.Errorf("cannot read %s value as float", v.kind)
	}
}

// AsBool returns the boolean content, or an error for any other kind
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("cannot read %s value as boolean", v.kind)
	}
	return v.b, nil
}

// Items returns a copy of the list elements, or an error for any other kind
func (v Value) Items() ([]Value, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("cannot read %s value as list", v.kind)
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items, nil
}

// Len returns the number of list elements, or 0 for any other kind
func (v Value) Len() int {
	return len(v.items)
}

// Equal reports whether two Values are structurally equal. Kinds must
// match: an integer 2 and a float 2.0 are not equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Validate performs basic validation of the Value
func (v Value) Validate() error {
	switch v.kind {
	case KindNull, KindString, KindInt, KindBool:
		return nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("float value must be finite, got %v", v.f)
		}
		return nil
	case KindList:
		for i, item := range v.items {
			if item.kind == KindList {
				return fmt.Errorf("list element %d: lists cannot contain other lists", i)
			}
			if err := item.Validate(); err != nil {
				return fmt.Errorf("list element %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown value kind: %d", int(v.kind))
	}
}

// String returns a string representation of the Value. Scalar kinds
// render in their canonical text form; strings render unquoted and
// lists render bracketed, both for readability in logs and tests.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "nothing"
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatFloat(v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "unknown"
	}
}

// Accept implements the visitor pattern
func (v Value) Accept(visitor Visitor) interface{} {
	return visitor.VisitValue(v)
}

// FormatFloat renders f in plain decimal form with a fractional part
// always present, so the text re-reads as a float rather than an integer.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
