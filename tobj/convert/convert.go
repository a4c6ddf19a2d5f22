// File: convert.go
// Title: Format Conversion Core
// Description: Implements the shared core of the format bridges:
//              the Format enum with extension detection, the
//              Marshal/Unmarshal dispatch, and the nested-map form
//              used to exchange documents with generic decoders.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation

package convert

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjfilex "github.com/tobj-format/tobj-go/utils/filex"
	tobjmapx "github.com/tobj-format/tobj-go/utils/mapx"
)

// Format represents a neighboring data format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatJSON represents JSON format
	FormatJSON

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat determines the data format from a file extension.
// Unrecognized extensions yield FormatAuto, which Marshal and
// Unmarshal reject.
func DetectFormat(path string) Format {
	switch strings.ToLower(tobjfilex.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// Marshal renders the document in the given format
func Marshal(doc *tobjdocument.Document, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return ToTOML(doc)
	case FormatYAML:
		return ToYAML(doc)
	case FormatJSON:
		return ToJSON(doc)
	default:
		return nil, tobjerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tobjerror.CodeUnsupportedFormat).
			WithOperation("convert.Marshal").
			WithDetail("format", format.String())
	}
}

// Unmarshal parses data in the given format into a document
func Unmarshal(data []byte, format Format) (*tobjdocument.Document, error) {
	switch format {
	case FormatTOML:
		return FromTOML(data)
	case FormatYAML:
		return FromYAML(data)
	case FormatJSON:
		return FromJSON(data)
	default:
		return nil, tobjerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tobjerror.CodeUnsupportedFormat).
			WithOperation("convert.Unmarshal").
			WithDetail("format", format.String())
	}
}

// ToMap converts the document into nested maps of native Go values.
// Scalars become string/int64/float64/bool/nil, lists become
// []interface{}, child objects become nested maps. An object holding
// both a property and a child of the same name cannot be flattened
// into one map and is rejected.
func ToMap(doc *tobjdocument.Document) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	if doc == nil {
		return result, nil
	}

	for _, obj := range doc.Objects() {
		m, err := nodeToMap(obj, obj.Name())
		if err != nil {
			return nil, err
		}
		result[obj.Name()] = m
	}

	return result, nil
}

// nodeToMap flattens one object into a map. path is the dotted
// location used in error messages.
func nodeToMap(node *tobjdocument.ObjectNode, path string) (map[string]interface{}, error) {
	m := make(map[string]interface{})

	for _, prop := range node.Properties() {
		m[prop.Name] = valueToInterface(prop.Value)
	}

	for _, child := range node.Children() {
		if tobjmapx.HasKey(m, child.Name()) {
			return nil, tobjerror.New(fmt.Sprintf("object %s has both a property and a child object named %q", path, child.Name())).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.ToMap").
				WithDetail("path", path)
		}
		childMap, err := nodeToMap(child, path+"."+child.Name())
		if err != nil {
			return nil, err
		}
		m[child.Name()] = childMap
	}

	return m, nil
}

// valueToInterface converts a Value into its native Go form
func valueToInterface(v tobjdocument.Value) interface{} {
	switch v.Kind() {
	case tobjdocument.KindNull:
		return nil
	case tobjdocument.KindString:
		s, _ := v.AsString()
		return s
	case tobjdocument.KindInt:
		i, _ := v.AsInt()
		return i
	case tobjdocument.KindFloat:
		f, _ := v.AsFloat()
		return f
	case tobjdocument.KindBool:
		b, _ := v.AsBool()
		return b
	case tobjdocument.KindList:
		items, _ := v.Items()
		result := make([]interface{}, len(items))
		for i, item := range items {
			result[i] = valueToInterface(item)
		}
		return result
	default:
		return nil
	}
}

// FromMap builds a document from nested maps of native Go values.
// Top-level entries must be maps since a document is a collection of
// objects. Keys are visited in sorted order because Go maps carry no
// order of their own.
func FromMap(m map[string]interface{}) (*tobjdocument.Document, error) {
	doc := tobjdocument.New()
	if tobjmapx.IsEmpty(m) {
		return doc, nil
	}

	keys := tobjmapx.Keys(m)
	sort.Strings(keys)

	for _, key := range keys {
		nested, ok := m[key].(map[string]interface{})
		if !ok {
			return nil, tobjerror.New(fmt.Sprintf("top-level entry %q must be a map, got %T", key, m[key])).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromMap").
				WithDetail("key", key)
		}
		if err := mapInto(doc.Ensure(key), nested, key); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// mapInto fills one object node from a map, recursing into nested maps
func mapInto(node *tobjdocument.ObjectNode, m map[string]interface{}, path string) error {
	keys := tobjmapx.Keys(m)
	sort.Strings(keys)

	for _, key := range keys {
		if nested, ok := m[key].(map[string]interface{}); ok {
			if err := mapInto(node.EnsureChild(key), nested, path+"."+key); err != nil {
				return err
			}
			continue
		}

		value, err := interfaceToValue(m[key], path+"."+key)
		if err != nil {
			return err
		}
		node.SetProperty(key, value)
	}

	return nil
}

// interfaceToValue converts a native Go value into a Value. path is
// the dotted location used in error messages.
func interfaceToValue(v interface{}, path string) (tobjdocument.Value, error) {
	switch val := v.(type) {
	case nil:
		return tobjdocument.Null(), nil
	case string:
		return tobjdocument.String(val), nil
	case bool:
		return tobjdocument.Bool(val), nil
	case int:
		return tobjdocument.Int(int64(val)), nil
	case int32:
		return tobjdocument.Int(int64(val)), nil
	case int64:
		return tobjdocument.Int(val), nil
	case float32:
		return floatValue(float64(val), path)
	case float64:
		return floatValue(val, path)
	case []string:
		items := make([]tobjdocument.Value, len(val))
		for i, s := range val {
			items[i] = tobjdocument.String(s)
		}
		return tobjdocument.List(items...), nil
	case []interface{}:
		items := make([]tobjdocument.Value, 0, len(val))
		for i, item := range val {
			switch item.(type) {
			case map[string]interface{}, []interface{}:
				return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("list %s holds a nested structure at index %d; lists hold scalars only", path, i)).
					WithCode(tobjerror.CodeConvertError).
					WithOperation("convert.interfaceToValue").
					WithDetail("path", path)
			}
			iv, err := interfaceToValue(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return tobjdocument.Value{}, err
			}
			items = append(items, iv)
		}
		return tobjdocument.List(items...), nil
	default:
		return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("unsupported value type %T at %s", v, path)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.interfaceToValue").
			WithDetail("path", path)
	}
}

// floatValue wraps a float, rejecting values the notation cannot write
func floatValue(f float64, path string) (tobjdocument.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("non-finite float at %s has no text form", path)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.floatValue").
			WithDetail("path", path)
	}
	return tobjdocument.Float(f), nil
}
