// File: toml.go
// Title: TOML Bridge
// Description: Implements Document to TOML conversion and back. The
//              encoder works from the nested map form; the decoder
//              replays MetaData.Keys so tables and properties keep
//              their document order.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation

package convert

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjmapx "github.com/tobj-format/tobj-go/utils/mapx"
)

// ToTOML renders the document as TOML. The encoder writes keys in
// sorted order, so unlike the YAML and JSON bridges this one does not
// keep insertion order. An empty document yields empty output.
func ToTOML(doc *tobjdocument.Document) ([]byte, error) {
	m, err := ToMap(doc)
	if err != nil {
		return nil, err
	}
	if tobjmapx.IsEmpty(m) {
		return []byte{}, nil
	}
	if err := checkTOMLValues(m, ""); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, tobjerror.Wrap(err, "TOML encode error").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.ToTOML")
	}
	return buf.Bytes(), nil
}

// checkTOMLValues rejects null values up front since TOML has no null
// and the encoder's own message would not name the location
func checkTOMLValues(m map[string]interface{}, path string) error {
	for key, v := range m {
		memberPath := key
		if path != "" {
			memberPath = path + "." + key
		}
		switch val := v.(type) {
		case nil:
			return nullTOMLError(memberPath)
		case map[string]interface{}:
			if err := checkTOMLValues(val, memberPath); err != nil {
				return err
			}
		case []interface{}:
			for i, item := range val {
				if item == nil {
					return nullTOMLError(fmt.Sprintf("%s[%d]", memberPath, i))
				}
			}
		}
	}
	return nil
}

func nullTOMLError(path string) error {
	return tobjerror.New(fmt.Sprintf("TOML has no null value (at %s)", path)).
		WithCode(tobjerror.CodeConvertError).
		WithOperation("convert.ToTOML").
		WithDetail("path", path)
}

// FromTOML parses TOML into a document. Top-level keys must be tables
// since a document is a collection of objects. Tables and keys are
// created in document order via the decoder metadata.
func FromTOML(data []byte) (*tobjdocument.Document, error) {
	var m map[string]interface{}
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, tobjerror.Wrap(err, "TOML parse error").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromTOML")
	}

	doc := tobjdocument.New()
	for _, key := range md.Keys() {
		segments := []string(key)
		value, ok := tomlLookup(m, segments)
		if !ok {
			// Keys under an array of tables are unreachable through the
			// map; the array itself is rejected before they come up
			continue
		}

		if _, isTable := value.(map[string]interface{}); isTable {
			doc.Ensure(segments...)
			continue
		}

		if len(segments) == 1 {
			return nil, tobjerror.New(fmt.Sprintf("top-level key %q must be a table", segments[0])).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromTOML").
				WithDetail("key", segments[0])
		}

		parent := doc.Ensure(segments[:len(segments)-1]...)
		name := segments[len(segments)-1]
		propValue, err := interfaceToValue(value, key.String())
		if err != nil {
			return nil, err
		}
		parent.SetProperty(name, propValue)
	}

	return doc, nil
}

// tomlLookup walks the decoded map along a key path
func tomlLookup(m map[string]interface{}, key []string) (interface{}, bool) {
	var current interface{} = m
	for _, k := range key {
		cm, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = cm[k]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
