// File: json.go
// Title: JSON Bridge
// Description: Implements Document to JSON conversion and back.
//              Output is written member by member so insertion order
//              survives; input is read through the json.Decoder token
//              stream for the same reason.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

// ToJSON renders the document as compact JSON. Objects and properties
// keep their insertion order; floats keep their decimal point so they
// survive a round trip as floats.
func ToJSON(doc *tobjdocument.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if doc != nil {
		for i, obj := range doc.Objects() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(&buf, obj.Name())
			buf.WriteByte(':')
			if err := writeJSONObject(&buf, obj, obj.Name()); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSONIndent renders the document as indented JSON, with prefix and
// indent as in json.MarshalIndent
func ToJSONIndent(doc *tobjdocument.Document, prefix, indent string) ([]byte, error) {
	compact, err := ToJSON(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, tobjerror.Wrap(err, "JSON indent error").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.ToJSONIndent")
	}
	return buf.Bytes(), nil
}

// writeJSONObject emits one object with its properties followed by its
// child objects
func writeJSONObject(buf *bytes.Buffer, node *tobjdocument.ObjectNode, path string) error {
	buf.WriteByte('{')
	first := true

	for _, prop := range node.Properties() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeJSONString(buf, prop.Name)
		buf.WriteByte(':')
		if err := writeJSONValue(buf, prop.Value, path+"."+prop.Name); err != nil {
			return err
		}
	}

	for _, child := range node.Children() {
		if node.HasProperty(child.Name()) {
			return tobjerror.New(fmt.Sprintf("object %s has both a property and a child object named %q", path, child.Name())).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.ToJSON").
				WithDetail("path", path)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeJSONString(buf, child.Name())
		buf.WriteByte(':')
		if err := writeJSONObject(buf, child, path+"."+child.Name()); err != nil {
			return err
		}
	}

	buf.WriteByte('}')
	return nil
}

// writeJSONValue emits one scalar or list value
func writeJSONValue(buf *bytes.Buffer, v tobjdocument.Value, path string) error {
	switch v.Kind() {
	case tobjdocument.KindNull:
		buf.WriteString("null")
	case tobjdocument.KindString:
		s, _ := v.AsString()
		writeJSONString(buf, s)
	case tobjdocument.KindInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))
	case tobjdocument.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return tobjerror.New(fmt.Sprintf("non-finite float at %s cannot be written as JSON", path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.ToJSON").
				WithDetail("path", path)
		}
		buf.WriteString(tobjdocument.FormatFloat(f))
	case tobjdocument.KindBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
	case tobjdocument.KindList:
		buf.WriteByte('[')
		items, _ := v.Items()
		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// writeJSONString emits a JSON string literal
func writeJSONString(buf *bytes.Buffer, s string) {
	// json.Marshal on a plain string cannot fail
	encoded, _ := json.Marshal(s)
	buf.Write(encoded)
}

// FromJSON parses JSON into a document. The top-level value must be an
// object whose members are objects; member order is preserved. Numbers
// become integers when they parse as such, floats otherwise.
func FromJSON(data []byte) (*tobjdocument.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	doc := tobjdocument.New()

	tok, err := dec.Token()
	if err == io.EOF {
		return doc, nil
	}
	if err != nil {
		return nil, wrapJSONError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, tobjerror.New(fmt.Sprintf("top-level JSON value must be an object, got %v", tok)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromJSON")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, wrapJSONError(err)
		}
		key := keyTok.(string)

		tok, err := dec.Token()
		if err != nil {
			return nil, wrapJSONError(err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, tobjerror.New(fmt.Sprintf("top-level member %q must be an object, got %v", key, tok)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromJSON").
				WithDetail("key", key)
		}
		if err := decodeJSONMembers(dec, doc.Ensure(key), key); err != nil {
			return nil, err
		}
	}

	// Closing brace of the top-level object
	if _, err := dec.Token(); err != nil {
		return nil, wrapJSONError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, tobjerror.New("unexpected data after top-level JSON object").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromJSON")
	}

	return doc, nil
}

// decodeJSONMembers fills one object node from the token stream. The
// decoder is positioned right after the opening brace; the matching
// closing brace is consumed before returning.
func decodeJSONMembers(dec *json.Decoder, node *tobjdocument.ObjectNode, path string) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return wrapJSONError(err)
		}
		key := keyTok.(string)

		tok, err := dec.Token()
		if err != nil {
			return wrapJSONError(err)
		}

		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{':
				if err := decodeJSONMembers(dec, node.EnsureChild(key), path+"."+key); err != nil {
					return err
				}
			case '[':
				value, err := decodeJSONList(dec, path+"."+key)
				if err != nil {
					return err
				}
				node.SetProperty(key, value)
			}
			continue
		}

		value, err := jsonScalarValue(tok, path+"."+key)
		if err != nil {
			return err
		}
		node.SetProperty(key, value)
	}

	_, err := dec.Token()
	return wrapJSONError(err)
}

// decodeJSONList reads the items of a JSON array, which must all be
// scalars
func decodeJSONList(dec *json.Decoder, path string) (tobjdocument.Value, error) {
	var items []tobjdocument.Value

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tobjdocument.Value{}, wrapJSONError(err)
		}
		if _, ok := tok.(json.Delim); ok {
			return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("list %s holds a nested structure at index %d; lists hold scalars only", path, len(items))).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromJSON").
				WithDetail("path", path)
		}
		item, err := jsonScalarValue(tok, fmt.Sprintf("%s[%d]", path, len(items)))
		if err != nil {
			return tobjdocument.Value{}, err
		}
		items = append(items, item)
	}

	if _, err := dec.Token(); err != nil {
		return tobjdocument.Value{}, wrapJSONError(err)
	}
	return tobjdocument.List(items...), nil
}

// jsonScalarValue converts one scalar token into a Value
func jsonScalarValue(tok json.Token, path string) (tobjdocument.Value, error) {
	switch t := tok.(type) {
	case nil:
		return tobjdocument.Null(), nil
	case string:
		return tobjdocument.String(t), nil
	case bool:
		return tobjdocument.Bool(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return tobjdocument.Int(i), nil
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return tobjdocument.Value{}, tobjerror.Wrap(err, fmt.Sprintf("invalid number at %s", path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromJSON").
				WithDetail("path", path)
		}
		return tobjdocument.Float(f), nil
	default:
		return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("unsupported JSON token %v at %s", tok, path)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromJSON").
			WithDetail("path", path)
	}
}

// wrapJSONError converts a decoder error, passing nil through
func wrapJSONError(err error) error {
	if err == nil {
		return nil
	}
	return tobjerror.Wrap(err, "JSON parse error").
		WithCode(tobjerror.CodeConvertError).
		WithOperation("convert.FromJSON")
}
