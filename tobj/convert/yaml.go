// File: yaml.go
// Title: YAML Bridge
// Description: Implements Document to YAML conversion and back on top
//              of the yaml.Node API, which keeps mapping order in both
//              directions where the generic map decoding would not.
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
	"strconv"

	"gopkg.in/yaml.v3"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

// ToYAML renders the document as YAML. Objects and properties keep
// their insertion order. An empty document yields empty output.
func ToYAML(doc *tobjdocument.Document) ([]byte, error) {
	if doc == nil || doc.IsEmpty() {
		return []byte{}, nil
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, obj := range doc.Objects() {
		valueNode, err := objectToYAMLNode(obj, obj.Name())
		if err != nil {
			return nil, err
		}
		root.Content = append(root.Content, yamlStringNode(obj.Name()), valueNode)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, tobjerror.Wrap(err, "YAML encode error").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.ToYAML")
	}
	return out, nil
}

// objectToYAMLNode builds the mapping node for one object
func objectToYAMLNode(node *tobjdocument.ObjectNode, path string) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, prop := range node.Properties() {
		valueNode, err := valueToYAMLNode(prop.Value, path+"."+prop.Name)
		if err != nil {
			return nil, err
		}
		mapping.Content = append(mapping.Content, yamlStringNode(prop.Name), valueNode)
	}

	for _, child := range node.Children() {
		if node.HasProperty(child.Name()) {
			return nil, tobjerror.New(fmt.Sprintf("object %s has both a property and a child object named %q", path, child.Name())).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.ToYAML").
				WithDetail("path", path)
		}
		childNode, err := objectToYAMLNode(child, path+"."+child.Name())
		if err != nil {
			return nil, err
		}
		mapping.Content = append(mapping.Content, yamlStringNode(child.Name()), childNode)
	}

	return mapping, nil
}

// valueToYAMLNode builds the node for one scalar or list value
func valueToYAMLNode(v tobjdocument.Value, path string) (*yaml.Node, error) {
	switch v.Kind() {
	case tobjdocument.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case tobjdocument.KindString:
		s, _ := v.AsString()
		return yamlStringNode(s), nil
	case tobjdocument.KindInt:
		i, _ := v.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}, nil
	case tobjdocument.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, tobjerror.New(fmt.Sprintf("non-finite float at %s cannot be written as YAML", path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.ToYAML").
				WithDetail("path", path)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: tobjdocument.FormatFloat(f)}, nil
	case tobjdocument.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil
	case tobjdocument.KindList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		items, _ := v.Items()
		for i, item := range items {
			itemNode, err := valueToYAMLNode(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, itemNode)
		}
		return seq, nil
	default:
		return nil, tobjerror.New(fmt.Sprintf("unsupported value kind %s at %s", v.Kind(), path)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.ToYAML").
			WithDetail("path", path)
	}
}

// yamlStringNode builds a string scalar node. The explicit tag keeps
// texts that look like numbers or booleans quoted on output.
func yamlStringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// FromYAML parses YAML into a document. The top-level value must be a
// mapping whose members are mappings; document order is preserved.
func FromYAML(data []byte) (*tobjdocument.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, tobjerror.Wrap(err, "YAML parse error").
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromYAML")
	}

	doc := tobjdocument.New()
	if root.Kind == 0 {
		// Empty input
		return doc, nil
	}

	body := &root
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return doc, nil
		}
		body = resolveYAMLAlias(root.Content[0])
	}
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		// A bare document marker
		return doc, nil
	}
	if body.Kind != yaml.MappingNode {
		return nil, tobjerror.New(fmt.Sprintf("top-level YAML value must be a mapping, got %s", yamlKindName(body.Kind))).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromYAML")
	}

	for i := 0; i+1 < len(body.Content); i += 2 {
		keyNode := body.Content[i]
		valueNode := resolveYAMLAlias(body.Content[i+1])
		if valueNode.Kind != yaml.MappingNode {
			return nil, tobjerror.New(fmt.Sprintf("top-level member %q must be a mapping, got %s", keyNode.Value, yamlKindName(valueNode.Kind))).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromYAML").
				WithDetail("key", keyNode.Value)
		}
		if err := yamlMappingInto(doc.Ensure(keyNode.Value), valueNode, keyNode.Value); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// yamlMappingInto fills one object node from a mapping node
func yamlMappingInto(node *tobjdocument.ObjectNode, mapping *yaml.Node, path string) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		valueNode := resolveYAMLAlias(mapping.Content[i+1])
		memberPath := path + "." + key

		switch valueNode.Kind {
		case yaml.MappingNode:
			if err := yamlMappingInto(node.EnsureChild(key), valueNode, memberPath); err != nil {
				return err
			}
		case yaml.SequenceNode:
			items := make([]tobjdocument.Value, 0, len(valueNode.Content))
			for j, itemNode := range valueNode.Content {
				itemNode = resolveYAMLAlias(itemNode)
				if itemNode.Kind != yaml.ScalarNode {
					return tobjerror.New(fmt.Sprintf("list %s holds a nested structure at index %d; lists hold scalars only", memberPath, j)).
						WithCode(tobjerror.CodeConvertError).
						WithOperation("convert.FromYAML").
						WithDetail("path", memberPath)
				}
				item, err := yamlScalarValue(itemNode, fmt.Sprintf("%s[%d]", memberPath, j))
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			node.SetProperty(key, tobjdocument.List(items...))
		case yaml.ScalarNode:
			value, err := yamlScalarValue(valueNode, memberPath)
			if err != nil {
				return err
			}
			node.SetProperty(key, value)
		default:
			return tobjerror.New(fmt.Sprintf("unsupported YAML node at %s", memberPath)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromYAML").
				WithDetail("path", memberPath)
		}
	}
	return nil
}

// yamlScalarValue converts one scalar node into a Value based on its
// resolved tag
func yamlScalarValue(n *yaml.Node, path string) (tobjdocument.Value, error) {
	switch n.Tag {
	case "!!null":
		return tobjdocument.Null(), nil
	case "!!str":
		return tobjdocument.String(n.Value), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return tobjdocument.Value{}, tobjerror.Wrap(err, fmt.Sprintf("invalid boolean at %s", path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromYAML").
				WithDetail("path", path)
		}
		return tobjdocument.Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return tobjdocument.Value{}, tobjerror.Wrap(err, fmt.Sprintf("invalid integer at %s", path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromYAML").
				WithDetail("path", path)
		}
		return tobjdocument.Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("cannot convert YAML float %q at %s", n.Value, path)).
				WithCode(tobjerror.CodeConvertError).
				WithOperation("convert.FromYAML").
				WithDetail("path", path)
		}
		return tobjdocument.Float(f), nil
	default:
		return tobjdocument.Value{}, tobjerror.New(fmt.Sprintf("unsupported YAML tag %s at %s", n.Tag, path)).
			WithCode(tobjerror.CodeConvertError).
			WithOperation("convert.FromYAML").
			WithDetail("path", path)
	}
}

// resolveYAMLAlias follows an alias to its anchored node
func resolveYAMLAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// yamlKindName names a node kind for error messages
func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
