// File: serializer.go
// Title: TOBJ Document Serializer
// Description: Implements serialization of Document trees into
//              canonical TOBJ text. Walks objects in insertion order,
//              reconstructs dotted paths for nested objects, and emits
//              properties and list items in the multi-line form with
//              minimal quoting.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial serializer implementation

package serializer

import (
	"fmt"
	"strconv"
	"strings"

	tobjlog "github.com/tobj-format/tobj-go/core/log"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjparser "github.com/tobj-format/tobj-go/tobj/parser"
)

// DefaultIndent is the indentation used for property and list lines
// when the options do not set one
const DefaultIndent = "  "

// Serializer converts Document trees into canonical TOBJ text
type Serializer struct {
	logger  *tobjlog.Logger
	options Options
}

// Options configures serializer behavior
type Options struct {
	Logger *tobjlog.Logger
	Indent string // Indentation for property and list lines
}

// New creates a new TOBJ serializer with the given options
func New(opts Options) (*Serializer, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = tobjlog.GetDefault()
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}

	// Anything but blanks would end up inside the emitted lines and
	// break re-parsing
	for _, ch := range opts.Indent {
		if ch != ' ' && ch != '\t' {
			return nil, fmt.Errorf("indent must contain only spaces and tabs, got %q", opts.Indent)
		}
	}

	return &Serializer{
		logger:  opts.Logger.WithField("component", "tobj-serializer"),
		options: opts,
	}, nil
}

// Serialize renders the document as TOBJ text. Objects and properties
// keep their insertion order, nested objects emit their full dotted
// path, and property-less objects with children are left implied by
// their descendants. An empty document serializes to empty text.
func (s *Serializer) Serialize(doc *tobjdocument.Document) string {
	if doc == nil || doc.IsEmpty() {
		return ""
	}

	s.logger.Debug("Serializing document", tobjlog.Fields{
		"objects": doc.Len(),
	})

	w := &writer{indent: s.options.Indent}
	for _, obj := range doc.Objects() {
		w.writeObject(obj, obj.Name())
	}

	out := w.b.String()

	s.logger.Debug("Serialization completed", tobjlog.Fields{
		"bytes": len(out),
	})

	return out
}

// Serialize renders the document as TOBJ text using default options
func Serialize(doc *tobjdocument.Document) string {
	s, _ := New(Options{})
	return s.Serialize(doc)
}

// writer accumulates the output text during a single serialization
type writer struct {
	b       strings.Builder
	indent  string
	started bool // a section was already written
}

// writeObject emits the node's own section when it has one, then the
// sections of its children. path is the node's full dotted path.
func (w *writer) writeObject(node *tobjdocument.ObjectNode, path string) {
	// A node with children but no properties of its own is implied by
	// its descendants' paths and needs no section
	if node.PropertyCount() > 0 || node.ChildCount() == 0 {
		w.writeSection(node, path)
	}

	for _, child := range node.Children() {
		w.writeObject(child, path+"."+child.Name())
	}
}

// writeSection emits one object declaration with its property lines
func (w *writer) writeSection(node *tobjdocument.ObjectNode, path string) {
	if w.started {
		w.b.WriteByte('\n')
	}
	w.started = true

	w.b.WriteByte('*')
	w.b.WriteString(path)
	w.b.WriteByte('\n')

	for _, prop := range node.Properties() {
		w.writeProperty(prop)
	}
}

// writeProperty emits one property line, or a key line followed by one
// line per item for lists
func (w *writer) writeProperty(prop tobjdocument.Property) {
	key := formatText(prop.Name)

	if prop.Value.Kind() == tobjdocument.KindList {
		w.b.WriteString(w.indent)
		w.b.WriteString("> ")
		w.b.WriteString(key)
		w.b.WriteByte('\n')

		items, _ := prop.Value.Items()
		for _, item := range items {
			w.b.WriteString(w.indent)
			w.b.WriteString("- ")
			w.b.WriteString(formatScalar(item))
			w.b.WriteByte('\n')
		}
		return
	}

	w.b.WriteString(w.indent)
	w.b.WriteString("> ")
	w.b.WriteString(key)
	w.b.WriteByte(' ')
	w.b.WriteString(formatScalar(prop.Value))
	w.b.WriteByte('\n')
}

// formatScalar renders one scalar value in its canonical text form
func formatScalar(v tobjdocument.Value) string {
	switch v.Kind() {
	case tobjdocument.KindNull:
		return "nothing"
	case tobjdocument.KindString:
		s, _ := v.AsString()
		return formatText(s)
	case tobjdocument.KindInt:
		i, _ := v.AsInt()
		return strconv.FormatInt(i, 10)
	case tobjdocument.KindFloat:
		f, _ := v.AsFloat()
		return tobjdocument.FormatFloat(f)
	case tobjdocument.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	default:
		return v.String()
	}
}

// formatText renders a string or property key, quoting it unless it
// survives a round-trip as a bare identifier
func formatText(s string) string {
	if needsQuoting(s) {
		return quote(s)
	}
	return s
}

// needsQuoting checks whether a text must be quoted to parse back as
// the same string. Anything that does not re-lex as a single identical
// identifier needs quotes, as does anything with control characters.
func needsQuoting(s string) bool {
	if !tobjparser.IsBareIdentifier(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return true
		}
	}
	return false
}

// escaper re-applies the escape sequences the lexer decodes
var escaper = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\t", "\\t",
)

// quote renders s as a quoted string literal
func quote(s string) string {
	return "\"" + escaper.Replace(s) + "\""
}
