// File: document.go
// Title: TOBJ Document Model
// Description: Defines the in-memory form of a parsed document: an
//              ordered collection of named object nodes, each holding
//              ordered properties and child objects. Declaration order
//              is preserved throughout so that serialization reproduces
//              the shape the author wrote.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial document model implementation

package document

import (
	"fmt"

	tobjmapx "github.com/tobj-format/tobj-go/utils/mapx"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// ===============================
// Position
// ===============================

// Position represents a location in source text. Line and Column are
// zero-based; String renders them one-based for display.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the display form of the position
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line+1, p.Column+1)
}

// ===============================
// Property
// ===============================

// Property is a named value belonging to an object node
type Property struct {
	Name  string
	Value Value
}

// String returns a string representation of the property
func (p Property) String() string {
	return fmt.Sprintf("%s = %s", p.Name, p.Value)
}

// Accept implements the visitor pattern
func (p Property) Accept(visitor Visitor) interface{} {
	return visitor.VisitProperty(p)
}

// ===============================
// ObjectNode
// ===============================

// ObjectNode is a named node in the document tree. It holds properties
// and child objects, each in declaration order. Setting a property that
// already exists replaces its value but keeps its original order slot;
// ensuring a child that already exists returns the existing node, so
// repeated declarations of the same object path merge.
type ObjectNode struct {
	name       string
	properties map[string]Value
	propOrder  []string
	children   map[string]*ObjectNode
	childOrder []string
}

// NewObjectNode creates an empty object node with the given name
func NewObjectNode(name string) *ObjectNode {
	return &ObjectNode{
		name:       name,
		properties: make(map[string]Value),
		children:   make(map[string]*ObjectNode),
	}
}

// Name returns the node's own name, the last segment of its path
func (n *ObjectNode) Name() string {
	return n.name
}

// SetProperty sets a property on this node. An existing property is
// overwritten in place and keeps its position in declaration order.
func (n *ObjectNode) SetProperty(name string, value Value) {
	if !tobjmapx.HasKey(n.properties, name) {
		n.propOrder = append(n.propOrder, name)
	}
	n.properties[name] = value
}

// Property returns the named property value and whether it exists
func (n *ObjectNode) Property(name string) (Value, bool) {
	value, ok := n.properties[name]
	return value, ok
}

// HasProperty returns true if the named property exists
func (n *ObjectNode) HasProperty(name string) bool {
	return tobjmapx.HasKey(n.properties, name)
}

// Properties returns the node's properties in declaration order.
// The returned slice is a fresh copy.
func (n *ObjectNode) Properties() []Property {
	props := make([]Property, 0, len(n.propOrder))
	for _, name := range n.propOrder {
		props = append(props, Property{Name: name, Value: n.properties[name]})
	}
	return props
}

// PropertyCount returns the number of properties on this node
func (n *ObjectNode) PropertyCount() int {
	return len(n.properties)
}

// Child returns the named child node and whether it exists
func (n *ObjectNode) Child(name string) (*ObjectNode, bool) {
	child, ok := n.children[name]
	return child, ok
}

// HasChild returns true if the named child exists
func (n *ObjectNode) HasChild(name string) bool {
	return tobjmapx.HasKey(n.children, name)
}

// EnsureChild returns the named child node, creating it if necessary.
// An existing child is returned as-is, which makes repeated
// declarations of the same path merge into one node.
func (n *ObjectNode) EnsureChild(name string) *ObjectNode {
	if child, ok := n.children[name]; ok {
		return child
	}
	child := NewObjectNode(name)
	n.children[name] = child
	n.childOrder = append(n.childOrder, name)
	return child
}

// Children returns the node's child objects in declaration order.
// The returned slice is a fresh copy.
func (n *ObjectNode) Children() []*ObjectNode {
	children := make([]*ObjectNode, 0, len(n.childOrder))
	for _, name := range n.childOrder {
		children = append(children, n.children[name])
	}
	return children
}

// ChildCount returns the number of direct children of this node
func (n *ObjectNode) ChildCount() int {
	return len(n.children)
}

// IsEmpty returns true if the node has no properties and no children
func (n *ObjectNode) IsEmpty() bool {
	return len(n.properties) == 0 && len(n.children) == 0
}

// Equal reports whether two nodes are structurally equal, including
// the declaration order of properties and children.
func (n *ObjectNode) Equal(other *ObjectNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.name != other.name {
		return false
	}
	if len(n.propOrder) != len(other.propOrder) {
		return false
	}
	for i, name := range n.propOrder {
		if other.propOrder[i] != name {
			return false
		}
		if !n.properties[name].Equal(other.properties[name]) {
			return false
		}
	}
	if len(n.childOrder) != len(other.childOrder) {
		return false
	}
	for i, name := range n.childOrder {
		if other.childOrder[i] != name {
			return false
		}
		if !n.children[name].Equal(other.children[name]) {
			return false
		}
	}
	return true
}

// Validate performs basic validation of the node and its subtree
func (n *ObjectNode) Validate() error {
	if tobjstringx.IsBlank(n.name) {
		return fmt.Errorf("object name is required")
	}
	for _, name := range n.propOrder {
		if tobjstringx.IsBlank(name) {
			return fmt.Errorf("object %s: property name is required", n.name)
		}
		if err := n.properties[name].Validate(); err != nil {
			return fmt.Errorf("object %s, property %s: %w", n.name, name, err)
		}
	}
	for _, name := range n.childOrder {
		if err := n.children[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns a short summary of the node
func (n *ObjectNode) String() string {
	return fmt.Sprintf("%s{properties: %d, children: %d}",
		n.name, len(n.properties), len(n.children))
}

// Accept implements the visitor pattern
func (n *ObjectNode) Accept(visitor Visitor) interface{} {
	return visitor.VisitObject(n)
}

// ===============================
// Document
// ===============================

// Document is the root of a parsed document: an ordered collection of
// named top-level objects. Re-declaring a top-level name merges into
// the existing object rather than replacing it.
type Document struct {
	objects map[string]*ObjectNode
	order   []string
}

// New creates an empty document
func New() *Document {
	return &Document{
		objects: make(map[string]*ObjectNode),
	}
}

// Get returns the named top-level object and whether it exists
func (d *Document) Get(name string) (*ObjectNode, bool) {
	node, ok := d.objects[name]
	return node, ok
}

// Has returns true if the named top-level object exists
func (d *Document) Has(name string) bool {
	return tobjmapx.HasKey(d.objects, name)
}

// Ensure walks the given path segments from the document root, creating
// nodes as needed, and returns the node at the end of the path. Existing
// nodes along the way are reused, so declaring "a.b" and later "a.b.c"
// builds one shared subtree. Returns nil when called without segments.
func (d *Document) Ensure(segments ...string) *ObjectNode {
	if len(segments) == 0 {
		return nil
	}
	node, ok := d.objects[segments[0]]
	if !ok {
		node = NewObjectNode(segments[0])
		d.objects[segments[0]] = node
		d.order = append(d.order, segments[0])
	}
	for _, segment := range segments[1:] {
		node = node.EnsureChild(segment)
	}
	return node
}

// Objects returns the top-level objects in declaration order.
// The returned slice is a fresh copy.
func (d *Document) Objects() []*ObjectNode {
	objects := make([]*ObjectNode, 0, len(d.order))
	for _, name := range d.order {
		objects = append(objects, d.objects[name])
	}
	return objects
}

// Len returns the number of top-level objects
func (d *Document) Len() int {
	return len(d.objects)
}

// IsEmpty returns true if the document has no objects
func (d *Document) IsEmpty() bool {
	return len(d.objects) == 0
}

// Equal reports whether two documents are structurally equal, including
// the declaration order of their objects.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.order) != len(other.order) {
		return false
	}
	for i, name := range d.order {
		if other.order[i] != name {
			return false
		}
		if !d.objects[name].Equal(other.objects[name]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the document. Values are immutable, so
// the copies share them.
func (d *Document) Clone() *Document {
	clone := New()
	if d == nil {
		return clone
	}
	for _, name := range d.order {
		cloneNodeInto(clone.Ensure(name), d.objects[name])
	}
	return clone
}

// cloneNodeInto copies the properties and children of src into dst
func cloneNodeInto(dst, src *ObjectNode) {
	for _, prop := range src.Properties() {
		dst.SetProperty(prop.Name, prop.Value)
	}
	for _, child := range src.Children() {
		cloneNodeInto(dst.EnsureChild(child.Name()), child)
	}
}

// Validate performs basic validation of the document
func (d *Document) Validate() error {
	for _, name := range d.order {
		if err := d.objects[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns a short summary of the document
func (d *Document) String() string {
	return fmt.Sprintf("Document{objects: %d}", len(d.objects))
}

// Accept implements the visitor pattern
func (d *Document) Accept(visitor Visitor) interface{} {
	return visitor.VisitDocument(d)
}
