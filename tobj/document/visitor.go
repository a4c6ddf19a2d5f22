// File: visitor.go
// Title: Document Tree Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              document trees. Provides base visitor interface and common
//              visitor implementations for inspection and validation.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial visitor pattern implementation

package document

import (
	"fmt"
	"strings"

	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// Visitor interface for traversing document trees using the visitor pattern
type Visitor interface {
	VisitDocument(doc *Document) interface{}
	VisitObject(node *ObjectNode) interface{}
	VisitProperty(prop Property) interface{}
	VisitValue(value Value) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods. Note
// that descent happens through the receiver, so visitors that need their
// own methods called on nested nodes must override the descending methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitDocument(doc *Document) interface{} {
	for _, obj := range doc.Objects() {
		obj.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitObject(node *ObjectNode) interface{} {
	// Visit properties before children, matching declaration order
	for _, prop := range node.Properties() {
		prop.Accept(bv)
	}
	for _, child := range node.Children() {
		child.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitProperty(prop Property) interface{} {
	return prop.Value.Accept(bv)
}

func (bv *BaseVisitor) VisitValue(value Value) interface{} {
	if value.Kind() == KindList {
		items, _ := value.Items()
		for _, item := range items {
			item.Accept(bv)
		}
	}
	return nil
}

// StringVisitor creates a string representation of a document tree
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeIndent() {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
}

func (sv *StringVisitor) VisitDocument(doc *Document) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString("Document:\n")
	sv.indent++

	for _, obj := range doc.Objects() {
		obj.Accept(sv)
	}

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitObject(node *ObjectNode) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("Object: %s\n", node.Name()))
	sv.indent++

	for _, prop := range node.Properties() {
		prop.Accept(sv)
	}
	for _, child := range node.Children() {
		child.Accept(sv)
	}

	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitProperty(prop Property) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("Property: %s = ", prop.Name))
	prop.Value.Accept(sv)
	sv.buffer.WriteString("\n")
	return nil
}

func (sv *StringVisitor) VisitValue(value Value) interface{} {
	if value.Kind() == KindList {
		sv.buffer.WriteString("list[")
		items, _ := value.Items()
		for i, item := range items {
			if i > 0 {
				sv.buffer.WriteString(", ")
			}
			item.Accept(sv)
		}
		sv.buffer.WriteString("]")
		return nil
	}

	sv.buffer.WriteString(fmt.Sprintf("%s(%s)", value.Kind(), value))
	return nil
}

// ValidationVisitor validates document nodes and collects errors. Unlike
// the Validate methods, which stop at the first problem, this visitor
// gathers every error in the tree.
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitDocument(doc *Document) interface{} {
	for _, obj := range doc.Objects() {
		obj.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitObject(node *ObjectNode) interface{} {
	if tobjstringx.IsBlank(node.Name()) {
		vv.addError(fmt.Errorf("object validation failed: object name is required"))
	}

	for _, prop := range node.Properties() {
		prop.Accept(vv)
	}
	for _, child := range node.Children() {
		child.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitProperty(prop Property) interface{} {
	if tobjstringx.IsBlank(prop.Name) {
		vv.addError(fmt.Errorf("property validation failed: property name is required"))
	}

	return prop.Value.Accept(vv)
}

func (vv *ValidationVisitor) VisitValue(value Value) interface{} {
	// Each level checks only its own constraints; descent reaches the rest
	if value.Kind() == KindList {
		items, _ := value.Items()
		for i, item := range items {
			if item.Kind() == KindList {
				vv.addError(fmt.Errorf("value validation failed: list element %d: lists cannot contain other lists", i))
			}
		}
		for _, item := range items {
			item.Accept(vv)
		}
		return nil
	}

	if err := value.Validate(); err != nil {
		vv.addError(fmt.Errorf("value validation failed: %w", err))
	}
	return nil
}

// CollectorVisitor collects objects and properties from a document tree
type CollectorVisitor struct {
	BaseVisitor
	Objects    []*ObjectNode
	Properties []Property
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Objects:    make([]*ObjectNode, 0),
		Properties: make([]Property, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Objects = cv.Objects[:0]
	cv.Properties = cv.Properties[:0]
}

// Override the descending methods so nested nodes are collected too

func (cv *CollectorVisitor) VisitDocument(doc *Document) interface{} {
	for _, obj := range doc.Objects() {
		obj.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitObject(node *ObjectNode) interface{} {
	cv.Objects = append(cv.Objects, node)

	for _, prop := range node.Properties() {
		prop.Accept(cv)
	}
	for _, child := range node.Children() {
		child.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitProperty(prop Property) interface{} {
	cv.Properties = append(cv.Properties, prop)
	return nil
}

// Utility functions for working with visitors

// ValidateDocument validates a document tree and returns any validation errors
func ValidateDocument(doc *Document) []error {
	visitor := NewValidationVisitor()
	doc.Accept(visitor)
	return visitor.Errors()
}

// DocumentToString converts a document to a formatted string representation
func DocumentToString(doc *Document) string {
	visitor := NewStringVisitor()
	doc.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects all objects and properties from a document
func CollectNodes(doc *Document) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	doc.Accept(visitor)
	return visitor
}
