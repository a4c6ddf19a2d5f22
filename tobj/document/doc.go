// File: doc.go
// Title: Document Package Documentation
// Description: Defines the in-memory document model for parsed TOBJ text.
//              Provides ordered objects, typed property values, visitor
//              patterns and tree inspection utilities.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial document model implementation

/*
Package document defines the in-memory model for parsed TOBJ documents.

This package provides the document, object and value definitions, visitor
patterns, and utilities for representing and inspecting parsed TOBJ text
as structured data.

The document model enables:
  • Ordered representation of objects and properties
  • Typed access to property values
  • Merging of repeated object declarations
  • Tree traversal and validation
*/
package document
